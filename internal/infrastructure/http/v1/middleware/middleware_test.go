package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/internal/core/apperror"
	appctx "recyclehub/internal/core/context"
	"recyclehub/pkg/logger"
)

func newEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(), Trace(), Logger(logger.Nop()), ErrorHandler())
	r.GET("/x", handler)
	return r
}

func serve(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", apperror.NewValidation("weight is required"), http.StatusBadRequest, apperror.CodeValidation},
		{"network", apperror.NewNetwork(errors.New("refused")), http.StatusBadGateway, apperror.CodeNetwork},
		{"backend", apperror.NewHTTP(409, "duplicate document", nil), http.StatusConflict, apperror.CodeHTTP},
		{"plain", errors.New("boom"), http.StatusInternalServerError, apperror.CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEngine(func(c *gin.Context) {
				_ = c.Error(tc.err)
				c.Abort()
			})
			w := serve(r, nil)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"code":"`+tc.code+`"`)
		})
	}
}

func TestRecovery_Panic(t *testing.T) {
	r := newEngine(func(c *gin.Context) { panic("kaboom") })
	w := serve(r, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "kaboom")
}

func TestTrace_PropagatesRequestID(t *testing.T) {
	var seen string
	r := newEngine(func(c *gin.Context) {
		seen = appctx.GetRequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := serve(r, map[string]string{HeaderRequestID: "req-42"})
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))

	w = serve(r, nil)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}
