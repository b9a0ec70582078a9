// Package apitest provides an in-memory fake of the recycling backend for tests.
// It speaks the same wire schema as the real API and can inject failures,
// hold requests and record request bodies.
package apitest

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"recyclehub/internal/core/types"
	"recyclehub/internal/infrastructure/api/dto"
)

// Request is one request received by the backend.
type Request struct {
	Method string
	Path   string
	Body   string
}

type failure struct {
	status  int // 0 drops the connection
	message string
}

// Backend is a fake backend server.
type Backend struct {
	mu     sync.Mutex
	nextID int64
	now    func() time.Time

	suppliers        table[dto.Supplier]
	clients          table[dto.Client]
	collectionPoints table[dto.CollectionPoint]
	productTypes     table[dto.ProductType]
	collections      table[dto.Collection]
	sales            table[dto.Sale]

	failures map[string]failure
	holds    map[string]chan struct{}
	requests []Request

	server *httptest.Server
}

// New starts a backend that is shut down when the test ends.
func New(t testing.TB) *Backend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := &Backend{
		now:              func() time.Time { return time.Now().UTC() },
		suppliers:        table[dto.Supplier]{id: func(s dto.Supplier) int64 { return s.ID }},
		clients:          table[dto.Client]{id: func(c dto.Client) int64 { return c.ID }},
		collectionPoints: table[dto.CollectionPoint]{id: func(p dto.CollectionPoint) int64 { return p.ID }},
		productTypes:     table[dto.ProductType]{id: func(p dto.ProductType) int64 { return p.ID }},
		collections:      table[dto.Collection]{id: func(c dto.Collection) int64 { return c.ID }},
		sales:            table[dto.Sale]{id: func(s dto.Sale) int64 { return s.ID }},
		failures:         make(map[string]failure),
		holds:            make(map[string]chan struct{}),
	}
	b.server = httptest.NewServer(b.router())
	t.Cleanup(b.server.Close)
	return b
}

// URL returns the base URL of the backend.
func (b *Backend) URL() string {
	return b.server.URL
}

// Fail makes every request matching "METHOD /path" answer status with {error: message}.
// Status 0 closes the connection without a response.
func (b *Backend) Fail(method, path string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = failure{status: status, message: message}
}

// ClearFailures removes every injected failure.
func (b *Backend) ClearFailures() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = make(map[string]failure)
}

// Hold blocks requests matching "METHOD /path" until the returned func is called.
func (b *Backend) Hold(method, path string) (release func()) {
	ch := make(chan struct{})
	b.mu.Lock()
	b.holds[method+" "+path] = ch
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.holds, method+" "+path)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// Requests returns a copy of every request received so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

// Calls counts requests matching method and path.
func (b *Backend) Calls(method, path string) int {
	n := 0
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// LastRequest returns the last request matching method and path.
func (b *Backend) LastRequest(method, path string) (Request, bool) {
	reqs := b.Requests()
	for i := len(reqs) - 1; i >= 0; i-- {
		if reqs[i].Method == method && reqs[i].Path == path {
			return reqs[i], true
		}
	}
	return Request{}, false
}

// --- Seeding ---

// SeedSupplier stores s with a fresh id and returns it.
func (b *Backend) SeedSupplier(s dto.Supplier) dto.Supplier {
	b.mu.Lock()
	defer b.mu.Unlock()
	s.ID, s.CreatedAt, s.UpdatedAt = b.stamp()
	b.suppliers.insert(s)
	return s
}

// SeedClient stores c with a fresh id and returns it.
func (b *Backend) SeedClient(c dto.Client) dto.Client {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.ID, c.CreatedAt, c.UpdatedAt = b.stamp()
	b.clients.insert(c)
	return c
}

// SeedCollectionPoint stores p with a fresh id and returns it.
func (b *Backend) SeedCollectionPoint(p dto.CollectionPoint) dto.CollectionPoint {
	b.mu.Lock()
	defer b.mu.Unlock()
	p.ID, p.CreatedAt, p.UpdatedAt = b.stamp()
	b.collectionPoints.insert(p)
	return p
}

// SeedProductType stores p with a fresh id and returns it.
func (b *Backend) SeedProductType(p dto.ProductType) dto.ProductType {
	b.mu.Lock()
	defer b.mu.Unlock()
	p.ID, p.CreatedAt, p.UpdatedAt = b.stamp()
	b.productTypes.insert(p)
	return p
}

// SeedCollection stores c with a fresh id, filling its nested references.
func (b *Backend) SeedCollection(c dto.Collection) dto.Collection {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.ID, c.CreatedAt, c.UpdatedAt = b.stamp()
	c = b.withCollectionRefs(c)
	b.collections.insert(c)
	return c
}

// SeedSale stores s with a fresh id, filling its nested references.
func (b *Backend) SeedSale(s dto.Sale) dto.Sale {
	b.mu.Lock()
	defer b.mu.Unlock()
	s.ID, s.CreatedAt, s.UpdatedAt = b.stamp()
	s = b.withSaleRefs(s)
	b.sales.insert(s)
	return s
}

// WireSupplier returns the stored wire supplier.
func (b *Backend) WireSupplier(id int64) (dto.Supplier, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.suppliers.get(id)
}

// WireCollection returns the stored wire collection.
func (b *Backend) WireCollection(id int64) (dto.Collection, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.collections.get(id)
}

func (b *Backend) stamp() (int64, string, string) {
	b.nextID++
	ts := b.now().Format(time.RFC3339Nano)
	return b.nextID, ts, ts
}

// --- Router ---

func (b *Backend) router() *gin.Engine {
	r := gin.New()
	r.Use(b.intercept)

	registerCRUD(r, b, "/suppliers", &b.suppliers, b.createSupplier, b.updateSupplier)
	registerCRUD(r, b, "/clients", &b.clients, b.createClient, b.updateClient)
	registerCRUD(r, b, "/collection-points", &b.collectionPoints, b.createCollectionPoint, b.updateCollectionPoint)
	registerCRUD(r, b, "/product-types", &b.productTypes, b.createProductType, b.updateProductType)

	r.GET("/collections/by-date/:date", b.collectionsByDate)
	r.PATCH("/collections/:id/status", b.updateCollectionStatus)
	registerCRUD(r, b, "/collections", &b.collections, b.createCollection, b.updateCollection)

	// GET /sales is answered with metadata, the rest is plain CRUD.
	r.GET("/sales", b.listSales)
	registerItemRoutes(r, b, "/sales", &b.sales, b.createSale, b.updateSale)

	return r
}

// intercept records the request, applies holds and injected failures.
func (b *Backend) intercept(c *gin.Context) {
	raw, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	key := c.Request.Method + " " + c.Request.URL.Path

	b.mu.Lock()
	b.requests = append(b.requests, Request{Method: c.Request.Method, Path: c.Request.URL.Path, Body: string(raw)})
	hold := b.holds[key]
	b.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-c.Request.Context().Done():
			c.Abort()
			return
		}
	}

	b.mu.Lock()
	f, failing := b.failures[key]
	b.mu.Unlock()

	if !failing {
		c.Next()
		return
	}
	if f.status == 0 {
		if conn, _, err := c.Writer.Hijack(); err == nil {
			_ = conn.Close()
		}
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(f.status, dto.ErrorBody{Error: f.message})
}

func errorJSON(c *gin.Context, status int, format string, args ...any) {
	c.JSON(status, dto.ErrorBody{Error: fmt.Sprintf(format, args...)})
}

func pathID(c *gin.Context) (int64, bool) {
	n, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return n, true
}

type createFunc = gin.HandlerFunc
type updateFunc func(c *gin.Context, id int64)

func registerCRUD[W any](r *gin.Engine, b *Backend, path string, t *table[W], create createFunc, update updateFunc) {
	r.GET(path, func(c *gin.Context) {
		b.mu.Lock()
		rows := t.all()
		b.mu.Unlock()
		c.JSON(http.StatusOK, rows)
	})
	registerItemRoutes(r, b, path, t, create, update)
}

func registerItemRoutes[W any](r *gin.Engine, b *Backend, path string, t *table[W], create createFunc, update updateFunc) {
	r.POST(path, create)
	r.GET(path+"/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		b.mu.Lock()
		row, found := t.get(id)
		b.mu.Unlock()
		if !found {
			errorJSON(c, http.StatusNotFound, "Not found")
			return
		}
		c.JSON(http.StatusOK, row)
	})
	r.PUT(path+"/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		update(c, id)
	})
	r.DELETE(path+"/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		b.mu.Lock()
		removed := t.remove(id)
		b.mu.Unlock()
		if !removed {
			errorJSON(c, http.StatusNotFound, "Not found")
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// --- Table ---

type table[W any] struct {
	rows []W
	id   func(W) int64
}

func (t *table[W]) insert(w W) {
	t.rows = append(t.rows, w)
}

func (t *table[W]) all() []W {
	out := make([]W, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *table[W]) index(id int64) int {
	for i, row := range t.rows {
		if t.id(row) == id {
			return i
		}
	}
	return -1
}

func (t *table[W]) get(id int64) (W, bool) {
	if i := t.index(id); i >= 0 {
		return t.rows[i], true
	}
	var zero W
	return zero, false
}

func (t *table[W]) put(w W) {
	if i := t.index(t.id(w)); i >= 0 {
		t.rows[i] = w
	}
}

func (t *table[W]) remove(id int64) bool {
	i := t.index(id)
	if i < 0 {
		return false
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return true
}

func sumAmounts(values ...types.Amount) types.Amount {
	total := types.ZeroAmount()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
