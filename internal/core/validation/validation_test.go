package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/core/types"
)

type sample struct {
	Name   string        `json:"name" validate:"required"`
	Email  string        `json:"email" validate:"omitempty,email"`
	Unit   string        `json:"unit" validate:"omitempty,oneof=g kg"`
	Weight types.Amount  `json:"weight" validate:"gte=0"`
	Value  *types.Amount `json:"value,omitempty" validate:"omitempty,gte=0"`
}

func TestStruct_OK(t *testing.T) {
	v := types.MustAmount("10")
	assert.NoError(t, Struct(sample{Name: "PET", Unit: "kg", Weight: types.MustAmount("1.5"), Value: &v}))
	assert.NoError(t, Struct(sample{Name: "PET"}))
}

func TestStruct_ReportsJSONFieldName(t *testing.T) {
	err := Struct(sample{})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, 0, appErr.Status)
	assert.Equal(t, "name is required", appErr.Message)
	assert.Equal(t, "name", appErr.Details.(map[string]any)["field"])
	assert.Equal(t, "required", appErr.Details.(map[string]any)["rule"])
}

func TestStruct_Messages(t *testing.T) {
	neg := types.MustAmount("-1")

	cases := []struct {
		name string
		in   sample
		want string
	}{
		{"email", sample{Name: "a", Email: "nope"}, "email must be a valid email"},
		{"oneof", sample{Name: "a", Unit: "lb"}, "unit must be one of: g kg"},
		{"negative amount", sample{Name: "a", Weight: neg}, "weight must not be negative"},
		{"negative pointer amount", sample{Name: "a", Value: &neg}, "value must not be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.in)
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tc.want, appErr.Message)
		})
	}
}
