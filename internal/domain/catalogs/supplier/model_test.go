package supplier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/internal/core/apperror"
)

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, CategoryUnknown.IsValid())
	assert.False(t, Category("Collector").IsValid())
}

func TestDraft_Validate(t *testing.T) {
	d := Draft{Name: "Maria", Document: "123.456.789-00", Type: CategoryCollector}
	require.NoError(t, d.Validate())

	d.Type = "outro"
	err := d.Validate()
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	d.Type = CategoryCompany
	d.Email = "not-an-email"
	assert.Error(t, d.Validate())
}

func TestPatch_Validate(t *testing.T) {
	assert.NoError(t, Patch{}.Validate())

	bad := Category("x")
	assert.Error(t, Patch{Type: &bad}.Validate())
}
