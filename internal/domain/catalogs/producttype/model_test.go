package producttype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraft_UnitClosedSet(t *testing.T) {
	assert.NoError(t, Draft{Name: "PET", Unit: UnitKilogram}.Validate())
	assert.NoError(t, Draft{Name: "Alumínio", Unit: UnitGram}.Validate())
	assert.Error(t, Draft{Name: "PET", Unit: "ton"}.Validate())
	assert.Error(t, Draft{Name: "PET"}.Validate())

	ton := Unit("ton")
	assert.Error(t, Patch{Unit: &ton}.Validate())
	assert.False(t, ton.IsValid())
}
