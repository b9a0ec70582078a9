package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/core/types"
)

func validDraft() Draft {
	return Draft{
		SupplierID: "1",
		Date:       "2024-03-15",
		Time:       "09:30",
		Location:   "Rua A, 10",
		ProductID:  "2",
		Weight:     types.MustAmount("120.5"),
		Value:      types.MustAmount("60"),
		Status:     StatusScheduled,
	}
}

func TestDraft_Validate(t *testing.T) {
	require.NoError(t, validDraft().Validate())

	d := validDraft()
	d.Time = "9h30"
	assert.Error(t, d.Validate())

	d = validDraft()
	d.SupplierID = "abc"
	assert.Error(t, d.Validate())

	d = validDraft()
	d.Weight = types.MustAmount("-1")
	assert.Error(t, d.Validate())

	d = validDraft()
	d.Status = "Scheduled"
	assert.Error(t, d.Validate())
}

func TestPatch_DateAndTimeTogether(t *testing.T) {
	date, tm := "2024-03-16", "10:00"

	assert.NoError(t, Patch{Date: &date, Time: &tm}.Validate())

	err := Patch{Date: &date}.Validate()
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Error(t, Patch{Time: &tm}.Validate())
}

func TestStatuses(t *testing.T) {
	assert.Len(t, Statuses(), 3)
	for _, s := range Statuses() {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Status("cancelado").IsValid())
}
