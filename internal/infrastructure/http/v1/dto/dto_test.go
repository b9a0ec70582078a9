package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/core/types"
)

func TestCollectionForm_ParsesTextAmounts(t *testing.T) {
	var f CollectionForm
	require.NoError(t, json.Unmarshal([]byte(`{
		"supplierId": "1", "productId": "2", "date": "2024-03-15", "time": "09:30",
		"location": "Rua A", "weight": "1.234,5", "value": 99.9, "status": "agendado"
	}`), &f))

	d, err := f.ToDraft()
	require.NoError(t, err)
	assert.True(t, d.Weight.Equal(types.MustAmount("1234.5")))
	assert.True(t, d.Value.Equal(types.MustAmount("99.9")))
	assert.Equal(t, "09:30", d.Time)
}

func TestCollectionForm_RejectsBadAmount(t *testing.T) {
	f := CollectionForm{Weight: "doze", Value: "1"}
	_, err := f.ToDraft()
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestSalePatchForm_KeepsAbsentFieldsNil(t *testing.T) {
	var f SalePatchForm
	require.NoError(t, json.Unmarshal([]byte(`{"value": "R$ 10,00"}`), &f))

	p, err := f.ToPatch()
	require.NoError(t, err)
	assert.Nil(t, p.Weight)
	assert.Nil(t, p.Date)
	require.NotNil(t, p.Value)
	assert.True(t, p.Value.Equal(types.MustAmount("10")))
}

func TestAmountText_RejectsNonNumbers(t *testing.T) {
	var a AmountText
	assert.Error(t, json.Unmarshal([]byte(`true`), &a))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &a))
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	r := Page(items, ListQuery{Limit: 2, Offset: 1})
	assert.Equal(t, []int{2, 3}, r.Items)
	assert.Equal(t, 5, r.TotalCount)

	r = Page(items, ListQuery{Offset: 4})
	assert.Equal(t, []int{5}, r.Items)

	r = Page(items, ListQuery{Offset: 10})
	assert.Equal(t, []int{}, r.Items)

	r = Page([]int(nil), ListQuery{})
	assert.Equal(t, []int{}, r.Items)
}
