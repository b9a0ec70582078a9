package archive

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/internal/core/types"
	"recyclehub/internal/domain/catalogs/supplier"
	"recyclehub/internal/domain/documents/sale"
	"recyclehub/internal/store"
)

func snapshot(n int) store.Snapshot {
	snap := store.Snapshot{SalesMetadata: sale.Metadata{TotalSales: n, TotalValue: types.MustAmount("12.5")}}
	for i := range n {
		snap.Suppliers = append(snap.Suppliers, supplier.Supplier{
			ID:   strconv.Itoa(i + 1),
			Name: "Fornecedor " + strings.Repeat("x", 20),
			Type: supplier.CategoryAgent,
		})
	}
	return snap
}

func TestArchiver_CompressesLargeSnapshots(t *testing.T) {
	a, err := New(0)
	require.NoError(t, err)
	defer a.Close()

	var buf bytes.Buffer
	compressed, err := a.Write(&buf, snapshot(500))
	require.NoError(t, err)
	assert.True(t, compressed)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), zstdMagic))

	got, err := a.Read(&buf)
	require.NoError(t, err)
	assert.Len(t, got.Suppliers, 500)
	assert.Equal(t, supplier.CategoryAgent, got.Suppliers[499].Type)
	assert.True(t, got.SalesMetadata.TotalValue.Equal(types.MustAmount("12.5")))
}

func TestArchiver_SmallSnapshotsStayPlain(t *testing.T) {
	a, err := New(0)
	require.NoError(t, err)
	defer a.Close()

	var buf bytes.Buffer
	compressed, err := a.Write(&buf, snapshot(1))
	require.NoError(t, err)
	assert.False(t, compressed)
	assert.True(t, strings.HasPrefix(buf.String(), "{"))

	got, err := a.Read(&buf)
	require.NoError(t, err)
	assert.Len(t, got.Suppliers, 1)
}

func TestArchiver_RejectsGarbage(t *testing.T) {
	a, err := New(Always)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Read(bytes.NewReader(append(append([]byte{}, zstdMagic...), 1, 2, 3)))
	assert.Error(t, err)
}
