package main

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/internal/core/types"
	"recyclehub/internal/infrastructure/api/apitest"
	"recyclehub/internal/infrastructure/api/dto"
)

func run(t *testing.T, backend *apitest.Backend, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{
		"--api-url", backend.URL(),
		"--env-file", filepath.Join(t.TempDir(), "none.env"),
	}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func seedBackend(b *apitest.Backend) dto.Collection {
	s := b.SeedSupplier(dto.Supplier{Name: "Maria", SupplierType: dto.SupplierTypeAgent})
	p := b.SeedProductType(dto.ProductType{Name: "PET", Unit: "kg"})
	return b.SeedCollection(dto.Collection{
		SupplierID: s.ID, ProductID: p.ID, Status: dto.StatusScheduled,
		DateTime: "2024-03-15T09:30:00Z", Location: "Rua A",
		Weight: types.MustAmount("100"), Value: types.MustAmount("1234.5"),
	})
}

func TestSummary(t *testing.T) {
	backend := apitest.New(t)
	seedBackend(backend)
	backend.Fail(http.MethodGet, "/sales", http.StatusInternalServerError, "sales offline")

	out, errOut, err := run(t, backend, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Total coletado")
	assert.Contains(t, out, "100 kg")
	assert.Contains(t, out, "Maria")
	assert.Contains(t, errOut, "warning: Erro ao carregar vendas: sales offline")
}

func TestByDateAndStatus(t *testing.T) {
	backend := apitest.New(t)
	col := seedBackend(backend)
	id := strconv.FormatInt(col.ID, 10)

	out, _, err := run(t, backend, "by-date", "2024-03-15")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-15: 1 coletas")
	assert.Contains(t, out, "R$ 1.234,50")

	out, _, err = run(t, backend, "status", id, "coletado")
	require.NoError(t, err)
	assert.Contains(t, out, "Status da coleta atualizado com sucesso!")

	wire, ok := backend.WireCollection(col.ID)
	require.True(t, ok)
	assert.Equal(t, dto.StatusCollected, wire.Status)

	_, _, err = run(t, backend, "status", id, "perdido")
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	backend := apitest.New(t)
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
suppliers:
  - key: joao
    name: João
    document: "321"
    type: empresa
productTypes:
  - key: papel
    name: Papelão
    unit: kg
collections:
  - supplier: joao
    product: papel
    date: 2024-04-02
    time: "14:00"
    location: Galpão
    weight: "50"
    value: "12,5"
    status: confirmado
`), 0o600))

	out, _, err := run(t, backend, "seed", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "collections: 1")
	assert.Contains(t, out, "suppliers: 1")
	assert.Equal(t, 1, backend.Calls(http.MethodPost, "/collections"))
}

func TestExport(t *testing.T) {
	backend := apitest.New(t)
	seedBackend(backend)

	out, _, err := run(t, backend, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"supplierName":"Maria"`)
}
