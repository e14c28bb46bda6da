package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func sampleProducts(t *testing.T) []types.Product {
	t.Helper()
	rows := []struct {
		id, name string
		quantity int
		price    float64
	}{
		{"P001", "Lapicero azul", 100, 0.50},
		{"P002", "Cuaderno A4", 2, 2.75},
		{"P003", "Regla 30cm", 0, 1.20},
		{"P004", "LAPICERO AZUL", 4, 0.50},
	}
	out := make([]types.Product, 0, len(rows))
	for _, r := range rows {
		p, err := types.NewProduct(r.id, r.name, r.quantity, r.price)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func openMemory(t *testing.T) *Mirror {
	t.Helper()
	m, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestSyncAndCount(t *testing.T) {
	m := openMemory(t)

	n, err := m.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, m.Sync(sampleProducts(t)))
	n, err = m.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// A second sync replaces rather than appends.
	require.NoError(t, m.Sync(sampleProducts(t)[:1]))
	n, err = m.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSummaryByName(t *testing.T) {
	m := openMemory(t)
	require.NoError(t, m.Sync(sampleProducts(t)))

	got, err := m.SummaryByName()
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "lapicero azul", got[0].Name)
	assert.Equal(t, 2, got[0].Products)
	assert.Equal(t, 104, got[0].Units)
	assert.InDelta(t, 52.0, got[0].Value, 1e-9)

	assert.Equal(t, "cuaderno a4", got[1].Name)
	assert.InDelta(t, 5.5, got[1].Value, 1e-9)

	assert.Equal(t, "regla 30cm", got[2].Name)
	assert.Equal(t, 0, got[2].Units)
}

func TestSummaryByNameEmpty(t *testing.T) {
	m := openMemory(t)
	got, err := m.SummaryByName()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLowStock(t *testing.T) {
	m := openMemory(t)
	require.NoError(t, m.Sync(sampleProducts(t)))

	got, err := m.LowStock(4)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "P003", got[0].ID())
	assert.Equal(t, "P002", got[1].ID())
	assert.Equal(t, "P004", got[2].ID())
	assert.Equal(t, "LAPICERO AZUL", got[2].Name())

	got, err = m.LowStock(-1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenFileReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "inventory.db")

	m, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, m.Sync(sampleProducts(t)))
	require.NoError(t, m.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM products").Scan(&n))
	require.NoError(t, db.Close())
	assert.Equal(t, 4, n)

	m, err = Open(path)
	require.NoError(t, err)
	defer m.Close()
	n, err = m.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n, "reopening starts from a fresh schema")
}

func TestOpenFailsOnDirectoryPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep"), nil, 0o644))

	_, err := Open(dir)
	assert.Error(t, err)
}

func TestClosedMirror(t *testing.T) {
	m, err := Open(MemoryPath)
	require.NoError(t, err)
	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "Close is idempotent")

	assert.ErrorIs(t, m.Sync(nil), ErrMirrorClosed)
	_, err = m.Count()
	assert.ErrorIs(t, err, ErrMirrorClosed)
	_, err = m.SummaryByName()
	assert.ErrorIs(t, err, ErrMirrorClosed)
	_, err = m.LowStock(1)
	assert.ErrorIs(t, err, ErrMirrorClosed)
}
