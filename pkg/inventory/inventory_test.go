package inventory

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func TestNewReturnsEmptyInventory(t *testing.T) {
	inv := New()
	assert.Equal(t, 0, inv.Len())
	assert.Empty(t, inv.List())
}

func TestPublicRoundTrip(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))
	path := filepath.Join(t.TempDir(), "inventory.json")

	inv := New(WithLogger(logger))
	p, err := types.NewProduct("P001", "Lapicero azul", 100, 0.50)
	require.NoError(t, err)
	require.NoError(t, inv.Add(p))
	require.NoError(t, inv.Save(path))

	reloaded := New()
	require.NoError(t, reloaded.Load(path))
	got, ok := reloaded.Get("P001")
	require.True(t, ok)
	assert.Equal(t, p, got)
	assert.Contains(t, logs.String(), "inventory saved")
}
