package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSamples(t *testing.T) {
	s := New()
	added, err := s.SeedSamples()
	require.NoError(t, err)
	assert.Equal(t, 3, added)
	assert.Equal(t, []string{"P001", "P002", "P003"}, ids(s.List()))
	assert.Equal(t, 180, s.TotalQuantity())

	added, err = s.SeedSamples()
	require.NoError(t, err)
	assert.Equal(t, 0, added, "seeding is idempotent")
	assert.Equal(t, 3, s.Len())
}

func TestSeedSamplesKeepsExistingProducts(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(mustProduct(t, "P002", "Cuaderno rayado", 7, 3)))

	added, err := s.SeedSamples()
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	got, ok := s.Get("P002")
	require.True(t, ok)
	assert.Equal(t, "Cuaderno rayado", got.Name())
	assert.Equal(t, []string{"P002", "P001", "P003"}, ids(s.List()))
}
