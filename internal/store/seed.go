package store

import (
	"errors"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// sampleProduct describes a product seeded by SeedSamples.
type sampleProduct struct {
	id       string
	name     string
	quantity int
	price    float64
}

var sampleProducts = []sampleProduct{
	{"P001", "Lapicero azul", 100, 0.50},
	{"P002", "Cuaderno A4", 50, 2.75},
	{"P003", "Regla 30cm", 30, 1.20},
}

// SeedSamples adds the sample products whose IDs are not yet taken and
// returns how many were added. Seeding twice adds nothing the second time.
func (s *Store) SeedSamples() (int, error) {
	added := 0
	for _, sp := range sampleProducts {
		p, err := types.NewProduct(sp.id, sp.name, sp.quantity, sp.price)
		if err != nil {
			return added, err
		}
		if _, ok := s.Get(p.ID()); ok {
			continue
		}
		if err := s.Add(p); err != nil {
			if errors.Is(err, types.ErrDuplicateKey) {
				continue
			}
			return added, err
		}
		added++
	}
	s.logger.Info("sample products seeded", "added", added)
	return added, nil
}
