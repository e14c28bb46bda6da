// Package store implements the in-memory inventory with JSON snapshot
// persistence.
package store

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Compile-time interface check.
var _ types.Inventory = (*Store)(nil)

// Store is a products map keyed by ID plus the insertion order of those IDs.
// The map key always equals the stored product's ID, and order holds each
// key exactly once.
type Store struct {
	mu       sync.RWMutex
	products map[string]*types.Product
	order    []string
	logger   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for operation events. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		products: make(map[string]*types.Product),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores a copy of p. Returns ErrDuplicateKey if the ID is taken.
func (s *Store) Add(p types.Product) error {
	if err := p.Validate(); err != nil {
		s.logger.Warn("add rejected", "id", p.ID(), "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID()]; ok {
		s.logger.Warn("add rejected", "id", p.ID(), "error", types.ErrDuplicateKey)
		return types.ErrDuplicateKey
	}
	stored := p
	s.products[p.ID()] = &stored
	s.order = append(s.order, p.ID())
	s.logger.Debug("product added", "id", p.ID(), "name", p.Name())
	return nil
}

// Remove deletes the product with the given ID.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return types.ErrNotFound
	}
	delete(s.products, id)
	s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == id })
	s.logger.Debug("product removed", "id", id)
	return nil
}

// UpdateQuantity sets the stock count of the product with the given ID.
func (s *Store) UpdateQuantity(id string, quantity int) error {
	return s.Update(id, types.ProductUpdate{Quantity: &quantity})
}

// UpdatePrice sets the unit price of the product with the given ID.
func (s *Store) UpdatePrice(id string, price float64) error {
	return s.Update(id, types.ProductUpdate{Price: &price})
}

// UpdateName renames the product with the given ID.
func (s *Store) UpdateName(id, name string) error {
	return s.Update(id, types.ProductUpdate{Name: &name})
}

// Update applies the non-nil fields of u. The changes are made on a copy
// and swapped in only when every field passes validation.
func (s *Store) Update(id string, u types.ProductUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.products[id]
	if !ok {
		return types.ErrNotFound
	}

	next := *current
	if u.Name != nil {
		if err := next.SetName(*u.Name); err != nil {
			s.logger.Warn("update rejected", "id", id, "error", err)
			return err
		}
	}
	if u.Quantity != nil {
		if err := next.SetQuantity(*u.Quantity); err != nil {
			s.logger.Warn("update rejected", "id", id, "error", err)
			return err
		}
	}
	if u.Price != nil {
		if err := next.SetPrice(*u.Price); err != nil {
			s.logger.Warn("update rejected", "id", id, "error", err)
			return err
		}
	}

	*current = next
	s.logger.Debug("product updated", "id", id,
		"name", next.Name(), "quantity", next.Quantity(), "price", next.Price())
	return nil
}

// Get returns a copy of the product with the given ID.
func (s *Store) Get(id string) (types.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return types.Product{}, false
	}
	return *p, true
}

// SearchByName returns products whose name contains term under Unicode
// case folding. The term is trimmed first; an empty term matches everything.
func (s *Store) SearchByName(term string) []types.Product {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))

	return s.filter(func(p *types.Product) bool {
		return strings.Contains(fold.String(p.Name()), needle)
	})
}

// ByPriceRange returns products priced within [min, max].
func (s *Store) ByPriceRange(minPrice, maxPrice float64) ([]types.Product, error) {
	// A NaN bound fails this comparison too.
	if !(minPrice <= maxPrice) {
		return nil, types.ErrInvalidRange
	}
	return s.filter(func(p *types.Product) bool {
		return minPrice <= p.Price() && p.Price() <= maxPrice
	}), nil
}

// List returns every product in insertion order.
func (s *Store) List() []types.Product {
	return s.filter(func(*types.Product) bool { return true })
}

// Len returns the number of products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// TotalQuantity returns the sum of all quantities.
func (s *Store) TotalQuantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// TotalValue returns the sum of quantity times price over all products.
func (s *Store) TotalValue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalValueLocked()
}

// DistinctNames returns the lower-cased product names, deduplicated and
// sorted.
func (s *Store) DistinctNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.distinctNamesLocked()
}

// Stats returns the aggregate figures under one read lock.
func (s *Store) Stats() types.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	units := 0
	for _, p := range s.products {
		units += p.Quantity()
	}
	return types.Stats{
		Products:      len(s.products),
		Units:         units,
		Value:         s.totalValueLocked(),
		DistinctNames: len(s.distinctNamesLocked()),
	}
}

// filter copies out the products matching keep, in insertion order. The
// result is never nil.
func (s *Store) filter(keep func(*types.Product) bool) []types.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.Product, 0, len(s.order))
	for _, id := range s.order {
		p := s.products[id]
		if keep(p) {
			result = append(result, *p)
		}
	}
	return result
}

// totalValueLocked sums in insertion order so the result is deterministic.
// The caller must hold s.mu.
func (s *Store) totalValueLocked() float64 {
	total := 0.0
	for _, id := range s.order {
		total += s.products[id].Value()
	}
	return total
}

// distinctNamesLocked returns the sorted set of lower-cased names.
// The caller must hold s.mu.
func (s *Store) distinctNamesLocked() []string {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(s.products))
	names := make([]string, 0, len(s.products))
	for _, p := range s.products {
		n := lower.String(p.Name())
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
