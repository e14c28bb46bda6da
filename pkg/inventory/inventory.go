// Package inventory provides the public API for the in-memory product
// inventory. It exposes the factory while keeping the store implementation
// internal.
package inventory

import (
	"log/slog"

	"github.com/mesh-intelligence/stockroom/internal/store"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Option configures an Inventory created by New.
type Option = store.Option

// WithLogger sets the logger for inventory operations. Without it nothing
// is logged.
func WithLogger(logger *slog.Logger) Option {
	return store.WithLogger(logger)
}

// New creates an empty inventory.
//
// Example:
//
//	inv := inventory.New()
//	if err := inv.Load("inventory.json"); err != nil {
//	    return err
//	}
//	p, _ := types.NewProduct("P001", "Lapicero azul", 100, 0.50)
//	if err := inv.Add(p); err != nil {
//	    return err
//	}
//	return inv.Save("inventory.json")
func New(opts ...Option) types.Inventory {
	return store.New(opts...)
}
