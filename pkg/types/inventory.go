package types

import "io"

// Inventory is a keyed collection of products with exactly one product per
// ID. Queries return copies; nothing a caller holds aliases stored state.
// Every failing mutation leaves the inventory unchanged.
type Inventory interface {
	// Add stores p. Returns ErrDuplicateKey if p.ID() is already present,
	// or a validation error if p was not built with NewProduct.
	Add(p Product) error

	// Remove deletes the product with the given ID.
	// Returns ErrNotFound if no product has that ID.
	Remove(id string) error

	// UpdateQuantity sets the stock count. Returns ErrNotFound or
	// ErrInvalidQuantity.
	UpdateQuantity(id string, quantity int) error

	// UpdatePrice sets the unit price. Returns ErrNotFound or ErrInvalidPrice.
	UpdatePrice(id string, price float64) error

	// UpdateName renames a product. Returns ErrNotFound or ErrInvalidName.
	UpdateName(id, name string) error

	// Update applies the non-nil fields of u. All fields are validated
	// before any is written.
	Update(id string, u ProductUpdate) error

	// Get returns the product and true, or the zero Product and false.
	Get(id string) (Product, bool)

	// SearchByName returns products whose name contains term, ignoring
	// case, in insertion order. No match is an empty result.
	SearchByName(term string) []Product

	// ByPriceRange returns products with minPrice <= price <= maxPrice in
	// insertion order. Returns ErrInvalidRange when minPrice > maxPrice.
	ByPriceRange(minPrice, maxPrice float64) ([]Product, error)

	// List returns every product in insertion order.
	List() []Product

	// Len returns the number of products.
	Len() int

	// TotalQuantity returns the sum of all quantities.
	TotalQuantity() int

	// TotalValue returns the sum of quantity times price.
	TotalValue() float64

	// DistinctNames returns the lower-cased names, deduplicated and sorted.
	DistinctNames() []string

	// Stats returns the aggregate figures from a single consistent read.
	Stats() Stats

	// Save writes the snapshot to path atomically. Failures wrap ErrIO and
	// leave any existing file intact.
	Save(path string) error

	// Load replaces the contents with the snapshot at path. A missing file
	// empties the inventory. Undecodable data wraps ErrCorruptData and
	// leaves the contents unchanged.
	Load(path string) error

	// Encode writes the snapshot JSON to w.
	Encode(w io.Writer) error

	// Decode replaces the contents with the snapshot read from r.
	Decode(r io.Reader) error
}

// ProductUpdate names the fields to change in Inventory.Update. Nil fields
// are left as they are.
type ProductUpdate struct {
	Name     *string
	Quantity *int
	Price    *float64
}

// IsEmpty reports whether the update changes nothing.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Quantity == nil && u.Price == nil
}

// Stats summarizes an inventory.
type Stats struct {
	Products      int     `json:"products"`
	Units         int     `json:"units"`
	Value         float64 `json:"value"`
	DistinctNames int     `json:"distinct_names"`
}
