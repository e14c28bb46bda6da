// Package sqlite copies inventory snapshots into a SQLite database. The JSON
// snapshot stays the source of truth; the mirror serves exports and
// SQL-computed reports and is never read back into a store.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// MemoryPath opens a mirror that lives only as long as the Mirror.
const MemoryPath = ":memory:"

// ErrMirrorClosed is returned by operations on a closed Mirror.
var ErrMirrorClosed = errors.New("mirror is closed")

// Mirror is a SQLite copy of an inventory snapshot.
type Mirror struct {
	mu sync.Mutex
	db *sql.DB
}

// NameSummary aggregates the products that share a case-folded name.
type NameSummary struct {
	Name     string  `json:"name"`
	Products int     `json:"products"`
	Units    int     `json:"units"`
	Value    float64 `json:"value"`
}

// Open creates a fresh mirror at path. An existing file at path is replaced
// so the schema always matches this version. Use MemoryPath for a
// throwaway mirror.
func Open(path string) (*Mirror, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory: %w", err)
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("removing old mirror: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// Every pooled connection to :memory: would get its own database.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	return &Mirror{db: db}, nil
}

// Close releases the database. Close is idempotent.
func (m *Mirror) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

// Sync replaces the mirrored rows with products, keeping their order in
// the position column. Sync is transactional: on error the previous rows
// remain.
func (m *Mirror) Sync(products []types.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return ErrMirrorClosed
	}

	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning sync transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM products"); err != nil {
		return fmt.Errorf("clearing products: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO products (id, name, name_folded, quantity, price, position) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	lower := cases.Lower(language.Und)
	for i, p := range products {
		if _, err := stmt.Exec(p.ID(), p.Name(), lower.String(p.Name()), p.Quantity(), p.Price(), i); err != nil {
			return fmt.Errorf("inserting product %s: %w", p.ID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sync: %w", err)
	}
	return nil
}

// Count returns the number of mirrored products.
func (m *Mirror) Count() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return 0, ErrMirrorClosed
	}
	var n int
	if err := m.db.QueryRow("SELECT COUNT(*) FROM products").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return n, nil
}

// SummaryByName groups products by case-folded name, highest stock value
// first.
func (m *Mirror) SummaryByName() ([]NameSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil, ErrMirrorClosed
	}

	rows, err := m.db.Query(`SELECT name_folded, COUNT(*), SUM(quantity), SUM(quantity * price)
FROM products
GROUP BY name_folded
ORDER BY SUM(quantity * price) DESC, name_folded`)
	if err != nil {
		return nil, fmt.Errorf("querying name summary: %w", err)
	}
	defer rows.Close()

	summaries := []NameSummary{}
	for rows.Next() {
		var s NameSummary
		if err := rows.Scan(&s.Name, &s.Products, &s.Units, &s.Value); err != nil {
			return nil, fmt.Errorf("scanning name summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating name summary: %w", err)
	}
	return summaries, nil
}

// LowStock returns products whose quantity is at most threshold, lowest
// quantity first and then in snapshot order.
func (m *Mirror) LowStock(threshold int) ([]types.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil, ErrMirrorClosed
	}

	rows, err := m.db.Query(
		"SELECT id, name, quantity, price FROM products WHERE quantity <= ? ORDER BY quantity, position",
		threshold,
	)
	if err != nil {
		return nil, fmt.Errorf("querying low stock: %w", err)
	}
	defer rows.Close()

	products := []types.Product{}
	for rows.Next() {
		p, err := hydrateProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating low stock: %w", err)
	}
	return products, nil
}

// hydrateProduct scans a row into a validated Product.
func hydrateProduct(rows *sql.Rows) (types.Product, error) {
	var (
		id, name string
		quantity int
		price    float64
	)
	if err := rows.Scan(&id, &name, &quantity, &price); err != nil {
		return types.Product{}, fmt.Errorf("scanning product: %w", err)
	}
	p, err := types.NewProduct(id, name, quantity, price)
	if err != nil {
		return types.Product{}, fmt.Errorf("hydrating product %s: %w", id, err)
	}
	return p, nil
}
