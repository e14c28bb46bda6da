package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Export writes products to a SQLite database at path. The database is
// built in a temporary file next to path and renamed into place, so an
// existing export survives any failure.
func Export(path string, products []types.Product) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".inventory-*.db")
	if err != nil {
		return fmt.Errorf("creating temp database: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp database: %w", err)
	}

	if err := buildExport(tmpPath, products); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp database: %w", err)
	}
	return nil
}

func buildExport(path string, products []types.Product) error {
	m, err := Open(path)
	if err != nil {
		return err
	}
	if err := m.Sync(products); err != nil {
		m.Close()
		return err
	}
	if err := m.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
