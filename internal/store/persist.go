package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// snapshotIndent matches the layout of legacy inventory.json files.
const snapshotIndent = "    "

// Save writes every product as a JSON array to path using the temp-file,
// fsync, rename pattern. The store is locked for the whole save, so saves
// are serialized with each other and with every mutator.
func (s *Store) Save(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.encodeLocked()
	if err != nil {
		return fmt.Errorf("%w: encoding snapshot: %w", types.ErrIO, err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		s.logger.Warn("save failed", "path", path, "error", err)
		return fmt.Errorf("%w: %w", types.ErrIO, err)
	}
	s.logger.Info("inventory saved", "path", path, "products", len(s.order))
	return nil
}

// Encode writes the snapshot JSON to w.
func (s *Store) Encode(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.encodeLocked()
	if err != nil {
		return fmt.Errorf("%w: encoding snapshot: %w", types.ErrIO, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: writing snapshot: %w", types.ErrIO, err)
	}
	return nil
}

// Load replaces the contents with the snapshot at path. A missing file
// leaves the Store empty. On any other failure the contents are unchanged.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.replace(make(map[string]*types.Product), nil)
		s.logger.Info("no snapshot found, starting empty", "path", path)
		return nil
	}
	if err != nil {
		s.logger.Warn("load failed", "path", path, "error", err)
		return fmt.Errorf("%w: reading %s: %w", types.ErrCorruptData, path, err)
	}

	products, order, err := decodeSnapshot(data)
	if err != nil {
		s.logger.Warn("load failed", "path", path, "error", err)
		return fmt.Errorf("%w: %s: %w", types.ErrCorruptData, path, err)
	}
	s.replace(products, order)
	s.logger.Info("inventory loaded", "path", path, "products", len(order))
	return nil
}

// Decode replaces the contents with the snapshot read from r.
func (s *Store) Decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		s.logger.Warn("decode failed", "error", err)
		return fmt.Errorf("%w: reading snapshot: %w", types.ErrCorruptData, err)
	}
	products, order, err := decodeSnapshot(data)
	if err != nil {
		s.logger.Warn("decode failed", "error", err)
		return fmt.Errorf("%w: %w", types.ErrCorruptData, err)
	}
	s.replace(products, order)
	s.logger.Info("inventory decoded", "products", len(order))
	return nil
}

func (s *Store) replace(products map[string]*types.Product, order []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.order = order
}

// encodeLocked renders the snapshot. The caller must hold s.mu.
func (s *Store) encodeLocked() ([]byte, error) {
	list := make([]types.Product, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, *s.products[id])
	}
	data, err := json.MarshalIndent(list, "", snapshotIndent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// decodeSnapshot parses a JSON array of products. Every element must decode
// and validate, and IDs must be unique.
func decodeSnapshot(data []byte) (map[string]*types.Product, []string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil, errors.New("snapshot is not a JSON array")
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, nil, err
	}

	products := make(map[string]*types.Product, len(raw))
	order := make([]string, 0, len(raw))
	for i, rec := range raw {
		var p types.Product
		if err := json.Unmarshal(rec, &p); err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := products[p.ID()]; dup {
			return nil, nil, fmt.Errorf("record %d: %w: %q", i, types.ErrDuplicateKey, p.ID())
		}
		products[p.ID()] = &p
		order = append(order, p.ID())
	}
	return products, order, nil
}

// writeFileAtomic writes data next to path and renames it into place, so
// path holds either the old or the new content. The parent directory is
// created when missing.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".inventory-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
