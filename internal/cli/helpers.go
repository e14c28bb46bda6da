package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/stockroom/internal/store"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// openStore loads the snapshot into a new Store. A missing snapshot yields
// an empty Store.
func (a *app) openStore() (*store.Store, error) {
	s := store.New(store.WithLogger(a.logger))
	if err := s.Load(a.dataFile); err != nil {
		return nil, err
	}
	return s, nil
}

// mutate loads the snapshot, applies fn and saves the result. Nothing is
// written when fn fails.
func (a *app) mutate(fn func(s *store.Store) error) (*store.Store, error) {
	s, err := a.openStore()
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	if err := s.Save(a.dataFile); err != nil {
		return nil, err
	}
	return s, nil
}

func parseQuantity(arg string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%w: quantity %q is not an integer", types.ErrValidation, arg)
	}
	return q, nil
}

func parsePrice(arg string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q is not a number", types.ErrValidation, arg)
	}
	return p, nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// writeProducts prints products as JSON or as an aligned table. An empty
// list prints emptyMsg in text mode.
func (a *app) writeProducts(w io.Writer, products []types.Product, emptyMsg string) error {
	if a.jsonMode {
		return writeJSON(w, products)
	}
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, emptyMsg)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQUANTITY\tPRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\n", p.ID(), p.Name(), p.Quantity(), p.Price())
	}
	return tw.Flush()
}

// writeProduct prints a single product.
func (a *app) writeProduct(w io.Writer, p types.Product) error {
	if a.jsonMode {
		return writeJSON(w, p)
	}
	_, err := fmt.Fprintln(w, p.String())
	return err
}
