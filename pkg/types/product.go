package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Product is one inventory entry. The identifier is fixed at construction;
// name, quantity and price change only through the validating setters.
type Product struct {
	id       string
	name     string
	quantity int
	price    float64
}

// NewProduct builds a validated Product. Surrounding whitespace is trimmed
// from id and name.
func NewProduct(id, name string, quantity int, price float64) (Product, error) {
	p := Product{
		id:       strings.TrimSpace(id),
		name:     strings.TrimSpace(name),
		quantity: quantity,
		price:    price,
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// ID returns the product identifier.
func (p Product) ID() string { return p.id }

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Quantity returns the units in stock.
func (p Product) Quantity() int { return p.quantity }

// Price returns the unit price.
func (p Product) Price() float64 { return p.price }

// Value returns the stock valuation, quantity times price.
func (p Product) Value() float64 { return float64(p.quantity) * p.price }

// SetName replaces the name. Returns ErrInvalidName for a blank or
// malformed name and leaves the product unchanged.
func (p *Product) SetName(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	p.name = name
	return nil
}

// SetQuantity replaces the quantity. Returns ErrInvalidQuantity for negative
// values and leaves the product unchanged.
func (p *Product) SetQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	p.quantity = quantity
	return nil
}

// SetPrice replaces the price. Returns ErrInvalidPrice for negative or
// non-finite values and leaves the product unchanged.
func (p *Product) SetPrice(price float64) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.price = price
	return nil
}

// Validate checks every field. A zero Product fails with ErrInvalidID.
// Text fields must be valid UTF-8 so they survive a JSON round trip.
func (p Product) Validate() error {
	if strings.TrimSpace(p.id) == "" || !utf8.ValidString(p.id) {
		return ErrInvalidID
	}
	if err := validateName(p.name); err != nil {
		return err
	}
	if err := validateQuantity(p.quantity); err != nil {
		return err
	}
	return validatePrice(p.price)
}

func (p Product) String() string {
	return fmt.Sprintf("ID: %s | Name: %s | Quantity: %d | Price: %.2f", p.id, p.name, p.quantity, p.price)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" || !utf8.ValidString(name) {
		return ErrInvalidName
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrInvalidPrice
	}
	return nil
}

// productJSON is the persisted shape of a Product.
type productJSON struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// productDecodeJSON accepts the current keys and the legacy Spanish keys
// of older inventory files. Pointers distinguish a missing field
// from a zero value.
type productDecodeJSON struct {
	ID       json.RawMessage `json:"id"`
	Name     *string         `json:"name"`
	Quantity *json.Number    `json:"quantity"`
	Price    *json.Number    `json:"price"`

	Nombre   *string      `json:"nombre"`
	Cantidad *json.Number `json:"cantidad"`
	Precio   *json.Number `json:"precio"`
}

// MarshalJSON encodes the four product fields.
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:       p.id,
		Name:     p.name,
		Quantity: p.quantity,
		Price:    p.price,
	})
}

// UnmarshalJSON decodes and validates a product. Missing fields, a
// fractional quantity or a value that fails validation are errors; the
// receiver is only written on success.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw productDecodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := decodeID(raw.ID)
	if err != nil {
		return err
	}
	name := firstString(raw.Name, raw.Nombre)
	quantity := firstNumber(raw.Quantity, raw.Cantidad)
	price := firstNumber(raw.Price, raw.Precio)

	switch {
	case name == nil:
		return fmt.Errorf("%w: missing field name", ErrValidation)
	case quantity == nil:
		return fmt.Errorf("%w: missing field quantity", ErrValidation)
	case price == nil:
		return fmt.Errorf("%w: missing field price", ErrValidation)
	}

	q, err := strconv.Atoi(quantity.String())
	if err != nil {
		return fmt.Errorf("%w: quantity %q is not an integer", ErrValidation, quantity.String())
	}
	pr, err := price.Float64()
	if err != nil {
		return fmt.Errorf("%w: price %q is not a number", ErrValidation, price.String())
	}

	decoded, err := NewProduct(id, *name, q, pr)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// decodeID accepts a JSON string or an integer literal. Integer ids come
// from older files and are kept in decimal form.
func decodeID(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", fmt.Errorf("%w: missing field id", ErrValidation)
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	n, err := strconv.ParseInt(string(trimmed), 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: id %s is neither a string nor an integer", ErrValidation, trimmed)
	}
	return strconv.FormatInt(n, 10), nil
}

func firstString(vals ...*string) *string {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstNumber(vals ...*json.Number) *json.Number {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
