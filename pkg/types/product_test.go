package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		pName    string
		quantity int
		price    float64
		wantErr  error
	}{
		{name: "valid product", id: "P1", pName: "Pen", quantity: 10, price: 0.5},
		{name: "zero quantity and price allowed", id: "P2", pName: "Sample", quantity: 0, price: 0},
		{name: "negative quantity rejected", id: "P3", pName: "Pen", quantity: -1, price: 1, wantErr: ErrInvalidQuantity},
		{name: "negative price rejected", id: "P4", pName: "Pen", quantity: 1, price: -0.01, wantErr: ErrInvalidPrice},
		{name: "NaN price rejected", id: "P5", pName: "Pen", quantity: 1, price: math.NaN(), wantErr: ErrInvalidPrice},
		{name: "infinite price rejected", id: "P6", pName: "Pen", quantity: 1, price: math.Inf(1), wantErr: ErrInvalidPrice},
		{name: "empty id rejected", id: "  ", pName: "Pen", quantity: 1, price: 1, wantErr: ErrInvalidID},
		{name: "empty name rejected", id: "P7", pName: "", quantity: 1, price: 1, wantErr: ErrInvalidName},
		{name: "malformed UTF-8 id rejected", id: "P\xff", pName: "Pen", quantity: 1, price: 1, wantErr: ErrInvalidID},
		{name: "malformed UTF-8 name rejected", id: "P8", pName: "Pen\xfe", quantity: 1, price: 1, wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProduct(tt.id, tt.pName, tt.quantity, tt.price)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Equal(t, Product{}, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, p.ID())
			assert.Equal(t, tt.pName, p.Name())
			assert.Equal(t, tt.quantity, p.Quantity())
			assert.Equal(t, tt.price, p.Price())
		})
	}
}

func TestNewProductTrimsWhitespace(t *testing.T) {
	p, err := NewProduct("  P1 ", " Lapicero azul\t", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "P1", p.ID())
	assert.Equal(t, "Lapicero azul", p.Name())
}

func TestProductSetters(t *testing.T) {
	t.Run("SetQuantity rejects negative and keeps value", func(t *testing.T) {
		p, err := NewProduct("P1", "Pen", 10, 0.5)
		require.NoError(t, err)

		assert.ErrorIs(t, p.SetQuantity(-1), ErrInvalidQuantity)
		assert.Equal(t, 10, p.Quantity())

		require.NoError(t, p.SetQuantity(0))
		assert.Equal(t, 0, p.Quantity())
	})

	t.Run("SetPrice rejects negative and keeps value", func(t *testing.T) {
		p, err := NewProduct("P1", "Pen", 10, 0.5)
		require.NoError(t, err)

		assert.ErrorIs(t, p.SetPrice(-2), ErrInvalidPrice)
		assert.Equal(t, 0.5, p.Price())

		require.NoError(t, p.SetPrice(0.75))
		assert.Equal(t, 0.75, p.Price())
	})

	t.Run("SetName rejects blank and keeps value", func(t *testing.T) {
		p, err := NewProduct("P1", "Pen", 10, 0.5)
		require.NoError(t, err)

		assert.ErrorIs(t, p.SetName("   "), ErrInvalidName)
		assert.Equal(t, "Pen", p.Name())

		require.NoError(t, p.SetName(" Pencil "))
		assert.Equal(t, "Pencil", p.Name())
	})

	t.Run("SetName rejects malformed UTF-8 and keeps value", func(t *testing.T) {
		p, err := NewProduct("P1", "Pen", 10, 0.5)
		require.NoError(t, err)

		assert.ErrorIs(t, p.SetName("Pen\xfe"), ErrInvalidName)
		assert.Equal(t, "Pen", p.Name())
	})
}

func TestProductValidateZeroValue(t *testing.T) {
	assert.ErrorIs(t, Product{}.Validate(), ErrInvalidID)
}

func TestProductValue(t *testing.T) {
	p, err := NewProduct("P1", "Cuaderno A4", 4, 2.75)
	require.NoError(t, err)
	assert.InDelta(t, 11.0, p.Value(), 1e-9)
}

func TestProductString(t *testing.T) {
	p, err := NewProduct("P001", "Lapicero azul", 100, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "ID: P001 | Name: Lapicero azul | Quantity: 100 | Price: 0.50", p.String())
}

func TestProductJSONRoundTrip(t *testing.T) {
	p, err := NewProduct("P002", "Cuaderno A4", 50, 0.1+0.2)
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"P002","name":"Cuaderno A4","quantity":50,"price":0.30000000000000004}`, string(data))

	var got Product
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, p, got)
}

func FuzzProductJSONRoundTrip(f *testing.F) {
	f.Add("P001", "Lapicero azul", 100, 0.5)
	f.Add("42", "Ñandú", 0, 0.0)
	f.Add("P\xff", "Pen", 1, 1.0)
	f.Add("id with \"quotes\"", "tab\tand\u2028", 7, 0.1+0.2)
	f.Add("x", "y", 1, 1e300)

	f.Fuzz(func(t *testing.T, id, name string, quantity int, price float64) {
		p, err := NewProduct(id, name, quantity, price)
		if err != nil {
			return
		}

		data, err := json.Marshal(p)
		require.NoError(t, err)

		var got Product
		require.NoError(t, json.Unmarshal(data, &got), "decoding %s", data)
		assert.Equal(t, p, got)
	})
}

func TestProductUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Product
		wantErr bool
	}{
		{
			name:  "current keys",
			input: `{"id":"P1","name":"Pen","quantity":10,"price":0.5}`,
			want:  Product{id: "P1", name: "Pen", quantity: 10, price: 0.5},
		},
		{
			name:  "legacy spanish keys",
			input: `{"id":"P1","nombre":"Regla 30cm","cantidad":30,"precio":1.2}`,
			want:  Product{id: "P1", name: "Regla 30cm", quantity: 30, price: 1.2},
		},
		{
			name:  "integer id kept as decimal string",
			input: `{"id":42,"name":"Pen","quantity":1,"price":1}`,
			want:  Product{id: "42", name: "Pen", quantity: 1, price: 1},
		},
		{
			name:  "unknown fields ignored",
			input: `{"id":"P1","name":"Pen","quantity":1,"price":1,"color":"rojo"}`,
			want:  Product{id: "P1", name: "Pen", quantity: 1, price: 1},
		},
		{name: "missing id", input: `{"name":"Pen","quantity":1,"price":1}`, wantErr: true},
		{name: "null id", input: `{"id":null,"name":"Pen","quantity":1,"price":1}`, wantErr: true},
		{name: "fractional id", input: `{"id":1.5,"name":"Pen","quantity":1,"price":1}`, wantErr: true},
		{name: "missing name", input: `{"id":"P1","quantity":1,"price":1}`, wantErr: true},
		{name: "missing quantity", input: `{"id":"P1","name":"Pen","price":1}`, wantErr: true},
		{name: "missing price", input: `{"id":"P1","name":"Pen","quantity":1}`, wantErr: true},
		{name: "fractional quantity", input: `{"id":"P1","name":"Pen","quantity":1.5,"price":1}`, wantErr: true},
		{name: "negative quantity", input: `{"id":"P1","name":"Pen","quantity":-3,"price":1}`, wantErr: true},
		{name: "negative price", input: `{"id":"P1","name":"Pen","quantity":3,"price":-1}`, wantErr: true},
		{name: "string price", input: `{"id":"P1","name":"Pen","quantity":3,"price":"cheap"}`, wantErr: true},
		{name: "not an object", input: `["P1"]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Product
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, Product{}, got, "receiver must not be written on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductUpdateIsEmpty(t *testing.T) {
	assert.True(t, ProductUpdate{}.IsEmpty())
	q := 3
	assert.False(t, ProductUpdate{Quantity: &q}.IsEmpty())
}
