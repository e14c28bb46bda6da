package sqlite

// Schema DDL for the products mirror.
const (
	createProducts = `CREATE TABLE products (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    name_folded TEXT NOT NULL,
    quantity INTEGER NOT NULL CHECK (quantity >= 0),
    price REAL NOT NULL CHECK (price >= 0),
    position INTEGER NOT NULL
);`

	idxProductsNameFolded = `CREATE INDEX idx_products_name_folded ON products(name_folded);`
	idxProductsPrice      = `CREATE INDEX idx_products_price ON products(price);`
	idxProductsQuantity   = `CREATE INDEX idx_products_quantity ON products(quantity);`
)

// schemaDDL lists the statements run when a mirror is opened.
var schemaDDL = []string{
	createProducts,
	idxProductsNameFolded,
	idxProductsPrice,
	idxProductsQuantity,
}
