// Package types defines the Product record, the Inventory interface, the
// CLI configuration and the standard error kinds for the stockroom
// inventory engine.
package types
