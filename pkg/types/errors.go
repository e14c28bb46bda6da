package types

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match these with errors.Is; every error returned by
// the engine wraps exactly one of them.
var (
	ErrValidation   = errors.New("validation failed")
	ErrDuplicateKey = errors.New("duplicate product ID")
	ErrNotFound     = errors.New("product not found")
	ErrCorruptData  = errors.New("corrupt inventory data")
	ErrIO           = errors.New("inventory I/O failed")
)

// Field validation errors. Each wraps ErrValidation.
var (
	ErrInvalidID       = fmt.Errorf("%w: product ID must be non-empty valid UTF-8", ErrValidation)
	ErrInvalidName     = fmt.Errorf("%w: product name must be non-empty valid UTF-8", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	ErrInvalidPrice    = fmt.Errorf("%w: price must be a non-negative number", ErrValidation)
	ErrInvalidRange    = fmt.Errorf("%w: price range minimum exceeds maximum", ErrValidation)
)
