package domain

import "errors"

// All core errors are recoverable at the call site: the presentation
// layer reports the condition and re-prompts. No operation that returns
// one of these has mutated any state.
var (
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidProduct    = errors.New("invalid product")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNotFound          = errors.New("product not found")
)
