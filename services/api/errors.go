package main

import "errors"

// Erros de negócio expostos pelos casos de uso
var (
	ErrProductUnavailable = errors.New("product not found or inactive")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyPaid   = errors.New("order is already paid")
	ErrOrderCancelled     = errors.New("order is cancelled")
	ErrInvalidAmount      = errors.New("payment amount must be greater than zero")
)
