package vlist

import "errors"

var (
	// ErrInvalidItemExtent is returned when the item extent is not positive.
	ErrInvalidItemExtent = errors.New("item extent must be positive")
	// ErrNegativeMargin is returned when a margin below zero is requested.
	ErrNegativeMargin = errors.New("margin must be zero or positive")
	// ErrNilSurface is returned by New without a surface.
	ErrNilSurface = errors.New("surface is required")
	// ErrNilFactory is returned by New without a factory.
	ErrNilFactory = errors.New("factory is required")
	// ErrDisposed is returned by any call on a list after Teardown.
	ErrDisposed = errors.New("list has been torn down")
)
