package exchange

import "errors"

var (
	// ErrInvalidOrderParams rejects non-positive price or quantity.
	// Affordability and cargo checks belong to the caller; the engine
	// only enforces the order contract itself.
	ErrInvalidOrderParams = errors.New("invalid order parameters")

	// ErrMalformedSnapshot means a restore blob failed validation. The
	// engine resets to an empty valid state rather than applying part
	// of the snapshot.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)
