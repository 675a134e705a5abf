package graph

import "errors"

// Sentinel errors for graph operations.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNilHasher indicates that a Registry was constructed without a
	// triple hasher. The hasher is required at construction time so that a
	// broken hash setup fails before any row is registered, not in the
	// middle of a query phase.
	ErrNilHasher = errors.New("nil triple hasher")

	// ErrCharacteristicMismatch indicates that a relationship was offered
	// to a registry owning a different view. Each registry accepts rows for
	// exactly one characteristic; routing across views is the job of Views.
	ErrCharacteristicMismatch = errors.New("relationship characteristic does not match registry")

	// ErrInvalidCharacteristic indicates a characteristic outside the
	// stated/inferred model.
	ErrInvalidCharacteristic = errors.New("invalid characteristic")
)
