package rf2

import (
	"errors"
	"fmt"
	"strings"
)

// Characteristic identifies which relationship view a row belongs to.
// The stated and inferred views share a concept identifier space but form
// two independent graphs.
type Characteristic string

// Relationship views recognized by this package.
const (
	// Stated is the authored relationship view.
	Stated Characteristic = "stated"

	// Inferred is the classifier-computed relationship view.
	Inferred Characteristic = "inferred"
)

// RF2 characteristicTypeId values for the two views.
const (
	statedCharacteristicID   = "900000000000010007"
	inferredCharacteristicID = "900000000000011006"
)

// ErrUnknownCharacteristic indicates that a characteristic value is neither
// a recognized RF2 characteristicTypeId nor a symbolic view name.
//
// Rows carrying other characteristic types (for example additional
// relationships) are outside the stated/inferred model; the parser skips
// them rather than surfacing this error.
var ErrUnknownCharacteristic = errors.New("unknown characteristic")

// ParseCharacteristic maps a characteristic value to its view.
// It accepts the RF2 characteristicTypeId values (900000000000010007 for
// stated, 900000000000011006 for inferred) as well as the symbolic names
// "stated" and "inferred", case-insensitively.
//
// Returns ErrUnknownCharacteristic for anything else.
func ParseCharacteristic(s string) (Characteristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case statedCharacteristicID, string(Stated):
		return Stated, nil
	case inferredCharacteristicID, string(Inferred):
		return Inferred, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCharacteristic, s)
	}
}

// Valid reports whether c is one of the recognized views.
func (c Characteristic) Valid() bool {
	return c == Stated || c == Inferred
}

// String returns the symbolic view name.
func (c Characteristic) String() string {
	return string(c)
}
