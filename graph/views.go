package graph

import (
	"fmt"

	"github.com/snograph/snograph/rf2"
)

// Views bundles the stated and inferred registries for one processing
// session. The two registries are fully independent: the same concept id
// resolves to two unrelated Concept values, one per view.
type Views struct {
	Stated   *Registry
	Inferred *Registry
}

// NewViews creates the registry pair, sharing one hasher across both views
// so stated and inferred group hashes are comparable.
func NewViews(hasher TripleHasher) (*Views, error) {
	stated, err := New(rf2.Stated, hasher)
	if err != nil {
		return nil, err
	}
	inferred, err := New(rf2.Inferred, hasher)
	if err != nil {
		return nil, err
	}
	return &Views{Stated: stated, Inferred: inferred}, nil
}

// Registry returns the registry owning the given view.
func (v *Views) Registry(characteristic rf2.Characteristic) (*Registry, error) {
	switch characteristic {
	case rf2.Stated:
		return v.Stated, nil
	case rf2.Inferred:
		return v.Inferred, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCharacteristic, characteristic)
	}
}

// Register routes rel to the registry owning its characteristic.
func (v *Views) Register(rel rf2.Relationship) error {
	r, err := v.Registry(rel.Characteristic)
	if err != nil {
		return err
	}
	return r.Register(rel)
}

// GetConcept resolves id within the given view.
func (v *Views) GetConcept(id int64, characteristic rf2.Characteristic) (*Concept, bool) {
	r, err := v.Registry(characteristic)
	if err != nil {
		return nil, false
	}
	return r.GetConcept(id)
}
