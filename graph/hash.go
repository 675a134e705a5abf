package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/snograph/snograph/rf2"
)

// DefaultHashNamespace is the namespace UUID used to seed group content
// hashing when no other namespace is configured. Changing it changes every
// computed group hash, so it is fixed for the life of the hash contract.
const DefaultHashNamespace = "f9643ff3-26b0-4ddc-a4d5-3c1b7bd6feae"

// TripleHasher reduces a canonical string of triple keys to a stable digest.
// Equal inputs must produce equal digests across processes and runs; any
// collision-resistant scheme with that property is substitutable.
type TripleHasher interface {
	// Hash returns the digest of s. Implementations that can fail to
	// encode their input surface that here; the error propagates to the
	// group-hash callers unchanged.
	Hash(s string) (string, error)
}

// Type5Hasher implements TripleHasher with RFC 4122 version-5 UUIDs: the
// digest is the name-based UUID of the input within a fixed namespace.
type Type5Hasher struct {
	namespace uuid.UUID
}

// NewType5Hasher creates a Type5Hasher seeded with the given namespace
// UUID string. An unparseable namespace is a construction-time error, so a
// broken hash setup aborts before any registration happens.
func NewType5Hasher(namespace string) (*Type5Hasher, error) {
	ns, err := uuid.Parse(namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hash namespace %q: %w", namespace, err)
	}
	return &Type5Hasher{namespace: ns}, nil
}

// Hash returns the version-5 UUID of s within the hasher's namespace.
func (h *Type5Hasher) Hash(s string) (string, error) {
	return uuid.NewSHA1(h.namespace, []byte(s)).String(), nil
}

// GroupHash computes the content hash of one of c's relationship groups.
//
// The hash input is the concatenation of the content keys of every
// attribute in the group, sorted lexicographically. Sorting makes the
// digest depend only on the group's content, not on the order rows were
// registered in; excluding the shared source concept from the keys makes
// content comparable across concepts and views. Two groups holding the same
// (type, destination) pairs always hash identically. An empty group hashes
// the empty input, which is itself a stable digest.
func (r *Registry) GroupHash(c *Concept, group int) (string, error) {
	keys := []string{}
	for _, rel := range c.attributes {
		if rel.MatchesGroup(group) {
			keys = append(keys, rel.ContentKey())
		}
	}
	sort.Strings(keys)

	hash, err := r.hasher.Hash(strings.Join(keys, ""))
	if err != nil {
		return "", fmt.Errorf("failed to hash group %d of concept %d: %w", group, c.id, err)
	}
	return hash, nil
}

// FindEquivalentGroup scans c's groups 1..MaxGroupID for the first group
// whose content hash equals targetHash, and returns the relationships in
// that group matching rel's type and destination. Group 0 is excluded:
// ungrouped relationships are interpreted independently, so "the same
// group" is meaningless there.
//
// Returns an empty result when no group hash matches. Hash failures
// propagate.
func (r *Registry) FindEquivalentGroup(c *Concept, targetHash string, rel rf2.Relationship) ([]rf2.Relationship, error) {
	for group := 1; group <= c.maxGroupID; group++ {
		hash, err := r.GroupHash(c, group)
		if err != nil {
			return nil, err
		}
		if hash == targetHash {
			return c.MatchingRelationshipsWithDestination(rel.TypeID, rel.DestinationID, group), nil
		}
	}
	return nil, nil
}
