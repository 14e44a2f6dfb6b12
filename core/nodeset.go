// File: nodeset.go
// Role: NodeSet, the shared set-of-node-IDs value used as conditioning
//       set and result type across the query packages.

package core

import "sort"

// NodeSet is a set of node IDs. The zero value is not usable; build
// sets with NewNodeSet or make.
type NodeSet map[string]struct{}

// NewNodeSet builds a NodeSet from the given IDs.
func NewNodeSet(ids ...string) NodeSet {
	s := make(NodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Has reports whether id is a member of s.
func (s NodeSet) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// Add inserts id into s and returns s for chaining.
func (s NodeSet) Add(id string) NodeSet {
	s[id] = struct{}{}

	return s
}

// Clone returns an independent copy of s.
func (s NodeSet) Clone() NodeSet {
	c := make(NodeSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}

	return c
}

// Union returns a new set containing every member of s and t.
func (s NodeSet) Union(t NodeSet) NodeSet {
	u := s.Clone()
	for id := range t {
		u[id] = struct{}{}
	}

	return u
}

// Intersects reports whether s and t share at least one member.
func (s NodeSet) Intersects(t NodeSet) bool {
	small, large := s, t
	if len(large) < len(small) {
		small, large = large, small
	}
	for id := range small {
		if _, ok := large[id]; ok {
			return true
		}
	}

	return false
}

// Sorted returns the members of s sorted lex ascending, for
// deterministic iteration and stable test output.
func (s NodeSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
