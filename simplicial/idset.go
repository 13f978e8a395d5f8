// File: idset.go
// Role: Ordered identifier set shared by the three simplex kinds of a Subset.
// Determinism:
//   - Iteration is ascending by identifier (red-black tree order).
// Notes:
//   - The zero value is an empty set; storage is allocated on first insert.

package simplicial

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// compareIDs orders any int-backed identifier.
func compareIDs[T ~int](a, b interface{}) int {
	return utils.IntComparator(int(a.(T)), int(b.(T)))
}

// idSet is a sorted set of identifiers of one kind.
type idSet[T ~int] struct {
	tree *treeset.Set
}

func newIDSet[T ~int](ids ...T) idSet[T] {
	var s idSet[T]
	s.add(ids...)
	return s
}

func (s *idSet[T]) ensure() {
	if s.tree == nil {
		s.tree = treeset.NewWith(compareIDs[T])
	}
}

func (s *idSet[T]) add(ids ...T) {
	if len(ids) == 0 {
		return
	}
	s.ensure()
	for _, id := range ids {
		s.tree.Add(id)
	}
}

func (s *idSet[T]) remove(ids ...T) {
	if s.tree == nil {
		return
	}
	for _, id := range ids {
		s.tree.Remove(id)
	}
}

func (s idSet[T]) has(id T) bool {
	return s.tree != nil && s.tree.Contains(id)
}

func (s idSet[T]) len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Size()
}

// values returns the members in ascending order.
func (s idSet[T]) values() []T {
	if s.tree == nil {
		return nil
	}
	out := make([]T, 0, s.tree.Size())
	it := s.tree.Iterator()
	for it.Next() {
		out = append(out, it.Value().(T))
	}
	return out
}

func (s idSet[T]) clone() idSet[T] {
	if s.tree == nil {
		return idSet[T]{}
	}
	return idSet[T]{tree: treeset.NewWith(compareIDs[T], s.tree.Values()...)}
}

func (s idSet[T]) equals(o idSet[T]) bool {
	if s.len() != o.len() {
		return false
	}
	if s.len() == 0 {
		return true
	}
	a, b := s.tree.Iterator(), o.tree.Iterator()
	for a.Next() && b.Next() {
		if a.Value().(T) != b.Value().(T) {
			return false
		}
	}
	return true
}

// containsAll reports whether every member of o is in s.
func (s idSet[T]) containsAll(o idSet[T]) bool {
	if o.len() == 0 {
		return true
	}
	if s.len() < o.len() {
		return false
	}
	it := o.tree.Iterator()
	for it.Next() {
		if !s.tree.Contains(it.Value()) {
			return false
		}
	}
	return true
}
