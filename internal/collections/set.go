// Package collections has small generic containers shared by the catalog
// and the CLI.
package collections

import (
	"cmp"
	"fmt"
	"slices"
)

// Set is an unordered set backed by a map
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding vs
func NewSet[T comparable](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	s.Add(vs...)
	return s
}

// Add inserts vs
func (s Set[T]) Add(vs ...T) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

// Insert adds v and reports whether it was not present before
func (s Set[T]) Insert(v T) bool {
	if s.Has(v) {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Remove deletes vs
func (s Set[T]) Remove(vs ...T) {
	for _, v := range vs {
		delete(s, v)
	}
}

// Has reports whether v is a member
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len is the member count
func (s Set[T]) Len() int {
	return len(s)
}

// Members returns the members in unspecified order
func (s Set[T]) Members() []T {
	r := make([]T, 0, len(s))
	for v := range s {
		r = append(r, v)
	}
	return r
}

func (s Set[T]) String() string {
	return fmt.Sprintf("%v", s.Members())
}

// Sorted returns the members of s in ascending order
func Sorted[T cmp.Ordered](s Set[T]) []T {
	r := s.Members()
	slices.Sort(r)
	return r
}
