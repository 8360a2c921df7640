/*
Package collect is a small library of generic algorithms over in-memory
collections.

Sub-packages:

	forest    builds a forest of elements from a flat slice, using caller-supplied predicates
	setops    difference and intersection of slices, optionally keyed by a named field
	field     extracts a named field from maps, semi-structured documents and structs
	tree      a generic mutable tree node type
	maybe     optional values
	result    values of computations which may fail

The algorithms never take ownership of elements. They return new slices
which hold the caller's elements; the only mutation performed is the one
a caller does through its own callbacks.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package collect

// Predicate selects elements.
type Predicate[E any] func(E) bool

// Relation reports whether candidate is a direct child of parent.
type Relation[E any] func(parent, candidate E) bool

// Attach records the computed children of an element. It is called
// exactly once for every element placed into a forest.
type Attach[E any] func(E, []E)

// Not negates a predicate.
func Not[E any](p Predicate[E]) Predicate[E] {
	return func(x E) bool {
		return !p(x)
	}
}

// And returns a predicate which holds if both p and q hold.
func And[E any](p, q Predicate[E]) Predicate[E] {
	return func(x E) bool {
		return p(x) && q(x)
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
