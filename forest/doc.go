/*
Package forest builds forests from flat slices of elements.

The parent/child relation between elements is defined entirely by the caller,
via a root predicate and a parent relation. The forest itself is recorded by
the caller, too: MakeTree calls back a caller-supplied function for every
element placed into the forest, handing over the element's children.

	type Dept struct {
	    ID, Parent int
	    Sub        []*Dept
	}
	roots := forest.MakeTree(depts,
	    func(d *Dept) bool { return d.Parent == 0 },
	    func(p, c *Dept) bool { return c.Parent == p.ID },
	    func(d *Dept, ch []*Dept) { d.Sub = ch })

Every root is searched for children among all the elements, not among the
ones not yet placed. An element which is a child of two parents will therefore
be placed twice. Cyclic relations make MakeTree recurse without end; use
MakeTreeDepth to guard against them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package forest

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'collect.forest'.
func tracer() tracing.Trace {
	return tracing.Select("collect.forest")
}
