/*
Package setops computes differences and intersections of slices.

The two slices may have different element types. Elements are matched
either as a whole, by structural equality, or by the value of a named
field (see package field), or by keys computed by caller-supplied
functions:

	Difference(list1, list2)                    // whole elements
	DifferenceBy[int](list1, list2, "ID")       // field ID, of type int
	DifferenceFunc(list1, list2, key1, key2)    // keys computed by key1, key2

Results always hold the elements of list1 which qualify, in the order of
list1. Inputs are never modified.

When matching by key, an element of list2 is a candidate only if its key
could be extracted and is not nil. Failing to extract the key of an element
of list1 is not an error: the failure is traced and the element is treated
as matching nothing, i.e. it is part of the difference and never part of
the intersection.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package setops

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'collect.setops'.
func tracer() tracing.Trace {
	return tracing.Select("collect.setops")
}
