package setops

import (
	"github.com/npillmayer/collect/field"
	"github.com/npillmayer/collect/maybe"
	"github.com/npillmayer/collect/result"
	"github.com/samber/lo"
)

// KeyFunc extracts the matching key of an element. A result of Ok(Nothing)
// is a nil key, an Err is an extraction failure.
type KeyFunc[E, K any] func(E) result.Result[maybe.Maybe[K]]

// Key lifts a plain accessor function into a KeyFunc. Nil keys, e.g. nil
// pointers, are reported as Nothing.
func Key[E, K any](f func(E) K) KeyFunc[E, K] {
	return func(x E) result.Result[maybe.Maybe[K]] {
		k := f(x)
		if field.IsNil(k) {
			return result.Ok(maybe.Nothing[K]())
		}
		return result.Ok(maybe.Just(k))
	}
}

// FieldKey returns a KeyFunc extracting field name through accessor a.
func FieldKey[E, K any](a *field.Accessor, name string) KeyFunc[E, K] {
	return func(x E) result.Result[maybe.Maybe[K]] {
		return field.GetFrom[K](a, x, name)
	}
}

// --- Whole elements --------------------------------------------------------

// Difference returns the elements of list1 which are not equal to any element
// of list2. Each element of list1 is judged on its own, so duplicates in list1
// are either all kept or all dropped.
func Difference[T, U any](list1 []T, list2 []U, opts ...Option) []T {
	_, out := Partition(list1, list2, opts...)
	return out
}

// Intersection returns the elements of list1 which are equal to at least one
// element of list2.
func Intersection[T, U any](list1 []T, list2 []U, opts ...Option) []T {
	in, _ := Partition(list1, list2, opts...)
	return in
}

// Partition splits list1 into the elements equal to some element of list2 (in)
// and the others (out). Equality is structural, including unexported struct
// fields; values of different types are never equal.
func Partition[T, U any](list1 []T, list2 []U, opts ...Option) (in, out []T) {
	c := configure(opts)
	in, out = make([]T, 0, len(list1)), make([]T, 0, len(list1))
	for _, x := range list1 {
		if lo.ContainsBy(list2, func(y U) bool { return c.equal(x, y) }) {
			in = append(in, x)
		} else {
			out = append(out, x)
		}
	}
	tracer().Debugf("partition of %d elements: %d in, %d out", len(list1), len(in), len(out))
	return in, out
}

// --- Keyed by field name ---------------------------------------------------

// DifferenceBy returns the elements of list1 whose field key has no equal
// counterpart among the fields key of the elements of list2.
// Field values are of type K. An empty key compares whole elements.
func DifferenceBy[K, T, U any](list1 []T, list2 []U, key string, opts ...Option) []T {
	_, out := PartitionBy[K](list1, list2, key, opts...)
	return out
}

// IntersectionBy returns the elements of list1 whose field key equals the
// field key of at least one element of list2.
// Field values are of type K. An empty key compares whole elements.
func IntersectionBy[K, T, U any](list1 []T, list2 []U, key string, opts ...Option) []T {
	in, _ := PartitionBy[K](list1, list2, key, opts...)
	return in
}

// PartitionBy is Partition for elements matched by field key.
func PartitionBy[K, T, U any](list1 []T, list2 []U, key string, opts ...Option) (in, out []T) {
	if key == "" {
		return Partition(list1, list2, opts...)
	}
	c := configure(opts)
	return partitionByKey(c, list1, list2, FieldKey[T, K](c.accessor, key), FieldKey[U, K](c.accessor, key))
}

// --- Keyed by function -----------------------------------------------------

// DifferenceFunc returns the elements x of list1 for which no element y of
// list2 has key2(y) equal to key1(x).
func DifferenceFunc[K, T, U any](list1 []T, list2 []U, key1 KeyFunc[T, K], key2 KeyFunc[U, K], opts ...Option) []T {
	_, out := PartitionFunc(list1, list2, key1, key2, opts...)
	return out
}

// IntersectionFunc returns the elements x of list1 for which some element y
// of list2 has key2(y) equal to key1(x).
func IntersectionFunc[K, T, U any](list1 []T, list2 []U, key1 KeyFunc[T, K], key2 KeyFunc[U, K], opts ...Option) []T {
	in, _ := PartitionFunc(list1, list2, key1, key2, opts...)
	return in
}

// PartitionFunc is Partition for elements matched by computed keys.
func PartitionFunc[K, T, U any](list1 []T, list2 []U, key1 KeyFunc[T, K], key2 KeyFunc[U, K], opts ...Option) (in, out []T) {
	return partitionByKey(configure(opts), list1, list2, key1, key2)
}

func partitionByKey[K, T, U any](c config, list1 []T, list2 []U, key1 KeyFunc[T, K], key2 KeyFunc[U, K]) (in, out []T) {
	candidates := lo.FilterMap(list2, func(y U, i int) (K, bool) {
		return present(key2(y), "list2", i)
	})
	in, out = make([]T, 0, len(list1)), make([]T, 0, len(list1))
	for i, x := range list1 {
		k, ok := present(key1(x), "list1", i)
		if ok && lo.ContainsBy(candidates, func(y K) bool { return c.equal(k, y) }) {
			in = append(in, x)
		} else {
			out = append(out, x)
		}
	}
	tracer().Debugf("keyed partition of %d elements against %d keys: %d in, %d out",
		len(list1), len(candidates), len(in), len(out))
	return in, out
}

// present unpacks a key. Extraction failures are traced and, like nil keys,
// report no key.
func present[K any](r result.Result[maybe.Maybe[K]], list string, i int) (K, bool) {
	var zero K
	m, err := r.Get()
	if err != nil {
		tracer().Errorf("cannot extract key of %s element #%d: %v", list, i, err)
		return zero, false
	} else if m == nil {
		return zero, false
	}
	return m.Get()
}
