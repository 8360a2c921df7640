package field

import (
	"reflect"

	"github.com/npillmayer/collect/maybe"
	"github.com/npillmayer/collect/result"
	"github.com/pkg/errors"
)

// Resolver looks up fields for one kind of record representation.
//
// Resolve returns a nil value without an error if the representation
// permits absent keys (as maps do).
type Resolver interface {
	Accepts(obj interface{}) bool
	Resolve(obj interface{}, key string) (interface{}, error)
}

// Accessor dispatches field lookups to the first resolver accepting a record.
// An Accessor holds no mutable state and may be shared between goroutines.
type Accessor struct {
	resolvers []Resolver
}

// Default resolves mappings, then documents, then structs.
var Default = New(Mappings{}, Documents{}, Records{})

// New creates an accessor which consults resolvers in the order given.
func New(resolvers ...Resolver) *Accessor {
	return &Accessor{resolvers: resolvers}
}

// Lookup returns the raw value of field key of obj.
func (a *Accessor) Lookup(obj interface{}, key string) result.Result[interface{}] {
	if IsNil(obj) {
		return result.Err[interface{}](errors.Wrapf(ErrNilObject, "lookup of field %q", key))
	}
	for _, r := range a.resolvers {
		if !r.Accepts(obj) {
			continue
		}
		tracer().Debugf("resolving field %q of %T with %T", key, obj, r)
		v, err := r.Resolve(obj, key)
		if err != nil {
			return result.Err[interface{}](errors.Wrapf(err, "field %q of %T", key, obj))
		}
		return result.Ok(v)
	}
	return result.Err[interface{}](errors.Wrapf(ErrUnsupported, "field %q of %T", key, obj))
}

// Get extracts field key of obj as a value of type K, using the Default accessor.
//
// A nil field value, or a key absent from a mapping or document, results in
// Ok(Nothing). Failures, including a value not of type K, result in an Err.
func Get[K any](obj interface{}, key string) result.Result[maybe.Maybe[K]] {
	return GetFrom[K](Default, obj, key)
}

// GetFrom is Get with an explicit accessor.
func GetFrom[K any](a *Accessor, obj interface{}, key string) result.Result[maybe.Maybe[K]] {
	return result.AndThen(a.Lookup(obj, key), func(raw interface{}) result.Result[maybe.Maybe[K]] {
		return coerce[K](raw, key)
	})
}

// Value extracts field key of obj as a value of type K. Lookup failures are
// traced and yield Nothing, just as a nil field value does.
func Value[K any](obj interface{}, key string) maybe.Maybe[K] {
	return ValueFrom[K](Default, obj, key)
}

// ValueFrom is Value with an explicit accessor.
func ValueFrom[K any](a *Accessor, obj interface{}, key string) maybe.Maybe[K] {
	v, err := GetFrom[K](a, obj, key).Get()
	if err != nil {
		tracer().Errorf("cannot extract field: %v", err)
		return maybe.Nothing[K]()
	}
	return v
}

func coerce[K any](raw interface{}, key string) result.Result[maybe.Maybe[K]] {
	if IsNil(raw) {
		return result.Ok(maybe.Nothing[K]())
	}
	if k, ok := raw.(K); ok {
		return result.Ok(maybe.Just(k))
	}
	want := reflect.TypeOf((*K)(nil)).Elem()
	return result.Err[maybe.Maybe[K]](errors.Wrapf(ErrTypeMismatch, "field %q is %T, want %s", key, raw, want))
}

// IsNil is true for nil and for nil values of nillable kinds, i.e. for
// pointers, maps, slices, interfaces, functions and channels.
func IsNil(x interface{}) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
