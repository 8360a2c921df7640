package field

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
	kjson "sigs.k8s.io/json"
)

// --- Mappings --------------------------------------------------------------

// Mappings resolves fields of maps with string keys. An absent key
// resolves to nil.
type Mappings struct{}

func (Mappings) Accepts(obj interface{}) bool {
	t := reflect.TypeOf(obj)
	return t != nil && t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
}

func (Mappings) Resolve(obj interface{}, key string) (interface{}, error) {
	if m, ok := obj.(map[string]interface{}); ok {
		return m[key], nil
	}
	m := reflect.ValueOf(obj)
	v := m.MapIndex(reflect.ValueOf(key).Convert(m.Type().Key()))
	if !v.IsValid() {
		return nil, nil
	}
	return v.Interface(), nil
}

// --- Documents -------------------------------------------------------------

// Unstructured is implemented by semi-structured documents, for example
// by *unstructured.Unstructured from k8s.io/apimachinery.
type Unstructured interface {
	UnstructuredContent() map[string]interface{}
}

// Documents resolves fields of semi-structured documents: Unstructured
// values and raw JSON objects.
//
// Documents are normalized by a round-trip through JSON. Numbers in the
// normalized form are int64 if they are integral and float64 otherwise.
// Keys are case-sensitive.
type Documents struct{}

var unstructuredType = reflect.TypeOf((*Unstructured)(nil)).Elem()

func (Documents) Accepts(obj interface{}) bool {
	switch obj.(type) {
	case Unstructured, json.RawMessage:
		return true
	}
	return addressableDocument(reflect.TypeOf(obj))
}

// addressableDocument is true for struct types which implement Unstructured
// with pointer receivers, as unstructured.Unstructured does.
func addressableDocument(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Struct && reflect.PointerTo(t).Implements(unstructuredType)
}

func (d Documents) Resolve(obj interface{}, key string) (interface{}, error) {
	m, err := d.Normalize(obj)
	if err != nil {
		return nil, err
	}
	return m[key], nil
}

// Normalize converts a document into a generic map.
func (Documents) Normalize(obj interface{}) (map[string]interface{}, error) {
	if addressableDocument(reflect.TypeOf(obj)) {
		p := reflect.New(reflect.TypeOf(obj))
		p.Elem().Set(reflect.ValueOf(obj))
		obj = p.Interface()
	}
	var data []byte
	switch doc := obj.(type) {
	case json.RawMessage:
		data = doc
	case Unstructured:
		var err error
		if data, err = json.Marshal(doc.UnstructuredContent()); err != nil {
			return nil, errors.Wrap(ErrMalformed, err.Error())
		}
	default:
		return nil, errors.Wrapf(ErrUnsupported, "%T is not a document", obj)
	}
	var m map[string]interface{}
	if err := kjson.UnmarshalCaseSensitivePreserveInts(data, &m); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	return m, nil
}

// --- Records ---------------------------------------------------------------

// Records resolves fields of structs and pointers to structs.
//
// A field is looked up among the fields declared on the struct type first,
// then among the fields declared on its embedded structs. Unexported fields
// are inaccessible.
type Records struct{}

func (Records) Accepts(obj interface{}) bool {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.Struct
}

func (Records) Resolve(obj interface{}, key string) (interface{}, error) {
	v, err := deref(reflect.ValueOf(obj))
	if err != nil {
		return nil, err
	}
	if sf, ok := declaredField(v.Type(), key); ok {
		return valueOf(v.Field(sf.Index[0]), sf)
	}
	return embeddedField(v, key)
}

// embeddedField looks for key among the fields declared on the structs
// embedded in v, one level deep.
func embeddedField(v reflect.Value, key string) (interface{}, error) {
	var found []reflect.StructField
	var outer []int
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		emb := t.Field(i)
		if !emb.Anonymous {
			continue
		}
		et := emb.Type
		if et.Kind() == reflect.Ptr {
			et = et.Elem()
		}
		if et.Kind() != reflect.Struct {
			continue
		}
		if sf, ok := declaredField(et, key); ok {
			found = append(found, sf)
			outer = append(outer, i)
		}
	}
	switch len(found) {
	case 0:
		return nil, errors.Wrapf(ErrNoSuchField, "%s has no field %q", t, key)
	case 1:
		base, err := deref(v.Field(outer[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "embedded %s", t.Field(outer[0]).Name)
		}
		return valueOf(base.Field(found[0].Index[0]), found[0])
	}
	return nil, errors.Wrapf(ErrAmbiguous, "%q is declared on %d embedded structs of %s", key, len(found), t)
}

// declaredField finds a field declared directly on struct type t.
func declaredField(t reflect.Type, key string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		if sf := t.Field(i); sf.Name == key {
			return sf, true
		}
	}
	return reflect.StructField{}, false
}

func valueOf(fv reflect.Value, sf reflect.StructField) (interface{}, error) {
	if !sf.IsExported() || !fv.CanInterface() {
		return nil, errors.Wrapf(ErrInaccessible, "field %s", sf.Name)
	}
	return fv.Interface(), nil
}

func deref(v reflect.Value) (reflect.Value, error) {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return v, ErrNilObject
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return v, errors.Wrapf(ErrUnsupported, "%s is not a struct", v.Type())
	}
	return v, nil
}
