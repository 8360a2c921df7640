package setops

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/collect/field"
)

type config struct {
	accessor *field.Accessor
	cmpOpts  []cmp.Option
	eqOpts   []cmp.Option // exportAll followed by cmpOpts
}

// Option configures a single set operation.
type Option func(config) config

// WithAccessor sets the field accessor used to extract keys by name.
// The default is field.Default.
func WithAccessor(a *field.Accessor) Option {
	return func(c config) config {
		if a != nil {
			c.accessor = a
		}
		return c
	}
}

// WithCmpOptions adds options for the structural equality check, for example
// cmpopts.IgnoreFields or cmpopts.EquateEmpty.
func WithCmpOptions(opts ...cmp.Option) Option {
	return func(c config) config {
		c.cmpOpts = append(c.cmpOpts, opts...)
		return c
	}
}

// exportAll makes unexported struct fields take part in comparisons.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func configure(opts []Option) config {
	c := config{accessor: field.Default}
	for _, option := range opts {
		c = option(c)
	}
	c.eqOpts = append([]cmp.Option{exportAll}, c.cmpOpts...)
	return c
}

func (c config) equal(x, y interface{}) bool {
	return cmp.Equal(x, y, c.eqOpts...)
}
