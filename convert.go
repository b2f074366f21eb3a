package sqlq

import (
	"fmt"
	"reflect"
)

// Converter marshals a value into the form a driver binds natively.
type Converter interface {
	Convert(v any) (any, error)
}

// ConverterFunc is a function implementing Converter.
type ConverterFunc func(v any) (any, error)

// Convert implements Converter.
func (f ConverterFunc) Convert(v any) (any, error) {
	return f(v)
}

// Converters is a registry of converters keyed by value type.
// A nil *Converters has no converter registered.
type Converters struct {
	m map[reflect.Type]Converter
}

// NewConverters returns an empty registry.
func NewConverters() *Converters {
	return &Converters{m: make(map[reflect.Type]Converter)}
}

// Register registers conv for values of typ.
func (c *Converters) Register(typ reflect.Type, conv Converter) *Converters {
	c.m[typ] = conv
	return c
}

// RegisterConverter registers conv for values of type V.
func RegisterConverter[V any](c *Converters, conv Converter) *Converters {
	return c.Register(reflect.TypeOf((*V)(nil)).Elem(), conv)
}

// Convert converts v with the converter registered for its type.
func (c *Converters) Convert(v any) (any, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: no converter for %T", ErrConversionUnsupported, v)
	}
	conv, ok := c.m[reflect.TypeOf(v)]
	if !ok {
		return nil, fmt.Errorf("%w: no converter for %T", ErrConversionUnsupported, v)
	}
	r, err := conv.Convert(v)
	if err != nil {
		return nil, fmt.Errorf("%w: converting %T: %w", ErrConversionUnsupported, v, err)
	}
	return r, nil
}
