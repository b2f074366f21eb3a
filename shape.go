package sqlq

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/qjebbs/go-sqlq/internal/tag/syntax"
)

const tagKey = "sqlq"

// Shape is the table metadata of a Go struct type.
//
// The table is declared with a tag on a blank field, and each exported
// field maps to a column, e.g.:
//
//	type Order struct {
//		_          struct{} `sqlq:"table:orders;alias:o"`
//		ID         int      `sqlq:"col:id"`
//		CustomerID int      `sqlq:"col:customer_id"`
//		Note       string   `sqlq:"-"`
//	}
//
// Without the table declaration, the table is named after the type.
// Untagged fields map to columns named after the fields, and
// embedded structs are flattened.
type Shape struct {
	Type  reflect.Type
	Table Table

	fields []shapeField
	byName map[string]int
}

type shapeField struct {
	name   string
	column string
	depth  int
}

// Column returns the column of the field.
func (s *Shape) Column(field string) (string, bool) {
	i, ok := s.byName[field]
	if !ok {
		return "", false
	}
	return s.fields[i].column, true
}

// Fields returns the mapped field names in declaration order.
func (s *Shape) Fields() []string {
	r := make([]string, len(s.fields))
	for i, f := range s.fields {
		r[i] = f.name
	}
	return r
}

type shapeResult struct {
	shape *Shape
	err   error
}

var shapeCache sync.Map

// ShapeOf returns the cached shape of T.
func ShapeOf[T any]() (*Shape, error) {
	return shapeFor(reflect.TypeOf((*T)(nil)).Elem())
}

func shapeFor(typ reflect.Type) (*Shape, error) {
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct got %s", typ)
	}
	if cached, found := shapeCache.Load(typ); found {
		r := cached.(*shapeResult)
		return r.shape, r.err
	}
	shape, err := parseShape(typ)
	cached, _ := shapeCache.LoadOrStore(typ, &shapeResult{shape: shape, err: err})
	r := cached.(*shapeResult)
	return r.shape, r.err
}

func parseShape(typ reflect.Type) (*Shape, error) {
	s := &Shape{
		Type:   typ,
		Table:  Table{Name: typ.Name()},
		byName: make(map[string]int),
	}
	var findFields func(t reflect.Type, depth int) error
	findFields = func(t reflect.Type, depth int) error {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			tag, hasTag := field.Tag.Lookup(tagKey)
			if field.Name == "_" {
				if hasTag && depth == 0 {
					if err := s.parseTableTag(tag); err != nil {
						return err
					}
				}
				continue
			}
			if !field.IsExported() || tag == "-" {
				continue
			}
			fieldType := field.Type
			if field.Anonymous && !hasTag {
				if fieldType.Kind() == reflect.Ptr {
					fieldType = fieldType.Elem()
				}
				if fieldType.Kind() == reflect.Struct {
					if err := findFields(fieldType, depth+1); err != nil {
						return err
					}
					continue
				}
			}
			column := field.Name
			if hasTag {
				info, err := syntax.Parse(tag)
				if err != nil {
					return fmt.Errorf("invalid sqlq tag %q of %s.%s: %w", tag, typ, field.Name, err)
				}
				if info.Table != "" || info.Alias != "" || info.Schema != "" {
					return fmt.Errorf("invalid sqlq tag %q of %s.%s: table keys are only allowed on the blank field", tag, typ, field.Name)
				}
				if info.Column != "" {
					column = info.Column
				}
			}
			s.addField(shapeField{name: field.Name, column: column, depth: depth})
		}
		return nil
	}
	if err := findFields(typ, 0); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Shape) parseTableTag(tag string) error {
	info, err := syntax.Parse(tag)
	if err != nil {
		return fmt.Errorf("invalid sqlq tag %q of %s: %w", tag, s.Type, err)
	}
	if info.Column != "" {
		return fmt.Errorf("invalid sqlq tag %q of %s: col is not allowed on the blank field", tag, s.Type)
	}
	if info.Table != "" {
		s.Table.Name = info.Table
	}
	s.Table.Alias = info.Alias
	s.Table.Schema = info.Schema
	return nil
}

// addField adds f, where a shallower field hides deeper ones of the same name.
func (s *Shape) addField(f shapeField) {
	i, ok := s.byName[f.name]
	if !ok {
		s.byName[f.name] = len(s.fields)
		s.fields = append(s.fields, f)
		return
	}
	if f.depth < s.fields[i].depth {
		s.fields[i] = f
	}
}
