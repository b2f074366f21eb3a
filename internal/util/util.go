package util

import "reflect"

// Flatten expands a slice or array into its elements.
// Any other value, including []byte, is returned as a single element.
func Flatten(list any) []any {
	v := reflect.ValueOf(list)
	switch v.Kind() {
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return []any{list}
		}
	case reflect.Array:
	default:
		return []any{list}
	}
	r := make([]any, v.Len())
	for i := range r {
		r[i] = v.Index(i).Interface()
	}
	return r
}
