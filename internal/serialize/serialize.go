// Package serialize renders resource structs as CloudFormation property maps
// and collects required-property errors from nested property types.
package serialize

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"go.uber.org/multierr"

	wetwire "github.com/lex00/wetwire-l1-go"
)

// Resource serializes a Go struct to CloudFormation resource properties.
// It handles:
// - PascalCase field names taken from json tags
// - Omitting unset (nil) properties
// - Nested property type structs
// - Values with their own MarshalJSON (intrinsics, AttrRef, parameters)
func Resource(v any) (map[string]any, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, nil
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected a struct, got %s", val.Kind())
	}

	result := make(map[string]any)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		if !field.IsExported() {
			continue
		}

		name := getFieldName(field)
		if name == "-" {
			continue
		}

		if isZeroValue(fieldVal) {
			continue
		}

		serialized, err := serializeValue(fieldVal)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		if serialized != nil {
			result[name] = serialized
		}
	}

	return result, nil
}

// Value normalizes an arbitrary value (intrinsic, AttrRef, nested struct,
// literal) into plain JSON-compatible data.
func Value(v any) (any, error) {
	return serializeValue(reflect.ValueOf(v))
}

// getFieldName returns the JSON field name for a struct field.
func getFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

// isZeroValue returns true if the value is the zero value for its type.
// An interface holding "" or false is not zero: the caller set it.
func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Slice, reflect.Map:
		return v.IsNil() || v.Len() == 0
	case reflect.String:
		return v.String() == ""
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Struct:
		if v.CanInterface() {
			if zeroer, ok := v.Interface().(interface{ IsZero() bool }); ok {
				return zeroer.IsZero()
			}
		}
		return false
	default:
		return false
	}
}

// serializeValue converts a reflect.Value to a JSON-compatible value.
func serializeValue(v reflect.Value) (any, error) {
	if !v.IsValid() {
		return nil, nil
	}

	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		// Marshalers with pointer receivers are checked before unwrapping.
		if m, ok := asMarshaler(v); ok {
			return marshalValue(m)
		}
		return serializeValue(v.Elem())
	}

	if m, ok := asMarshaler(v); ok {
		return marshalValue(m)
	}

	switch v.Kind() {
	case reflect.Struct:
		return Resource(v.Interface())

	case reflect.Slice, reflect.Array:
		result := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := serializeValue(v.Index(i))
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			result[i] = elem
		}
		return result, nil

	case reflect.Map:
		result := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			key := fmt.Sprint(iter.Key().Interface())
			val, err := serializeValue(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			result[key] = val
		}
		return result, nil

	case reflect.String:
		return v.String(), nil

	case reflect.Bool:
		return v.Bool(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil

	case reflect.Float32, reflect.Float64:
		return v.Float(), nil

	default:
		return nil, fmt.Errorf("unsupported value of kind %s", v.Kind())
	}
}

func asMarshaler(v reflect.Value) (json.Marshaler, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	m, ok := v.Interface().(json.Marshaler)
	return m, ok
}

func marshalValue(m json.Marshaler) (any, error) {
	data, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Validate calls Validate on v and on every nested property type that
// implements wetwire.Validator. Nested errors are prefixed with their
// property path, e.g. "Input.S3InputDefinition: ...". All errors are
// combined with multierr.
func Validate(v any) error {
	return validateValue("", reflect.ValueOf(v))
}

func validateValue(path string, v reflect.Value) error {
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		return validateValue(path, v.Elem())
	}
	// Intrinsics and references are opaque.
	if _, ok := asMarshaler(v); ok {
		return nil
	}

	var err error
	switch v.Kind() {
	case reflect.Struct:
		if validator, ok := v.Interface().(wetwire.Validator); ok {
			for _, e := range multierr.Errors(validator.Validate()) {
				err = multierr.Append(err, withPath(path, e))
			}
		}
		typ := v.Type()
		for i := 0; i < v.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			name := getFieldName(field)
			if name == "-" {
				continue
			}
			err = multierr.Append(err, validateValue(join(path, name), v.Field(i)))
		}

	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			err = multierr.Append(err, validateValue(fmt.Sprintf("%s[%d]", path, i), v.Index(i)))
		}

	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			err = multierr.Append(err, validateValue(join(path, fmt.Sprint(k.Interface())), v.MapIndex(k)))
		}
	}
	return err
}

func withPath(path string, err error) error {
	if path == "" {
		return err
	}
	return fmt.Errorf("%s: %w", path, err)
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
