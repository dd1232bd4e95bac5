package wetwire_l1

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/multierr"
)

// RequiredPropertyError reports a required property that was not set.
type RequiredPropertyError struct {
	// Type is the CloudFormation resource or property type,
	// e.g. "AWS::DataBrew::Job" or "AWS::DataBrew::Dataset.S3Location".
	Type string
	// Property is the CloudFormation property name.
	Property string
}

func (e *RequiredPropertyError) Error() string {
	return fmt.Sprintf("%s: Required property '%s' is missing", e.Type, e.Property)
}

// Prop pairs a CloudFormation property name with its value for CheckRequired.
type Prop struct {
	Name  string
	Value any
}

// Required is shorthand for Prop{Name: name, Value: value}.
func Required(name string, value any) Prop {
	return Prop{Name: name, Value: value}
}

// CheckRequired returns one RequiredPropertyError per missing property,
// combined with multierr. It returns nil when every property is present.
func CheckRequired(cfType string, props ...Prop) error {
	var err error
	for _, p := range props {
		if IsMissing(p.Value) {
			err = multierr.Append(err, &RequiredPropertyError{Type: cfType, Property: p.Name})
		}
	}
	return err
}

// IsMissing reports whether v counts as an unset property: nil, a nil
// pointer, or an empty list or map. Empty strings and false are values.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

// MissingProperties extracts the property names from an error returned by
// CheckRequired or a Validate method.
func MissingProperties(err error) []string {
	var names []string
	for _, e := range multierr.Errors(err) {
		var rpe *RequiredPropertyError
		if errors.As(e, &rpe) {
			names = append(names, rpe.Property)
		}
	}
	return names
}
