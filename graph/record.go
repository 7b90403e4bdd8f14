package graph

import (
	"errors"
	"fmt"
)

// ErrDecode indicates a record field was absent or had an unexpected type.
var ErrDecode = errors.New("record decode failed")

// Record is one row of a query result keyed by its RETURN aliases.
// Accessors decode fields at the executor boundary so the rest of the
// code never deals with untyped values: a missing or mistyped field
// fails fast with ErrDecode instead of propagating nils upward.
type Record map[string]any

func (r Record) value(key string) (any, error) {
	val, ok := r[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing field %q", ErrDecode, key)
	}
	return val, nil
}

// String returns a non-null string field.
func (r Record) String(key string) (string, error) {
	val, err := r.value(key)
	if err != nil {
		return "", err
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is %T, want string", ErrDecode, key, val)
	}
	return s, nil
}

// NullableString returns nil when the field holds a graph null.
func (r Record) NullableString(key string) (*string, error) {
	val, err := r.value(key)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, nil
	}
	s, ok := val.(string)
	if !ok {
		return nil, fmt.Errorf("%w: field %q is %T, want string or null", ErrDecode, key, val)
	}
	return &s, nil
}

// Bool returns a non-null boolean field.
func (r Record) Bool(key string) (bool, error) {
	val, err := r.value(key)
	if err != nil {
		return false, err
	}
	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("%w: field %q is %T, want bool", ErrDecode, key, val)
	}
	return b, nil
}

// Float64 accepts either a float or integer property.
func (r Record) Float64(key string) (float64, error) {
	val, err := r.value(key)
	if err != nil {
		return 0, err
	}
	switch v := val.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%w: field %q is %T, want number", ErrDecode, key, val)
}

// NullableFloat64 returns nil when the field holds a graph null.
func (r Record) NullableFloat64(key string) (*float64, error) {
	val, err := r.value(key)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, nil
	}
	f, err := r.Float64(key)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Int64 accepts either an integer or float property.
func (r Record) Int64(key string) (int64, error) {
	val, err := r.value(key)
	if err != nil {
		return 0, err
	}
	switch v := val.(type) {
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	}
	return 0, fmt.Errorf("%w: field %q is %T, want integer", ErrDecode, key, val)
}

// NullableInt64 returns nil when the field holds a graph null.
func (r Record) NullableInt64(key string) (*int64, error) {
	val, err := r.value(key)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, nil
	}
	i, err := r.Int64(key)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
