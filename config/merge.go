package config

import (
	"fmt"
	"reflect"
)

// MergeUnset copies every exported field of defaults into target except
// those whose canonical field name is in the explicit-set. Both arguments
// must be non-nil pointers to structs of the same type. Matching nested
// struct fields are merged field by field against the same explicit-set.
//
// Merging is one-directional: a field the user explicitly supplied is never
// overwritten, regardless of whether its value happens to equal the default.
// The operation is idempotent for a stable explicit-set.
func MergeUnset(target, defaults any, explicit map[string]bool) error {
	tv := reflect.ValueOf(target)
	dv := reflect.ValueOf(defaults)
	if tv.Kind() != reflect.Ptr || tv.IsNil() || tv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: merge target must be a non-nil pointer to a struct, got %T", target)
	}
	if dv.Kind() != reflect.Ptr || dv.IsNil() || dv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: merge defaults must be a non-nil pointer to a struct, got %T", defaults)
	}
	if tv.Type() != dv.Type() {
		return fmt.Errorf("config: cannot merge %T into %T", defaults, target)
	}
	mergeStructValue(tv.Elem(), dv.Elem(), explicit)
	return nil
}

func mergeStructValue(tv, dv reflect.Value, explicit map[string]bool) {
	st := tv.Type()
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Type.Kind() == reflect.Struct {
			mergeStructValue(tv.Field(i), dv.Field(i), explicit)
			continue
		}
		if explicit[canonicalElement(field.Name)] {
			continue
		}
		tv.Field(i).Set(dv.Field(i))
	}
}
