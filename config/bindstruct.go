package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

type bindOptions struct {
	resolver *DefaultResolver
	record   func(leaf PropertyPath)
}

// BindOption configures a BindStruct call.
type BindOption func(*bindOptions)

// WithResolver makes every leaf lookup fall back through the resolver's
// rule table when the direct path is absent.
func WithResolver(resolver *DefaultResolver) BindOption {
	return func(o *bindOptions) {
		o.resolver = resolver
	}
}

// BindStruct populates target (a non-nil pointer to a struct) from src,
// mapping each exported field to root.<canonical field name>. Nested
// structs and pointers to structs recurse one level deeper per field.
// Supported leaf types: string, bool, integers, unsigned integers, floats,
// time.Duration and []string (comma-delimited). Fields absent from the
// source are left untouched, so target's pre-set values act as defaults.
func BindStruct(src Source, root PropertyPath, target any, opts ...BindOption) error {
	o := bindOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return bindValue(src, root, target, &o)
}

// BindStructRecorded is a BindStruct pass that additionally records, as the
// explicit-set, the canonical leaf field name of every property actually
// present in the source. No fallback resolution is applied: presence means
// the user supplied the value at this exact path.
func BindStructRecorded(src Source, root PropertyPath, target any) (map[string]bool, error) {
	explicit := make(map[string]bool)
	o := bindOptions{
		record: func(leaf PropertyPath) {
			explicit[leaf.LastElement()] = true
		},
	}
	if err := bindValue(src, root, target, &o); err != nil {
		return nil, err
	}
	return explicit, nil
}

func bindValue(src Source, root PropertyPath, target any, o *bindOptions) error {
	if target == nil {
		return fmt.Errorf("config: bind target must not be nil")
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: bind target must be a non-nil pointer to a struct, got %T", target)
	}
	return bindStructValue(src, root, v.Elem(), o)
}

func bindStructValue(src Source, root PropertyPath, sv reflect.Value, o *bindOptions) error {
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := sv.Field(i)
		fieldPath := root.Append(canonicalElement(field.Name))

		// time.Duration is an int64 kind; handle it before the kind switch.
		if field.Type == reflect.TypeOf(time.Duration(0)) {
			if err := bindLeaf(src, fieldPath, o, func(raw string) error {
				d, err := parseDuration(raw)
				if err != nil {
					return err
				}
				fv.SetInt(int64(d))
				return nil
			}); err != nil {
				return err
			}
			continue
		}

		switch field.Type.Kind() {
		case reflect.Struct:
			if err := bindStructValue(src, fieldPath, fv, o); err != nil {
				return err
			}
		case reflect.Ptr:
			if field.Type.Elem().Kind() != reflect.Struct {
				continue
			}
			if fv.IsNil() {
				if !hasAnyUnder(src, o.resolver, fieldPath) {
					continue
				}
				fv.Set(reflect.New(field.Type.Elem()))
			}
			if err := bindStructValue(src, fieldPath, fv.Elem(), o); err != nil {
				return err
			}
		case reflect.Slice:
			if field.Type.Elem().Kind() != reflect.String {
				continue
			}
			if err := bindLeaf(src, fieldPath, o, func(raw string) error {
				fv.Set(reflect.ValueOf(splitList(raw)))
				return nil
			}); err != nil {
				return err
			}
		case reflect.String:
			if err := bindLeaf(src, fieldPath, o, func(raw string) error {
				fv.SetString(raw)
				return nil
			}); err != nil {
				return err
			}
		case reflect.Bool:
			if err := bindLeaf(src, fieldPath, o, func(raw string) error {
				b, err := strconv.ParseBool(raw)
				if err != nil {
					return err
				}
				fv.SetBool(b)
				return nil
			}); err != nil {
				return err
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if err := bindLeaf(src, fieldPath, o, func(raw string) error {
				n, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return err
				}
				fv.SetInt(n)
				return nil
			}); err != nil {
				return err
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if err := bindLeaf(src, fieldPath, o, func(raw string) error {
				n, err := strconv.ParseUint(raw, 10, 64)
				if err != nil {
					return err
				}
				fv.SetUint(n)
				return nil
			}); err != nil {
				return err
			}
		case reflect.Float32, reflect.Float64:
			if err := bindLeaf(src, fieldPath, o, func(raw string) error {
				f, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return err
				}
				fv.SetFloat(f)
				return nil
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func bindLeaf(src Source, path PropertyPath, o *bindOptions, set func(raw string) error) error {
	raw, ok := src.Get(path)
	direct := ok
	if !ok && o.resolver != nil {
		if fallback, resolved := o.resolver.Resolve(path); resolved {
			raw, ok = src.Get(fallback)
		}
	}
	if !ok {
		return nil
	}
	if err := set(raw); err != nil {
		return fmt.Errorf("config: invalid value %q for %s: %w", raw, path, err)
	}
	if direct && o.record != nil {
		o.record(path)
	}
	return nil
}

func hasAnyUnder(src Source, resolver *DefaultResolver, root PropertyPath) bool {
	if len(src.Leaves(root)) > 0 {
		return true
	}
	if resolver != nil {
		if fallback, ok := resolver.Resolve(root); ok {
			return len(src.Leaves(fallback)) > 0
		}
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDuration(raw string) (time.Duration, error) {
	if d, err := time.ParseDuration(raw); err == nil {
		return d, nil
	}
	// A bare number is read as seconds.
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return 0, fmt.Errorf("invalid duration")
}
