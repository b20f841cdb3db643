package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML builds a MapSource from YAML content. Nested mappings are
// flattened into dotted names and sequences of scalars are joined with
// commas, so a destination list can be written either as "a,b" or as a
// YAML list.
func ParseYAML(data []byte) (*MapSource, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: failed to parse yaml: %w", err)
	}

	flat := make(map[string]string)
	flattenInto(flat, "", raw)
	return NewMapSource(flat), nil
}

// LoadYAMLFile reads and parses a YAML configuration file.
func LoadYAMLFile(path string) (*MapSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return ParseYAML(data)
}

func flattenInto(flat map[string]string, prefix string, value interface{}) {
	switch v := value.(type) {
	case map[string]interface{}:
		for key, child := range v {
			name := key
			if prefix != "" {
				name = prefix + "." + key
			}
			flattenInto(flat, name, child)
		}
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, scalarString(item))
		}
		if prefix != "" {
			flat[prefix] = strings.Join(parts, ",")
		}
	default:
		if prefix != "" {
			flat[prefix] = scalarString(v)
		}
	}
}

func scalarString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
