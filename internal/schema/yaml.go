package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"datasieve/internal/domain"
)

// yamlFile is the on-disk shape of a custom schema file.
type yamlFile struct {
	Schemas []yamlSchema `yaml:"schemas"`
}

type yamlSchema struct {
	Name     string            `yaml:"name"`
	Required []string          `yaml:"required"`
	Optional []string          `yaml:"optional"`
	Types    map[string]string `yaml:"types"`
}

// LoadFile reads operator-defined industry schemas from a YAML file.
// Unknown type names are rejected so a typo cannot silently disable
// type checking for a field.
func LoadFile(path string) ([]*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	return Parse(data)
}

// Parse decodes schemas from YAML bytes.
func Parse(data []byte) ([]*Schema, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing schema file: %w", err)
	}

	out := make([]*Schema, 0, len(f.Schemas))
	for i, ys := range f.Schemas {
		if ys.Name == "" {
			return nil, fmt.Errorf("schema %d: missing name", i)
		}
		types := make(map[string]domain.FieldType, len(ys.Types))
		for field, t := range ys.Types {
			ft := domain.FieldType(t)
			switch ft {
			case domain.FieldTypeNumber, domain.FieldTypeDate, domain.FieldTypeString:
				types[field] = ft
			default:
				return nil, fmt.Errorf("schema %q: field %q has unknown type %q", ys.Name, field, t)
			}
		}
		out = append(out, &Schema{
			Name:     ys.Name,
			Required: ys.Required,
			Optional: ys.Optional,
			Types:    types,
		})
	}
	return out, nil
}
