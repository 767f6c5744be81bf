package project

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/packforge.v1.schema.json
var schemaFS embed.FS

const schemaFile = "schemas/packforge.v1.schema.json"

// Schema returns the embedded JSON Schema for project files.
func Schema() []byte {
	data, err := schemaFS.ReadFile(schemaFile)
	if err != nil {
		panic(err)
	}
	return data
}

// SchemaError lists every schema violation found in a project file.
type SchemaError struct {
	File     string
	Problems []Problem
}

// Problem is one schema violation.
type Problem struct {
	Field       string
	Type        string
	Description string
}

func (e *SchemaError) Error() string {
	lines := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		lines = append(lines, fmt.Sprintf("%s: %s", p.Field, p.Description))
	}
	return fmt.Sprintf("%s does not match the project schema: %s", e.File, strings.Join(lines, "; "))
}

// validateSchema checks raw YAML or JSON against the embedded schema.
func validateSchema(name string, data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(Schema()),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{File: name}
	for _, desc := range result.Errors() {
		schemaErr.Problems = append(schemaErr.Problems, Problem{
			Field:       desc.Field(),
			Type:        desc.Type(),
			Description: desc.Description(),
		})
	}
	return schemaErr
}
