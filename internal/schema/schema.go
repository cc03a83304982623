// Package schema declares the per-block prop schemas and the validator that
// resolves editor-authored props into a fully populated set.
//
// Validation never fails a render: a value that misses its declared type or
// constraints is replaced by the field default and surfaced as a warning, so
// every renderer receives defaults ∪ valid overrides.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// FieldType enumerates the semantic types a prop field can declare.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeEnum    FieldType = "enum"
	TypeArray   FieldType = "array"
	TypeObject  FieldType = "object"
)

// Field describes a single prop: its type, default, and constraints.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Default  any
	Enum     []string
	Min      *float64
	Max      *float64
}

// Warning records a field whose supplied value was replaced by its default.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

// Schema is the declarative prop schema for one block type.
type Schema struct {
	Fields []Field

	once       sync.Once
	compiled   map[string]*jsonschema.Schema
	compileErr error
}

// New builds a schema from the supplied fields.
func New(fields ...Field) *Schema {
	return &Schema{Fields: fields}
}

// Defaults returns the declared default for every field.
func (s *Schema) Defaults() map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, field := range s.Fields {
		out[field.Name] = field.Default
	}
	return out
}

// Field returns the declaration for a named field.
func (s *Schema) Field(name string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Validate resolves raw props against the schema. The returned map always
// contains every declared field: the supplied value when it passes its type
// and constraints, the declared default otherwise. One warning is recorded
// per substituted field. Undeclared raw props pass through untouched so
// numbered flat fields reach the extractor.
func (s *Schema) Validate(raw map[string]any) (map[string]any, []Warning) {
	warnings := []Warning{}
	resolved := make(map[string]any, len(s.Fields)+len(raw))

	normalized := normalizeValues(raw)
	declared := make(map[string]struct{}, len(s.Fields))

	for _, field := range s.Fields {
		declared[field.Name] = struct{}{}
		value, present := normalized[field.Name]
		if !present || value == nil {
			resolved[field.Name] = field.Default
			if field.Required {
				warnings = append(warnings, Warning{
					Field:   field.Name,
					Message: "required field missing, default applied",
				})
			}
			continue
		}
		if err := s.check(field, value); err != nil {
			resolved[field.Name] = field.Default
			warnings = append(warnings, Warning{
				Field:   field.Name,
				Message: fmt.Sprintf("invalid value, default applied: %v", err),
			})
			continue
		}
		resolved[field.Name] = value
	}

	for key, value := range normalized {
		if _, ok := declared[key]; !ok {
			resolved[key] = value
		}
	}

	return resolved, warnings
}

func (s *Schema) check(field Field, value any) error {
	compiled, err := s.fieldSchema(field.Name)
	if err != nil {
		return err
	}
	if compiled == nil {
		return nil
	}
	return compiled.Validate(value)
}

func (s *Schema) fieldSchema(name string) (*jsonschema.Schema, error) {
	s.once.Do(s.compile)
	if s.compileErr != nil {
		return nil, s.compileErr
	}
	return s.compiled[name], nil
}

func (s *Schema) compile() {
	s.compiled = make(map[string]*jsonschema.Schema, len(s.Fields))
	for _, field := range s.Fields {
		doc := fieldJSONSchema(field)
		if doc == nil {
			continue
		}
		compiled, err := compileSchema(doc)
		if err != nil {
			s.compileErr = fmt.Errorf("schema: compile field %s: %w", field.Name, err)
			return
		}
		s.compiled[field.Name] = compiled
	}
}

// JSONSchema renders the whole schema as a JSON Schema object, used by hosts
// that export block definitions to editor tooling.
func (s *Schema) JSONSchema() map[string]any {
	properties := make(map[string]any, len(s.Fields))
	required := make([]string, 0)
	for _, field := range s.Fields {
		if doc := fieldJSONSchema(field); doc != nil {
			properties[field.Name] = doc
		} else {
			properties[field.Name] = map[string]any{}
		}
		if field.Required {
			required = append(required, field.Name)
		}
	}
	out := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": true,
	}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}

func fieldJSONSchema(field Field) map[string]any {
	switch field.Type {
	case TypeString:
		doc := map[string]any{"type": "string"}
		if field.Min != nil {
			doc["minLength"] = int(*field.Min)
		}
		if field.Max != nil {
			doc["maxLength"] = int(*field.Max)
		}
		return doc
	case TypeNumber:
		doc := map[string]any{"type": "number"}
		if field.Min != nil {
			doc["minimum"] = *field.Min
		}
		if field.Max != nil {
			doc["maximum"] = *field.Max
		}
		return doc
	case TypeBoolean:
		return map[string]any{"type": "boolean"}
	case TypeEnum:
		values := make([]any, 0, len(field.Enum))
		for _, v := range field.Enum {
			values = append(values, v)
		}
		return map[string]any{"type": "string", "enum": values}
	case TypeArray:
		return map[string]any{"type": "array"}
	case TypeObject:
		return map[string]any{"type": "object"}
	default:
		return nil
	}
}

func compileSchema(doc map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

// normalizeValues round-trips props through JSON so validation sees the same
// value shapes a decoded editor payload would carry (ints become float64, etc).
func normalizeValues(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return map[string]any{}
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return cloneLoose(raw)
	}
	out := map[string]any{}
	if err := json.Unmarshal(encoded, &out); err != nil {
		return cloneLoose(raw)
	}
	return out
}

func cloneLoose(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		out[strings.TrimSpace(key)] = value
	}
	return out
}
