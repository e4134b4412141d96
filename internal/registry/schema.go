// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

package registry

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// Definition files are schema-checked before decoding into the raw structs,
// so a typo like `basettype:` is reported against the file instead of
// silently producing an empty field.

var identifierPattern = "^[A-Za-z_][A-Za-z0-9_]*$"

func ptrTo[T any](v T) *T { return &v }

var enumFileSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"name", "members"},
	Properties: map[string]*jsonschema.Schema{
		"name":     {Type: "string", Pattern: identifierPattern},
		"basetype": {Type: "string"},
		"members": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type:     "object",
				Required: []string{"name"},
				Properties: map[string]*jsonschema.Schema{
					"name":    {Type: "string", Pattern: identifierPattern},
					"value":   {Types: []string{"string", "integer"}},
					"comment": {Type: "string"},
				},
				AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
			},
		},
	},
	AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
}

var structFileSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"name", "fields"},
	Properties: map[string]*jsonschema.Schema{
		"name":      {Type: "string", Pattern: identifierPattern},
		"alignment": {Type: "integer", Minimum: ptrTo(0.0)},
		"fields": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type:     "object",
				Required: []string{"name", "type"},
				Properties: map[string]*jsonschema.Schema{
					"name":      {Type: "string", Pattern: identifierPattern},
					"type":      {Type: "string"},
					"array":     {Type: "integer", Minimum: ptrTo(0.0)},
					"padding":   {Type: "boolean"},
					"input":     {Type: "boolean"},
					"output":    {Type: "boolean"},
					"alignment": {Type: "integer", Minimum: ptrTo(0.0)},
					"struct":    {Type: "string", Pattern: identifierPattern},
				},
				AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
			},
		},
	},
	AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
}

// validateDefinition decodes data as YAML and validates the result against
// the given schema.
func validateDefinition(data []byte, schema *jsonschema.Schema) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolving definition schema: %w", err)
	}
	return resolved.Validate(doc)
}
