// Package schemaform derives form fields and validation rules from an
// OpenAPI object schema: property types map to field kinds, schema
// constraints (required, minLength, maxLength, email format, enums) map to
// rules. Properties are declared in sorted name order so output is stable.
package schemaform

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/nimblemvc/go-form/pkg/fieldpath"
	"github.com/nimblemvc/go-form/pkg/form"
	"github.com/nimblemvc/go-form/pkg/validation"
)

// Apply declares one field per schema property on the form and returns the
// matching rule spec. Nested object properties recurse with a path prefix,
// so "address" containing "city" declares the field path "address/city".
func Apply(f *form.Form, ref *openapi3.SchemaRef) (*validation.RuleSpec, error) {
	if f == nil {
		return nil, fmt.Errorf("schemaform: form is required")
	}
	schema, err := objectSchema(ref)
	if err != nil {
		return nil, err
	}

	spec := validation.NewRuleSpec()
	if err := applyObject(f, spec, schema, ""); err != nil {
		return nil, err
	}
	return spec, nil
}

func objectSchema(ref *openapi3.SchemaRef) (*openapi3.Schema, error) {
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schemaform: schema is required")
	}
	schema := ref.Value
	if typ := schemaType(schema); typ != "" && typ != "object" {
		return nil, fmt.Errorf("schemaform: root schema must be an object, got %q", typ)
	}
	return schema, nil
}

func applyObject(f *form.Form, spec *validation.RuleSpec, schema *openapi3.Schema, prefix string) error {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		property := schema.Properties[name]
		if property == nil || property.Value == nil {
			return fmt.Errorf("schemaform: property %q has no schema", name)
		}

		path := name
		if prefix != "" {
			path = prefix + fieldpath.Delimiter + name
		}

		value := property.Value
		if schemaType(value) == "object" {
			if err := applyObject(f, spec, value, path); err != nil {
				return err
			}
			continue
		}

		declareField(f, path, value)
		spec.Field(path, propertyRules(value, required[name])...)
	}
	return nil
}

func declareField(f *form.Form, path string, schema *openapi3.Schema) {
	label := schema.Title
	if label == "" {
		label = path
	}

	var attrs form.Attrs
	if schema.Default != nil {
		attrs = attrs.Set("value", fmt.Sprint(schema.Default))
	}

	if len(schema.Enum) > 0 {
		choices := make([]form.Choice, 0, len(schema.Enum))
		for _, value := range schema.Enum {
			key := fmt.Sprint(value)
			choices = append(choices, form.Choice{Key: key, Label: key})
		}
		var selected []string
		if schema.Default != nil {
			selected = []string{fmt.Sprint(schema.Default)}
		}
		f.AddSelect(path, label, choices, selected, nil)
		return
	}

	switch schemaType(schema) {
	case "boolean":
		f.AddCheckbox(path, label, attrs)
	case "integer":
		f.AddInput(path, label, attrs.Set("type", "number"))
	case "number":
		f.AddFloatInput(path, label, attrs)
	default:
		if schema.Format == "email" {
			attrs = attrs.Set("type", "email")
		}
		f.AddInput(path, label, attrs)
	}
}

func propertyRules(schema *openapi3.Schema, required bool) []validation.Rule {
	var rules []validation.Rule

	if required {
		if schemaType(schema) == "boolean" {
			rules = append(rules, validation.Checked())
		} else {
			rules = append(rules, validation.Required())
		}
	}

	if len(schema.Enum) > 0 {
		keys := make([]string, 0, len(schema.Enum))
		for _, value := range schema.Enum {
			keys = append(keys, fmt.Sprint(value))
		}
		rules = append(rules, validation.OneOf(keys...))
		return rules
	}

	switch schemaType(schema) {
	case "integer":
		rules = append(rules, validation.Integer())
	case "number":
		rules = append(rules, validation.Decimal(validation.DefaultDecimalPlaces))
	case "boolean":
	default:
		if schema.Format == "email" {
			rules = append(rules, validation.Email())
		}
		min := int(schema.MinLength)
		max := 0
		if schema.MaxLength != nil {
			max = int(*schema.MaxLength)
		}
		if min > 0 || max > 0 {
			rules = append(rules, validation.Length(min, max))
		}
	}
	return rules
}

func schemaType(schema *openapi3.Schema) string {
	if schema == nil || schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
