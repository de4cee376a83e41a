// Package goform generates server-side HTML forms: declarative field
// registration addressed by slash-delimited paths, value binding from nested
// request payloads, rule-based validation with localized messages, identity
// gated submission detection, themed rendering, and an asynchronous partial
// protocol for the bundled client script.
package goform

import (
	"context"

	"github.com/nimblemvc/go-form/pkg/form"
	"github.com/nimblemvc/go-form/pkg/formbuilder"
	"github.com/nimblemvc/go-form/pkg/request"
	"github.com/nimblemvc/go-form/pkg/validation"
)

// Form aliases the form controller for callers that only import the root
// package.
type Form = form.Form

// Field is one declared control or layout directive.
type Field = form.Field

// Builder declares one named form; register constructors in a Registry.
type Builder = formbuilder.Builder

// Deps carries the collaborators injected into builders.
type Deps = formbuilder.Deps

// Result is the outcome of one generate pass.
type Result = formbuilder.Result

// Payload is a nested submission payload.
type Payload = request.Payload

// Errors maps field paths to failure messages.
type Errors = validation.Errors

// New constructs a form; see pkg/form for the available options.
func New(options ...form.Option) *Form {
	return form.New(options...)
}

// Generate runs the full pipeline for a named form against one request using
// a fresh generator. Callers with many forms should hold their own
// formbuilder.Generator instead.
func Generate(ctx context.Context, registry *formbuilder.Registry, name string, req request.Request, data Payload, options ...formbuilder.GeneratorOption) (*Result, error) {
	return formbuilder.NewGenerator(registry, options...).Generate(ctx, name, req, data)
}
