// Package formbuilder orchestrates named forms: a constructor registry keyed
// by form name, a generate pipeline (build, validate, submit hook, render)
// and a response helper implementing the asynchronous partial protocol the
// bundled client script consumes.
package formbuilder

import (
	"context"
	"log/slog"

	"github.com/nimblemvc/go-form/pkg/form"
	"github.com/nimblemvc/go-form/pkg/request"
	"github.com/nimblemvc/go-form/pkg/validation"
)

// Builder declares one named form. Implementations are constructed per
// request by their registered Constructor and invoked in order: Build,
// Rules, then OnSubmit once the submission is accepted.
type Builder interface {
	// Build declares the form's fields.
	Build(ctx context.Context, f *form.Form) error
	// Rules returns the validation spec for the declared fields.
	Rules() *validation.RuleSpec
	// OnSubmit runs after an accepted submission. Returning a *Redirect
	// instructs the caller to navigate; any other error aborts generation.
	OnSubmit(ctx context.Context, f *form.Form) error
}

// Constructor builds a Builder with its collaborators. Registered once at
// startup under the form's name.
type Constructor func(deps Deps) (Builder, error)

// Deps carries the collaborators a builder receives by explicit injection.
type Deps struct {
	// Request is the current submission source.
	Request request.Request
	// Data is caller-supplied model data for pre-filling.
	Data request.Payload
	// Logger is never nil inside the pipeline.
	Logger *slog.Logger
}

// Base is an embeddable default implementation: no rules, no submit action.
// Builders embed it and override what they need.
type Base struct {
	Deps Deps
}

// NewBase captures deps for embedding builders.
func NewBase(deps Deps) Base { return Base{Deps: deps} }

// Rules returns an empty spec.
func (b Base) Rules() *validation.RuleSpec { return validation.NewRuleSpec() }

// OnSubmit does nothing.
func (b Base) OnSubmit(context.Context, *form.Form) error { return nil }

// Log returns the injected logger, falling back to slog.Default.
func (b Base) Log() *slog.Logger {
	if b.Deps.Logger != nil {
		return b.Deps.Logger
	}
	return slog.Default()
}

// Redirect is an error value a builder's OnSubmit returns to request
// navigation instead of re-rendering the form.
type Redirect struct {
	URL string
}

// RedirectTo builds a redirect instruction.
func RedirectTo(url string) *Redirect { return &Redirect{URL: url} }

func (r *Redirect) Error() string { return "formbuilder: redirect to " + r.URL }
