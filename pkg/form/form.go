// Package form models a server-side HTML form: an append-only registry of
// declared fields, value binding from nested request payloads addressed by
// slash-delimited paths, rule-based validation with per-field error messages,
// submission gating on an identity token, and rendering through a pluggable
// theme renderer.
package form

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/nimblemvc/go-form/pkg/fieldpath"
	"github.com/nimblemvc/go-form/pkg/request"
	"github.com/nimblemvc/go-form/pkg/validation"
)

// Method is the declared HTTP submission method; it selects which request
// payload (query vs body) the form binds against.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// IdentityField is the hidden field name carrying the form identity token.
const IdentityField = "formId"

// Option customises a Form at construction.
type Option func(*Form)

// WithAction sets the form action URL.
func WithAction(action string) Option {
	return func(f *Form) { f.action = action }
}

// WithMethod sets the submission method (POST by default).
func WithMethod(method Method) Option {
	return func(f *Form) {
		if method != "" {
			f.method = method
		}
	}
}

// WithID sets the identity token. When present, a hidden field carries it in
// submissions and acceptance requires the returned token to match.
func WithID(id string) Option {
	return func(f *Form) { f.id = id }
}

// WithRequest attaches the request collaborator supplying submission data.
func WithRequest(req request.Request) Option {
	return func(f *Form) { f.req = req }
}

// WithData seeds the form with model data for pre-filling fields. The data
// is copied into an HTML-escaped working copy before fields consult it.
func WithData(data request.Payload) Option {
	return func(f *Form) { f.data = request.EscapePayload(data) }
}

// WithRenderer sets the theme renderer used by Render.
func WithRenderer(renderer Renderer) Option {
	return func(f *Form) { f.renderer = renderer }
}

// WithCatalog sets the validation message catalog (English by default).
func WithCatalog(catalog *validation.Catalog) Option {
	return func(f *Form) { f.catalog = catalog }
}

// WithSanitizer overrides the bluemonday policy applied to raw markup.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(f *Form) { f.sanitizer = policy }
}

// WithoutSanitizer disables raw markup sanitizing. Only use with trusted,
// application-authored markup.
func WithoutSanitizer() Option {
	return func(f *Form) { f.sanitizer = nil }
}

// Form tracks declared fields and submission state for one request-handling
// pass. It is not safe for concurrent use; construct one per request.
type Form struct {
	action    string
	method    Method
	id        string
	req       request.Request
	data      request.Payload
	fields    []Field
	ruleErrs  validation.Errors
	manual    validation.Errors
	renderer  Renderer
	catalog   *validation.Catalog
	sanitizer *bluemonday.Policy
	group     bool
}

// New constructs a Form. Defaults: POST method, UGC sanitizer for raw
// markup, no renderer (set one before calling Render).
func New(options ...Option) *Form {
	f := &Form{
		method:    MethodPost,
		sanitizer: bluemonday.UGCPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// ID returns the identity token, if any.
func (f *Form) ID() string { return f.id }

// SetID sets the identity token after construction.
func (f *Form) SetID(id string) { f.id = id }

// Action returns the form action URL.
func (f *Form) Action() string { return f.action }

// Method returns the declared submission method.
func (f *Form) Method() Method { return f.method }

// Fields returns the declared fields in declaration order.
func (f *Form) Fields() []Field { return f.fields }

// Data returns the escaped submission snapshot captured by the last
// Validate (or the model data supplied via WithData before that).
func (f *Form) Data() request.Payload { return f.data }

// Errors returns the current error map: rule failures from the last
// Validate merged with manual errors, where a manual error added after the
// last Validate wins for its field.
func (f *Form) Errors() validation.Errors {
	out := make(validation.Errors, len(f.ruleErrs)+len(f.manual))
	for path, message := range f.ruleErrs {
		out[path] = message
	}
	for path, message := range f.manual {
		out[path] = message
	}
	return out
}

// AddError records a programmatic error for a field path. It takes
// precedence over any rule error for the same path until the next Validate,
// which fully recomputes rule errors and discards manual ones.
func (f *Form) AddError(path, message string) {
	if path == "" {
		return
	}
	if f.manual == nil {
		f.manual = make(validation.Errors)
	}
	f.manual[path] = message
}

// Validate re-derives the submission snapshot from the request and runs the
// rule spec against it. It returns false without touching the error map when
// no request is attached or the identity token does not match; an identity
// mismatch means "not submitted", never an error.
func (f *Form) Validate(spec *validation.RuleSpec) bool {
	if !f.prepareData() {
		return false
	}
	if !f.identityMatches() {
		return false
	}

	var opts []validation.EngineOption
	if f.catalog != nil {
		opts = append(opts, validation.WithCatalog(f.catalog))
	}
	f.ruleErrs = validation.NewEngine(spec, f.data, opts...).Run()
	f.manual = nil
	return true
}

// IsSubmitted reports whether the current request is an accepted submission
// of this form: the error map is empty, a non-empty submission snapshot was
// derived, and the identity token (when configured) matches.
func (f *Form) IsSubmitted() bool {
	if len(f.Errors()) > 0 {
		return false
	}
	if !f.prepareData() {
		return false
	}
	if len(f.data) == 0 {
		return false
	}
	return f.identityMatches()
}

// Render walks the declared fields in order and emits markup through the
// configured renderer. When an identity token is set, a hidden field
// carrying it is injected ahead of rendering.
func (f *Form) Render() (string, error) {
	if f.renderer == nil {
		return "", fmt.Errorf("form: renderer is required")
	}

	fields := f.fields
	if f.id != "" {
		fields = append(fields[:len(fields):len(fields)],
			f.buildField(KindHidden, IdentityField, "", Attrs{{Name: "value", Value: f.id}}, nil, ""))
	}

	hasData := len(f.currentData()) > 0
	errs := f.Errors()

	var b strings.Builder
	b.WriteString(f.renderer.BeginForm(FormInfo{
		Action: f.action,
		Method: string(f.method),
		ID:     f.id,
	}))

	var group *GroupSpec
	for _, field := range fields {
		switch field.Kind {
		case KindGroupStart:
			// One nesting level: a new group replaces the active context.
			group = field.Group
		case KindGroupStop:
			group = nil
		}

		state := FieldState{HasData: hasData, Group: group}
		if field.Path != "" {
			state.Name = fieldpath.FieldName(field.Path, "")
			state.ID = fieldpath.ElementID(field.Path)
			if hasData {
				state.Error = errs[field.Path]
			}
		}
		b.WriteString(f.renderer.Field(field, state))
	}

	b.WriteString(f.renderer.EndForm())
	return b.String(), nil
}

// prepareData snapshots the request payload for the declared method into the
// escaped working copy. Returns false when no request is attached.
func (f *Form) prepareData() bool {
	if f.req == nil {
		return false
	}
	switch f.method {
	case MethodGet:
		f.data = request.EscapePayload(f.req.AllQuery())
	case MethodPost:
		f.data = request.EscapePayload(f.req.AllPost())
	default:
		return false
	}
	return true
}

// currentData is the payload fields bind against: the working copy when one
// exists, otherwise an escaped view of the raw request payload matching the
// declared method.
func (f *Form) currentData() request.Payload {
	if len(f.data) > 0 {
		return f.data
	}
	if f.req == nil {
		return nil
	}
	switch f.method {
	case MethodGet:
		return request.EscapePayload(f.req.AllQuery())
	default:
		return request.EscapePayload(f.req.AllPost())
	}
}

func (f *Form) identityMatches() bool {
	if f.id == "" {
		return true
	}
	value, ok := fieldpath.Resolve(IdentityField, f.data)
	if !ok {
		return false
	}
	// f.data is already the escaped copy, so this is an escaped compare.
	token, ok := scalarString(value)
	return ok && token == f.id
}

func (f *Form) bind(path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	return fieldpath.Resolve(path, f.currentData())
}

func scalarString(value any) (string, bool) {
	switch value.(type) {
	case nil, map[string]any, []any, []string:
		return "", false
	}
	if s, ok := value.(string); ok {
		return s, true
	}
	return fmt.Sprint(value), true
}

func truthy(value any) bool {
	s, ok := scalarString(value)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	return s != "" && s != "0"
}
