package formbuilder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nimblemvc/go-form/pkg/form"
	"github.com/nimblemvc/go-form/pkg/render"
	"github.com/nimblemvc/go-form/pkg/request"
	"github.com/nimblemvc/go-form/pkg/validation"
)

// Query parameters marking an asynchronous partial request for one form.
const (
	ajaxParam = "ajax"
	ajaxValue = "form"
	formParam = "form"
)

// DefaultRendererName is the theme resolved from the render registry when no
// renderer override is configured.
const DefaultRendererName = "bootstrap"

// Result is the outcome of one Generate pass.
type Result struct {
	// FormID is the registered form name, also the form's identity token.
	FormID string
	// HTML is the rendered markup. Empty when RedirectURL is set.
	HTML string
	// Partial reports that the request carried the ajax-form marker for
	// this form, so only the form markup should be written back.
	Partial bool
	// Submitted reports an accepted submission (identity matched, rules
	// passed).
	Submitted bool
	// RedirectURL is set when the submit hook requested navigation.
	RedirectURL string
	// Errors is the final error map after validation and the submit hook.
	Errors validation.Errors
}

// GeneratorOption customises a Generator.
type GeneratorOption func(*Generator)

// WithLogger sets the structured logger (slog.Default otherwise).
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRenderer pins a renderer instance, bypassing the render registry.
func WithRenderer(renderer form.Renderer) GeneratorOption {
	return func(g *Generator) { g.renderer = renderer }
}

// WithRendererName resolves the renderer from the render registry at
// generate time.
func WithRendererName(name string) GeneratorOption {
	return func(g *Generator) {
		if name != "" {
			g.rendererName = name
		}
	}
}

// WithCatalog sets the validation message catalog for generated forms.
func WithCatalog(catalog *validation.Catalog) GeneratorOption {
	return func(g *Generator) { g.catalog = catalog }
}

// Generator runs the form pipeline for registered builders.
type Generator struct {
	registry     *Registry
	renderer     form.Renderer
	rendererName string
	catalog      *validation.Catalog
	logger       *slog.Logger
}

// NewGenerator constructs a Generator over a registry.
func NewGenerator(registry *Registry, options ...GeneratorOption) *Generator {
	g := &Generator{
		registry:     registry,
		rendererName: DefaultRendererName,
		logger:       slog.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

// Generate runs the full pipeline for a named form: construct the builder,
// declare fields, validate against the request, fire the submit hook on an
// accepted submission, and render. The registered name doubles as the form's
// identity token and as the ajax-form marker value.
func (g *Generator) Generate(ctx context.Context, name string, req request.Request, data request.Payload) (*Result, error) {
	constructor, err := g.registry.Get(name)
	if err != nil {
		return nil, err
	}

	logger := g.logger.With(slog.String("form", name))
	builder, err := constructor(Deps{Request: req, Data: data, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("formbuilder: construct %q: %w", name, err)
	}

	renderer, err := g.resolveRenderer()
	if err != nil {
		return nil, err
	}

	opts := []form.Option{
		form.WithID(name),
		form.WithRequest(req),
		form.WithRenderer(renderer),
	}
	if req != nil {
		opts = append(opts, form.WithAction(req.URI()))
	}
	if len(data) > 0 {
		opts = append(opts, form.WithData(data))
	}
	if g.catalog != nil {
		opts = append(opts, form.WithCatalog(g.catalog))
	}
	f := form.New(opts...)

	if err := builder.Build(ctx, f); err != nil {
		return nil, fmt.Errorf("formbuilder: build %q: %w", name, err)
	}

	f.Validate(builder.Rules())

	result := &Result{
		FormID:  name,
		Partial: isPartial(req, name),
	}

	if f.IsSubmitted() {
		result.Submitted = true
		logger.DebugContext(ctx, "form submitted")

		if err := builder.OnSubmit(ctx, f); err != nil {
			var redirect *Redirect
			if errors.As(err, &redirect) {
				result.RedirectURL = redirect.URL
				result.Errors = f.Errors()
				logger.DebugContext(ctx, "form redirect", slog.String("url", redirect.URL))
				return result, nil
			}
			return nil, fmt.Errorf("formbuilder: submit %q: %w", name, err)
		}
	}

	result.Errors = f.Errors()

	html, err := f.Render()
	if err != nil {
		return nil, fmt.Errorf("formbuilder: render %q: %w", name, err)
	}
	result.HTML = html

	if len(result.Errors) > 0 {
		logger.DebugContext(ctx, "form has errors", slog.Int("count", len(result.Errors)))
	}
	return result, nil
}

func (g *Generator) resolveRenderer() (form.Renderer, error) {
	if g.renderer != nil {
		return g.renderer, nil
	}
	renderer, err := render.Get(g.rendererName)
	if err != nil {
		return nil, fmt.Errorf("formbuilder: resolve renderer: %w", err)
	}
	return renderer, nil
}

// isPartial reports whether the request carries the ajax-form marker
// addressed to this form.
func isPartial(req request.Request, name string) bool {
	if req == nil {
		return false
	}
	return req.Query(ajaxParam, "") == ajaxValue && req.Query(formParam, "") == name
}
