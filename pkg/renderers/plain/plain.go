// Package plain renders forms as unstyled HTML: an optional label, the bare
// control, and a line break after each field. It registers itself as "plain".
package plain

import (
	"strings"

	"github.com/nimblemvc/go-form/pkg/form"
	"github.com/nimblemvc/go-form/pkg/render"
)

// Name is the registry key for this renderer.
const Name = "plain"

func init() {
	render.MustRegister(New())
}

// Option customises the renderer.
type Option func(*Renderer)

// WithoutLineBreaks drops the `<br />` emitted after each field and label.
func WithoutLineBreaks() Option {
	return func(r *Renderer) { r.lineBreaks = false }
}

// Renderer emits unstyled markup. Stateless and safe for concurrent use.
type Renderer struct {
	lineBreaks bool
}

// New constructs the plain renderer. Line breaks are on by default.
func New(options ...Option) *Renderer {
	r := &Renderer{lineBreaks: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string { return Name }

func (r *Renderer) BeginForm(info form.FormInfo) string {
	attrs := form.Attrs{
		{Name: "action", Value: info.Action},
		{Name: "method", Value: info.Method},
	}
	return "<form" + attrs.String() + ">"
}

func (r *Renderer) EndForm() string { return "</form>" }

func (r *Renderer) Field(field form.Field, state form.FieldState) string {
	switch field.Kind {
	case form.KindRaw:
		return field.Content
	case form.KindTitle:
		return "<h3>" + field.Content + "</h3>"
	case form.KindGroupStart, form.KindGroupStop:
		// The plain theme has no grid; groups are layout-only directives.
		return ""
	}

	var b strings.Builder
	b.WriteString(r.control(field, state))
	if r.lineBreaks {
		b.WriteString("<br />")
	}
	return b.String()
}

func (r *Renderer) control(field form.Field, state form.FieldState) string {
	attrs := r.baseAttrs(field, state)

	switch field.Kind {
	case form.KindStaticText:
		return span(field)
	case form.KindCheckbox:
		// Checkbox labels follow the box instead of preceding it.
		return "<input" + attrs.String() + " />" + field.Label
	case form.KindTextarea:
		content := field.Content
		if value, ok := attrs.Get("value"); ok {
			content = value
			attrs = attrs.Del("value")
		}
		return r.label(field, state) + "<textarea" + attrs.String() + ">" + content + "</textarea>"
	case form.KindSelect:
		var options strings.Builder
		if field.Options != nil {
			for _, choice := range field.Options.Choices {
				options.WriteString(`<option value="`)
				options.WriteString(choice.Key)
				options.WriteString(`"`)
				if field.Options.IsSelected(choice.Key) {
					options.WriteString(" selected")
				}
				options.WriteString(">")
				options.WriteString(choice.Label)
				options.WriteString("</option>")
			}
		}
		return r.label(field, state) + "<select" + attrs.String() + ">" + options.String() + "</select>"
	case form.KindSubmit:
		attrs = attrs.Set("value", field.Label)
		return "<input" + attrs.String() + " />"
	case form.KindHidden:
		return "<input" + attrs.String() + " />"
	default:
		return r.label(field, state) + "<input" + attrs.String() + " />"
	}
}

// baseAttrs leads with name, id and type; declared attributes follow and may
// not displace them, matching the emission contract.
func (r *Renderer) baseAttrs(field form.Field, state form.FieldState) form.Attrs {
	var attrs form.Attrs
	if state.Name != "" {
		attrs = attrs.Set("name", state.Name)
	}
	if state.ID != "" {
		attrs = attrs.Set("id", state.ID)
	}
	if typ := r.typeAttr(field); typ != "" {
		attrs = attrs.Set("type", typ)
	}
	for _, attr := range field.Attrs {
		if attrs.Has(attr.Name) {
			continue
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

func (r *Renderer) typeAttr(field form.Field) string {
	switch field.Kind {
	case form.KindTextarea, form.KindSelect:
		return ""
	case form.KindNumber:
		return "number"
	case form.KindCheckbox:
		return "checkbox"
	case form.KindHidden:
		return "hidden"
	case form.KindSubmit:
		return "submit"
	default:
		if typ, ok := field.Attrs.Get("type"); ok {
			return typ
		}
		return "text"
	}
}

// span renders static text where a control would sit. No input element and
// no preceding label are emitted.
func span(field form.Field) string {
	if field.Class != "" {
		return `<span class="` + field.Class + `">` + field.Label + "</span>"
	}
	return "<span>" + field.Label + "</span>"
}

func (r *Renderer) label(field form.Field, state form.FieldState) string {
	if field.Label == "" {
		return ""
	}
	out := `<label for="` + state.ID + `">` + field.Label + "</label>"
	if r.lineBreaks {
		out += "<br />"
	}
	return out
}
