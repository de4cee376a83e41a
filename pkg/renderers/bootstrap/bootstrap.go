// Package bootstrap renders forms with Bootstrap 5 markup: mb-3 field
// wrappers, form-control inputs, border-danger error chrome with a message
// div, form-check checkboxes backed by a hidden 1/0 mirror input, grid
// groups (row / col-N) and legend titles. It registers itself as
// "bootstrap". Class decisions can be overridden through go-theme renderer
// configuration tokens.
package bootstrap

import (
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/nimblemvc/go-form/pkg/form"
	"github.com/nimblemvc/go-form/pkg/render"
)

// Name is the registry key for this renderer.
const Name = "bootstrap"

// Theme token keys recognised in theme.RendererConfig.Tokens. Absent tokens
// fall back to the stock Bootstrap classes.
const (
	TokenWrapper       = "form.field.wrapper"
	TokenLabel         = "form.label"
	TokenControl       = "form.control"
	TokenControlError  = "form.control.error"
	TokenErrorText     = "form.error"
	TokenSubmit        = "form.submit"
	TokenCheckbox      = "form.checkbox"
	TokenCheckboxLabel = "form.checkbox.label"
	TokenSelect        = "form.select"
	TokenGroupRow      = "form.group.row"
	TokenGroupCol      = "form.group.col"
)

func init() {
	render.MustRegister(New())
}

type classes struct {
	wrapper       string
	label         string
	control       string
	controlError  string
	errorText     string
	submit        string
	checkbox      string
	checkboxLabel string
	selectControl string
	groupRow      string
	groupCol      string
}

func defaultClasses() classes {
	return classes{
		wrapper:       "mb-3",
		label:         "form-label",
		control:       "form-control",
		controlError:  "border-danger",
		errorText:     "validation text-danger",
		submit:        "btn btn-primary",
		checkbox:      "form-check-input",
		checkboxLabel: "form-check-label ms-2",
		selectControl: "form-select",
		groupRow:      "row",
		groupCol:      "col",
	}
}

// Option customises the renderer.
type Option func(*Renderer)

// WithTheme applies class overrides from a go-theme renderer configuration.
// Only the Tokens listed above are consulted.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		if cfg == nil || len(cfg.Tokens) == 0 {
			return
		}
		override := func(target *string, token string) {
			if value, ok := cfg.Tokens[token]; ok && strings.TrimSpace(value) != "" {
				*target = value
			}
		}
		override(&r.classes.wrapper, TokenWrapper)
		override(&r.classes.label, TokenLabel)
		override(&r.classes.control, TokenControl)
		override(&r.classes.controlError, TokenControlError)
		override(&r.classes.errorText, TokenErrorText)
		override(&r.classes.submit, TokenSubmit)
		override(&r.classes.checkbox, TokenCheckbox)
		override(&r.classes.checkboxLabel, TokenCheckboxLabel)
		override(&r.classes.selectControl, TokenSelect)
		override(&r.classes.groupRow, TokenGroupRow)
		override(&r.classes.groupCol, TokenGroupCol)
	}
}

// Renderer emits Bootstrap markup. Stateless and safe for concurrent use;
// group context arrives through the per-field state.
type Renderer struct {
	classes classes
}

// New constructs the bootstrap renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{classes: defaultClasses()}
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
		return "<legend>" + field.Content + "</legend>"
	case form.KindGroupStart:
		return r.groupStart(field)
	case form.KindGroupStop:
		return "</div>"
	}

	var b strings.Builder
	b.WriteString("<div")
	b.WriteString(r.wrapperAttrs(state).String())
	b.WriteString(">")

	switch field.Kind {
	case form.KindStaticText:
		b.WriteString(staticText(field))
	case form.KindCheckbox:
		b.WriteString(r.checkbox(field, state))
	case form.KindTextarea:
		b.WriteString(r.label(field, state))
		b.WriteString(r.textarea(field, state))
	case form.KindSelect:
		b.WriteString(r.label(field, state))
		b.WriteString(r.selectControl(field, state))
	case form.KindSubmit:
		b.WriteString(r.input(field, state, r.classes.control+" "+r.classes.submit))
	case form.KindHidden:
		b.WriteString(r.input(field, state, r.classes.control))
	default:
		b.WriteString(r.label(field, state))
		b.WriteString(r.input(field, state, r.classes.control))
	}

	if visible(state) {
		b.WriteString(`<div class="` + r.classes.errorText + `">` + state.Error + "</div>")
	}
	b.WriteString("</div>")
	return b.String()
}

func (r *Renderer) groupStart(field form.Field) string {
	spec := field.Group
	attrs := form.Attrs{}
	if spec != nil {
		attrs = spec.RowAttrs.Clone()
	}
	class := r.classes.groupRow
	if existing, ok := attrs.Get("class"); ok && existing != "" {
		class = existing + " " + class
	}
	attrs = attrs.Set("class", class)
	return "<div" + attrs.String() + ">"
}

// wrapperAttrs builds the per-field div: mb-3, plus the active group's
// col-N class and column attributes.
func (r *Renderer) wrapperAttrs(state form.FieldState) form.Attrs {
	class := r.classes.wrapper
	attrs := form.Attrs{}
	if state.Group != nil {
		class += " " + r.classes.groupCol + "-" + strconv.Itoa(state.Group.Columns)
		for _, attr := range state.Group.ColAttrs {
			if attr.Name == "class" {
				class += " " + attr.Value
				continue
			}
			attrs = append(attrs, attr)
		}
	}
	return append(form.Attrs{{Name: "class", Value: class}}, attrs...)
}

// controlAttrs merges declared attributes with name/id/type/class defaults.
// Declared attributes win and are emitted first, matching the themed
// emission contract.
func (r *Renderer) controlAttrs(field form.Field, state form.FieldState, typ, class string) form.Attrs {
	attrs := field.Attrs.Clone()
	if attrs == nil {
		attrs = form.Attrs{}
	}
	if state.Name != "" && !attrs.Has("name") {
		attrs = append(attrs, form.Attr{Name: "name", Value: state.Name})
	}
	if state.ID != "" && !attrs.Has("id") {
		attrs = append(attrs, form.Attr{Name: "id", Value: state.ID})
	}
	if typ != "" && !attrs.Has("type") {
		attrs = append(attrs, form.Attr{Name: "type", Value: typ})
	}
	if declared, ok := attrs.Get("class"); ok && declared != "" {
		class = declared
	}
	if visible(state) {
		class += " " + r.classes.controlError
	}
	return attrs.Set("class", class)
}

func (r *Renderer) input(field form.Field, state form.FieldState, class string) string {
	attrs := r.controlAttrs(field, state, r.typeAttr(field), class)
	if field.Kind == form.KindSubmit {
		attrs = attrs.Set("value", field.Label)
	}
	return "<input" + attrs.String() + " />"
}

func (r *Renderer) textarea(field form.Field, state form.FieldState) string {
	attrs := r.controlAttrs(field, state, "", r.classes.control)
	content := field.Content
	if value, ok := attrs.Get("value"); ok {
		content = value
		attrs = attrs.Del("value")
	}
	return "<textarea" + attrs.String() + ">" + content + "</textarea>"
}

func (r *Renderer) selectControl(field form.Field, state form.FieldState) string {
	attrs := r.controlAttrs(field, state, "", r.classes.selectControl)

	var options strings.Builder
	if field.Options != nil {
		for _, choice := range field.Options.Choices {
			options.WriteString("<option")
			// An empty key means "no value": the browser submits the label.
			if choice.Key != "" {
				options.WriteString(` value="` + choice.Key + `"`)
			}
			if field.Options.IsSelected(choice.Key) {
				options.WriteString(" selected")
			}
			options.WriteString(">")
			options.WriteString(choice.Label)
			options.WriteString("</option>")
		}
	}
	return "<select" + attrs.String() + ">" + options.String() + "</select>"
}

// checkbox renders the visible box, its trailing label, and a hidden mirror
// input named after the field. The mirror carries 1 or 0 and an onchange
// synchroniser keeps it current, so unchecked boxes still submit a value.
func (r *Renderer) checkbox(field form.Field, state form.FieldState) string {
	attrs := r.controlAttrs(field, state, "checkbox", r.classes.checkbox)
	// The visible box stays nameless; the mirror owns the submitted name.
	attrs = attrs.Del("name")
	if !attrs.Has("onchange") {
		attrs = attrs.Set("onchange",
			"document.getElementById('_'+this.id).value=this.checked?1:0")
	}

	var b strings.Builder
	b.WriteString("<input" + attrs.String() + " />")
	if field.Label != "" {
		b.WriteString(`<label for="` + state.ID + `" class="` + r.classes.checkboxLabel + `">` +
			field.Label + "</label>")
	}

	mirror := "0"
	if field.Attrs.Has("checked") {
		mirror = "1"
	}
	mirrorAttrs := form.Attrs{
		{Name: "name", Value: state.Name},
		{Name: "id", Value: "_" + state.ID},
		{Name: "type", Value: "hidden"},
		{Name: "value", Value: mirror},
	}
	b.WriteString("<input" + mirrorAttrs.String() + " />")
	return b.String()
}

// staticText renders read-only text inside the field wrapper. Only a span is
// emitted; there is no label and no input.
func staticText(field form.Field) string {
	if field.Class != "" {
		return `<span class="` + field.Class + `">` + field.Label + "</span>"
	}
	return "<span>" + field.Label + "</span>"
}

func (r *Renderer) typeAttr(field form.Field) string {
	switch field.Kind {
	case form.KindNumber:
		return "number"
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

func (r *Renderer) label(field form.Field, state form.FieldState) string {
	if field.Label == "" {
		return ""
	}
	return `<label for="` + state.ID + `" class="` + r.classes.label + `">` + field.Label + "</label>"
}

func visible(state form.FieldState) bool {
	return state.HasData && state.Error != ""
}
