package form

import (
	"fmt"
	"strconv"
)

// DefaultFloatStep is the step attribute applied to float inputs that do not
// declare their own.
const DefaultFloatStep = "0.01"

// AddField appends a fully specified field after binding it against the
// current data. Most callers use the typed Add* helpers instead.
func (f *Form) AddField(field Field) *Form {
	f.fields = append(f.fields, f.bindField(field))
	return f
}

// AddInput appends a text-like input. The type attribute defaults to "text"
// when attrs do not set one.
func (f *Form) AddInput(path, label string, attrs Attrs) *Form {
	if !attrs.Has("type") {
		attrs = attrs.Clone().Set("type", "text")
	}
	return f.AddField(Field{Kind: KindInput, Path: path, Label: label, Attrs: attrs})
}

// AddFloatInput appends a numeric input accepting decimals. A step attribute
// of 0.01 is applied unless attrs declare their own.
func (f *Form) AddFloatInput(path, label string, attrs Attrs) *Form {
	attrs = attrs.Clone().Set("type", "number")
	if !attrs.Has("step") {
		attrs = attrs.Set("step", DefaultFloatStep)
	}
	return f.AddField(Field{Kind: KindNumber, Path: path, Label: label, Attrs: attrs})
}

// AddTextarea appends a textarea. Bound data becomes the element content
// rather than a value attribute.
func (f *Form) AddTextarea(path, label string, attrs Attrs) *Form {
	return f.AddField(Field{Kind: KindTextarea, Path: path, Label: label, Attrs: attrs})
}

// AddSelect appends a select with the given choices. Selected keys passed
// here act as the default; a bound value from submission or model data
// replaces them entirely.
func (f *Form) AddSelect(path, label string, choices []Choice, selected []string, attrs Attrs) *Form {
	return f.AddField(Field{
		Kind:    KindSelect,
		Path:    path,
		Label:   label,
		Attrs:   attrs,
		Options: &Options{Choices: choices, Selected: selected},
	})
}

// AddCheckbox appends a checkbox. A truthy bound value (non-empty after
// trimming and not "0") marks it checked.
func (f *Form) AddCheckbox(path, label string, attrs Attrs) *Form {
	return f.AddField(Field{Kind: KindCheckbox, Path: path, Label: label, Attrs: attrs})
}

// AddHidden appends a hidden input carrying value.
func (f *Form) AddHidden(path, value string) *Form {
	return f.AddField(Field{Kind: KindHidden, Path: path, Attrs: Attrs{{Name: "value", Value: value}}})
}

// AddSubmitButton appends a submit control labelled with value.
func (f *Form) AddSubmitButton(value string, attrs Attrs) *Form {
	return f.AddField(Field{Kind: KindSubmit, Label: value, Attrs: attrs})
}

// AddStaticText appends read-only text rendered as a span in place of a
// control. No input element is emitted and nothing binds or submits. The
// class, when non-empty, becomes the span's class attribute.
func (f *Form) AddStaticText(label, class string) *Form {
	return f.AddField(Field{Kind: KindStaticText, Label: label, Class: class})
}

// AddRawMarkup appends arbitrary markup emitted verbatim between fields.
// The configured bluemonday policy sanitises it first; see WithoutSanitizer.
func (f *Form) AddRawMarkup(markup string) *Form {
	if f.sanitizer != nil {
		markup = f.sanitizer.Sanitize(markup)
	}
	return f.AddField(Field{Kind: KindRaw, Content: markup})
}

// AddTitle appends a heading rendered between fields.
func (f *Form) AddTitle(title string) *Form {
	return f.AddField(Field{Kind: KindTitle, Content: title})
}

// StartGroup opens a layout group laying subsequent fields out in columns.
// An already open group is closed first; groups do not nest.
func (f *Form) StartGroup(columns int, rowAttrs, colAttrs Attrs) *Form {
	if f.group {
		f.StopGroup()
	}
	if columns < 1 {
		columns = 1
	}
	f.group = true
	return f.AddField(Field{Kind: KindGroupStart, Group: &GroupSpec{
		Columns:  columns,
		RowAttrs: rowAttrs,
		ColAttrs: colAttrs,
	}})
}

// StopGroup closes the open layout group. A no-op when none is open.
func (f *Form) StopGroup() *Form {
	if !f.group {
		return f
	}
	f.group = false
	return f.AddField(Field{Kind: KindGroupStop})
}

// buildField constructs and binds a field in one step; Render uses it for
// the injected identity field.
func (f *Form) buildField(kind Kind, path, label string, attrs Attrs, options *Options, content string) Field {
	return f.bindField(Field{
		Kind:    kind,
		Path:    path,
		Label:   label,
		Attrs:   attrs,
		Options: options,
		Content: content,
	})
}

// bindField merges the bound value for the field's path into the field:
// checkboxes gain checked="checked" for truthy values, textareas receive the
// value as content, selects replace their selection, and other inputs
// receive a value attribute. Fields without a bound value pass through
// unchanged.
func (f *Form) bindField(field Field) Field {
	if field.Path == "" {
		return field
	}
	bound, ok := f.bind(field.Path)
	if !ok {
		return field
	}

	switch field.Kind {
	case KindCheckbox:
		if truthy(bound) {
			field.Attrs = field.Attrs.Clone().Set("checked", "checked")
		} else {
			field.Attrs = field.Attrs.Clone().Del("checked")
		}
	case KindTextarea:
		if s, ok := scalarString(bound); ok {
			field.Content = s
		}
	case KindSelect:
		if keys := selectionKeys(bound); keys != nil {
			options := &Options{Selected: keys}
			if field.Options != nil {
				options.Choices = field.Options.Choices
			}
			field.Options = options
		}
	default:
		if s, ok := scalarString(bound); ok {
			field.Attrs = field.Attrs.Clone().Set("value", s)
		}
	}
	return field
}

// selectionKeys normalises a bound select value into selection keys: scalars
// become a single key, slices contribute each scalar element.
func selectionKeys(bound any) []string {
	switch v := bound.(type) {
	case []string:
		return append([]string{}, v...)
	case []any:
		keys := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := scalarString(item); ok {
				keys = append(keys, s)
			}
		}
		return keys
	case map[string]any:
		return nil
	case bool:
		return []string{strconv.FormatBool(v)}
	case nil:
		return nil
	case string:
		return []string{v}
	default:
		return []string{fmt.Sprint(v)}
	}
}
