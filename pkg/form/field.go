package form

import "strings"

// Kind enumerates the declared field and layout directive types.
type Kind string

const (
	KindInput      Kind = "input"
	KindNumber     Kind = "number"
	KindTextarea   Kind = "textarea"
	KindSelect     Kind = "select"
	KindCheckbox   Kind = "checkbox"
	KindHidden     Kind = "hidden"
	KindSubmit     Kind = "submit"
	KindStaticText Kind = "static-text"
	KindRaw        Kind = "raw"
	KindGroupStart Kind = "group-start"
	KindGroupStop  Kind = "group-stop"
	KindTitle      Kind = "title"
)

// Attr is a single HTML attribute. Attrs preserve declaration order, which is
// also emission order.
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered attribute list.
type Attrs []Attr

// Get returns the value for name and whether it is present.
func (a Attrs) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether name is present.
func (a Attrs) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set replaces the value of an existing attribute in place, or appends a new
// one, and returns the updated list.
func (a Attrs) Set(name, value string) Attrs {
	for i := range a {
		if a[i].Name == name {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Name: name, Value: value})
}

// Del removes an attribute and returns the updated list.
func (a Attrs) Del(name string) Attrs {
	out := a[:0]
	for _, attr := range a {
		if attr.Name != name {
			out = append(out, attr)
		}
	}
	return out
}

// Clone returns an independent copy.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	return append(Attrs{}, a...)
}

// String serialises the attributes for embedding in a tag. Each attribute is
// emitted as ` name="value"`; when the value itself contains a double quote
// the value is wrapped in single quotes instead, preventing quote breakage.
func (a Attrs) String() string {
	var b strings.Builder
	for _, attr := range a {
		b.WriteString(" ")
		b.WriteString(attr.Name)
		if strings.Contains(attr.Value, `"`) {
			b.WriteString("='")
			b.WriteString(attr.Value)
			b.WriteString("'")
			continue
		}
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteString(`"`)
	}
	return b.String()
}

// Choice is one select option: a submission key and its visible label.
type Choice struct {
	Key   string
	Label string
}

// Options holds a select field's choice list and the selected key set.
type Options struct {
	Choices  []Choice
	Selected []string
}

// IsSelected reports whether key is part of the current selection.
func (o *Options) IsSelected(key string) bool {
	if o == nil {
		return false
	}
	for _, selected := range o.Selected {
		if selected == key {
			return true
		}
	}
	return false
}

// GroupSpec configures a layout group opened by StartGroup.
type GroupSpec struct {
	Columns  int
	RowAttrs Attrs
	ColAttrs Attrs
}

// Field is one declared form control or layout directive. Fields are
// immutable once appended to a form; the builder methods construct them and
// the form owns them for the duration of one build pass.
type Field struct {
	Kind    Kind
	Path    string
	Label   string
	Attrs   Attrs
	Options *Options
	Class   string
	Content string
	Group   *GroupSpec
}
