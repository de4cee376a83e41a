package form

// FormInfo describes the form element itself for renderers.
type FormInfo struct {
	Action string
	Method string
	ID     string
}

// FieldState carries per-field render context resolved by the form: the
// HTML name/id derived from the field path, the first validation error for
// the path (empty when none, or when no submission data is present), and the
// active layout group.
type FieldState struct {
	Name    string
	ID      string
	Error   string
	HasData bool
	Group   *GroupSpec
}

// Renderer emits markup for a form and its fields. Theme variants implement
// this interface and differ only in markup and class decisions; the form
// drives iteration, value binding, and error lookup.
type Renderer interface {
	Name() string
	BeginForm(info FormInfo) string
	EndForm() string
	Field(field Field, state FieldState) string
}
