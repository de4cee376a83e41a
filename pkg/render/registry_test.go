package render_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nimblemvc/go-form/pkg/form"
	"github.com/nimblemvc/go-form/pkg/render"
)

type namedRenderer struct{ name string }

func (n *namedRenderer) Name() string                       { return n.name }
func (n *namedRenderer) BeginForm(form.FormInfo) string     { return "" }
func (n *namedRenderer) EndForm() string                    { return "" }
func (n *namedRenderer) Field(form.Field, form.FieldState) string { return "" }

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(&namedRenderer{name: "plain"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := registry.Register(&namedRenderer{name: "plain"}); err == nil {
		t.Fatal("duplicate registration should fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("nil renderer should fail")
	}
	if err := registry.Register(&namedRenderer{}); err == nil {
		t.Fatal("unnamed renderer should fail")
	}

	renderer, err := registry.Get("plain")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if renderer.Name() != "plain" {
		t.Fatalf("name = %q", renderer.Name())
	}

	if _, err := registry.Get("missing"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRegistry_ListAndHas(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(&namedRenderer{name: "bootstrap"})
	registry.MustRegister(&namedRenderer{name: "plain"})

	if diff := cmp.Diff([]string{"bootstrap", "plain"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("plain") || registry.Has("tailwind") {
		t.Fatal("Has gave wrong answer")
	}
}

func TestRegistry_MustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	render.NewRegistry().MustGet("missing")
}
