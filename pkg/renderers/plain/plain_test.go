package plain_test

import (
	"testing"

	"github.com/nimblemvc/go-form/pkg/form"
	"github.com/nimblemvc/go-form/pkg/render"
	"github.com/nimblemvc/go-form/pkg/renderers/plain"
	"github.com/nimblemvc/go-form/pkg/request"
)

func TestRenderer_RegistersItself(t *testing.T) {
	if !render.Default().Has(plain.Name) {
		t.Fatal("plain renderer should self-register")
	}
}

func TestRenderer_Input(t *testing.T) {
	f := form.New(
		form.WithAction("/save"),
		form.WithRenderer(plain.New()),
	)
	f.AddInput("user/name", "Name", nil)

	got, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<form action="/save" method="POST">` +
		`<label for="userName">Name</label><br />` +
		`<input name="user[name]" id="userName" type="text" /><br />` +
		`</form>`
	if got != want {
		t.Fatalf("html mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestRenderer_WithoutLineBreaks(t *testing.T) {
	f := form.New(form.WithRenderer(plain.New(plain.WithoutLineBreaks())))
	f.AddInput("q", "", nil)

	got, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<form action="" method="POST"><input name="q" id="q" type="text" /></form>`
	if got != want {
		t.Fatalf("html mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestRenderer_Checkbox(t *testing.T) {
	f := form.New(
		form.WithRenderer(plain.New(plain.WithoutLineBreaks())),
		form.WithData(request.Payload{"terms": "1"}),
	)
	f.AddCheckbox("terms", "Accept", nil)

	got, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<form action="" method="POST">` +
		`<input name="terms" id="terms" type="checkbox" checked="checked" />Accept` +
		`</form>`
	if got != want {
		t.Fatalf("html mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestRenderer_SelectAndTextarea(t *testing.T) {
	f := form.New(form.WithRenderer(plain.New(plain.WithoutLineBreaks())))
	f.AddSelect("lang", "Language",
		[]form.Choice{{Key: "pl", Label: "Polish"}, {Key: "en", Label: "English"}},
		[]string{"en"}, nil).
		AddTextarea("bio", "Bio", form.Attrs{{Name: "value", Value: "hello"}})

	got, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<form action="" method="POST">` +
		`<label for="lang">Language</label>` +
		`<select name="lang" id="lang">` +
		`<option value="pl">Polish</option>` +
		`<option value="en" selected>English</option>` +
		`</select>` +
		`<label for="bio">Bio</label>` +
		`<textarea name="bio" id="bio">hello</textarea>` +
		`</form>`
	if got != want {
		t.Fatalf("html mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestRenderer_HiddenIdentityAndSubmit(t *testing.T) {
	f := form.New(
		form.WithID("login"),
		form.WithRenderer(plain.New(plain.WithoutLineBreaks())),
	)
	f.AddSubmitButton("Save", nil)

	got, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<form action="" method="POST">` +
		`<input type="submit" value="Save" />` +
		`<input name="formId" id="formid" type="hidden" value="login" />` +
		`</form>`
	if got != want {
		t.Fatalf("html mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestRenderer_QuoteWrappingAttribute(t *testing.T) {
	f := form.New(form.WithRenderer(plain.New(plain.WithoutLineBreaks())))
	f.AddInput("q", "", form.Attrs{{Name: "placeholder", Value: `say "hi"`}})

	got, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<form action="" method="POST">` +
		`<input name="q" id="q" type="text" placeholder='say "hi"' />` +
		`</form>`
	if got != want {
		t.Fatalf("html mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestRenderer_StaticText(t *testing.T) {
	f := form.New(form.WithRenderer(plain.New(plain.WithoutLineBreaks())))
	f.AddStaticText("Read the terms below", "text-muted").
		AddStaticText("No class here", "")

	got, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<form action="" method="POST">` +
		`<span class="text-muted">Read the terms below</span>` +
		`<span>No class here</span>` +
		`</form>`
	if got != want {
		t.Fatalf("html mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestRenderer_RawAndTitle(t *testing.T) {
	f := form.New(
		form.WithRenderer(plain.New(plain.WithoutLineBreaks())),
		form.WithoutSanitizer(),
	)
	f.AddTitle("Account").AddRawMarkup("<hr>")

	got, err := f.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<form action="" method="POST"><h3>Account</h3><hr></form>`
	if got != want {
		t.Fatalf("html mismatch\n got: %s\nwant: %s", got, want)
	}
}
