// form-preview renders a form derived from an OpenAPI component schema in
// the terminal: it prompts for every field, runs the derived validation
// rules against the answers, prints the error map, and can write the themed
// HTML with the answers bound.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/nimblemvc/go-form/pkg/fieldpath"
	"github.com/nimblemvc/go-form/pkg/form"
	"github.com/nimblemvc/go-form/pkg/render"
	_ "github.com/nimblemvc/go-form/pkg/renderers/bootstrap"
	_ "github.com/nimblemvc/go-form/pkg/renderers/plain"
	"github.com/nimblemvc/go-form/pkg/request"
	"github.com/nimblemvc/go-form/pkg/schemaform"
	"github.com/nimblemvc/go-form/pkg/validation"
)

func main() {
	source := flag.String("source", "schema.json", "OpenAPI document path")
	schemaName := flag.String("schema", "", "component schema to preview")
	theme := flag.String("theme", "bootstrap", "renderer theme for HTML output")
	locale := flag.String("locale", "en", "validation message locale (BCP 47 tag)")
	output := flag.String("output", "", "write rendered HTML to file (skipped if empty)")
	flag.Parse()

	if *schemaName == "" {
		log.Fatal("missing -schema: name of the component schema to preview")
	}

	ref, err := loadSchema(*source, *schemaName)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	catalog, err := catalogFor(*locale)
	if err != nil {
		log.Fatalf("Failed to resolve locale: %v", err)
	}

	f := form.New(form.WithCatalog(catalog))
	spec, err := schemaform.Apply(f, ref)
	if err != nil {
		log.Fatalf("Failed to derive form: %v", err)
	}

	payload, err := promptFields(f.Fields())
	if err != nil {
		log.Fatalf("Prompt aborted: %v", err)
	}

	errs := validation.NewEngine(spec, payload, validation.WithCatalog(catalog)).Run()
	printErrors(errs)

	if *output != "" {
		html, err := renderHTML(ref, *theme, catalog, payload)
		if err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
		if err := os.WriteFile(*output, []byte(html), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	}
}

func loadSchema(path, name string) (*openapi3.SchemaRef, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok {
		return nil, fmt.Errorf("schema %q not found (have: %s)",
			name, strings.Join(schemaNames(doc.Components.Schemas), ", "))
	}
	return ref, nil
}

func schemaNames(schemas openapi3.Schemas) []string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func catalogFor(tag string) (*validation.Catalog, error) {
	locale, err := validation.ParseLocale(tag)
	if err != nil {
		return nil, err
	}
	return validation.NewCatalog(locale)
}

// promptFields asks one question per declared field and assembles the
// answers into a nested payload keyed by each field's path segments.
func promptFields(fields []form.Field) (request.Payload, error) {
	payload := request.Payload{}

	for _, field := range fields {
		answer, asked, err := promptField(field)
		if err != nil {
			return nil, err
		}
		if !asked {
			continue
		}
		assign(payload, fieldpath.Segments(field.Path), answer)
	}
	return payload, nil
}

func promptField(field form.Field) (string, bool, error) {
	if field.Path == "" {
		return "", false, nil
	}

	message := field.Label
	if message == "" {
		message = field.Path
	}

	switch field.Kind {
	case form.KindCheckbox:
		var checked bool
		prompt := &survey.Confirm{Message: message, Default: field.Attrs.Has("checked")}
		if err := survey.AskOne(prompt, &checked); err != nil {
			return "", false, err
		}
		if checked {
			return "1", true, nil
		}
		return "0", true, nil
	case form.KindSelect:
		if field.Options == nil || len(field.Options.Choices) == 0 {
			return "", false, nil
		}
		options := make([]string, 0, len(field.Options.Choices))
		byLabel := make(map[string]string, len(field.Options.Choices))
		for _, choice := range field.Options.Choices {
			options = append(options, choice.Label)
			byLabel[choice.Label] = choice.Key
		}
		prompt := &survey.Select{Message: message, Options: options}
		for _, choice := range field.Options.Choices {
			if field.Options.IsSelected(choice.Key) {
				prompt.Default = choice.Label
				break
			}
		}
		var picked string
		if err := survey.AskOne(prompt, &picked); err != nil {
			return "", false, err
		}
		return byLabel[picked], true, nil
	case form.KindTextarea:
		var text string
		prompt := &survey.Multiline{Message: message, Default: field.Content}
		if err := survey.AskOne(prompt, &text); err != nil {
			return "", false, err
		}
		return text, true, nil
	case form.KindHidden, form.KindSubmit, form.KindRaw,
		form.KindGroupStart, form.KindGroupStop, form.KindTitle:
		return "", false, nil
	default:
		var text string
		defaultValue, _ := field.Attrs.Get("value")
		prompt := &survey.Input{Message: message, Default: defaultValue}
		if err := survey.AskOne(prompt, &text); err != nil {
			return "", false, err
		}
		return text, true, nil
	}
}

func assign(node request.Payload, segments []string, value string) {
	if len(segments) == 0 {
		return
	}
	head := segments[0]
	if len(segments) == 1 {
		node[head] = value
		return
	}
	child, ok := node[head].(request.Payload)
	if !ok {
		child = request.Payload{}
		node[head] = child
	}
	assign(child, segments[1:], value)
}

func printErrors(errs validation.Errors) {
	if len(errs) == 0 {
		fmt.Println("All fields valid.")
		return
	}

	paths := make([]string, 0, len(errs))
	for path := range errs {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	fmt.Printf("%d field(s) failed validation:\n", len(errs))
	for _, path := range paths {
		fmt.Printf("  %s: %s\n", path, errs[path])
	}
}

// renderHTML rebuilds the form with the collected answers bound so the
// written markup reflects the preview session.
func renderHTML(ref *openapi3.SchemaRef, theme string, catalog *validation.Catalog, payload request.Payload) (string, error) {
	renderer, err := render.Get(theme)
	if err != nil {
		return "", err
	}

	f := form.New(
		form.WithRenderer(renderer),
		form.WithCatalog(catalog),
		form.WithData(payload),
	)
	if _, err := schemaform.Apply(f, ref); err != nil {
		return "", err
	}
	return f.Render()
}
