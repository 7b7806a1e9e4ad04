package template_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-couchforms/pkg/render/template"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{Data: []byte("Hello {{ name }}!")},
		"partial.html":  &fstest.MapFile{Data: []byte("<p>{{ body }}</p>")},
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := template.New(); err == nil {
		t.Fatal("expected an error without a template source")
	}
}

func TestRenderTemplate_AppendsExtension(t *testing.T) {
	engine, err := template.New(template.WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "world"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "Hello world!" {
		t.Fatalf("got %q", out)
	}
}

func TestRenderTemplate_CustomExtension(t *testing.T) {
	engine, err := template.New(template.WithFS(testFS()), template.WithExtension("html"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderTemplate("partial", map[string]any{"body": "hi"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "<p>hi</p>" {
		t.Fatalf("got %q", out)
	}
}

func TestRenderTemplate_MissingTemplate(t *testing.T) {
	engine, err := template.New(template.WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := engine.RenderTemplate("nope", nil); err == nil {
		t.Fatal("expected an error for a missing template")
	}
	if _, err := engine.RenderTemplate("nope", nil); err == nil {
		t.Fatal("missing templates must keep failing on repeat lookups")
	}
}

func TestRenderString(t *testing.T) {
	engine, err := template.New(template.WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderString("{{ a }}-{{ b }}", map[string]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "1-2" {
		t.Fatalf("got %q", out)
	}

	if _, err := engine.RenderString("{% if %}", nil); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestRenderTemplate_EscapesByDefault(t *testing.T) {
	files := fstest.MapFS{
		"value.tmpl": &fstest.MapFile{Data: []byte("{{ value }}")},
	}
	engine, err := template.New(template.WithFS(files))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderTemplate("value", map[string]any{"value": "<script>"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected auto-escaped output, got %q", out)
	}
}
