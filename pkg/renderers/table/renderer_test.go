package table_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-couchforms/pkg/assets"
	"github.com/goliatone/go-couchforms/pkg/model"
	"github.com/goliatone/go-couchforms/pkg/render"
	"github.com/goliatone/go-couchforms/pkg/renderers/table"
)

type stubWidget struct {
	typ    string
	markup string
}

func (w stubWidget) Type() string { return w.typ }

func (w stubWidget) HTML(_ string, _, _ any, _ model.Field) string { return w.markup }

type namingWidget struct {
	typ   string
	names *[]string
}

func (w namingWidget) Type() string { return w.typ }

func (w namingWidget) HTML(name string, _, _ any, _ model.Field) string {
	*w.names = append(*w.names, name)
	return "<input>"
}

func TestRenderer_GroupedFieldScenario(t *testing.T) {
	r := table.New(table.WithScripts(assets.NewScriptRegistry()))

	var b strings.Builder
	b.WriteString(r.Start())
	b.WriteString(r.BeginGroup(model.Path{"root", "address"}))
	b.WriteString(r.Field(
		model.Field{Required: true, Widget: stubWidget{typ: "text", markup: "<input>"}},
		model.Path{"root", "address", "city"},
		"NYC", "NYC", nil,
	))
	b.WriteString(r.EndGroup(model.Path{"root", "address"}))
	b.WriteString(r.End())
	out := b.String()

	if err := r.Err(); err != nil {
		t.Fatalf("balanced traversal reported error: %v", err)
	}

	for _, tag := range []string{"table", "tbody", "tr", "th", "td"} {
		open := strings.Count(out, "<"+tag)
		closed := strings.Count(out, "</"+tag+">")
		if open != closed {
			t.Fatalf("unbalanced <%s>: %d open, %d closed\n%s", tag, open, closed, out)
		}
	}

	if strings.Count(out, `class="level-1"`) != 1 {
		t.Fatalf("expected exactly one level-1 heading:\n%s", out)
	}
	if !strings.Contains(out, `<h3 class="level-1">Address</h3>`) {
		t.Fatalf("missing group heading:\n%s", out)
	}
	if !strings.Contains(out, "<input>") {
		t.Fatalf("missing widget markup:\n%s", out)
	}
	if !strings.Contains(out, `>City</label>`) {
		t.Fatalf("expected label relative to the enclosing group:\n%s", out)
	}
	if !strings.Contains(out, `<tr class="field required">`) {
		t.Fatalf("missing field row classes:\n%s", out)
	}
	if !strings.Contains(out, `for="cf-root-address-city"`) {
		t.Fatalf("expected label bound to full dotted name:\n%s", out)
	}
}

func TestRenderer_HiddenFieldSkipsChrome(t *testing.T) {
	r := table.New()

	out := r.Field(
		model.Field{Widget: stubWidget{typ: "hidden", markup: `<input type="hidden">`}},
		model.Path{"_id"}, "post-1", nil, nil,
	)

	if out != `<input type="hidden">` {
		t.Fatalf("expected bare widget markup for hidden fields, got %q", out)
	}
}

func TestRenderer_FieldErrors(t *testing.T) {
	r := table.New()

	out := r.Field(
		model.Field{Widget: stubWidget{typ: "text", markup: "<input>"}},
		model.Path{"title"}, "", "", []string{"Required field"},
	)

	if !strings.Contains(out, `<tr class="field error">`) {
		t.Fatalf("expected error class on row:\n%s", out)
	}
	if !strings.Contains(out, `<td class="errors"><ul class="errors"><li>Required field</li></ul></td>`) {
		t.Fatalf("expected error cell with message list:\n%s", out)
	}
}

func TestRenderer_EmbedRegistersBootstrapOnce(t *testing.T) {
	scripts := assets.NewScriptRegistry()
	r := table.New(table.WithScripts(scripts))
	docType := &model.DocumentType{Name: "comment", Label: "Comment"}

	r.Embed(model.Field{Type: docType, Widget: stubWidget{typ: "embed", markup: "<e>"}},
		model.Path{"featured"}, nil, nil, nil)
	r.EmbedList(model.Field{Type: docType, Widget: stubWidget{typ: "embed-list", markup: "<e>"}},
		model.Path{"comments"}, []any{map[string]any{}}, nil, nil)
	r.Embed(model.Field{Type: docType, Widget: stubWidget{typ: "embed", markup: "<e>"}},
		model.Path{"another"}, nil, nil, nil)

	if scripts.Len() != 1 {
		t.Fatalf("expected one shared init entry, got %d", scripts.Len())
	}
	if !scripts.Has(render.EmbedInitName) {
		t.Fatalf("expected entry under %q, got %v", render.EmbedInitName, scripts.Names())
	}
}

func TestRenderer_EmbedUsesTypeMetadata(t *testing.T) {
	r := table.New(table.WithScripts(assets.NewScriptRegistry()))
	docType := &model.DocumentType{Name: "comment", Label: "Comment", Description: "A reply"}

	out := r.Embed(model.Field{Type: docType, Widget: stubWidget{typ: "embed", markup: "<e>"}},
		model.Path{"featured_comment"}, nil, nil, nil)

	if !strings.Contains(out, ">Comment</label>") {
		t.Fatalf("expected label from document type:\n%s", out)
	}
	if !strings.Contains(out, `<div class="description">A reply</div>`) {
		t.Fatalf("expected description from document type:\n%s", out)
	}
}

func TestRenderer_EmbedListRendersOneUnitPerElement(t *testing.T) {
	var names []string
	r := table.New(table.WithScripts(assets.NewScriptRegistry()))

	out := r.EmbedList(
		model.Field{Widget: namingWidget{typ: "embed-list", names: &names}},
		model.Path{"comments"},
		[]any{map[string]any{"_id": "c1"}, map[string]any{"_id": "c2"}},
		nil,
		[]string{"one of the comments is off"},
	)

	if len(names) != 2 || names[0] != "comments.0" || names[1] != "comments.1" {
		t.Fatalf("unexpected element names: %v", names)
	}
	if strings.Count(out, `<div class="item">`) != 2 {
		t.Fatalf("expected one item wrapper per element:\n%s", out)
	}
	if strings.Count(out, `<ul class="errors">`) != 1 {
		t.Fatalf("expected one shared error list:\n%s", out)
	}
}

func TestRenderer_UnbalancedGroupsReported(t *testing.T) {
	r := table.New()
	r.Start()
	r.EndGroup(model.Path{"root"})

	if r.Err() == nil {
		t.Fatal("expected unmatched EndGroup to be reported")
	}
}

func TestFactory_SatisfiesContract(t *testing.T) {
	scripts := assets.NewScriptRegistry()
	visitor := table.Factory(scripts)

	if out := visitor.Start(); !strings.Contains(out, "<table") {
		t.Fatalf("unexpected opening markup: %q", out)
	}
	visitor.Embed(model.Field{Widget: stubWidget{typ: "embed", markup: "<e>"}},
		model.Path{"x"}, nil, nil, nil)
	if !scripts.Has(render.EmbedInitName) {
		t.Fatal("expected factory-built visitor to use the supplied registry")
	}
}
