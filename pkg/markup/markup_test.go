package markup_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-couchforms/pkg/markup"
	"github.com/goliatone/go-couchforms/pkg/model"
)

func TestClasses(t *testing.T) {
	cases := []struct {
		name   string
		field  model.Field
		errs   []string
		expect []string
	}{
		{
			name:   "bare field",
			field:  model.Field{},
			expect: []string{"field"},
		},
		{
			name:   "required without errors",
			field:  model.Field{Required: true},
			expect: []string{"field", "required"},
		},
		{
			name:   "errors without required",
			field:  model.Field{},
			errs:   []string{"bad value"},
			expect: []string{"field", "error"},
		},
		{
			name:   "errors and required keep fixed order",
			field:  model.Field{Required: true},
			errs:   []string{"bad value"},
			expect: []string{"field", "error", "required"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := markup.Classes(tc.field, tc.errs)
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Fatalf("classes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLabelText(t *testing.T) {
	if got := markup.LabelText(model.Field{}, "first_name"); got != "First name" {
		t.Fatalf("expected humanised name, got %q", got)
	}
	if got := markup.LabelText(model.Field{Label: "Custom"}, "x"); got != "Custom" {
		t.Fatalf("expected explicit label to win, got %q", got)
	}
	if got := markup.LabelText(model.Field{}, ""); got != "" {
		t.Fatalf("expected empty name to stay empty, got %q", got)
	}
}

func TestLabel_EscapesUntrustedText(t *testing.T) {
	field := model.Field{Label: `<b onmouseover="x()">Name</b>`}
	got := markup.Label(field, "name", "cf-name")

	if strings.Contains(got, "<b") {
		t.Fatalf("expected label text to be escaped, got %q", got)
	}
	if !strings.Contains(got, `for="cf-name"`) {
		t.Fatalf("expected for attribute, got %q", got)
	}
}

func TestDescriptionAndHint_EmptyFieldsRenderNothing(t *testing.T) {
	if got := markup.Description(model.Field{}); got != "" {
		t.Fatalf("expected empty description output, got %q", got)
	}
	if got := markup.Hint(model.Field{}); got != "" {
		t.Fatalf("expected empty hint output, got %q", got)
	}

	field := model.Field{Description: "About & beyond", Hint: "lowercase only"}
	if got := markup.Description(field); got != `<div class="description">About &amp; beyond</div>` {
		t.Fatalf("unexpected description markup: %q", got)
	}
	if got := markup.Hint(field); got != `<div class="hint">lowercase only</div>` {
		t.Fatalf("unexpected hint markup: %q", got)
	}
}

func TestErrorList(t *testing.T) {
	if got := markup.ErrorList(nil); got != "" {
		t.Fatalf("expected empty list to render nothing, got %q", got)
	}

	got := markup.ErrorList([]string{"too short", "<script>"})
	if !strings.HasPrefix(got, `<ul class="errors">`) || !strings.HasSuffix(got, `</ul>`) {
		t.Fatalf("unexpected wrapper: %q", got)
	}
	if !strings.Contains(got, "<li>too short</li>") {
		t.Fatalf("missing message: %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected messages to be escaped: %q", got)
	}
}

func TestWithTypeDefaults(t *testing.T) {
	docType := &model.DocumentType{Name: "comment", Label: "Comment", Description: "A reply"}

	got := markup.WithTypeDefaults(model.Field{Type: docType})
	if got.Label != "Comment" || got.Description != "A reply" {
		t.Fatalf("expected type metadata to fill empty field text, got %+v", got)
	}

	got = markup.WithTypeDefaults(model.Field{Type: docType, Label: "Mine", Description: "Kept"})
	if got.Label != "Mine" || got.Description != "Kept" {
		t.Fatalf("expected field text to win over type metadata, got %+v", got)
	}
}

func TestControlID(t *testing.T) {
	if got := markup.ControlID("author.email"); got != "cf-author-email" {
		t.Fatalf("unexpected control id: %q", got)
	}
	if got := markup.ControlID("  "); got != "" {
		t.Fatalf("expected blank name to yield no id, got %q", got)
	}
}
