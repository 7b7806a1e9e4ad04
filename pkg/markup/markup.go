// Package markup builds the small HTML fragments shared by every renderer:
// class lists, labels, descriptions, hints, and error lists. All helpers are
// pure functions; output is deterministic for a given field and error list.
//
// Caller-supplied text is HTML-escaped by default. Fields marked Trusted emit
// sanitised rich text instead (see Rich); raw interpolation never happens.
package markup

import (
	"html"
	"strings"
	"unicode"

	"github.com/goliatone/go-couchforms/pkg/model"
)

// Safe marks a string as markup that may be emitted without escaping.
// Values should only be constructed from developer-authored content,
// typically via Rich.
type Safe string

// Text escapes a plain string for interpolation into HTML.
func Text(s string) string {
	return html.EscapeString(s)
}

// Classes returns the CSS class list for a field unit: always "field", plus
// "error" when the error list is non-empty, plus "required" when the field is
// flagged required. The order is fixed and used verbatim as a class string.
func Classes(field model.Field, errs []string) []string {
	out := []string{"field"}
	if len(errs) > 0 {
		out = append(out, "error")
	}
	if field.Required {
		out = append(out, "required")
	}
	return out
}

// ClassAttr joins Classes into the value of a class attribute.
func ClassAttr(field model.Field, errs []string) string {
	return strings.Join(Classes(field, errs), " ")
}

// LabelText returns the field's label when set, otherwise a humanised form of
// name: first rune upper-cased, underscores replaced by spaces.
func LabelText(field model.Field, name string) string {
	if field.Label != "" {
		return field.Label
	}
	return Humanize(name)
}

// Humanize upper-cases the first rune of name and replaces underscores with
// spaces.
func Humanize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(strings.ReplaceAll(name, "_", " "))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Label renders a label element bound to the control with the given id.
func Label(field model.Field, name, id string) string {
	var b strings.Builder
	b.WriteString(`<label for="`)
	b.WriteString(Text(id))
	b.WriteString(`">`)
	b.WriteString(fieldText(field, LabelText(field, name)))
	b.WriteString(`</label>`)
	return b.String()
}

// Description renders the field description wrapped in a div, or "" when the
// field has none.
func Description(field model.Field) string {
	if field.Description == "" {
		return ""
	}
	return `<div class="description">` + fieldText(field, field.Description) + `</div>`
}

// Hint renders the field hint wrapped in a div, or "" when the field has none.
func Hint(field model.Field) string {
	if field.Hint == "" {
		return ""
	}
	return `<div class="hint">` + fieldText(field, field.Hint) + `</div>`
}

// ErrorList renders an unordered list of error messages, or "" for an empty
// list. Messages are always escaped; they originate outside the descriptor.
func ErrorList(errs []string) string {
	if len(errs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<ul class="errors">`)
	for _, msg := range errs {
		b.WriteString(`<li>`)
		b.WriteString(Text(msg))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
	return b.String()
}

// WithTypeDefaults returns a copy of the field with its label and description
// defaulted from the embedded document type's metadata. Renderers use it so
// embed markup falls back to type-level text when the field carries none.
func WithTypeDefaults(field model.Field) model.Field {
	if field.Type == nil {
		return field
	}
	if field.Label == "" {
		field.Label = field.Type.Label
	}
	if field.Description == "" {
		field.Description = field.Type.Description
	}
	return field
}

// ControlID derives the id attribute for a field's control from its name
// attribute, mirroring the dotted path with dashes.
func ControlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "cf-" + strings.ReplaceAll(trimmed, ".", "-")
}

func fieldText(field model.Field, s string) string {
	if field.Trusted {
		return string(Rich(s))
	}
	return Text(s)
}
