package model

import "strings"

// Widget renders the input control for a single field. Implementations are
// supplied by the caller (or by the built-in set in pkg/widgets) and must be
// safe to share across render passes.
type Widget interface {
	// Type returns the widget's tag, e.g. "text" or "hidden". Renderers give
	// "hidden" widgets special treatment: no surrounding chrome is emitted.
	Type() string
	// HTML produces the control markup for the given name attribute, parsed
	// value, and raw (pre-parse) value.
	HTML(name string, value, raw any, field Field) string
}

// DocumentType describes the schema identity of an embedded sub-document.
// It reuses the label/description conventions of Field so embed markup can
// fall back to type-level metadata when the field carries none.
type DocumentType struct {
	Name        string `json:"name" yaml:"name"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Field is the declarative descriptor for one form field. Renderers treat it
// as immutable for the duration of a render pass.
type Field struct {
	Label       string        `json:"label,omitempty" yaml:"label,omitempty"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Hint        string        `json:"hint,omitempty" yaml:"hint,omitempty"`
	Required    bool          `json:"required,omitempty" yaml:"required,omitempty"`
	Widget      Widget        `json:"-" yaml:"-"`
	Type        *DocumentType `json:"type,omitempty" yaml:"type,omitempty"`

	// Trusted marks the descriptor's label, description, and hint as
	// developer-authored markup. Trusted text is still sanitised before it is
	// emitted; untrusted text is HTML-escaped.
	Trusted bool `json:"trusted,omitempty" yaml:"trusted,omitempty"`
}

// WidgetType returns the field widget's type tag, or "" without a widget.
func (f Field) WidgetType() string {
	if f.Widget == nil {
		return ""
	}
	return f.Widget.Type()
}

// Hidden reports whether the field renders through a hidden widget.
func (f Field) Hidden() bool {
	return f.WidgetType() == "hidden"
}

// Path identifies a field's position in the nested document as an ordered
// sequence of segments.
type Path []string

// String joins the segments with "." to form an HTML name attribute.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Last returns the final segment, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Caption returns the path relative to the innermost enclosing group by
// stripping the first depth segments, joined with spaces. A depth at or past
// the path length yields the last segment so captions never go empty for
// non-empty paths.
func (p Path) Caption(depth int) string {
	if len(p) == 0 {
		return ""
	}
	if depth < 0 {
		depth = 0
	}
	if depth >= len(p) {
		depth = len(p) - 1
	}
	return strings.Join(p[depth:], " ")
}

// Append returns a new path extended by the given segments, never sharing
// backing storage with the receiver.
func (p Path) Append(segments ...string) Path {
	out := make(Path, 0, len(p)+len(segments))
	out = append(out, p...)
	out = append(out, segments...)
	return out
}
