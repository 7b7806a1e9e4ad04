// Package widgets supplies the closed built-in widget set: text, hidden,
// embed, and embed-list. Anything beyond these four is expected to come from
// the caller through the model.Widget interface.
package widgets

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-couchforms/pkg/markup"
	"github.com/goliatone/go-couchforms/pkg/model"
)

// Widget type tags. Renderers dispatch embed/embed-list visits on these and
// skip field chrome for hidden.
const (
	TypeText      = "text"
	TypeHidden    = "hidden"
	TypeEmbed     = "embed"
	TypeEmbedList = "embed-list"
)

// Text returns the plain text input widget.
func Text() model.Widget {
	return inputWidget{widgetType: TypeText, inputType: "text"}
}

// Hidden returns the hidden input widget. Renderers emit its markup without
// any surrounding row, label, or error chrome.
func Hidden() model.Widget {
	return inputWidget{widgetType: TypeHidden, inputType: "hidden"}
}

// Embed returns the widget for a field holding zero or one nested
// sub-document. The sub-document travels as JSON in a hidden input; the
// bootstrap script registered by the renderers binds its add/edit controls.
func Embed() model.Widget {
	return embedWidget{widgetType: TypeEmbed}
}

// EmbedList returns the widget for a field holding an ordered sequence of
// nested sub-documents. Renderers call it once per element.
func EmbedList() model.Widget {
	return embedWidget{widgetType: TypeEmbedList}
}

type inputWidget struct {
	widgetType string
	inputType  string
}

func (w inputWidget) Type() string {
	return w.widgetType
}

func (w inputWidget) HTML(name string, value, raw any, _ model.Field) string {
	var b strings.Builder
	b.WriteString(`<input type="`)
	b.WriteString(w.inputType)
	b.WriteString(`"`)
	if id := markup.ControlID(name); id != "" {
		b.WriteString(` id="`)
		b.WriteString(markup.Text(id))
		b.WriteString(`"`)
	}
	b.WriteString(` name="`)
	b.WriteString(markup.Text(name))
	b.WriteString(`" value="`)
	b.WriteString(markup.Text(displayValue(value, raw)))
	b.WriteString(`">`)
	return b.String()
}

type embedWidget struct {
	widgetType string
}

func (w embedWidget) Type() string {
	return w.widgetType
}

func (w embedWidget) HTML(name string, value, _ any, field model.Field) string {
	var b strings.Builder
	b.WriteString(`<div class="embedded" data-widget="`)
	b.WriteString(w.widgetType)
	b.WriteString(`">`)
	b.WriteString(`<input type="hidden" name="`)
	b.WriteString(markup.Text(name))
	b.WriteString(`" value="`)
	b.WriteString(markup.Text(jsonValue(value)))
	b.WriteString(`">`)
	b.WriteString(`<span class="value">`)
	b.WriteString(markup.Text(embedCaption(value, field)))
	b.WriteString(`</span>`)
	b.WriteString(`</div>`)
	return b.String()
}

// embedCaption picks a short display string for an embedded document: its
// _id when present, otherwise the document type name.
func embedCaption(value any, field model.Field) string {
	if doc, ok := value.(map[string]any); ok {
		if id, ok := doc["_id"].(string); ok && id != "" {
			return id
		}
	}
	if field.Type != nil && field.Type.Name != "" {
		return field.Type.Name
	}
	return ""
}

func jsonValue(value any) string {
	if value == nil {
		return ""
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(payload)
}

// displayValue prefers the raw (pre-parse) value so invalid input is echoed
// back to the user, falling back to the parsed value.
func displayValue(value, raw any) string {
	if raw != nil {
		return stringify(raw)
	}
	return stringify(value)
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
