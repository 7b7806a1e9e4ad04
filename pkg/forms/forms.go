// Package forms drives a render pass: it walks a bound field tree depth
// first, invokes one visitor method per node, concatenates the returned
// fragments, and appends the registered initialization markup once after the
// closing tag. The tree arrives already bound (field descriptors paired with
// parsed values, raw input, and validation messages); schema definition and
// request parsing live outside this module.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-couchforms/pkg/assets"
	"github.com/goliatone/go-couchforms/pkg/model"
	"github.com/goliatone/go-couchforms/pkg/render"
	"github.com/goliatone/go-couchforms/pkg/widgets"
)

// Item is one node of a bound field tree: either a Group or a Binding.
type Item interface {
	item()
}

// Group is a named nesting level rendered as a labelled container.
type Group struct {
	Name  string
	Items []Item
}

// Binding pairs a field descriptor with its position and render-time data.
type Binding struct {
	Name   string
	Field  model.Field
	Value  any
	Raw    any
	Errors []string
}

func (Group) item()   {}
func (Binding) item() {}

// Form is the root of a bound field tree.
type Form struct {
	Items []Item
}

// Render builds a visitor from factory, walks the form, and returns the full
// markup with the init-markup snippets appended once. When scripts is nil a
// fresh registry scoped to this render pass is used, which is the intended
// lifetime; passing a shared registry keeps its earlier entries.
func Render(form Form, factory render.Factory, scripts *assets.ScriptRegistry) (string, error) {
	if factory == nil {
		return "", errors.New("forms: renderer factory is required")
	}
	if scripts == nil {
		scripts = assets.NewScriptRegistry()
	}

	visitor := factory(scripts)
	var b strings.Builder
	b.WriteString(visitor.Start())
	walk(visitor, form.Items, model.Path{}, &b)
	b.WriteString(visitor.End())

	if err := visitor.Err(); err != nil {
		return "", fmt.Errorf("forms: render: %w", err)
	}

	b.WriteString(scripts.Generate())
	return b.String(), nil
}

func walk(visitor render.Visitor, items []Item, base model.Path, b *strings.Builder) {
	for _, item := range items {
		switch node := item.(type) {
		case Group:
			path := base.Append(node.Name)
			b.WriteString(visitor.BeginGroup(path))
			walk(visitor, node.Items, path, b)
			b.WriteString(visitor.EndGroup(path))
		case Binding:
			path := base.Append(node.Name)
			switch node.Field.WidgetType() {
			case widgets.TypeEmbed:
				b.WriteString(visitor.Embed(node.Field, path, node.Value, node.Raw, node.Errors))
			case widgets.TypeEmbedList:
				b.WriteString(visitor.EmbedList(node.Field, path, listValues(node.Value), node.Raw, node.Errors))
			default:
				b.WriteString(visitor.Field(node.Field, path, node.Value, node.Raw, node.Errors))
			}
		}
	}
}

func listValues(value any) []any {
	if values, ok := value.([]any); ok {
		return values
	}
	if value == nil {
		return nil
	}
	return []any{value}
}
