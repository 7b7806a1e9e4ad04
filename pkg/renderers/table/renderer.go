// Package table renders a form as table rows: one row per field with label,
// control, and error cells, and a heading row per group. Groups do not nest
// in table markup, so group headings carry the level-<depth> class and
// EndGroup contributes no closing tag.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-couchforms/pkg/assets"
	"github.com/goliatone/go-couchforms/pkg/markup"
	"github.com/goliatone/go-couchforms/pkg/model"
	"github.com/goliatone/go-couchforms/pkg/render"
)

// Name is the identifier this renderer registers under.
const Name = "table"

// Option configures a Renderer.
type Option func(*Renderer)

// WithScripts binds the render pass's script registry, letting embed visits
// schedule their one-time bootstrap markup.
func WithScripts(scripts *assets.ScriptRegistry) Option {
	return func(r *Renderer) {
		r.scripts = scripts
	}
}

// Renderer is the table-layout visitor. Create one per render pass; Start
// resets traversal state for the instance.
type Renderer struct {
	render.Traversal
	scripts *assets.ScriptRegistry
}

var _ render.Visitor = (*Renderer)(nil)

// New constructs a table renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Factory adapts New to the render.Factory signature for registry wiring.
func Factory(scripts *assets.ScriptRegistry) render.Visitor {
	return New(WithScripts(scripts))
}

func (r *Renderer) Start() string {
	r.Reset()
	return "<table class=\"form-table\">\n<tbody>\n"
}

func (r *Renderer) BeginGroup(path model.Path) string {
	depth := r.Enter(path)
	var b strings.Builder
	b.WriteString(`<tr class="group"><th colspan="3"><h3 class="level-`)
	b.WriteString(strconv.Itoa(depth))
	b.WriteString(`">`)
	b.WriteString(markup.Text(markup.Humanize(path.Last())))
	b.WriteString("</h3></th></tr>\n")
	return b.String()
}

func (r *Renderer) EndGroup(path model.Path) string {
	r.Leave(path)
	// heading rows are self-contained, nothing to close
	return ""
}

func (r *Renderer) Field(field model.Field, path model.Path, value, raw any, errs []string) string {
	name := path.String()
	if field.Hidden() {
		return field.Widget.HTML(name, value, raw, field)
	}
	return r.row(field, path, errs, field.Widget.HTML(name, value, raw, field))
}

func (r *Renderer) Embed(field model.Field, path model.Path, value, raw any, errs []string) string {
	render.RegisterEmbedInit(r.scripts)
	scoped := markup.WithTypeDefaults(field)
	return r.row(scoped, path, errs, scoped.Widget.HTML(path.String(), value, raw, scoped))
}

func (r *Renderer) EmbedList(field model.Field, path model.Path, values []any, raw any, errs []string) string {
	render.RegisterEmbedInit(r.scripts)
	scoped := markup.WithTypeDefaults(field)

	var items strings.Builder
	items.WriteString(`<div class="embed-list">`)
	for idx, item := range values {
		items.WriteString(`<div class="item">`)
		items.WriteString(scoped.Widget.HTML(fmt.Sprintf("%s.%d", path.String(), idx), item, raw, scoped))
		items.WriteString(`</div>`)
	}
	items.WriteString(`</div>`)

	return r.row(scoped, path, errs, items.String())
}

func (r *Renderer) End() string {
	r.Finish()
	return "</tbody>\n</table>\n"
}

// row emits one decorated field unit: label and description in the header
// cell, control and hint in the value cell, errors in a dedicated cell.
func (r *Renderer) row(field model.Field, path model.Path, errs []string, control string) string {
	name := path.String()
	caption := path.Caption(r.CaptionDepth())

	var b strings.Builder
	b.Grow(len(control) + 256)
	b.WriteString(`<tr class="`)
	b.WriteString(markup.ClassAttr(field, errs))
	b.WriteString("\">\n")

	b.WriteString(`<th>`)
	b.WriteString(markup.Label(field, caption, markup.ControlID(name)))
	b.WriteString(markup.Description(field))
	b.WriteString("</th>\n")

	b.WriteString(`<td>`)
	b.WriteString(control)
	b.WriteString(markup.Hint(field))
	b.WriteString("</td>\n")

	b.WriteString(`<td class="errors">`)
	b.WriteString(markup.ErrorList(errs))
	b.WriteString("</td>\n")

	b.WriteString("</tr>\n")
	return b.String()
}
