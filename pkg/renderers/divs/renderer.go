// Package divs renders a form as nested div containers. Groups wrap their
// fields in a div tagged with the level-<depth> class, so unlike the table
// variant the markup nests the way the field tree does.
package divs

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
const Name = "div"

// Option configures a Renderer.
type Option func(*Renderer)

// WithScripts binds the render pass's script registry, letting embed visits
// schedule their one-time bootstrap markup.
func WithScripts(scripts *assets.ScriptRegistry) Option {
	return func(r *Renderer) {
		r.scripts = scripts
	}
}

// Renderer is the nested-div visitor. Create one per render pass; Start
// resets traversal state for the instance.
type Renderer struct {
	render.Traversal
	scripts *assets.ScriptRegistry
}

var _ render.Visitor = (*Renderer)(nil)

// New constructs a div renderer applying any provided options.
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
	return "<div class=\"form\">\n"
}

func (r *Renderer) BeginGroup(path model.Path) string {
	depth := r.Enter(path)
	var b strings.Builder
	b.WriteString(`<div class="group level-`)
	b.WriteString(strconv.Itoa(depth))
	b.WriteString(`"><h3>`)
	b.WriteString(markup.Text(markup.Humanize(path.Last())))
	b.WriteString("</h3>\n")
	return b.String()
}

func (r *Renderer) EndGroup(path model.Path) string {
	r.Leave(path)
	return "</div>\n"
}

func (r *Renderer) Field(field model.Field, path model.Path, value, raw any, errs []string) string {
	name := path.String()
	if field.Hidden() {
		return field.Widget.HTML(name, value, raw, field)
	}
	return r.unit(field, path, errs, field.Widget.HTML(name, value, raw, field))
}

func (r *Renderer) Embed(field model.Field, path model.Path, value, raw any, errs []string) string {
	render.RegisterEmbedInit(r.scripts)
	scoped := markup.WithTypeDefaults(field)
	return r.unit(scoped, path, errs, scoped.Widget.HTML(path.String(), value, raw, scoped))
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

	return r.unit(scoped, path, errs, items.String())
}

func (r *Renderer) End() string {
	r.Finish()
	return "</div>\n"
}

// unit emits one decorated field container: label, description, control,
// hint, then the error list.
func (r *Renderer) unit(field model.Field, path model.Path, errs []string, control string) string {
	name := path.String()
	caption := path.Caption(r.CaptionDepth())

	var b strings.Builder
	b.Grow(len(control) + 256)
	b.WriteString(`<div class="`)
	b.WriteString(markup.ClassAttr(field, errs))
	b.WriteString("\">\n")

	b.WriteString(markup.Label(field, caption, markup.ControlID(name)))
	b.WriteString("\n")
	if desc := markup.Description(field); desc != "" {
		b.WriteString(desc)
		b.WriteString("\n")
	}

	b.WriteString(`<div class="control">`)
	b.WriteString(control)
	b.WriteString("</div>\n")

	if hint := markup.Hint(field); hint != "" {
		b.WriteString(hint)
		b.WriteString("\n")
	}
	if errList := markup.ErrorList(errs); errList != "" {
		b.WriteString(errList)
		b.WriteString("\n")
	}

	b.WriteString("</div>\n")
	return b.String()
}
