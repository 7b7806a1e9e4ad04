// Package templated renders a form through pongo2 templates instead of
// hand-built strings, proving the visitor seam: the traversal contract and
// depth semantics match the table and div variants exactly, only the markup
// production differs. Callers can override the embedded template bundle to
// reshape the layout without touching traversal logic.
package templated

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-couchforms/pkg/assets"
	"github.com/goliatone/go-couchforms/pkg/markup"
	"github.com/goliatone/go-couchforms/pkg/model"
	"github.com/goliatone/go-couchforms/pkg/render"
	rendertemplate "github.com/goliatone/go-couchforms/pkg/render/template"
)

// Name is the identifier this renderer registers under.
const Name = "templated"

// Option configures a Renderer before construction.
type Option func(*config)

type config struct {
	scripts    *assets.ScriptRegistry
	templateFS fs.FS
	engine     rendertemplate.Renderer
}

// WithScripts binds the render pass's script registry.
func WithScripts(scripts *assets.ScriptRegistry) Option {
	return func(cfg *config) {
		cfg.scripts = scripts
	}
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithEngine injects a custom template engine implementation.
func WithEngine(engine rendertemplate.Renderer) Option {
	return func(cfg *config) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

// Renderer is the template-driven visitor. Create one per render pass.
type Renderer struct {
	render.Traversal
	scripts *assets.ScriptRegistry
	engine  rendertemplate.Renderer
}

var _ render.Visitor = (*Renderer)(nil)

// New constructs a templated renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine := cfg.engine
	if engine == nil {
		var err error
		engine, err = rendertemplate.New(rendertemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("templated renderer: configure engine: %w", err)
		}
	}

	return &Renderer{scripts: cfg.scripts, engine: engine}, nil
}

// Factory adapts New to the render.Factory signature. Construction cannot
// fail with the embedded bundle; should it ever, the returned visitor reports
// the failure through Err on first use.
func Factory(scripts *assets.ScriptRegistry) render.Visitor {
	r, err := New(WithScripts(scripts))
	if err != nil {
		return &Renderer{}
	}
	return r
}

func (r *Renderer) Start() string {
	r.Reset()
	return r.exec("templates/start", nil)
}

func (r *Renderer) BeginGroup(path model.Path) string {
	depth := r.Enter(path)
	return r.exec("templates/begin_group", map[string]any{
		"depth":   depth,
		"heading": markup.Text(markup.Humanize(path.Last())),
	})
}

func (r *Renderer) EndGroup(path model.Path) string {
	r.Leave(path)
	return r.exec("templates/end_group", nil)
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

	items := make([]string, 0, len(values))
	for idx, item := range values {
		items = append(items, scoped.Widget.HTML(fmt.Sprintf("%s.%d", path.String(), idx), item, raw, scoped))
	}
	listMarkup := r.exec("templates/embed_list", map[string]any{"items": items})

	return r.unit(scoped, path, errs, listMarkup)
}

func (r *Renderer) End() string {
	r.Finish()
	return r.exec("templates/end", nil)
}

func (r *Renderer) unit(field model.Field, path model.Path, errs []string, control string) string {
	name := path.String()
	caption := path.Caption(r.CaptionDepth())

	return r.exec("templates/field", map[string]any{
		"classes":     markup.ClassAttr(field, errs),
		"label":       markup.Label(field, caption, markup.ControlID(name)),
		"description": markup.Description(field),
		"control":     control,
		"hint":        markup.Hint(field),
		"errors":      markup.ErrorList(errs),
	})
}

// exec renders one template, recording failures for Err. A failed fragment
// contributes no markup rather than aborting the traversal mid-pass.
func (r *Renderer) exec(name string, data map[string]any) string {
	if r.engine == nil {
		r.Fail(errors.New("templated renderer: engine is not configured"))
		return ""
	}
	out, err := r.engine.RenderTemplate(name, data)
	if err != nil {
		r.Fail(err)
		return ""
	}
	return out
}
