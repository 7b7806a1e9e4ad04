package templated

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want
// the built-in layout out of the box, or as a starting point for overrides.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
