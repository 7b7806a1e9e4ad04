package render

import "github.com/goliatone/go-couchforms/pkg/assets"

// EmbedInitName is the fixed registry key shared by every embed and
// embed-list visit. One entry per render pass, no matter how many embedded
// fields the form contains.
const EmbedInitName = "built-in embed/embedList"

// EmbedInitMarkup is the bootstrap snippet the shared entry produces. It
// binds the add/edit controls of embed widgets once the page has loaded.
const EmbedInitMarkup = `<script type="text/javascript">` +
	`if (window.couchforms) { couchforms.bindEmbeds(); }` +
	`</script>`

// RegisterEmbedInit registers the shared embed bootstrap entry. Safe to call
// on every embed visit; the registry keeps the first registration only.
func RegisterEmbedInit(scripts *assets.ScriptRegistry) {
	if scripts == nil {
		return
	}
	scripts.RegisterFunc(EmbedInitName, func() string {
		return EmbedInitMarkup
	})
}
