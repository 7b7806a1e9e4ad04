// Package render defines the visitor contract shared by every form renderer
// plus the named registry callers use to discover them. A driver (pkg/forms,
// or the caller's own form layer) walks a bound field tree depth-first,
// invokes one visitor method per node, and concatenates the returned
// fragments in call order.
package render

import (
	"github.com/goliatone/go-couchforms/pkg/assets"
	"github.com/goliatone/go-couchforms/pkg/model"
)

// Visitor is the traversal contract renderers implement. The driver
// guarantees the call sequence Start, balanced BeginGroup/EndGroup pairs
// around Field/Embed/EmbedList visits, then End. Each method returns an HTML
// fragment; the driver owns concatenation.
//
// Visitors carry per-pass state (nesting depth at minimum) and must not be
// reused for a second traversal without an intervening Start.
type Visitor interface {
	// Start resets traversal state and returns the opening container markup.
	Start() string
	// BeginGroup enters a named nesting level; path ends with the group name.
	BeginGroup(path model.Path) string
	// EndGroup leaves the nesting level opened by the matching BeginGroup.
	EndGroup(path model.Path) string
	// Field renders one decorated field unit. Hidden widgets yield only the
	// widget's own markup.
	Field(field model.Field, path model.Path, value, raw any, errs []string) string
	// Embed renders a field holding zero or one nested sub-document.
	Embed(field model.Field, path model.Path, value, raw any, errs []string) string
	// EmbedList renders a field holding an ordered sequence of nested
	// sub-documents, one widget unit per element, sharing one error list.
	EmbedList(field model.Field, path model.Path, values []any, raw any, errs []string) string
	// End returns the closing container markup. Depth is not reset.
	End() string
	// Err reports traversal contract violations observed so far, such as an
	// EndGroup without a matching BeginGroup or an End with groups still
	// open. Drivers should check it after End.
	Err() error
}

// Factory builds a fresh visitor bound to the render pass's script registry.
type Factory func(scripts *assets.ScriptRegistry) Visitor
