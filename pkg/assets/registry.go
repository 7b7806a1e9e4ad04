// Package assets tracks the client-side initialization markup widgets attach
// to a render pass. Widgets that appear many times in one form register their
// bootstrap snippet once under a fixed name; the driver emits every snippet
// exactly once after the closing form markup.
package assets

import "sync"

// Snippet produces a piece of initialization markup on demand. Snippets run
// when Generate is called, not at registration time.
type Snippet func() string

type entry struct {
	name   string
	markup string
	fn     Snippet
}

// ScriptRegistry is a keyed, first-write-wins collection of initialization
// markup. Registration order is preserved and entries are never removed, so
// repeated Generate calls return identical output between registrations.
//
// A registry is intended to live for one render pass; the forms driver
// creates one per call when the caller does not supply one. The mutex makes a
// shared long-lived registry safe as well.
type ScriptRegistry struct {
	mu      sync.Mutex
	entries []entry
	index   map[string]struct{}
}

// NewScriptRegistry returns an empty registry.
func NewScriptRegistry() *ScriptRegistry {
	return &ScriptRegistry{index: make(map[string]struct{})}
}

// Register stores static markup under name. If the name is already present
// the call is a silent no-op; the first registration wins.
func (r *ScriptRegistry) Register(name, markup string) {
	r.add(entry{name: name, markup: markup})
}

// RegisterFunc stores a markup-producing function under name with the same
// first-write-wins semantics as Register. Nil functions are ignored.
func (r *ScriptRegistry) RegisterFunc(name string, fn Snippet) {
	if fn == nil {
		return
	}
	r.add(entry{name: name, fn: fn})
}

func (r *ScriptRegistry) add(e entry) {
	if r == nil || e.name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[e.name]; exists {
		return
	}
	r.index[e.name] = struct{}{}
	r.entries = append(r.entries, e)
}

// Has reports whether an entry is registered under name.
func (r *ScriptRegistry) Has(name string) bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.index[name]
	return ok
}

// Names returns the registered names in registration order.
func (r *ScriptRegistry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}
	return names
}

// Len returns the number of registered entries.
func (r *ScriptRegistry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Generate concatenates every entry in registration order, invoking function
// entries, each result prefixed by a newline. The registry itself is left
// untouched, so Generate may be called repeatedly.
func (r *ScriptRegistry) Generate() string {
	if r == nil {
		return ""
	}
	r.mu.Lock()
	entries := make([]entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.Unlock()

	var out string
	for _, e := range entries {
		if e.fn != nil {
			out += "\n" + e.fn()
			continue
		}
		out += "\n" + e.markup
	}
	return out
}
