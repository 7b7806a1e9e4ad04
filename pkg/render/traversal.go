package render

import (
	"fmt"

	"github.com/goliatone/go-couchforms/pkg/model"
)

// Traversal tracks the group nesting of one render pass as a stack of group
// paths. Visitors embed it to satisfy the depth bookkeeping and Err half of
// the Visitor contract: the stack size is the nesting depth used for
// level-<depth> classes, and the innermost group path decides how many
// leading segments a field caption drops.
//
// The external driver guarantees balanced, properly nested BeginGroup and
// EndGroup calls; Traversal does not trust that blindly. An EndGroup below
// depth zero or an End with open groups is recorded and reported through
// Err, while the stack itself is clamped so emitted markup stays well formed.
type Traversal struct {
	groups []model.Path
	err    error
}

// Reset clears the stack and any recorded contract violation. Called from
// Start.
func (t *Traversal) Reset() {
	t.groups = t.groups[:0]
	t.err = nil
}

// Enter pushes the group path and returns the new depth. Called from
// BeginGroup before markup is produced, so the opening group renders at its
// own level.
func (t *Traversal) Enter(path model.Path) int {
	t.groups = append(t.groups, path)
	return len(t.groups)
}

// Leave pops the innermost group. An unmatched EndGroup leaves the stack
// empty and records the violation.
func (t *Traversal) Leave(path model.Path) {
	if len(t.groups) == 0 {
		if t.err == nil {
			t.err = fmt.Errorf("render: EndGroup %q without matching BeginGroup", path.String())
		}
		return
	}
	t.groups = t.groups[:len(t.groups)-1]
}

// Depth returns the current nesting depth.
func (t *Traversal) Depth() int {
	return len(t.groups)
}

// CaptionDepth returns the number of leading path segments consumed by the
// innermost enclosing group, i.e. how many segments field captions strip.
func (t *Traversal) CaptionDepth() int {
	if len(t.groups) == 0 {
		return 0
	}
	return len(t.groups[len(t.groups)-1])
}

// Finish records a violation when groups are still open. Called from End;
// the stack itself is left untouched per the visitor contract.
func (t *Traversal) Finish() {
	if len(t.groups) != 0 && t.err == nil {
		t.err = fmt.Errorf("render: End with %d open group(s)", len(t.groups))
	}
}

// Fail records a rendering error when none has been recorded yet. Visitors
// whose markup production can fail (template engines) surface those failures
// through Err alongside traversal violations.
func (t *Traversal) Fail(err error) {
	if err != nil && t.err == nil {
		t.err = err
	}
}

// Err returns the first contract violation observed since Reset.
func (t *Traversal) Err() error {
	return t.err
}
