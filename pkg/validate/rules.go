// Package validate provides the document-update rules a CouchDB application
// runs against incoming writes. Each factory returns a Rule with the uniform
// update-hook signature; rules succeed by returning nil and fail by returning
// an *Error carrying a human-readable message. Rules are pure: no side
// effects, no retries, one invocation per write attempt.
package validate

import (
	"reflect"
	"strings"

	"github.com/goliatone/go-couchforms/pkg/docpath"
)

// UserContext identifies the actor performing a document write. Name is empty
// for anonymous writers.
type UserContext struct {
	Name  string
	Roles []string
}

// Error is a validation failure. The external update hook is expected to
// reject the write and surface Message to the writer.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Rule checks one field of a document write. newDoc and oldDoc are the
// decoded documents; oldDoc is nil when the write creates the document.
type Rule func(newDoc, oldDoc map[string]any, newValue, oldValue any, user UserContext) error

// MatchUsername requires the new field value to equal the writing user's
// name. Empty-like values (nil or "") on both sides are treated as equal so
// anonymous users can leave the field blank.
func MatchUsername() Rule {
	return func(_, _ map[string]any, newValue, _ any, user UserContext) error {
		if emptyLike(user.Name) && emptyLike(newValue) {
			return nil
		}
		if s, ok := newValue.(string); ok && s == user.Name {
			return nil
		}
		return &Error{Message: "Field does not match your username"}
	}
}

// Uneditable rejects any change to the field after the document has been
// created. Creations (nil oldDoc) always pass.
func Uneditable() Rule {
	return func(_, oldDoc map[string]any, newValue, oldValue any, _ UserContext) error {
		if oldDoc == nil {
			return nil
		}
		if !reflect.DeepEqual(newValue, oldValue) {
			return &Error{Message: "Field cannot be edited once created"}
		}
		return nil
	}
}

// UsernameMatchesField requires the writing user's name to equal the value at
// the given path inside the new document. The path accepts one or more
// segments, resolved via docpath.
func UsernameMatchesField(path ...string) Rule {
	return func(newDoc, _ map[string]any, _, _ any, user UserContext) error {
		value, ok := docpath.Resolve(newDoc, path...)
		if ok {
			if s, isString := value.(string); isString && s == user.Name {
				return nil
			}
		}
		return &Error{Message: "username does not match field: " + strings.Join(path, ".")}
	}
}

func emptyLike(v any) bool {
	return v == nil || v == ""
}
