package markup

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicyOnce sync.Once
	richPolicy     *bluemonday.Policy
)

// Rich sanitises developer-authored markup and returns it as Safe. Script
// elements, event handlers, and non-relative URL schemes other than http,
// https, and mailto are stripped.
func Rich(raw string) Safe {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return Safe(strings.TrimSpace(richSanitizer().Sanitize(trimmed)))
}

func richSanitizer() *bluemonday.Policy {
	richPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		richPolicy = policy
	})
	return richPolicy
}
