// Package sanitizer strips unsafe markup from article bodies before they are stored.
package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// HTML sanitizes user-generated HTML with bluemonday's UGC policy.
type HTML struct {
	policy *bluemonday.Policy
}

// NewHTML allows the usual formatting tags, forces rel="nofollow" on links
// and opens absolute links in a new tab.
func NewHTML() *HTML {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return &HTML{policy: p}
}

// Sanitize returns s with scripts, event handlers and disallowed tags
// removed, trimmed of surrounding whitespace.
func (h *HTML) Sanitize(s string) string {
	return strings.TrimSpace(h.policy.Sanitize(s))
}
