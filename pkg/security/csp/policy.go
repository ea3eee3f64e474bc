// Package csp builds Content-Security-Policy header values.
package csp

import "strings"

// directiveOrder fixes the serialization order of Build.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
}

// Policy is a Content-Security-Policy under construction. Not safe for
// concurrent mutation; build once at startup.
type Policy struct {
	directives map[string][]string
	reportOnly bool
}

// New returns an empty policy.
func New() *Policy {
	return &Policy{directives: make(map[string][]string)}
}

func (p *Policy) set(name string, sources []string) *Policy {
	p.directives[name] = sources
	return p
}

func (p *Policy) DefaultSrc(sources ...string) *Policy { return p.set("default-src", sources) }
func (p *Policy) ScriptSrc(sources ...string) *Policy  { return p.set("script-src", sources) }
func (p *Policy) StyleSrc(sources ...string) *Policy   { return p.set("style-src", sources) }
func (p *Policy) ImgSrc(sources ...string) *Policy     { return p.set("img-src", sources) }
func (p *Policy) FontSrc(sources ...string) *Policy    { return p.set("font-src", sources) }
func (p *Policy) ConnectSrc(sources ...string) *Policy { return p.set("connect-src", sources) }
func (p *Policy) FrameAncestors(sources ...string) *Policy {
	return p.set("frame-ancestors", sources)
}
func (p *Policy) FormAction(sources ...string) *Policy { return p.set("form-action", sources) }
func (p *Policy) BaseURI(sources ...string) *Policy    { return p.set("base-uri", sources) }
func (p *Policy) ObjectSrc(sources ...string) *Policy  { return p.set("object-src", sources) }

// ReportOnly switches the header to the report-only variant.
func (p *Policy) ReportOnly(enabled bool) *Policy {
	p.reportOnly = enabled
	return p
}

// Build serializes the directives that have at least one source.
func (p *Policy) Build() string {
	parts := make([]string, 0, len(p.directives))
	for _, name := range directiveOrder {
		if sources := p.directives[name]; len(sources) > 0 {
			parts = append(parts, name+" "+strings.Join(sources, " "))
		}
	}
	return strings.Join(parts, "; ")
}

// HeaderName is the header Build's value belongs in.
func (p *Policy) HeaderName() string {
	if p.reportOnly {
		return "Content-Security-Policy-Report-Only"
	}
	return "Content-Security-Policy"
}

// API is the policy for JSON responses: nothing may load and nothing may
// frame the response. Inline data: images are allowed so a browser opening
// an article payload directly can render newsImage.
func API() *Policy {
	return New().
		DefaultSrc("'none'").
		ImgSrc("data:").
		FrameAncestors("'none'").
		BaseURI("'none'").
		FormAction("'none'")
}

// SwaggerUI is the policy for the bundled API documentation pages. The UI
// needs inline scripts and styles, data: images and fonts, and blob: fetches
// for the spec document.
func SwaggerUI() *Policy {
	return New().
		DefaultSrc("'self'").
		ScriptSrc("'self'", "'unsafe-inline'").
		StyleSrc("'self'", "'unsafe-inline'").
		ImgSrc("'self'", "data:").
		FontSrc("'self'", "data:").
		ConnectSrc("'self'", "blob:").
		FrameAncestors("'none'").
		BaseURI("'self'").
		FormAction("'self'").
		ObjectSrc("'none'")
}
