// Package textproc renders user text for display: markdown for comment
// bodies, the censoring filter for everything, and an HTML sanitizer as
// the last step. None of this touches what the storage layer persists.
package textproc

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type Processor struct {
	md     goldmark.Markdown
	censor *Censor
	policy *bluemonday.Policy
}

func New(censoredWords []string) *Processor {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)

	// UGC policy plus the censor span; everything else is stripped.
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(regexp.MustCompile("^censored$")).OnElements("span")

	return &Processor{
		md:     md,
		censor: NewCensor(censoredWords),
		policy: policy,
	}
}

// RenderComment renders a comment body: markdown, then the censoring
// filter over the rendered HTML, then sanitization.
func (p *Processor) RenderComment(text string) string {
	var buf bytes.Buffer
	rendered := text
	if err := p.md.Convert([]byte(text), &buf); err == nil {
		rendered = strings.TrimSpace(buf.String())
	}
	return p.policy.Sanitize(p.censor.Apply(rendered))
}

// RenderPlain renders a thread title or description: no markdown, just
// escaping, censoring and sanitization.
func (p *Processor) RenderPlain(text string) string {
	return p.policy.Sanitize(p.censor.Apply(html.EscapeString(text)))
}
