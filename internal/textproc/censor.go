package textproc

import (
	"regexp"
	"strings"
)

// Censor wraps configured blocked terms in a reveal span. It is a
// presentation step applied right before display; stored text is never
// modified, and re-applying it to its own output is not guaranteed to
// be a no-op.
type Censor struct {
	re *regexp.Regexp
}

func NewCensor(words []string) *Censor {
	if len(words) == 0 {
		return &Censor{}
	}

	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	// Whole words only: "badword1x" stays untouched.
	re := regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	return &Censor{re: re}
}

// Apply substitutes every blocked term with a censored span, keeping
// the original casing inside the span so a reveal shows the word as
// written.
func (c *Censor) Apply(text string) string {
	if c.re == nil {
		return text
	}
	return c.re.ReplaceAllStringFunc(text, func(match string) string {
		return `<span class="censored">` + match + `</span>`
	})
}
