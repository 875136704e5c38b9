package workflow

import (
	"regexp"
	"strings"
)

// TriggerDetector finds a spoken phrase in transcript text, ignoring case and
// the amount of whitespace between words.
type TriggerDetector struct {
	re *regexp.Regexp
}

func NewTriggerDetector(phrase string) *TriggerDetector {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return &TriggerDetector{
		re: regexp.MustCompile(`(?i)\b` + strings.Join(words, `\s+`) + `\b`),
	}
}

// Detect reports whether text contains the phrase and returns text with
// every occurrence removed.
func (d *TriggerDetector) Detect(text string) (string, bool) {
	if !d.re.MatchString(text) {
		return text, false
	}
	stripped := d.re.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(stripped), " "), true
}
