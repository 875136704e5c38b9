// Package render turns workflow snapshots into terminal text.
package render

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/futig/interview-assistant/internal/client/workflow"
	"github.com/microcosm-cc/bluemonday"
)

const (
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"

	historyQuestionWidth = 60
	historyTimeLayout    = "2006-01-02 15:04"
)

var (
	rawBlockRe = regexp.MustCompile(`(?is)<(?:script|style)\b[^>]*>.*?</(?:script|style)\s*>`)

	// Only known element names with well-formed attributes count as tags,
	// so prose like "a<b then swap" or "i<n and j>0" is left alone.
	htmlTagRe = regexp.MustCompile(`(?i)</?(?:a|abbr|b|blockquote|br|center|code|del|details|div|em|font|form|h[1-6]|hr|i|iframe|img|input|ins|kbd|li|link|mark|meta|object|ol|p|pre|s|script|small|span|strong|style|sub|summary|sup|svg|table|tbody|td|th|thead|tr|u|ul)` +
		`(?:\s+[a-z][a-z0-9:-]*(?:\s*=\s*(?:"[^"]*"|'[^']*'|[^\s"'<>=]+))?)*\s*/?>`)
)

// Renderer formats output, with ANSI styling when Color is set.
type Renderer struct {
	Color   bool
	trigger string
	policy  *bluemonday.Policy
}

// New returns a Renderer. trigger is the phrase shown in the listening hint.
func New(color bool, trigger string) *Renderer {
	return &Renderer{
		Color:   color,
		trigger: trigger,
		policy:  bluemonday.StrictPolicy(),
	}
}

// Markdown strips raw HTML from model output and styles headings. Code
// spans and fenced blocks are left untouched.
func (r *Renderer) Markdown(text string) string {
	lines := strings.Split(text, "\n")
	inFence := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		line = r.sanitizeOutsideCode(line)
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			line = r.style(ansiBold, line)
		}
		lines[i] = line
	}

	return strings.Join(lines, "\n")
}

// sanitizeOutsideCode removes HTML tags from the segments of line that are
// not inside backtick code spans. Other text passes through unchanged.
func (r *Renderer) sanitizeOutsideCode(line string) string {
	parts := strings.Split(line, "`")
	for i := 0; i < len(parts); i += 2 {
		// An unmatched trailing backtick leaves the last segment as prose.
		parts[i] = rawBlockRe.ReplaceAllStringFunc(parts[i], r.policy.Sanitize)
		parts[i] = htmlTagRe.ReplaceAllStringFunc(parts[i], r.policy.Sanitize)
	}
	return strings.Join(parts, "`")
}

// Snapshot renders the analyze view for s.
func (r *Renderer) Snapshot(s workflow.Snapshot) string {
	var b strings.Builder

	switch s.State {
	case workflow.StateAnalyzing:
		b.WriteString(r.style(ansiDim, "Analyzing..."))
		b.WriteString("\n")
	case workflow.StateResult:
		b.WriteString(r.Markdown(s.Explanation))
		b.WriteString("\n")
		if s.SubmissionID != "" {
			b.WriteString(r.style(ansiDim, "saved as "+s.SubmissionID))
			b.WriteString("\n")
		}
	}

	if s.Listening {
		b.WriteString(r.style(ansiDim, fmt.Sprintf("Listening... say %q to analyze", r.trigger)))
		b.WriteString("\n")
	}

	if s.ErrorMessage != "" {
		b.WriteString(r.style(ansiRed, "Error: "+s.ErrorMessage))
		b.WriteString("\n")
	}

	return b.String()
}

// History renders the numbered history list. Numbers start at 1.
func (r *Renderer) History(s workflow.Snapshot) string {
	switch {
	case s.HistoryLoading:
		return r.style(ansiDim, "Loading history...") + "\n"
	case s.HistoryError != "":
		return r.style(ansiRed, "Error: "+s.HistoryError) + "\n"
	case len(s.History) == 0:
		return "No saved analyses yet.\n"
	}

	var b strings.Builder
	for i, item := range s.History {
		fmt.Fprintf(&b, "%3d. %s  %s\n",
			i+1,
			r.style(ansiDim, item.CreatedAt.Local().Format(historyTimeLayout)),
			truncate(singleLine(item.Question), historyQuestionWidth),
		)
	}
	return b.String()
}

func (r *Renderer) style(code, text string) string {
	if !r.Color {
		return text
	}
	return code + text + ansiReset
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}
