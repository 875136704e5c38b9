package formatter

import (
	"bytes"
	"fmt"

	"github.com/futig/interview-assistant/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format keeps the explanation as-is: it is markdown already.
func (mf *MarkdownFormatter) Format(s *entity.Submission) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", baseTitle)
	fmt.Fprintf(&buf, "_%s_\n\n", s.CreatedAt.UTC().Format(timeLayout))
	fmt.Fprintf(&buf, "## %s\n\n%s\n\n", questionLabel, s.Question)
	fmt.Fprintf(&buf, "## %s\n\n%s\n", answerLabel, s.Explanation)
	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
