package formatter

import (
	"fmt"

	"github.com/futig/interview-assistant/internal/entity"
)

const (
	baseTitle     = "Interview Question Analysis"
	questionLabel = "Question"
	answerLabel   = "Explanation"
	timeLayout    = "2006-01-02 15:04 MST"
)

type Formatter interface {
	Format(submission *entity.Submission) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ExportFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrFormatNotImplemented, format)
	}
}

// Filename builds the download name for an exported submission.
func Filename(submission *entity.Submission, f Formatter) string {
	return "analysis-" + submission.ID + f.FileExtension()
}
