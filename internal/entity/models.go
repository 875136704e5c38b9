package entity

import (
	"fmt"
	"time"
)

// MaxQuestionLength is the upper bound for a trimmed question, in characters.
const MaxQuestionLength = 2000

// Submission is a persisted question/explanation pair
type Submission struct {
	ID          string    `json:"id"`
	Question    string    `json:"question"`
	Explanation string    `json:"explanation"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Analysis is the explanation produced for a single question
type Analysis struct {
	Explanation string `json:"explanation"`
}

type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatDOCX     ExportFormat = "docx"
	FormatPDF      ExportFormat = "pdf"
)

func (f ExportFormat) Validate() error {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return nil
	default:
		return fmt.Errorf("%w: unknown export format %q", ErrInvalidFormat, string(f))
	}
}
