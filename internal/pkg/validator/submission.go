package validator

import (
	"fmt"
	"strings"

	"github.com/futig/interview-assistant/internal/entity"
)

// NormalizeSubmission trims both fields and requires them to be non-empty.
func NormalizeSubmission(question, explanation string) (string, string, error) {
	q := strings.TrimSpace(question)
	e := strings.TrimSpace(explanation)

	if q == "" {
		return "", "", fmt.Errorf("%w: question", entity.ErrMissingField)
	}
	if e == "" {
		return "", "", fmt.Errorf("%w: explanation", entity.ErrMissingField)
	}

	return q, e, nil
}
