package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/futig/interview-assistant/internal/entity"
)

// NormalizeQuestion trims the question and checks it against the length
// bounds. The returned string is the one to analyze.
func NormalizeQuestion(question string) (string, error) {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return "", entity.ErrQuestionEmpty
	}

	if n := utf8.RuneCountInString(trimmed); n > entity.MaxQuestionLength {
		return "", fmt.Errorf("%w: %d characters (max %d)", entity.ErrQuestionTooLong, n, entity.MaxQuestionLength)
	}

	return trimmed, nil
}
