package validator

import (
	"strings"
	"testing"

	"github.com/futig/interview-assistant/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuestion(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "trims", in: "  Two Sum problem \n", want: "Two Sum problem"},
		{name: "empty", in: "", wantErr: entity.ErrQuestionEmpty},
		{name: "whitespace only", in: " \t\n ", wantErr: entity.ErrQuestionEmpty},
		{name: "exactly max", in: strings.Repeat("a", entity.MaxQuestionLength), want: strings.Repeat("a", entity.MaxQuestionLength)},
		{name: "max after trim", in: "  " + strings.Repeat("a", entity.MaxQuestionLength) + "  ", want: strings.Repeat("a", entity.MaxQuestionLength)},
		{name: "too long", in: strings.Repeat("a", entity.MaxQuestionLength+1), wantErr: entity.ErrQuestionTooLong},
		{name: "multibyte counted as characters", in: strings.Repeat("é", entity.MaxQuestionLength), want: strings.Repeat("é", entity.MaxQuestionLength)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeQuestion(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeSubmission(t *testing.T) {
	q, e, err := NormalizeSubmission(" Q ", " E ")
	require.NoError(t, err)
	require.Equal(t, "Q", q)
	require.Equal(t, "E", e)

	_, _, err = NormalizeSubmission(" ", "E")
	require.ErrorIs(t, err, entity.ErrMissingField)
	require.Contains(t, err.Error(), "question")

	_, _, err = NormalizeSubmission("Q", "")
	require.ErrorIs(t, err, entity.ErrMissingField)
	require.Contains(t, err.Error(), "explanation")
}
