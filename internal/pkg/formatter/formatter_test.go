package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/futig/interview-assistant/internal/entity"
	"github.com/stretchr/testify/require"
)

func testSubmission() *entity.Submission {
	return &entity.Submission{
		ID:          "6f1c1f0e-3c51-4c55-9a3e-0a8c2a3c9f10",
		Question:    "Two Sum problem",
		Explanation: "## Approach\n\nUse a hash map.",
		CreatedAt:   time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
	}
}

func TestFactory_Create(t *testing.T) {
	f := NewFactory()

	for _, format := range []entity.ExportFormat{entity.FormatMarkdown, entity.FormatPDF, entity.FormatDOCX} {
		fm, err := f.Create(format)
		require.NoError(t, err, format)
		require.NotNil(t, fm)
	}

	_, err := f.Create("html")
	require.ErrorIs(t, err, entity.ErrFormatNotImplemented)
}

func TestMarkdownFormatter(t *testing.T) {
	fm := NewMarkdownFormatter()
	out, err := fm.Format(testSubmission())
	require.NoError(t, err)

	text := string(out)
	require.Contains(t, text, "# Interview Question Analysis")
	require.Contains(t, text, "## Question\n\nTwo Sum problem")
	require.Contains(t, text, "## Approach\n\nUse a hash map.")
	require.Contains(t, text, "2026-10-17 09:30 UTC")
	require.Equal(t, ".md", fm.FileExtension())
	require.Equal(t, "analysis-6f1c1f0e-3c51-4c55-9a3e-0a8c2a3c9f10.md", Filename(testSubmission(), fm))
}

func TestPDFFormatter(t *testing.T) {
	fm := &PDFFormatter{}
	out, err := fm.Format(testSubmission())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	require.Equal(t, "application/pdf", fm.ContentType())
}
