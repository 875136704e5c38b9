package formatter

import (
	"bytes"
	"strings"

	"github.com/futig/interview-assistant/internal/entity"
	"github.com/unidoc/unioffice/common/license"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

// SetDOCXLicense registers a metered unidoc key. Without one, unioffice
// refuses to save documents and DOCX export returns an error.
func SetDOCXLicense(apiKey string) error {
	if apiKey == "" {
		return nil
	}
	return license.SetMeteredKey(apiKey)
}

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (df *DOCXFormatter) Format(s *entity.Submission) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	heading(doc, "Title", baseTitle)
	paragraph(doc, s.CreatedAt.UTC().Format(timeLayout))

	heading(doc, "Heading1", questionLabel)
	paragraph(doc, s.Question)

	heading(doc, "Heading1", answerLabel)
	for _, line := range strings.Split(s.Explanation, "\n") {
		paragraph(doc, line)
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func heading(doc *document.Document, style, text string) {
	par := doc.AddParagraph()
	par.SetStyle(style)
	par.AddRun().AddText(text)
}

func paragraph(doc *document.Document, text string) {
	doc.AddParagraph().AddRun().AddText(text)
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
