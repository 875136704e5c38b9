package formatter

import (
	"bytes"
	"os"

	"github.com/futig/interview-assistant/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontName is the internal name used by gofpdf
	// for the UTF-8 capable font.
	pdfFontName = "DejaVuSans"

	// Runtime layout (font copied next to the binary) and source layout.
	pdfFontRuntimePath = "ttf/DejaVuSans.ttf"
	pdfFontSourcePath  = "internal/pkg/formatter/ttf/DejaVuSans.ttf"
)

type PDFFormatter struct {
	fontPath string
}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{fontPath: resolveFontPath()}
}

// resolveFontPath returns the first DejaVuSans location that exists, or ""
// to fall back to the core Arial font (Latin-1 only).
func resolveFontPath() string {
	for _, p := range []string{pdfFontRuntimePath, pdfFontSourcePath} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (pf *PDFFormatter) Format(s *entity.Submission) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(baseTitle, true)
	pdf.AddPage()

	fontName := "Arial"
	if pf.fontPath != "" {
		pdf.AddUTF8Font(pdfFontName, "", pf.fontPath)
		pdf.AddUTF8Font(pdfFontName, "B", pf.fontPath)
		fontName = pdfFontName
	}

	pdf.SetFont(fontName, "B", 18)
	pdf.Cell(0, 10, baseTitle)
	pdf.Ln(10)

	pdf.SetFont(fontName, "", 9)
	pdf.Cell(0, 6, s.CreatedAt.UTC().Format(timeLayout))
	pdf.Ln(10)

	pf.section(pdf, fontName, questionLabel, s.Question)
	pf.section(pdf, fontName, answerLabel, s.Explanation)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pf *PDFFormatter) section(pdf *gofpdf.Fpdf, fontName, title, body string) {
	pdf.SetFont(fontName, "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)

	pdf.SetFont(fontName, "", 11)
	_, lineHeight := pdf.GetFontSize()
	pdf.MultiCell(0, lineHeight*1.5, body, "", "", false)
	pdf.Ln(4)
}

func (pf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (pf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
