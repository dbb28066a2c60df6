// Package export renders artifacts into downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/go-pdf/fpdf"
	"github.com/phrazzld/studysmart/internal/render"
)

const (
	fontFamily = "Arial"
	bodySize   = 11
	lineHeight = 6
)

// PDFExporter writes artifacts as A4 PDF documents.
type PDFExporter struct {
	logger *slog.Logger
}

// NewPDFExporter creates a PDFExporter.
func NewPDFExporter(logger *slog.Logger) *PDFExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExporter{logger: logger.With(slog.String("component", "pdf_exporter"))}
}

// Export renders a as a PDF and returns its bytes.
func (e *PDFExporter) Export(a *render.Artifact) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("cannot export nil artifact")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(a.Topic, true)
	pdf.AddPage()

	// Core fonts are cp1252; translate UTF-8 text before writing it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	w := &writer{pdf: pdf, tr: tr}

	w.heading(a.Topic, 16)
	w.subheading(a.Type.String())

	switch {
	case a.Degraded():
		w.paragraph(a.Message)
	case a.Quiz != nil:
		w.quiz(a)
	case len(a.Flashcards) > 0:
		w.flashcards(a)
	default:
		for _, line := range a.Lines {
			w.bullet(line)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		e.logger.Error("failed to generate PDF output", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate PDF output: %w", err)
	}

	e.logger.Debug("PDF generated",
		slog.String("topic", a.Topic),
		slog.Int("pdf_size", buf.Len()))
	return buf.Bytes(), nil
}

// writer wraps the fpdf calls shared by every layout.
type writer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w *writer) heading(text string, size float64) {
	w.pdf.SetFont(fontFamily, "B", size)
	w.pdf.MultiCell(0, size/2+2, w.tr(text), "", "L", false)
	w.pdf.Ln(1)
}

func (w *writer) subheading(text string) {
	w.pdf.SetFont(fontFamily, "I", bodySize)
	w.pdf.MultiCell(0, lineHeight, w.tr(text), "", "L", false)
	w.pdf.Ln(4)
}

func (w *writer) paragraph(text string) {
	w.pdf.SetFont(fontFamily, "", bodySize)
	w.pdf.MultiCell(0, lineHeight, w.tr(text), "", "L", false)
	w.pdf.Ln(2)
}

func (w *writer) bullet(text string) {
	w.pdf.SetFont(fontFamily, "", bodySize)
	w.pdf.MultiCell(0, lineHeight, w.tr("- "+text), "", "L", false)
	w.pdf.Ln(1)
}

func (w *writer) quiz(a *render.Artifact) {
	for i, q := range a.Quiz.Questions {
		w.pdf.SetFont(fontFamily, "B", bodySize)
		w.pdf.MultiCell(0, lineHeight, w.tr(fmt.Sprintf("%d. %s", i+1, q.Question)), "", "L", false)
		w.pdf.SetFont(fontFamily, "", bodySize)
		for j, opt := range q.Options {
			w.pdf.SetX(22)
			w.pdf.MultiCell(0, lineHeight, w.tr(fmt.Sprintf("%c) %s", 'A'+j, opt)), "", "L", false)
		}
		w.pdf.Ln(3)
	}

	w.heading("Answer key", 13)
	w.pdf.SetFont(fontFamily, "", bodySize)
	for i, q := range a.Quiz.Questions {
		w.pdf.MultiCell(0, lineHeight, w.tr(fmt.Sprintf("%d. %s", i+1, q.CorrectAnswer)), "", "L", false)
	}
}

func (w *writer) flashcards(a *render.Artifact) {
	for _, card := range a.Flashcards {
		w.pdf.SetFont(fontFamily, "B", bodySize)
		w.pdf.MultiCell(0, lineHeight, w.tr(card.Term), "", "L", false)
		w.pdf.SetFont(fontFamily, "", bodySize)
		w.pdf.MultiCell(0, lineHeight, w.tr(card.Definition), "", "L", false)
		w.pdf.Ln(3)
	}
}
