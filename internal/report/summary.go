package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/aliskhannn/video-quiz-bot/internal/service"
)

// SummaryData is everything printed on a summary report.
type SummaryData struct {
	QuizName string
	Date     time.Time
	Summary  service.Summary
}

// SummaryPDF renders a quiz summary as a PDF document.
// Core fonts only cover cp1252, other characters are replaced.
func SummaryPDF(data SummaryData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Quiz Summary", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, tr(data.QuizName), "", 1, "C", false, 0, "")

	s := data.Summary
	pdf.CellFormat(0, 8,
		fmt.Sprintf("Score: %d/%d (%d%%) | Date: %s", s.Correct, s.Total, s.Percentage, data.Date.Format("2006-01-02")),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	for i, item := range s.Items {
		status := "INCORRECT"
		if item.IsCorrect {
			status = "CORRECT"
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, item.Question.Question)), "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, status, "", 1, "L", false, 0, "")
		if item.Chosen != nil && !item.IsCorrect {
			pdf.MultiCell(0, 5, tr("Your answer: "+item.Chosen.Text), "", "L", false)
		}
		pdf.MultiCell(0, 5, tr("Correct answer: "+item.Correct.Text), "", "L", false)
		pdf.MultiCell(0, 5, tr(referenceLine(item)), "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render summary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func referenceLine(item service.SummaryItem) string {
	ref := item.Question.Reference
	switch {
	case ref.Video != nil:
		return fmt.Sprintf("Video: %s @ %s - \"%s\"", ref.Video.VideoName, ref.Video.Time, ref.Video.Quote)
	case ref.Document != nil:
		line := "Source PDF: " + ref.Document.SourcePDF
		if ref.Document.PageHint != "" {
			line += ", page " + ref.Document.PageHint
		}
		if ref.Document.Note != "" {
			line += " - " + ref.Document.Note
		}
		return line
	default:
		return ""
	}
}
