// Package report renders analysis results and cover letters as PDF
// documents for download.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/careercopilot/backend/models"
)

const (
	pageMargin = 20.0
	lineHeight = 6.0
)

func newDocument() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	return pdf
}

// CoverLetterPDF renders a cover letter as a single-page PDF.
func CoverLetterPDF(letter *models.CoverLetter) ([]byte, error) {
	pdf := newDocument()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Cover Letter - %s at %s", letter.Position, letter.Company), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, time.Now().Format("January 2, 2006"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, para := range strings.Split(letter.Text, "\n\n") {
		pdf.MultiCell(0, lineHeight, strings.TrimSpace(para), "", "L", false)
		pdf.Ln(3)
	}

	return render(pdf)
}

// AnalysisPDF renders the full analysis result as a PDF report.
func AnalysisPDF(analysis *models.Analysis) ([]byte, error) {
	pdf := newDocument()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Resume Analysis Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, fmt.Sprintf("Target Role: %s  |  Generated %s", analysis.TargetRole, time.Now().Format("2006-01-02")), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	sectionTitle(pdf, fmt.Sprintf("Role Fit Score: %d / 100", analysis.RoleFitScore))
	pdf.Ln(2)

	sectionTitle(pdf, "Strengths")
	bulletList(pdf, analysis.Strengths)

	sectionTitle(pdf, "Skill Gaps")
	if len(analysis.SkillGaps.Core) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, lineHeight, "Core", "", 1, "L", false, 0, "")
		bulletList(pdf, analysis.SkillGaps.Core)
	}
	if len(analysis.SkillGaps.Supporting) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, lineHeight, "Supporting", "", 1, "L", false, 0, "")
		bulletList(pdf, analysis.SkillGaps.Supporting)
	}

	sectionTitle(pdf, "Learning Roadmap")
	pdf.SetFont("Helvetica", "", 11)
	for i, item := range analysis.Roadmap {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, lineHeight, fmt.Sprintf("%d. %s  [%s, %s]", i+1, item.Skill, item.Priority, item.EstimatedTime), "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, item.ExpectedOutcome, "", "L", false)
		pdf.Ln(2)
	}

	if analysis.AnalysisNotes != "" {
		sectionTitle(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, lineHeight, analysis.AnalysisNotes, "", "L", false)
	}

	if analysis.DemoMode {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 5, "Generated offline from keyword matching.", "", 1, "L", false, 0, "")
	}

	return render(pdf)
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func bulletList(pdf *fpdf.Fpdf, items []string) {
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		pdf.MultiCell(0, lineHeight, "- "+item, "", "L", false)
	}
	pdf.Ln(2)
}

func render(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
