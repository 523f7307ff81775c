package PDF

import (
	"fmt"
	"strings"
	"time"

	"MedicalSuite/Models"

	"github.com/jung-kurt/gofpdf"
)

// NewMarketingPlanDocument lays out a generated plan as a paginated document
// with a fixed visual template: header block with the business details,
// divider, company overview, the six classified plan sections, footer and
// page numbers.
func NewMarketingPlanDocument(plan string, form Models.MarketingPlanForm) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	sections := Models.ParsePlanSections(plan)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(226, 232, 240)
		pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(113, 128, 150)
		pdf.CellFormat(150, 6, tr("Confidential Document | Generated by Marketing Plan Generator | Review and adjust according to your specific needs"),
			"", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%d / {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AliasNbPages("")
	pdf.AddPage()

	// Header block
	pdf.SetFillColor(247, 250, 252)
	pdf.Rect(0, 0, 210, 55, "F")
	pdf.SetY(14)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(26, 54, 93)
	pdf.CellFormat(0, 12, tr("Strategic Marketing Plan"), "", 1, "L", false, 0, "")

	// Divider
	pdf.SetFillColor(49, 130, 206)
	pdf.Rect(pdf.GetX(), pdf.GetY()+1, 30, 1.5, "F")
	pdf.Ln(6)

	infoItems := []struct {
		label string
		value string
	}{
		{"Company", orDefault(form.BusinessName, "Unnamed Business")},
		{"Industry", orDefault(form.Industry, "Not specified")},
		{"Timeline", orDefault(form.Timeline, "Not specified")},
		{"Budget Range", Models.FormatBudgetRange(form.Budget)},
		{"Document Date", time.Now().Format("January 2, 2006")},
	}
	for i := 0; i < len(infoItems); i += 2 {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(113, 128, 150)
		pdf.CellFormat(90, 5, tr(strings.ToUpper(infoItems[i].label)), "", 0, "L", false, 0, "")
		if i+1 < len(infoItems) {
			pdf.CellFormat(0, 5, tr(strings.ToUpper(infoItems[i+1].label)), "", 1, "L", false, 0, "")
		} else {
			pdf.Ln(5)
		}
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(74, 85, 104)
		pdf.CellFormat(90, 6, tr(infoItems[i].value), "", 0, "L", false, 0, "")
		if i+1 < len(infoItems) {
			pdf.CellFormat(0, 6, tr(infoItems[i+1].value), "", 1, "L", false, 0, "")
		} else {
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}
	pdf.Ln(6)

	// Company overview
	writeSectionTitle(pdf, tr, "Company Overview")
	writeHighlight(pdf, tr, orDefault(form.CompanyDescription, "No description provided"))
	if form.UniqueSellingProposition != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(26, 32, 44)
		pdf.CellFormat(0, 8, tr("Unique Selling Proposition"), "", 1, "L", false, 0, "")
		writeBody(pdf, tr, form.UniqueSellingProposition)
	}

	writeSection(pdf, tr, sections.TargetMarket, "")
	writeSection(pdf, tr, sections.Strategy, "")
	writeSection(pdf, tr, sections.Budget, "Total Budget Range: "+Models.FormatBudgetRange(form.Budget))
	writeSection(pdf, tr, sections.Timeline, "Project Duration: "+orDefault(form.Timeline, "Not specified"))
	writeSection(pdf, tr, sections.Recommendations, "")

	return pdf
}

func writeSection(pdf *gofpdf.Fpdf, tr func(string) string, section Models.PlanSection, highlight string) {
	pdf.Ln(4)
	writeSectionTitle(pdf, tr, section.Title)
	if highlight != "" {
		writeHighlight(pdf, tr, highlight)
	}
	if section.Content != "" {
		writeBody(pdf, tr, section.Content)
	}
	for _, item := range section.Items {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(74, 85, 104)
		pdf.CellFormat(8, 5, "", "", 0, "L", false, 0, "")
		pdf.MultiCell(0, 5, tr("- "+item), "", "L", false)
		pdf.Ln(1)
	}
}

func writeSectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 15)
	pdf.SetTextColor(44, 82, 130)
	pdf.CellFormat(0, 9, tr(title), "", 1, "L", false, 0, "")
	pdf.SetDrawColor(226, 232, 240)
	pdf.Line(pdf.GetX(), pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(4)
}

func writeHighlight(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFillColor(235, 248, 255)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(44, 82, 130)
	pdf.MultiCell(0, 6, tr(text), "", "L", true)
	pdf.Ln(3)
}

func writeBody(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(74, 85, 104)
	pdf.MultiCell(0, 5, tr(text), "", "L", false)
	pdf.Ln(2)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
