package PDF

import (
	"fmt"
	"time"

	"MedicalSuite/Models"

	"github.com/jung-kurt/gofpdf"
)

// QuoteClient is the client information printed on a quote document.
type QuoteClient struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	CompanyName string `json:"companyName"`
	Province    string `json:"province"`
	MPNumber    string `json:"mpNumber"`
	PRNumber    string `json:"prNumber"`
}

// NewQuoteDocument lays out a finished quote as a paginated document: header
// with quote number and date, client information panel, one section per
// category, total line, signature block and footer.
func NewQuoteDocument(result Models.QuoteResult, client QuoteClient) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	quoteNumber := fmt.Sprintf("Q%06d", time.Now().Unix()%1000000)
	currentDate := time.Now().Format("January 2, 2006")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(127, 140, 141)
		pdf.MultiCell(0, 4, tr(fmt.Sprintf(
			"This quote was generated electronically by Best Medical Solutions and is valid for 30 days.\nQuote Number: %s",
			quoteNumber)), "", "C", false)
		pdf.CellFormat(0, 4, fmt.Sprintf("%d / {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AliasNbPages("")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 12, tr("Medical Equipment Quote"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(127, 140, 141)
	pdf.CellFormat(0, 6, tr("Quote Number: "+quoteNumber), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr("Date: "+currentDate), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Client information panel
	pdf.SetFillColor(248, 249, 249)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(52, 152, 219)
	pdf.CellFormat(0, 9, tr("Client Information"), "", 1, "L", true, 0, "")
	clientRows := []struct {
		label string
		value string
	}{
		{"Name:", client.Name},
		{"Surname:", client.Surname},
		{"Company:", client.CompanyName},
		{"Province:", client.Province},
		{"MP Number:", client.MPNumber},
		{"PR Number:", client.PRNumber},
	}
	for _, row := range clientRows {
		if row.value == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(44, 62, 80)
		pdf.CellFormat(50, 7, tr(row.label), "", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(52, 73, 94)
		pdf.CellFormat(0, 7, tr(row.value), "", 1, "L", true, 0, "")
	}
	pdf.Ln(6)

	// Quote items
	for _, item := range result.Items {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.SetTextColor(52, 152, 219)
		pdf.CellFormat(0, 8, tr(item.Category), "", 1, "L", false, 0, "")
		pdf.SetTextColor(44, 62, 80)
		for _, detail := range item.Details {
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(110, 6, tr(detail.Name), "", 0, "L", false, 0, "")
			if detail.Cost != "" {
				pdf.CellFormat(0, 6, tr("Cost: "+detail.Cost), "", 1, "R", false, 0, "")
			} else {
				pdf.Ln(6)
			}
			for _, sub := range detail.SubItems {
				pdf.SetFont("Helvetica", "", 9)
				pdf.CellFormat(10, 5, "", "", 0, "L", false, 0, "")
				pdf.CellFormat(0, 5, tr("- "+sub), "", 1, "L", false, 0, "")
			}
		}
		pdf.SetDrawColor(234, 236, 238)
		pdf.Line(pdf.GetX(), pdf.GetY()+2, 200, pdf.GetY()+2)
		pdf.Ln(6)
	}

	// Total
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(231, 76, 60)
	pdf.CellFormat(0, 10, tr("Total Estimated Cost: "+result.Total), "", 1, "R", false, 0, "")

	// Signatures
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 8, tr("Client Signature: _________________________"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, tr("Date: _________________________"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, tr("Company Representative: _________________________"), "", 1, "L", false, 0, "")

	return pdf
}
