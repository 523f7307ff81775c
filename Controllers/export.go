package Controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"MedicalSuite/Constants"
	"MedicalSuite/Models"
	"MedicalSuite/PDF"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

type ExportQuoteInput struct {
	Quote  Models.QuoteResult `json:"quote" binding:"required"`
	Client PDF.QuoteClient    `json:"client"`
}

// ExportQuotePDF renders the quote breakdown as a formal quotation document
// and streams it back as a download.
func (app *App) ExportQuotePDF(c *gin.Context) {
	var input ExportQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quote data is required"})
		return
	}

	doc := PDF.NewQuoteDocument(input.Quote, input.Client)
	filename, err := saveDocument(doc, fmt.Sprintf("quotation_%d.pdf", time.Now().UnixNano()))
	if err != nil {
		log.Println("Error writing quote PDF:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate quotation document"})
		return
	}
	c.FileAttachment(filename, "quotation.pdf")
}

type ExportPlanInput struct {
	Plan string                   `json:"plan" binding:"required"`
	Form Models.MarketingPlanForm `json:"form"`
}

// ExportMarketingPlanPDF renders the generated plan as a branded strategy
// document.
func (app *App) ExportMarketingPlanPDF(c *gin.Context) {
	var input ExportPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan text is required"})
		return
	}

	doc := PDF.NewMarketingPlanDocument(input.Plan, input.Form)
	filename, err := saveDocument(doc, fmt.Sprintf("marketing_plan_%d.pdf", time.Now().UnixNano()))
	if err != nil {
		log.Println("Error writing marketing plan PDF:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate plan document"})
		return
	}
	c.FileAttachment(filename, "marketing_plan.pdf")
}

// ExportQuoteExcel writes the quote line items to a spreadsheet, one row per
// detail with its category and cost.
func (app *App) ExportQuoteExcel(c *gin.Context) {
	var input ExportQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quote data is required"})
		return
	}

	headers := map[string]string{
		"A1": "Category",
		"B1": "Item",
		"C1": "Cost",
	}
	file := excelize.NewFile()
	sheet := "Quotation"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	rowCount := 2
	for _, item := range input.Quote.Items {
		for _, detail := range item.Details {
			file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), item.Category)
			file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), detail.Name)
			file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), detail.Cost)
			rowCount++
		}
	}
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), "Total")
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), input.Quote.Total)

	if err := os.MkdirAll(Constants.ExportsDir, 0o755); err != nil {
		log.Println("Error creating exports dir:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate spreadsheet"})
		return
	}
	filename := filepath.Join(Constants.ExportsDir, fmt.Sprintf("quotation_%d.xlsx", time.Now().UnixNano()))
	if err := file.SaveAs(filename); err != nil {
		log.Println("Error writing quote spreadsheet:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate spreadsheet"})
		return
	}
	c.FileAttachment(filename, "quotation.xlsx")
}

type pdfDocument interface {
	OutputFileAndClose(string) error
}

func saveDocument(doc pdfDocument, name string) (string, error) {
	if err := os.MkdirAll(Constants.ExportsDir, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(Constants.ExportsDir, name)
	if err := doc.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	return filename, nil
}
