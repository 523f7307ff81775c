package Controllers

import (
	"log"
	"net/http"

	"MedicalSuite/Models"
	"MedicalSuite/SSE"

	"github.com/gin-gonic/gin"
)

// FetchOfferings returns the quotable offerings grouped per company, in the
// order the upstream catalogue lists them.
func (app *App) FetchOfferings(c *gin.Context) {
	records, err := app.Gateway.GetAllOfferings(c.Request.Context())
	if err != nil {
		log.Println("Error fetching offerings:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	companies := Models.GroupOfferingsByCompany(records)
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

type QuoteRequestInput struct {
	OfferingKey string            `json:"compNameOfferering" binding:"required"`
	Fields      []string          `json:"fields"`
	Values      map[string]string `json:"values"`
}

// GetQuote validates the offering's required fields and, when complete,
// fetches and reshapes the cost breakdown. Each successful fetch consumes
// quota, so listeners are told to refresh.
func (app *App) GetQuote(c *gin.Context) {
	var input QuoteRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select an offering"})
		return
	}

	if fieldErrors := Models.ValidateQuoteFields(input.Values, input.Fields); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	session, _ := sessionFrom(c)
	raw, err := app.Gateway.GetQuoteItem(c.Request.Context(), session.Profile.Email, input.OfferingKey)
	if err != nil {
		log.Println("Error fetching quote:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	result := Models.ReshapeQuoteResponse(raw)
	SSE.NotifyQuotasUpdated()
	c.JSON(http.StatusOK, gin.H{"quote": result})
}
