package Controllers

import (
	"log"
	"net/http"

	"MedicalSuite/Models"
	"MedicalSuite/SSE"

	"github.com/gin-gonic/gin"
)

// GenerateMarketingPlan composes a prompt from the business form, asks the
// gateway to draft the plan, and returns the cleaned text alongside its
// parsed sections. The form must be fully completed first.
func (app *App) GenerateMarketingPlan(c *gin.Context) {
	var form Models.MarketingPlanForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return
	}

	if form.CompletionRatio() < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Please complete all required fields before generating a plan",
			"missing":  form.MissingFields(),
			"progress": form.CompletionRatio(),
		})
		return
	}

	session, _ := sessionFrom(c)
	raw, err := app.Gateway.CreateMarketingPlan(c.Request.Context(), session.Profile.Email, form.BuildPrompt())
	if err != nil {
		log.Println("Error generating marketing plan:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	plan := Models.BeautifyPlan(raw)
	SSE.NotifyQuotasUpdated()
	c.JSON(http.StatusOK, gin.H{
		"plan":     plan,
		"sections": Models.ParsePlanSections(plan),
	})
}
