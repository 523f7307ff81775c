package Controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetQuotas reports the signed-in account's remaining usage counters.
func (app *App) GetQuotas(c *gin.Context) {
	session, _ := sessionFrom(c)
	quotas, err := app.Gateway.GetQuotas(c.Request.Context(), session.Profile.Email)
	if err != nil {
		log.Println("Error fetching quotas:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load usage quotas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotas": quotas})
}
