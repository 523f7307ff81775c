package Controllers

import (
	"errors"
	"log"
	"net/http"

	"MedicalSuite/Geo"
	"MedicalSuite/Models"

	"github.com/gin-gonic/gin"
)

// Locate resolves the requester's position. Failures carry the per-cause
// message so the client can offer a retry.
func (app *App) Locate(c *gin.Context) {
	position, err := app.Locator.Locate(c.Request.Context(), c.ClientIP())
	if err != nil {
		var lookupErr *Geo.LookupError
		if errors.As(err, &lookupErr) {
			log.Println(lookupErr)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":  lookupErr.Message(),
				"reason": lookupErr.Reason,
			})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": position})
}

type SearchDoctorsInput struct {
	Location Models.GeoPosition `json:"location" binding:"required"`
	Type     string             `json:"type" binding:"required"`
	Radius   int                `json:"radius"`
	Query    string             `json:"query"`
	SortBy   string             `json:"sortBy"`
}

// SearchDoctors runs the nearby search and the full ranking pipeline:
// distance attachment, optional text filter, then the active sort. The
// listing set is rebuilt from scratch on every call.
func (app *App) SearchDoctors(c *gin.Context) {
	var input SearchDoctorsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a doctor type and ensure location is available"})
		return
	}
	if input.Radius <= 0 {
		input.Radius = 5000
	}

	session, _ := sessionFrom(c)
	places, err := app.Gateway.SearchNearby(c.Request.Context(), session.Profile.Email,
		input.Location, input.Type, input.Radius)
	if err != nil {
		log.Println("Error searching doctors:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	listings := make([]Models.ProviderListing, 0, len(places))
	for _, place := range places {
		listings = append(listings, place.ToListing())
	}

	Models.AttachDistances(listings, input.Location)
	listings = Models.FilterListings(listings, input.Query)
	Models.SortListings(listings, Models.ParseSortKey(input.SortBy))

	// Zero results is an empty state, not an error.
	c.JSON(http.StatusOK, gin.H{"doctors": listings, "count": len(listings)})
}
