package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"MedicalSuite/SSE"

	"github.com/gin-gonic/gin"
)

type TransformRoomInput struct {
	Image      string `json:"image" binding:"required"`
	Occupation string `json:"occupation"`
}

const roomPromptTemplate = ` Create a highly detailed, ultra-realistic, aesthetically stunning, beautiful 3D-rendered image of a modern %s's office filled with the common room equipment for a %s's office.
      Follow the exact dimensions and structure for this room in the image below:
      --------details---------
      %s
      -----------------
      Paint the walls nicely to suit the room's design.
      The room must follow the exact room dimensions as stated above.`

// TransformRoom runs the two-step room redesign: describe the uploaded photo,
// then generate renderings of it refitted as the chosen practitioner's office.
func (app *App) TransformRoom(c *gin.Context) {
	var input TransformRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select an image to transform"})
		return
	}
	if input.Occupation == "" {
		input.Occupation = "Dentist"
	}

	session, _ := sessionFrom(c)
	analysis, err := app.Gateway.DescribeImage(c.Request.Context(), session.Profile.Email, input.Image)
	if err != nil {
		log.Println("Error describing image:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	prompt := fmt.Sprintf(roomPromptTemplate, input.Occupation, input.Occupation, analysis)
	urls, err := app.Gateway.CreateImages(c.Request.Context(), prompt)
	if err != nil {
		log.Println("Error generating images:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if len(urls) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "No images were generated"})
		return
	}

	SSE.NotifyQuotasUpdated()
	c.JSON(http.StatusOK, gin.H{"imageUrl": urls, "count": len(urls)})
}
