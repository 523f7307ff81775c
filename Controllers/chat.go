package Controllers

import (
	"log"
	"net/http"

	"MedicalSuite/Chat"

	"github.com/gin-gonic/gin"
)

type ChatInput struct {
	SessionID string `json:"sessionId" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// SendChat relays one support message to the assistant webhook and returns
// its reply.
func (app *App) SendChat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message text is required"})
		return
	}

	reply, err := Chat.Get().Send(c.Request.Context(), input.SessionID, input.Message)
	if err != nil {
		log.Println("Error relaying chat message:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "The assistant is unavailable right now. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"output": reply})
}
