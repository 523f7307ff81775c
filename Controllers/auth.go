package Controllers

import (
	"log"
	"net/http"

	"MedicalSuite/Models"
	"MedicalSuite/Utils/Token"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Credential string `json:"credential" binding:"required"`
}

// Login accepts the identity provider assertion, decodes the profile claims
// and persists the session. This is the only transition from unauthenticated
// to authenticated.
func (app *App) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := Token.DecodeCredential(input.Credential)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credential"})
		return
	}

	session := Models.Session{
		Token: input.Credential,
		Profile: Models.Profile{
			Name:       claims.Name,
			Email:      claims.Email,
			Picture:    claims.Picture,
			Role:       "User",
			Department: "General",
		},
	}
	if err := app.Sessions.Persist(c, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login Successful", "user": session.Profile})
}

// CurrentUser answers the profile of the restored session.
func (app *App) CurrentUser(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success", "data": session.Profile})
}

// Logout clears both persisted session entries. This is the only transition
// back to unauthenticated.
func (app *App) Logout(c *gin.Context) {
	app.Sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
