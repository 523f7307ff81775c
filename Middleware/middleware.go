package Middleware

import (
	"net/http"

	"MedicalSuite/Controllers"
	"MedicalSuite/Models"

	"github.com/gin-gonic/gin"
)

// SessionAuth rejects API calls that arrive without a restorable session.
// On success the session is stashed in the request context for the handlers.
func SessionAuth(store *Models.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := store.Restore(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Set(Controllers.SessionKey, session)
		c.Next()
	}
}

// PageGate redirects unauthenticated visitors of protected pages back to the
// landing page instead of answering 401.
func PageGate(store *Models.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := store.Restore(c)
		if !ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Set(Controllers.SessionKey, session)
		c.Next()
	}
}

// LandingRedirect sends already signed-in visitors of the landing page
// straight to the dashboard.
func LandingRedirect(store *Models.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := store.Restore(c); ok {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
