package Controllers

import (
	"MedicalSuite/Gateway"
	"MedicalSuite/Geo"
	"MedicalSuite/Models"

	"github.com/gin-gonic/gin"
)

// App bundles the dependencies the handlers share: the session store, the
// external gateway client and the geolocation service. It is constructed once
// per application lifetime and injected into the route table.
type App struct {
	Sessions *Models.SessionStore
	Gateway  *Gateway.Client
	Locator  *Geo.Locator
}

func NewApp(sessions *Models.SessionStore, gateway *Gateway.Client, locator *Geo.Locator) *App {
	return &App{
		Sessions: sessions,
		Gateway:  gateway,
		Locator:  locator,
	}
}

// SessionKey is the context key the auth middleware stores the restored
// session under.
const SessionKey = "session"

func sessionFrom(c *gin.Context) (Models.Session, bool) {
	value, exists := c.Get(SessionKey)
	if !exists {
		return Models.Session{}, false
	}
	session, ok := value.(Models.Session)
	return session, ok
}
