package Models

import (
	"encoding/json"

	"MedicalSuite/Constants"

	"github.com/gin-gonic/gin"
)

// Profile is the user record decoded from the identity provider credential.
type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Picture    string `json:"picture"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// Session pairs the opaque bearer token with its decoded profile.
type Session struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// SessionStore persists sessions as two co-located cookie entries, mirroring
// the pair of local-storage keys the web client uses. No expiry check is
// performed; a token is trusted until explicitly cleared.
type SessionStore struct {
	MaxAge int
	Secure bool
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		// A month, matching the provider credential lifetime policy upstream.
		MaxAge: 30 * 24 * 60 * 60,
	}
}

// Restore reads the persisted token and profile. It fails open: an absent
// entry or malformed profile JSON yields (Session{}, false), never an error.
func (s *SessionStore) Restore(c *gin.Context) (Session, bool) {
	token, err := c.Cookie(Constants.TokenEntry)
	if err != nil || token == "" {
		return Session{}, false
	}
	raw, err := c.Cookie(Constants.ProfileEntry)
	if err != nil || raw == "" {
		return Session{}, false
	}

	var profile Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		// Malformed persisted state means "no session", not a fatal error.
		return Session{}, false
	}
	return Session{Token: token, Profile: profile}, true
}

// Persist writes both entries. The storage medium gives no atomicity across
// the two writes; they are issued back to back.
func (s *SessionStore) Persist(c *gin.Context, session Session) error {
	raw, err := json.Marshal(session.Profile)
	if err != nil {
		return err
	}
	c.SetCookie(Constants.TokenEntry, session.Token, s.MaxAge, "/", "", s.Secure, true)
	c.SetCookie(Constants.ProfileEntry, string(raw), s.MaxAge, "/", "", s.Secure, false)
	return nil
}

// Clear removes both entries.
func (s *SessionStore) Clear(c *gin.Context) {
	c.SetCookie(Constants.TokenEntry, "", -1, "/", "", s.Secure, true)
	c.SetCookie(Constants.ProfileEntry, "", -1, "/", "", s.Secure, false)
}
