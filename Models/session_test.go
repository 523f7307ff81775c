package Models

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"MedicalSuite/Constants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestContext(t *testing.T, cookies map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	for name, value := range cookies {
		// Values travel query-escaped, matching how they are written.
		c.Request.AddCookie(&http.Cookie{Name: name, Value: url.QueryEscape(value)})
	}
	return c, w
}

func TestRestoreNoSession(t *testing.T) {
	store := NewSessionStore()

	c, _ := requestContext(t, nil)
	_, ok := store.Restore(c)
	assert.False(t, ok)
}

func TestRestoreRequiresBothEntries(t *testing.T) {
	store := NewSessionStore()

	c, _ := requestContext(t, map[string]string{
		Constants.TokenEntry: "token-value",
	})
	_, ok := store.Restore(c)
	assert.False(t, ok)

	c, _ = requestContext(t, map[string]string{
		Constants.ProfileEntry: `{"email":"jo@example.com"}`,
	})
	_, ok = store.Restore(c)
	assert.False(t, ok)
}

func TestRestoreFailsOpenOnMalformedProfile(t *testing.T) {
	store := NewSessionStore()

	c, _ := requestContext(t, map[string]string{
		Constants.TokenEntry:   "token-value",
		Constants.ProfileEntry: "{not valid json",
	})

	session, ok := store.Restore(c)
	assert.False(t, ok)
	assert.Equal(t, Session{}, session)
}

func TestRestoreRoundTrip(t *testing.T) {
	store := NewSessionStore()

	c, _ := requestContext(t, map[string]string{
		Constants.TokenEntry:   "token-value",
		Constants.ProfileEntry: `{"name":"Jo","email":"jo@example.com","role":"User"}`,
	})

	session, ok := store.Restore(c)
	require.True(t, ok)
	assert.Equal(t, "token-value", session.Token)
	assert.Equal(t, "Jo", session.Profile.Name)
	assert.Equal(t, "jo@example.com", session.Profile.Email)
	assert.Equal(t, "User", session.Profile.Role)
}

func TestPersistWritesBothEntries(t *testing.T) {
	store := NewSessionStore()

	c, w := requestContext(t, nil)
	err := store.Persist(c, Session{
		Token:   "token-value",
		Profile: Profile{Name: "Jo", Email: "jo@example.com"},
	})
	require.NoError(t, err)

	written := strings.Join(w.Header().Values("Set-Cookie"), "\n")
	assert.Contains(t, written, Constants.TokenEntry+"=")
	assert.Contains(t, written, Constants.ProfileEntry+"=")
}

func TestClearExpiresBothEntries(t *testing.T) {
	store := NewSessionStore()

	c, w := requestContext(t, nil)
	store.Clear(c)

	values := w.Header().Values("Set-Cookie")
	require.Len(t, values, 2)
	for _, value := range values {
		assert.Contains(t, value, "Max-Age=0")
	}
}
