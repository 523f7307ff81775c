package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDoctorsEmptyState(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"places":[]}`))
	}))
	defer gateway.Close()

	router := testRouter(t, gateway.URL)
	cookies := signIn(t, router)

	body := `{"location":{"lat":-26.2041,"lng":28.0473},"type":"dentist"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/protected/SearchDoctors", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)

	// No matches is a successful empty result, not an error.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"doctors":[]`)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestSearchDoctorsSortedByDistance(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"places":[
			{"id":"far","displayName":{"text":"Far Clinic"},"location":{"latitude":-25.7479,"longitude":28.2293}},
			{"id":"none","displayName":{"text":"No Coordinates"}},
			{"id":"near","displayName":{"text":"Near Clinic"},"location":{"latitude":-26.21,"longitude":28.05}}
		]}`))
	}))
	defer gateway.Close()

	router := testRouter(t, gateway.URL)
	cookies := signIn(t, router)

	body := `{"location":{"lat":-26.2041,"lng":28.0473},"type":"dentist","sortBy":"distance"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/protected/SearchDoctors", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	response := w.Body.String()
	near := strings.Index(response, "Near Clinic")
	far := strings.Index(response, "Far Clinic")
	none := strings.Index(response, "No Coordinates")
	assert.True(t, near < far, "nearest listing should come first")
	assert.True(t, far < none, "listings without coordinates sort last")
}

func TestSearchDoctorsRequiresType(t *testing.T) {
	router := testRouter(t, "")
	cookies := signIn(t, router)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/protected/SearchDoctors", strings.NewReader(`{"location":{"lat":1,"lng":2}}`))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
