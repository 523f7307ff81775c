package Gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"MedicalSuite/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchNearby(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/places/search", r.URL.Path)
		assert.Equal(t, "jo@example.com", r.URL.Query().Get("email"))

		var body struct {
			Action string `json:"action"`
			Params struct {
				Type   string `json:"type"`
				Radius int    `json:"radius"`
			} `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "nearbySearch", body.Action)
		assert.Equal(t, "dentist", body.Params.Type)
		assert.Equal(t, 5000, body.Params.Radius)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"places":[{"id":"p1","displayName":{"text":"Dr Smith"},"rating":4.5}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	places, err := client.SearchNearby(context.Background(), "jo@example.com",
		Models.GeoPosition{Lat: -26.2, Lng: 28.0}, "dentist", 5000)

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "p1", places[0].ID)
	assert.Equal(t, "Dr Smith", places[0].DisplayName.Text)
}

func TestResponseErrorPrefersJSONMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"quota exhausted"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetAllOfferings(context.Background())

	require.Error(t, err)
	assert.Equal(t, "quota exhausted", err.Error())
}

func TestResponseErrorFallsBackToBodyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetAllOfferings(context.Background())

	require.Error(t, err)
	assert.Equal(t, "upstream exploded", err.Error())
}

func TestResponseErrorLastResortIsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetAllOfferings(context.Background())

	require.Error(t, err)
	assert.Equal(t, "HTTP 500", err.Error())
}

func TestCreateMarketingPlanReturnsRawText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/marketplan/create", r.URL.Path)
		w.Write([]byte("### Marketing Strategy\nDo things."))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	plan, err := client.CreateMarketingPlan(context.Background(), "jo@example.com", "the prompt")

	require.NoError(t, err)
	assert.Equal(t, "### Marketing Strategy\nDo things.", plan)
}

func TestGetQuotas(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/userdetails/get-quotas", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"marketing":3,"doctor":10,"image":2,"quote":7}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	quotas, err := client.GetQuotas(context.Background(), "jo@example.com")

	require.NoError(t, err)
	assert.Equal(t, Quotas{Marketing: 3, Doctor: 10, Image: 2, Quote: 7}, quotas)
}

func TestGetQuoteItemReturnsRawBody(t *testing.T) {
	payload := `{"Offering":"X-Ray","total":"R500","Film":"R300"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quoteModule/getItem", r.URL.Path)
		assert.Equal(t, "AcmeX-Ray", r.URL.Query().Get("compNameOfferering"))
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	raw, err := client.GetQuoteItem(context.Background(), "jo@example.com", "AcmeX-Ray")

	require.NoError(t, err)
	assert.Equal(t, payload, string(raw))
}

func TestToListing(t *testing.T) {
	lat, lng := -25.7479, 28.2293
	open := true
	place := Place{
		ID: "p1",
		Rating: 4.5,
		PrimaryType: "dentist",
		CurrentOpeningHours: &OpeningHours{
			OpenNow:             &open,
			WeekdayDescriptions: []string{"Monday: 8am-5pm"},
		},
	}
	place.DisplayName.Text = "Dr Smith"
	place.ShortFormattedAddress = "1 Main Rd"
	place.Location = &struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}{Latitude: &lat, Longitude: &lng}

	listing := place.ToListing()

	assert.Equal(t, "Dr Smith", listing.Name)
	assert.Equal(t, "1 Main Rd", listing.Address)
	require.NotNil(t, listing.Location)
	assert.Equal(t, lat, listing.Location.Lat)
	// Distance is the ranking pipeline's job; the mapping leaves the sentinel.
	assert.Equal(t, Models.SentinelDistance, listing.DistanceKm)
	require.NotNil(t, listing.OpenNow)
	assert.True(t, *listing.OpenNow)
	assert.Equal(t, []string{"Monday: 8am-5pm"}, listing.OpeningHours)
	assert.NotNil(t, listing.Reviews)
	assert.Zero(t, listing.ReviewCount)
}

func TestToListingWithoutCoordinates(t *testing.T) {
	var place Place
	place.DisplayName.Text = "Dr Nowhere"

	listing := place.ToListing()

	assert.Nil(t, listing.Location)
	assert.Equal(t, Models.SentinelDistance, listing.DistanceKm)
}
