package Geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/196.25.1.1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","lat":-26.2041,"lon":28.0473}`))
	}))
	defer server.Close()

	locator := NewLocator(server.URL + "/")
	position, err := locator.Locate(context.Background(), "196.25.1.1")

	require.NoError(t, err)
	assert.Equal(t, -26.2041, position.Lat)
	assert.Equal(t, 28.0473, position.Lng)
	assert.False(t, position.CapturedAt.IsZero())
}

func TestLocateDenied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	locator := NewLocator(server.URL + "/")
	_, err := locator.Locate(context.Background(), "196.25.1.1")

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, ReasonDenied, lookupErr.Reason)
	assert.Equal(t, "Please allow location access to find doctors near you", lookupErr.Message())
}

func TestLocateUnavailableOnFailedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail"}`))
	}))
	defer server.Close()

	locator := NewLocator(server.URL + "/")
	_, err := locator.Locate(context.Background(), "196.25.1.1")

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, ReasonUnavailable, lookupErr.Reason)
	assert.Equal(t, "Location information is unavailable", lookupErr.Message())
}

func TestLocateTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	locator := NewLocator(server.URL + "/")
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	_, err := locator.Locate(ctx, "196.25.1.1")

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, ReasonTimeout, lookupErr.Reason)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
