package Geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"MedicalSuite/Models"
)

// FailureReason tags why a location fix could not be obtained.
type FailureReason string

const (
	ReasonDenied      FailureReason = "denied"
	ReasonUnavailable FailureReason = "unavailable"
	ReasonTimeout     FailureReason = "timeout"
	ReasonUnknown     FailureReason = "unknown"
)

// LookupTimeout bounds a single location request. There are no retries; all
// recovery is user-initiated.
const LookupTimeout = 5 * time.Second

// LookupError carries the tagged failure reason alongside the cause.
type LookupError struct {
	Reason FailureReason
	Err    error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geolocation %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("geolocation %s", e.Reason)
}

func (e *LookupError) Unwrap() error { return e.Err }

// Message is the user-facing description for the failure cause.
func (e *LookupError) Message() string {
	switch e.Reason {
	case ReasonDenied:
		return "Please allow location access to find doctors near you"
	case ReasonUnavailable:
		return "Location information is unavailable"
	case ReasonTimeout:
		return "Location request timed out"
	default:
		return "An unknown error occurred while getting location"
	}
}

// Locator resolves the requester's position through an IP-geolocation
// facility. One call, one answer or one tagged failure.
type Locator struct {
	ServiceURL string
	httpClient *http.Client
}

func NewLocator(serviceURL string) *Locator {
	return &Locator{
		ServiceURL: serviceURL,
		httpClient: &http.Client{Timeout: LookupTimeout},
	}
}

// Locate performs a single-shot lookup for the given client address. The
// returned error, when non-nil, is always a *LookupError.
func (l *Locator) Locate(ctx context.Context, clientIP string) (Models.GeoPosition, error) {
	ctx, cancel := context.WithTimeout(ctx, LookupTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.ServiceURL+clientIP, nil)
	if err != nil {
		return Models.GeoPosition{}, &LookupError{Reason: ReasonUnknown, Err: err}
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Models.GeoPosition{}, &LookupError{Reason: ReasonTimeout, Err: err}
		}
		return Models.GeoPosition{}, &LookupError{Reason: ReasonUnavailable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized {
		return Models.GeoPosition{}, &LookupError{Reason: ReasonDenied,
			Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return Models.GeoPosition{}, &LookupError{Reason: ReasonUnavailable,
			Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	var payload struct {
		Status   string  `json:"status"`
		Lat      float64 `json:"lat"`
		Lon      float64 `json:"lon"`
		Accuracy float64 `json:"accuracy"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Models.GeoPosition{}, &LookupError{Reason: ReasonUnavailable, Err: err}
	}
	if payload.Status != "" && payload.Status != "success" {
		return Models.GeoPosition{}, &LookupError{Reason: ReasonUnavailable,
			Err: fmt.Errorf("lookup status %q", payload.Status)}
	}

	return Models.GeoPosition{
		Lat:            payload.Lat,
		Lng:            payload.Lon,
		AccuracyMeters: payload.Accuracy,
		CapturedAt:     time.Now(),
	}, nil
}
