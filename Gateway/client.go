package Gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"MedicalSuite/Models"
)

// Client talks to the external API gateway that fronts the search, AI
// generation and quoting services. All calls are unauthenticated beyond the
// email query parameter; the gateway meters usage per account.
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		BaseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// SearchNearby runs a nearby search for providers of the given type around a
// location. Radius is in meters.
func (c *Client) SearchNearby(ctx context.Context, email string, location Models.GeoPosition, providerType string, radius int) ([]Place, error) {
	body := map[string]any{
		"action": "nearbySearch",
		"params": map[string]any{
			"location": map[string]float64{"lat": location.Lat, "lng": location.Lng},
			"type":     providerType,
			"radius":   radius,
		},
	}

	endpoint := c.BaseURL + "places/search?email=" + url.QueryEscape(email)
	resp, err := c.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var result struct {
		Places []Place `json:"places"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	return result.Places, nil
}

// DescribeImage submits a base64-encoded room photo and returns the gateway's
// structured room description as text.
func (c *Client) DescribeImage(ctx context.Context, email, base64Image string) (string, error) {
	endpoint := c.BaseURL + "images/describe?email=" + url.QueryEscape(email)
	resp, err := c.do(ctx, http.MethodPut, endpoint, base64Image)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", responseError(resp)
	}

	var result struct {
		Analysis json.RawMessage `json:"analysis"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse describe response: %w", err)
	}
	return analysisText(result.Analysis), nil
}

// CreateImages submits a composed prompt and returns the generated image URLs.
func (c *Client) CreateImages(ctx context.Context, prompt string) ([]string, error) {
	resp, err := c.do(ctx, http.MethodPut, c.BaseURL+"images/create", prompt)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var result struct {
		ImageURL []string `json:"imageUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse create response: %w", err)
	}
	return result.ImageURL, nil
}

// CreateMarketingPlan submits the composed prompt and returns the raw plan
// text. Failure payloads arrive either as JSON or plain text; both are
// surfaced as the error message.
func (c *Client) CreateMarketingPlan(ctx context.Context, email, prompt string) (string, error) {
	endpoint := c.BaseURL + "marketplan/create?email=" + url.QueryEscape(email)
	resp, err := c.do(ctx, http.MethodPut, endpoint, prompt)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read plan response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", bodyError(resp.StatusCode, text)
	}
	return string(text), nil
}

// GetAllOfferings fetches the flat list of quotable service offerings.
func (c *Client) GetAllOfferings(ctx context.Context) ([]Models.OfferingRecord, error) {
	resp, err := c.do(ctx, http.MethodGet, c.BaseURL+"quoteModule/getAll", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var records []Models.OfferingRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse offerings response: %w", err)
	}
	return records, nil
}

// GetQuoteItem fetches offering-cost records for one offering key. The
// payload shape varies (object or list), so the raw body is returned for the
// reshaping step.
func (c *Client) GetQuoteItem(ctx context.Context, email, offeringKey string) ([]byte, error) {
	endpoint := c.BaseURL + "quoteModule/getItem?email=" + url.QueryEscape(email) +
		"&compNameOfferering=" + url.QueryEscape(offeringKey)
	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}
	return io.ReadAll(resp.Body)
}

// Quotas are the account's remaining usage counters.
type Quotas struct {
	Marketing int `json:"marketing"`
	Doctor    int `json:"doctor"`
	Image     int `json:"image"`
	Quote     int `json:"quote"`
}

func (c *Client) GetQuotas(ctx context.Context, email string) (Quotas, error) {
	endpoint := c.BaseURL + "userdetails/get-quotas?email=" + url.QueryEscape(email)
	resp, err := c.do(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return Quotas{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quotas{}, responseError(resp)
	}

	var quotas Quotas
	if err := json.NewDecoder(resp.Body).Decode(&quotas); err != nil {
		return Quotas{}, fmt.Errorf("failed to parse quota response: %w", err)
	}
	return quotas, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	return resp, nil
}

// responseError extracts a message from a non-2xx response, trying JSON
// first and falling back to the raw body text.
func responseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return bodyError(resp.StatusCode, body)
}

func bodyError(status int, body []byte) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return errors.New(payload.Error)
		}
		if payload.Message != "" {
			return errors.New(payload.Message)
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return errors.New(text)
	}
	return fmt.Errorf("HTTP %d", status)
}

// analysisText flattens the gateway's room description, which may arrive as a
// plain string or a structured object, into prompt-ready text.
func analysisText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
