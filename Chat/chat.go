package Chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"MedicalSuite/Constants"
)

// Relay forwards support-chat messages to the configured assistant webhook
// and returns its reply. The relay is constructed lazily on first use and
// shared for the application lifetime.
type Relay struct {
	WebhookURL string
	httpClient *http.Client
}

var (
	relayMu sync.Mutex
	relay   *Relay
)

// Get returns the shared relay, constructing it on first call.
func Get() *Relay {
	relayMu.Lock()
	defer relayMu.Unlock()
	if relay == nil {
		relay = NewRelay(Constants.ChatWebhook)
	}
	return relay
}

// Reset discards the shared relay so the next Get rebuilds it. Intended for
// configuration reloads and tests.
func Reset() {
	relayMu.Lock()
	defer relayMu.Unlock()
	relay = nil
}

func NewRelay(webhookURL string) *Relay {
	return &Relay{
		WebhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Send posts one chat message keyed by session and returns the assistant's
// reply text.
func (r *Relay) Send(ctx context.Context, sessionID, message string) (string, error) {
	if r.WebhookURL == "" {
		return "", errors.New("chat webhook is not configured")
	}

	payload, err := json.Marshal(map[string]any{
		"sessionId": sessionID,
		"chatInput": message,
		"metadata":  map[string]any{},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat webhook answered HTTP %d", resp.StatusCode)
	}

	var reply struct {
		Output string `json:"output"`
	}
	if err := json.Unmarshal(body, &reply); err == nil && reply.Output != "" {
		return reply.Output, nil
	}
	return strings.TrimSpace(string(body)), nil
}
