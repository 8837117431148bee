// Package narration provides the client for the external narration
// collaborator. Narration is best-effort: the engine never rolls back a
// mechanical result because the narrator is unreachable.
package narration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/duelhall/encounter-api/internal/entities"
	"github.com/duelhall/encounter-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_narrator.go -package=narrationmock github.com/duelhall/encounter-api/internal/collaborators/narration Narrator

const defaultTimeout = 30 * time.Second

// Narrator turns a session and its most recent log line into descriptive
// text. It never alters any mechanical value.
type Narrator interface {
	Narrate(ctx context.Context, session *entities.Session) (string, error)
}

// Config holds the configuration for the HTTP narrator client
type Config struct {
	Endpoint string
	Timeout  time.Duration

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Validate ensures all required settings are provided
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.InvalidArgument("narration endpoint is required")
	}
	return nil
}

// HTTPNarrator implements Narrator against a JSON-over-HTTP service
type HTTPNarrator struct {
	endpoint   string
	httpClient *http.Client
}

// Ensure HTTPNarrator implements Narrator
var _ Narrator = (*HTTPNarrator)(nil)

// NewHTTPNarrator creates a narrator client for the given endpoint
func NewHTTPNarrator(cfg *Config) (*HTTPNarrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &HTTPNarrator{
		endpoint:   cfg.Endpoint,
		httpClient: httpClient,
	}, nil
}

// narrateRequest is the JSON body sent to the narration service
type narrateRequest struct {
	Session     *entities.Session `json:"session"`
	LastLogLine string            `json:"last_log_line"`
}

// narrateResponse is the JSON body returned by the narration service
type narrateResponse struct {
	Narration string `json:"narration"`
}

// Narrate requests descriptive text for the session's latest outcome
func (n *HTTPNarrator) Narrate(ctx context.Context, session *entities.Session) (string, error) {
	body, err := json.Marshal(narrateRequest{
		Session:     session,
		LastLogLine: session.LastLogLine(),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal narration request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build narration request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "narration collaborator unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Unavailablef("narration collaborator returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read narration response")
	}

	var parsed narrateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("failed to parse narration response: %.100s", respBody))
	}

	return parsed.Narration, nil
}
