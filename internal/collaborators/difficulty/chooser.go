// Package difficulty provides the client for the external DC-assignment
// collaborator. DC assignment is best-effort: any failure or out-of-set
// answer falls back to the default DC.
package difficulty

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/duelhall/encounter-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_chooser.go -package=difficultymock github.com/duelhall/encounter-api/internal/collaborators/difficulty Chooser

// DefaultDC is used when no context is given or the collaborator fails
const DefaultDC = 15

const defaultTimeout = 15 * time.Second

// CanonicalDCs are the only values the collaborator may assign
var CanonicalDCs = []int{5, 10, 15, 20, 25, 30}

// IsCanonical reports whether dc is one of the six canonical values
func IsCanonical(dc int) bool {
	for _, v := range CanonicalDCs {
		if dc == v {
			return true
		}
	}
	return false
}

// Chooser assigns a difficulty class for a labeled check given narrative
// context
type Chooser interface {
	ChooseDC(ctx context.Context, label, checkContext string) (int, error)
}

// Config holds the configuration for the HTTP chooser client
type Config struct {
	Endpoint string
	Timeout  time.Duration

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Validate ensures all required settings are provided
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.InvalidArgument("difficulty endpoint is required")
	}
	return nil
}

// HTTPChooser implements Chooser against a JSON-over-HTTP service
type HTTPChooser struct {
	endpoint   string
	httpClient *http.Client
}

// Ensure HTTPChooser implements Chooser
var _ Chooser = (*HTTPChooser)(nil)

// NewHTTPChooser creates a chooser client for the given endpoint
func NewHTTPChooser(cfg *Config) (*HTTPChooser, error) {
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

	return &HTTPChooser{
		endpoint:   cfg.Endpoint,
		httpClient: httpClient,
	}, nil
}

// chooseRequest is the JSON body sent to the difficulty service
type chooseRequest struct {
	Label   string `json:"label"`
	Context string `json:"context"`
}

// chooseResponse is the JSON body returned by the difficulty service
type chooseResponse struct {
	DC int `json:"dc"`
}

// ChooseDC asks the collaborator for a DC. Answers outside the canonical
// set are rejected as Unavailable so callers fall back to DefaultDC.
func (c *HTTPChooser) ChooseDC(ctx context.Context, label, checkContext string) (int, error) {
	body, err := json.Marshal(chooseRequest{
		Label:   label,
		Context: checkContext,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to marshal difficulty request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.Wrap(err, "failed to build difficulty request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "difficulty collaborator unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, errors.Unavailablef("difficulty collaborator returned status %d", resp.StatusCode)
	}

	var parsed chooseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to parse difficulty response")
	}

	if !IsCanonical(parsed.DC) {
		return 0, errors.Unavailablef("difficulty collaborator returned non-canonical DC %d", parsed.DC)
	}

	return parsed.DC, nil
}
