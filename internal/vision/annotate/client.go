// Package annotate implements the secondary vision backend: classic
// label, object and text annotation of an image.
package annotate

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/freshly-app/freshly/internal/detection"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	labelMaxResults    = 50
)

// ErrPermissionDenied marks billing or credential failures on the
// annotation backend. The orchestrator degrades to demo data on it instead
// of failing the request.
var ErrPermissionDenied = errors.New("annotate: permission denied")

// Result bundles the three independent annotation arrays of one image.
type Result struct {
	Labels   []detection.LabelAnnotation
	Objects  []detection.ObjectAnnotation
	FullText string
}

// Config captures the runtime settings for the annotation backend.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client wraps the images:annotate REST API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a client from the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}
	client := &Client{
		cfg: Config{
			APIKey:  strings.TrimSpace(cfg.APIKey),
			BaseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
			Timeout: timeout,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Configured reports whether the client has a usable credential.
func (c *Client) Configured() bool {
	return c != nil && c.cfg.APIKey != ""
}

type annotateRequest struct {
	Requests []imageRequest `json:"requests"`
}

type imageRequest struct {
	Image    imageContent `json:"image"`
	Features []feature    `json:"features"`
}

type imageContent struct {
	Content string `json:"content"`
}

type feature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults,omitempty"`
}

type annotateResponse struct {
	Responses []struct {
		LabelAnnotations           []detection.LabelAnnotation  `json:"labelAnnotations"`
		LocalizedObjectAnnotations []detection.ObjectAnnotation `json:"localizedObjectAnnotations"`
		TextAnnotations            []struct {
			Description string `json:"description"`
		} `json:"textAnnotations"`
		Error *apiError `json:"error"`
	} `json:"responses"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *apiError) denied() bool {
	if e == nil {
		return false
	}
	message := strings.ToLower(e.Message)
	return e.Status == "PERMISSION_DENIED" || strings.Contains(message, "billing")
}

// Annotate runs label, object and text detection over the image in a
// single request.
func (c *Client) Annotate(ctx context.Context, image []byte) (Result, error) {
	var empty Result
	if !c.Configured() {
		return empty, fmt.Errorf("annotate request: api key required")
	}
	payload := annotateRequest{
		Requests: []imageRequest{{
			Image: imageContent{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []feature{
				{Type: "LABEL_DETECTION", MaxResults: labelMaxResults},
				{Type: "OBJECT_LOCALIZATION"},
				{Type: "TEXT_DETECTION"},
			},
		}},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return empty, fmt.Errorf("annotate request: encode body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/images:annotate?key=%s", c.cfg.BaseURL, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return empty, fmt.Errorf("annotate request: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return empty, fmt.Errorf("annotate request: http error: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return empty, fmt.Errorf("annotate request: read body: %w", err)
	}
	if resp.StatusCode == http.StatusForbidden {
		return empty, fmt.Errorf("annotate request: http 403: %w", ErrPermissionDenied)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return empty, fmt.Errorf("annotate request: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed annotateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return empty, fmt.Errorf("annotate request: decode response: %w", err)
	}
	if parsed.Error != nil {
		if parsed.Error.denied() {
			return empty, fmt.Errorf("annotate request: %s: %w", parsed.Error.Message, ErrPermissionDenied)
		}
		return empty, fmt.Errorf("annotate request: api error %s: %s", parsed.Error.Status, parsed.Error.Message)
	}
	if len(parsed.Responses) == 0 {
		return empty, nil
	}

	first := parsed.Responses[0]
	if first.Error != nil {
		if first.Error.denied() {
			return empty, fmt.Errorf("annotate request: %s: %w", first.Error.Message, ErrPermissionDenied)
		}
		return empty, fmt.Errorf("annotate request: api error %s: %s", first.Error.Status, first.Error.Message)
	}

	result := Result{
		Labels:  first.LabelAnnotations,
		Objects: first.LocalizedObjectAnnotations,
	}
	// The first text annotation carries the full extracted text.
	if len(first.TextAnnotations) > 0 {
		result.FullText = first.TextAnnotations[0].Description
	}
	return result, nil
}
