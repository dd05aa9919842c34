package novapost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/parcelbridge/novapost/internal/telemetry"
)

// DefaultBaseURL is the carrier's single JSON endpoint. Every method POSTs here.
const DefaultBaseURL = "https://api.novaposhta.ua/v2.0/json/"

// HTTPAPIClient is the production implementation of APIClient using HTTP.
type HTTPAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *telemetry.Metrics
}

// HTTPAPIClientConfig holds configuration for the HTTP client.
type HTTPAPIClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Metrics *telemetry.Metrics // optional
}

// NewHTTPAPIClient creates a new HTTP-based API client for production use.
func NewHTTPAPIClient(cfg HTTPAPIClientConfig) *HTTPAPIClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HTTPAPIClient{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: cfg.Metrics,
	}
}

// Call issues one POST with the generic request envelope and returns the
// decoded generic response envelope. Transport failures surface as
// *TransportError; success=false envelopes are returned as-is for the typed
// decode to classify.
func (c *HTTPAPIClient) Call(ctx context.Context, model, method string, props any) (*Envelope, error) {
	op := model + "." + method
	start := time.Now()

	env, err := c.call(ctx, model, method, props)

	if c.metrics != nil {
		status := "ok"
		switch {
		case err != nil:
			status = "transport_error"
		case !env.Success:
			status = "rejected"
			c.metrics.RecordError(model, method)
		}
		c.metrics.RecordCall(model, method, status, time.Since(start).Seconds())
	}
	if err != nil {
		return nil, &TransportError{Op: op, Cause: err}
	}
	return env, nil
}

func (c *HTTPAPIClient) call(ctx context.Context, model, method string, props any) (*Envelope, error) {
	resp, err := c.post(ctx, Request{
		CalledMethod:     method,
		ModelName:        model,
		MethodProperties: props,
		APIKey:           c.apiKey,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response envelope: %w", err)
	}
	return &env, nil
}

// PrintScanSheet issues the printFull variant and returns the printable
// document bytes. A JSON body in the reply means the carrier rejected the
// request instead of rendering the document.
func (c *HTTPAPIClient) PrintScanSheet(ctx context.Context, req *PrintRequest) ([]byte, error) {
	op := req.ModelName + "." + req.CalledMethod
	start := time.Now()

	out := *req
	out.APIKey = c.apiKey

	resp, err := c.post(ctx, out)
	if err != nil {
		c.recordPrint(req, "transport_error", start)
		return nil, &TransportError{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.recordPrint(req, "transport_error", start)
		return nil, &TransportError{Op: op, Cause: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordPrint(req, "transport_error", start)
		return nil, &TransportError{Op: op, Cause: err}
	}

	if mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type")); mediaType == "application/json" {
		var env Envelope
		if jsonErr := json.Unmarshal(body, &env); jsonErr == nil && !env.Success {
			c.recordPrint(req, "rejected", start)
			return nil, &CarrierError{Model: req.ModelName, Method: req.CalledMethod, Errors: env.Errors}
		}
	}

	c.recordPrint(req, "ok", start)
	return body, nil
}

func (c *HTTPAPIClient) recordPrint(req *PrintRequest, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordCall(req.ModelName, req.CalledMethod, status, time.Since(start).Seconds())
}

// post marshals body and performs the POST with proper headers.
func (c *HTTPAPIClient) post(ctx context.Context, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "parcelbridge-novapost/1.0")

	return c.httpClient.Do(req)
}

// Ensure HTTPAPIClient implements APIClient interface
var _ APIClient = (*HTTPAPIClient)(nil)
