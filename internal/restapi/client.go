// Package restapi is the HTTP client for the Obsidian Local REST API.
// It translates vault operations into single HTTP requests and normalizes
// every outcome into a result envelope.
package restapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fiddeb/obsidian-local-rest-api/internal/types"
)

// Client issues requests against one vault endpoint with one credential.
// It is constructed once per process invocation and holds no mutable state.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	log     zerolog.Logger
}

// Options configures transport behavior.
type Options struct {
	// VerifyTLS enables certificate and hostname verification. It is off
	// by default on purpose: the expected endpoint is a local server
	// presenting a self-signed certificate, and trusting it is part of
	// this tool's contract.
	VerifyTLS bool

	// Timeout bounds the whole request. Zero means no client timeout.
	Timeout time.Duration

	// Logger receives per-request debug lines. Use zerolog.Nop() to
	// silence them.
	Logger zerolog.Logger
}

// New creates a client for the vault API at baseURL, authenticating every
// request with apiKey as a bearer token.
func New(baseURL, apiKey string, opts Options) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !opts.VerifyTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		log: opts.Logger,
	}
}

// do performs one request and normalizes the outcome. A 2xx response is a
// success envelope: JSON bodies are decoded, non-JSON bodies pass through as
// raw text, and an empty body means an absent payload. Non-2xx responses
// become failure envelopes with the status code preserved and the message
// pulled from the body's "message" field when one exists. A request that
// never produces a response becomes a failure envelope without a code.
func (c *Client) do(ctx context.Context, method, path string, body []byte, headers map[string]string, contentType string) types.Envelope {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return types.Failure("invalid request: " + err.Error())
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return types.Failure("Connection failed: " + err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Failure("Connection failed: " + err.Error())
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(raw) == 0 {
			return types.Success(nil)
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return types.Success(string(raw))
		}
		return types.Success(decoded)
	}

	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return types.FailureCode(apiErr.Message, resp.StatusCode)
	}
	return types.FailureCode(resp.Status, resp.StatusCode)
}
