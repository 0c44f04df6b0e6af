package network

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client calls a remote evaluator.
type Client struct {
	baseURL string
	client  http.Client
}

type ClientOption func(*Client)

// NewClient returns a client for the server at baseURL, e.g.
// "https://localhost:8080".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: http.Client{
			Timeout:   30 * time.Second,
			Transport: &http.Transport{},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// WithRootCAs trusts only the certificates in certPool.
func WithRootCAs(certPool *x509.CertPool) ClientOption {
	return func(c *Client) {
		c.client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{RootCAs: certPool, MinVersion: tls.VersionTLS12},
		}
	}
}

// Evaluate sends cards to the server. An invalid hand is not an error: the
// response carries the validation messages.
func (c *Client) Evaluate(ctx context.Context, cards string) (HandResponse, error) {
	body, err := json.Marshal(HandRequest{Cards: cards})
	if err != nil {
		return HandResponse{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/hands", bytes.NewReader(body))
	if err != nil {
		return HandResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return HandResponse{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusUnprocessableEntity:
		var hr HandResponse
		if err := json.NewDecoder(resp.Body).Decode(&hr); err != nil {
			return HandResponse{}, fmt.Errorf("decoding response: %w", err)
		}
		return hr, nil
	default:
		var er ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Error == "" {
			return HandResponse{}, fmt.Errorf("unexpected status code %d", resp.StatusCode)
		}
		return HandResponse{}, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, er.Error)
	}
}

// Close releases idle connections.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}
