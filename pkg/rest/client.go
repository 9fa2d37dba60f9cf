package rest

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
)

const DefaultTimeout = 30 * time.Second

type Client struct {
	URL string

	bearer    string
	userAgent string

	client *http.Client
}

type Option func(*Client)

func New(baseURL string, options ...Option) (*Client, error) {
	url, err := url.Parse(baseURL)

	if err != nil {
		return nil, err
	}

	if !url.IsAbs() || url.Host == "" {
		return nil, fmt.Errorf("invalid base URL")
	}

	c := &Client{
		URL: url.String(),

		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, o := range options {
		o(c)
	}

	return c, nil
}

func WithBearer(bearer string) Option {
	return func(c *Client) {
		c.bearer = bearer
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying client. Its Timeout is left untouched.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		client := *c.client
		client.Timeout = timeout

		c.client = &client
	}
}

// Execute performs a single request and returns the raw JSON response body.
// A non-nil body is sent as JSON.
func (c *Client) Execute(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	if c.bearer == "" {
		return nil, ErrMissingCredentials
	}

	url := strings.TrimRight(c.URL, "/") + "/" + strings.TrimLeft(path, "/")

	if len(query) > 0 {
		url += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)

		if err != nil {
			return nil, err
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.bearer)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, &NetworkError{URL: url, Err: unwrapURLError(err)}
	}

	defer resp.Body.Close()

	result, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Body:       string(result),
		}
	}

	if len(bytes.TrimSpace(result)) == 0 {
		return nil, nil
	}

	if !json.Valid(result) {
		return nil, &DecodeError{URL: url, Body: string(result)}
	}

	return result, nil
}

func unwrapURLError(err error) error {
	var urlErr *url.Error

	if errors.As(err, &urlErr) {
		return urlErr.Err
	}

	return err
}
