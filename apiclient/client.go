package apiclient

import (
	"assetconsole/providers"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DefaultBaseURL = "http://localhost:5000/api"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client sends every call to the backend. It attaches the current bearer token
// and clears the stored credentials when the backend answers 401.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	credentials    providers.CredentialStore
	logger         *zap.Logger
	onUnauthorized func()
}

type Option func(*Client)

// WithHTTPClient replaces the transport. No timeout is set by default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUnauthorizedHook runs fn after the credentials were cleared on a 401.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

func NewClient(baseURL string, credentials providers.CredentialStore, logger *zap.Logger, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{},
		credentials: credentials,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetUnauthorizedHook replaces the hook run after a 401.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// Do sends one request and decodes a 2xx body into out when out is not nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body RequestBody, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	c.logger.Debug("sending request", zap.String("method", method), zap.String("path", path))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &Error{Method: method, Path: path, Err: errors.Wrap(err, "failed to send request")}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Method: method, Path: path, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "failed to read response body"), decode: true}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    backendMessage(raw),
			Body:       raw,
		}
		c.logger.Warn("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil || len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Method: method, Path: path, StatusCode: resp.StatusCode, Body: raw, Err: err, decode: true}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body RequestBody) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		var err error
		reader, contentType, err = body.Encode()
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s %s", method, path)
	}
	req.Header.Set("Accept", jsonContentType)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token, ok, err := c.credentials.CurrentToken(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session token")
	}
	if ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) handleUnauthorized(ctx context.Context) {
	if err := c.credentials.Clear(ctx); err != nil {
		c.logger.Error("failed to clear credentials after 401", zap.Error(err))
	} else {
		c.logger.Info("credentials cleared after 401")
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// backendMessage pulls the message field out of an error envelope, falling back
// to the raw text.
func backendMessage(raw []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "<") {
		return ""
	}
	return text
}
