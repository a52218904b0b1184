package apiclient

import (
	"assetconsole/models"
	"context"
	"net/http"
	"net/url"
)

// Single sends a request answered by a single-item envelope and returns its data.
// The result is nil when the envelope carries no data.
func Single[T any](ctx context.Context, c *Client, method, path string, body RequestBody) (*T, error) {
	var envelope models.ApiResponse[T]
	if err := c.Do(ctx, method, path, nil, body, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// Page fetches a list endpoint; the paginated envelope is returned unchanged.
func Page[T any](ctx context.Context, c *Client, path string, query url.Values) (models.PaginatedResponse[T], error) {
	var page models.PaginatedResponse[T]
	if err := c.Do(ctx, http.MethodGet, path, query, nil, &page); err != nil {
		return models.PaginatedResponse[T]{}, err
	}
	return page, nil
}

// Action sends a request whose envelope carries no data.
func Action(ctx context.Context, c *Client, method, path string, body RequestBody) error {
	var envelope struct {
		Message string `json:"message"`
		Success bool   `json:"success"`
	}
	return c.Do(ctx, method, path, nil, body, &envelope)
}

// PathEscape escapes one path segment such as an id.
func PathEscape(segment string) string {
	return url.PathEscape(segment)
}
