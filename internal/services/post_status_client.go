package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// PostStatusClient is the remote proxy for the post service's status
// transitions. Both calls are idempotent PUTs keyed by post id, so a
// repeated pass re-issuing the same transition is harmless.
type PostStatusClient interface {
	UpdateStatusToLocked(ctx context.Context, postID string) error
	UpdateStatusToInactive(ctx context.Context, postID string) error
}

type HTTPPostStatusClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewHTTPPostStatusClient() *HTTPPostStatusClient {
	base := os.Getenv("POST_SERVICE_URL")
	if base == "" {
		base = "https://travelbuddy-posts-service-production.up.railway.app"
	}
	return &HTTPPostStatusClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: strings.TrimRight(base, "/"),
	}
}

func (c *HTTPPostStatusClient) UpdateStatusToLocked(ctx context.Context, postID string) error {
	return c.put(ctx, "/post/updateStatusToLocked/", postID)
}

func (c *HTTPPostStatusClient) UpdateStatusToInactive(ctx context.Context, postID string) error {
	return c.put(ctx, "/post/updateStatusToInactive/", postID)
}

func (c *HTTPPostStatusClient) put(ctx context.Context, path, postID string) error {
	endpoint := c.BaseURL + path + url.PathEscape(postID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, nil)
	if err != nil {
		return fmt.Errorf("post service request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("post service http error: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("post service bad status: %s", resp.Status)
	}
	return nil
}
