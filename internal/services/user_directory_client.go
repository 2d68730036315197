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

// UserDirectoryClient resolves a username to the email address the user
// service has on file. The user service answers with the bare address
// as a text body.
type UserDirectoryClient interface {
	GetEmailFromUsername(ctx context.Context, username string) (string, error)
}

type HTTPUserDirectoryClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewHTTPUserDirectoryClient() *HTTPUserDirectoryClient {
	base := os.Getenv("USER_SERVICE_URL")
	if base == "" {
		base = "https://travelbuddy-user-service-production.up.railway.app"
	}
	return &HTTPUserDirectoryClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: strings.TrimRight(base, "/"),
	}
}

func (c *HTTPUserDirectoryClient) GetEmailFromUsername(ctx context.Context, username string) (string, error) {
	endpoint := c.BaseURL + "/users/email/" + url.PathEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("user service request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("user service http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("user service bad status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("user service read body: %w", err)
	}

	email := strings.TrimSpace(string(body))
	if email == "" {
		return "", fmt.Errorf("user service returned empty email for %q", username)
	}
	return email, nil
}
