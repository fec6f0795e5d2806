package beds24

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"
)

// StatusError is returned for non-2xx responses. The four status codes the
// upstream is known to answer with get distinct user-facing messages.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	switch e.Code {
	case http.StatusUnauthorized:
		return "authentication failed, please check your credentials"
	case http.StatusForbidden:
		return "access forbidden, please check your API permissions"
	case http.StatusNotFound:
		return "API endpoint not found, please check the API URL"
	case http.StatusTooManyRequests:
		return "rate limit exceeded, please try again later"
	default:
		return fmt.Sprintf("received non-2xx status code: %d", e.Code)
	}
}

// BookingQuery holds the date filters accepted by the bookings endpoint.
type BookingQuery struct {
	Filter        string `url:"filter,omitempty"`
	ArrivalFrom   string `url:"arrivalFrom,omitempty"`
	ArrivalTo     string `url:"arrivalTo,omitempty"`
	DepartureFrom string `url:"departureFrom,omitempty"`
	DepartureTo   string `url:"departureTo,omitempty"`
}

// Client is a minimal Beds24 v2 API client covering the three operations the
// report pipeline needs: invite-code setup, token refresh and booking listing.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the given API base URL, e.g.
// "https://beds24.com/api/v2". A non-positive timeout defaults to 30s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Setup exchanges a one-time invite code for an initial token pair.
func (c *Client) Setup(ctx context.Context, inviteCode string) (*TokenResponse, error) {
	return c.fetchToken(ctx, "/authentication/setup", "code", inviteCode)
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	return c.fetchToken(ctx, "/authentication/token", "refreshToken", refreshToken)
}

func (c *Client) fetchToken(ctx context.Context, path, header, credential string) (*TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(header, credential)

	var tr TokenResponse
	if err := c.do(req, &tr); err != nil {
		return nil, err
	}
	if tr.Token == "" {
		return nil, fmt.Errorf("authentication response contained no token")
	}
	return &tr, nil
}

// ListBookings fetches booking records matching the given date filters.
func (c *Client) ListBookings(ctx context.Context, accessToken string, q BookingQuery) ([]RawBooking, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("no access token available, please authenticate first")
	}

	params, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("failed to encode booking query: %w", err)
	}
	params.Set("includeInvoiceItems", "false")
	params.Set("includeInfoItems", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/bookings?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("token", accessToken)

	var br bookingsResponse
	if err := c.do(req, &br); err != nil {
		return nil, err
	}
	return br.Data, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal api response: %w", err)
	}
	return nil
}
