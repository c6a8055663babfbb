package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userdirectory/internal/client/models"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the API rooted at baseURL. A nil hc
// means http.DefaultClient.
func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

type createUserRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
	Country     string `json:"country"`
}

type createUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// apiMessage covers both {"message"} and {"error"} bodies.
type apiMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *HTTPClient) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Create posts u (its ID is ignored) and returns the assigned id.
func (c *HTTPClient) Create(ctx context.Context, u models.User) (int64, error) {
	req := createUserRequest{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		CompanyName: u.CompanyName,
		Role:        u.Role,
		Country:     u.Country,
	}
	var resp createUserResponse
	if err := c.do(ctx, http.MethodPost, "/users/create", req, &resp); err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), nil, nil)
}

// Ping hits the liveness route.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", ErrServer, err)
	}
	return nil
}

func mapStatus(resp *http.Response) error {
	var m apiMessage
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&m)
	text := m.Message
	if text == "" {
		text = m.Error
	}
	if text == "" {
		text = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, text)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, text)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrServer, resp.StatusCode, text)
	}
}
