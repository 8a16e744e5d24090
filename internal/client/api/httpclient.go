package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/helpdesk/internal/client/models"
	"github.com/dmitrijs2005/helpdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/helpdesk/internal/common"
	"github.com/dmitrijs2005/helpdesk/internal/logging"
	"github.com/google/uuid"
)

// DefaultRequestTimeout bounds every request. There is no per-call override
// and no retry; a slow backend surfaces as a single failed call.
const DefaultRequestTimeout = 10 * time.Second

// HTTPClient implements Client against the helpdesk HTTP backend.
//
// Before every request the bearer token is read from the credential store and
// attached when present. On a 401 the client deletes the token and role keys
// and returns ErrSessionExpired; that is the only store write it ever
// performs on its own.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	creds   credentials.Repository
	log     logging.Logger
}

// NewHTTPClient builds a client for the backend at baseURL. A non-positive
// timeout falls back to DefaultRequestTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration, creds credentials.Repository, log logging.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log,
	}
}

// do performs one round-trip: marshal body, attach headers and token, send,
// and normalize the outcome. out, when non-nil, receives the decoded body of
// a 2xx response.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	token, err := c.creds.Get(ctx, common.KeyToken)
	if err != nil {
		return err
	}
	if len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+string(token))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Drop the session before reporting so a stale token is never
		// presented again.
		_ = c.creds.Delete(ctx, common.KeyToken)
		_ = c.creds.Delete(ctx, common.KeyRole)
		c.log.Info(ctx, "session expired, local session cleared")
		return ErrSessionExpired
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &ServerError{Message: messageFromBody(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: unexpected response: %v", ErrUnavailable, err)
		}
	}
	return nil
}

// messageFromBody extracts the most specific message available from an error
// body, falling back to a generic communication-failure message.
func messageFromBody(data []byte) string {
	var env struct {
		Message string `json:"message"`
		Data    struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Data.Message != "" {
			return env.Data.Message
		}
	}
	return ErrUnavailable.Error()
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginData, error) {
	body := map[string]string{
		"user_email":    email,
		"user_password": password,
	}

	var env struct {
		Status  bool             `json:"status"`
		Message string           `json:"message"`
		Data    models.LoginData `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/enter", body, &env); err != nil {
		return nil, err
	}
	if !env.Status {
		msg := env.Message
		if msg == "" {
			msg = "login rejected by server"
		}
		return nil, &ServerError{Message: msg}
	}
	return &env.Data, nil
}

func (c *HTTPClient) GetUser(ctx context.Context) (*models.User, error) {
	var env struct {
		Data struct {
			User models.User `json:"user"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/user", nil, &env); err != nil {
		return nil, err
	}
	return &env.Data.User, nil
}

func (c *HTTPClient) UpdateSelf(ctx context.Context, value string) error {
	var env struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPatch, "/self/"+url.PathEscape(value), nil, &env); err != nil {
		return err
	}
	if !env.Status {
		msg := env.Message
		if msg == "" {
			msg = "profile update rejected by server"
		}
		return &ServerError{Message: msg}
	}
	return nil
}

func (c *HTTPClient) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	var env struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Data    struct {
			Tickets []models.Ticket `json:"tickets"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/ticket/", nil, &env); err != nil {
		return nil, err
	}
	if env.Code != "success" {
		msg := env.Message
		if msg == "" {
			msg = "could not load tickets"
		}
		return nil, &ServerError{Message: msg}
	}
	return env.Data.Tickets, nil
}

func (c *HTTPClient) GetTicket(ctx context.Context, id string) (*models.Ticket, error) {
	var env struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Data    struct {
			Ticket models.Ticket `json:"ticket"`
		} `json:"data"`
	}
	q := url.Values{"id": {id}}
	if err := c.do(ctx, http.MethodGet, "/ticket/details?"+q.Encode(), nil, &env); err != nil {
		return nil, err
	}
	if env.Code != "success" {
		msg := env.Message
		if msg == "" {
			msg = "could not load ticket details"
		}
		return nil, &ServerError{Message: msg}
	}
	if env.Data.Ticket.ID == "" {
		return nil, &ServerError{Message: "ticket not found"}
	}
	return &env.Data.Ticket, nil
}

func (c *HTTPClient) CreateTicket(ctx context.Context, ticket *models.NewTicket) error {
	var env struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/ticket/", ticket, &env); err != nil {
		return err
	}
	if !env.Status {
		msg := env.Message
		if msg == "" {
			msg = "ticket rejected by server"
		}
		return &ServerError{Message: msg}
	}
	return nil
}
