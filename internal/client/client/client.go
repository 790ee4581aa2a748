package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/fruitie/internal/client/chat"
	"github.com/dmitrijs2005/fruitie/internal/netx"
)

// Client is the API surface the CLI depends on.
type Client interface {
	chat.Transport
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, email, password string) error
	Profile(ctx context.Context) (*User, error)
	LoggedIn() bool
}

type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Location    string `json:"location,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// User is the public account record returned by the API.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Location    string    `json:"location"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type chatRequest struct {
	Message string `json:"message"`
	Page    string `json:"page"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client for baseURL whose requests give up after
// timeout. A zero timeout means no limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SendChat posts message and page to the assistant endpoint.
func (c *HTTPClient) SendChat(ctx context.Context, message string, page chat.Page) (string, error) {
	const op = "send chat"

	resp, err := netx.DoJSON(ctx, c.http, http.MethodPost, c.baseURL+"/api/ai-chat", "",
		chatRequest{Message: strings.TrimSpace(message), Page: string(page)})
	if err != nil {
		return "", &NetworkError{Op: op, Err: err}
	}
	if !resp.OK() {
		return "", &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return "", &ProtocolError{Op: op, Err: err}
	}
	raw, ok := body["reply"]
	if !ok {
		return "", &ProtocolError{Op: op, Err: errors.New("missing reply field")}
	}
	var reply string
	if string(raw) == "null" {
		return "", &ProtocolError{Op: op, Err: errors.New("reply is null")}
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		return "", &ProtocolError{Op: op, Err: errors.New("reply is not a string")}
	}

	return reply, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var u User
	if err := c.call(ctx, "register", http.MethodPost, "/api/auth/register", "", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login stores the returned token for later protected calls.
func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.call(ctx, "login", http.MethodPost, "/api/auth/login", "", loginRequest{Email: email, Password: password}, &out); err != nil {
		return err
	}
	if out.Token == "" {
		return &ProtocolError{Op: "login", Err: errors.New("missing token")}
	}

	c.mu.Lock()
	c.token = out.Token
	c.mu.Unlock()
	return nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*User, error) {
	token := c.Token()
	if token == "" {
		return nil, ErrUnauthorized
	}

	var u User
	if err := c.call(ctx, "profile", http.MethodGet, "/api/profile", token, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) LoggedIn() bool { return c.Token() != "" }

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func (c *HTTPClient) call(ctx context.Context, op, method, path, token string, payload, out any) error {
	resp, err := netx.DoJSON(ctx, c.http, method, c.baseURL+path, token, payload)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	if !resp.OK() {
		var eb errorBody
		_ = json.Unmarshal(resp.Body, &eb)
		return &StatusError{StatusCode: resp.StatusCode, Message: eb.Error, Fields: eb.Fields}
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &ProtocolError{Op: op, Err: err}
	}
	return nil
}
