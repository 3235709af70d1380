// Package adminclient is a headless admin client for the jewelry CMS API:
// session handling, typed calls, and the form and list-page models the
// dashboard is built from.
package adminclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

const DefaultTimeout = 30 * time.Second

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Errors     []FieldError    `json:"errors"`
	Pagination *Pagination     `json:"pagination"`
	Count      *int            `json:"count"`
}

// APIError is a non-2xx answer decoded from the envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
	Errors  []FieldError
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return e.Message
}

// FieldErrors indexes Errors by field name.
func (e *APIError) FieldErrors() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type Client struct {
	BaseURL string
	Session *Session
	Timeout time.Duration
	// OnUnauthorized runs after a 401 on an authenticated request has
	// cleared the session. A UI uses it to show the login view.
	OnUnauthorized func()

	http *fiber.Client
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.Timeout = d }
}

func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.OnUnauthorized = fn }
}

// New builds a client for baseURL (for example "http://localhost:3000").
// A nil session gets an in-memory one.
func New(baseURL string, session *Session, opts ...Option) *Client {
	if session == nil {
		session, _ = NewSession(nil)
	}
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Session: session,
		Timeout: DefaultTimeout,
		http: &fiber.Client{
			JSONEncoder: sonic.Marshal,
			JSONDecoder: sonic.Unmarshal,
			UserAgent:   "jewelry-adminclient",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) agent(method, u string) (*fiber.Agent, error) {
	switch method {
	case fiber.MethodGet:
		return c.http.Get(u), nil
	case fiber.MethodPost:
		return c.http.Post(u), nil
	case fiber.MethodPut:
		return c.http.Put(u), nil
	case fiber.MethodPatch:
		return c.http.Patch(u), nil
	case fiber.MethodDelete:
		return c.http.Delete(u), nil
	}
	return nil, fmt.Errorf("unsupported method %s", method)
}

// timeoutFor caps the client timeout by the context deadline.
func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	d := c.Timeout
	if d <= 0 {
		d = DefaultTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < d {
			d = left
		}
	}
	return d
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	build  func(*fiber.Agent)
}

func (c *Client) send(ctx context.Context, r request) (*envelope, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	timeout := c.timeoutFor(ctx)
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	u := c.BaseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	a, err := c.agent(r.method, u)
	if err != nil {
		return nil, err
	}
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	token := c.Session.Token()
	if token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if r.body != nil {
		a.JSON(r.body)
	}
	if r.build != nil {
		r.build(a)
	}
	a.Timeout(timeout)

	status, raw, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, errors.Join(errs...))
	}

	env := &envelope{}
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, env); err != nil && status < 400 {
			return nil, fmt.Errorf("%s %s: decode response: %w", r.method, r.path, err)
		}
	}

	if status == fiber.StatusUnauthorized && token != "" {
		_ = c.Session.Clear()
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
	}
	if status >= 400 || !env.Success {
		return env, &APIError{Status: status, Code: env.Error, Message: env.Message, Errors: env.Errors}
	}
	return env, nil
}

// do sends r and decodes the envelope data into out when out is non-nil.
func (c *Client) do(ctx context.Context, r request, out any) (*envelope, error) {
	env, err := c.send(ctx, r)
	if err != nil {
		return env, err
	}
	if out != nil && len(env.Data) > 0 {
		if err := sonic.Unmarshal(env.Data, out); err != nil {
			return env, fmt.Errorf("%s %s: decode data: %w", r.method, r.path, err)
		}
	}
	return env, nil
}

// =========================
// Auth
// =========================

type authResponse struct {
	Admin     *Admin `json:"admin"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Login exchanges credentials for a token and stores it in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*Admin, error) {
	var res authResponse
	_, err := c.do(ctx, request{
		method: fiber.MethodPost,
		path:   "/api/auth/login",
		body:   map[string]string{"email": email, "password": password},
	}, &res)
	if err != nil {
		return nil, err
	}
	var exp time.Time
	if res.ExpiresAt > 0 {
		exp = time.Unix(res.ExpiresAt, 0)
	}
	if err := c.Session.Set(res.Token, res.Admin, exp); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return res.Admin, nil
}

func (c *Client) Logout() error {
	return c.Session.Clear()
}

func (c *Client) Me(ctx context.Context) (*Admin, error) {
	var admin Admin
	if _, err := c.do(ctx, request{method: fiber.MethodGet, path: "/api/auth/me"}, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	_, err := c.do(ctx, request{
		method: fiber.MethodPut,
		path:   "/api/auth/change-password",
		body:   map[string]string{"currentPassword": current, "newPassword": next},
	}, nil)
	return err
}

func (c *Client) ListAdmins(ctx context.Context) ([]Admin, error) {
	var admins []Admin
	if _, err := c.do(ctx, request{method: fiber.MethodGet, path: "/api/auth/admins"}, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (c *Client) ToggleAdmin(ctx context.Context, id string) (*Admin, error) {
	var admin Admin
	_, err := c.do(ctx, request{
		method: fiber.MethodPatch,
		path:   "/api/auth/admins/" + url.PathEscape(id) + "/toggle",
	}, &admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	_, err := c.do(ctx, request{
		method: fiber.MethodDelete,
		path:   "/api/auth/admins/" + url.PathEscape(id),
	}, nil)
	return err
}

// =========================
// Uploads
// =========================

// UploadFile posts a local file to /api/uploads and returns its public URL.
func (c *Client) UploadFile(ctx context.Context, filename string) (string, error) {
	var res struct {
		URL string `json:"url"`
	}
	_, err := c.do(ctx, request{
		method: fiber.MethodPost,
		path:   "/api/uploads",
		build: func(a *fiber.Agent) {
			a.SendFile(filename, "file").MultipartForm(nil)
		},
	}, &res)
	return res.URL, err
}
