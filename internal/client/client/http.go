package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/employeehub/internal/client/models"
	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/dmitrijs2005/employeehub/internal/netx"
)

const pictureField = "profilePicture"

type HTTPClient struct {
	baseURL string
	hc      *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client for the API at baseURL. timeout bounds each
// request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) setToken(t string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = t
}

// do sends the request and decodes a 2xx JSON body into out when out is
// non-nil. Gated calls fail with ErrNotLoggedIn before any I/O when no
// token is held.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, gated bool, out any) error {
	token := c.currentToken()
	if gated && token == "" {
		return ErrNotLoggedIn
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if gated {
		req.Header.Set(common.AuthHeaderName, token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var m messageResponse
		if json.Unmarshal(raw, &m) != nil || m.Message == "" {
			m.Message = strings.TrimSpace(string(raw))
		}
		return &APIError{Status: resp.StatusCode, Message: m.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in any, gated bool, out any) error {
	var body io.Reader
	ctype := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
		ctype = "application/json"
	}
	return c.do(ctx, method, path, body, ctype, gated, out)
}

// Ping checks that the API answers on /.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", nil, "", false, nil)
}

func (c *HTTPClient) Signup(ctx context.Context, name, email string, password []byte) error {
	in := map[string]string{"name": name, "email": email, "password": string(password)}
	return c.doJSON(ctx, http.MethodPost, "/auth/signup", in, false, nil)
}

// Login exchanges credentials for a token and keeps it for later calls.
func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) error {
	var out struct {
		Token string `json:"token"`
	}
	in := map[string]string{"email": email, "password": string(password)}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", in, false, &out); err != nil {
		return err
	}
	c.setToken(out.Token)
	return nil
}

// Logout forgets the token. Tokens cannot be revoked server-side.
func (c *HTTPClient) Logout() {
	c.setToken("")
}

func (c *HTTPClient) Whoami(ctx context.Context) (*models.Identity, error) {
	var out struct {
		User models.Identity `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/protected", nil, "", true, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *HTTPClient) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	var out []*models.Employee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, "", true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	var out models.Employee
	if err := c.do(ctx, http.MethodGet, "/employees/"+url.PathEscape(id), nil, "", true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEmployee posts JSON, or multipart form data when pic is set.
func (c *HTTPClient) CreateEmployee(ctx context.Context, in *models.EmployeeInput, pic *Picture) (*models.Employee, error) {
	var out struct {
		Employee models.Employee `json:"employee"`
	}

	if pic == nil {
		if err := c.doJSON(ctx, http.MethodPost, "/employees", in, true, &out); err != nil {
			return nil, err
		}
		return &out.Employee, nil
	}

	body, ctype, err := netx.MultipartBody(in.FormFields(), &netx.File{
		Field:       pictureField,
		Filename:    pic.Filename,
		ContentType: pic.ContentType,
		Body:        pic.Body,
	})
	if err != nil {
		return nil, err
	}
	if err := c.do(ctx, http.MethodPost, "/employees", body, ctype, true, &out); err != nil {
		return nil, err
	}
	return &out.Employee, nil
}

func (c *HTTPClient) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(id), nil, "", true, nil)
}
