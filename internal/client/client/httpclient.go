package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/diary/internal/client/models"
	"github.com/dmitrijs2005/diary/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. "http://localhost:8080"). A nil httpClient means http.DefaultClient.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// SetToken sets the bearer token sent with every request. An empty token
// clears it.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type errorBody struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

// do sends a JSON request and decodes a JSON response into out (if non-nil).
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
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.bearer(); tok != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var eb errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if json.Unmarshal(raw, &eb) == nil {
		if eb.Error != "" {
			apiErr.Message = eb.Error
		}
		apiErr.Fields = eb.Errors
	}
	return apiErr
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.Session, error) {
	var s models.Session
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var s models.Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/ping", nil, nil)
}

func (c *HTTPClient) ListEntries(ctx context.Context, page, pageSize int) (*models.EntryPage, error) {
	// Zero values are omitted so the server applies its defaults.
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}

	path := "/api/posts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var p models.EntryPage
	if err := c.do(ctx, http.MethodGet, path, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func entryPath(id int64) string {
	return "/api/posts/" + strconv.FormatInt(id, 10)
}

func (c *HTTPClient) GetEntry(ctx context.Context, id int64) (*models.Entry, error) {
	var e models.Entry
	if err := c.do(ctx, http.MethodGet, entryPath(id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) CreateEntry(ctx context.Context, in models.EntryInput) (*models.Entry, error) {
	var e models.Entry
	if err := c.do(ctx, http.MethodPost, "/api/posts", in, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) UpdateEntry(ctx context.Context, id int64, in models.EntryInput) (*models.Entry, error) {
	var e models.Entry
	if err := c.do(ctx, http.MethodPut, entryPath(id), in, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) DeleteEntry(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, entryPath(id), nil, nil)
}

func (c *HTTPClient) Export(ctx context.Context) (*models.ExportResult, error) {
	var r models.ExportResult
	if err := c.do(ctx, http.MethodPost, "/api/posts/export", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
