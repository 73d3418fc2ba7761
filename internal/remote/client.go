package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"calcbox/internal/domain"
)

// HTTP talks to a calcbox catalog server.
type HTTP struct {
	Base string
	HTTP *http.Client
}

var _ domain.CatalogClient = (*HTTP)(nil)

// NewHTTP returns a client for the server at base. A nil client means
// http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// ToolList is the body of GET /api/tools.
type ToolList struct {
	Category domain.Category         `json:"category"`
	Tools    []domain.ToolDescriptor `json:"tools"`
}

// RunRequest is the body of POST /api/tools/{slug}/run.
type RunRequest struct {
	Args map[string]string `json:"args"`
}

// ErrorBody is the JSON body of a non-2xx response.
type ErrorBody struct {
	Error string `json:"error"`
}

// ListTools fetches the filtered catalog.
func (c *HTTP) ListTools(ctx context.Context, search string, category domain.Category) ([]domain.ToolDescriptor, error) {
	q := url.Values{}
	if search != "" {
		q.Set("q", search)
	}
	if category != "" {
		q.Set("category", string(category))
	}
	path := "/api/tools"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out ToolList
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Tools, nil
}

// RunTool runs a tool on the server.
func (c *HTTP) RunTool(ctx context.Context, slug string, args map[string]string) (domain.Outcome, error) {
	var out domain.Outcome
	if err := c.post(ctx, "/api/tools/"+url.PathEscape(slug)+"/run", RunRequest{Args: args}, &out); err != nil {
		return domain.Outcome{}, err
	}
	return out, nil
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTP) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return statusError(req, resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusError(req *http.Request, resp *http.Response) error {
	var body ErrorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		return fmt.Errorf("%s %s: %s: %s", req.Method, req.URL.Path, resp.Status, body.Error)
	}
	return fmt.Errorf("%s %s: %s", req.Method, req.URL.Path, resp.Status)
}
