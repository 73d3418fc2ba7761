package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"math"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	toolcatalog "calcbox/internal/catalog"
	"calcbox/internal/domain"
	"calcbox/internal/mcptools"
	"calcbox/internal/remote"
	"calcbox/internal/services/calculator"
)

func newTestServer(t *testing.T, comp Compression) (*httptest.Server, *bytes.Buffer) {
	t.Helper()
	src, err := toolcatalog.NewSource("")
	if err != nil {
		t.Fatal(err)
	}
	calc := calculator.New(src, calculator.Options{
		Now: func() time.Time { return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC) },
	})
	var access bytes.Buffer
	s, err := New(Options{
		Source:      src,
		Calculator:  calc,
		AccessLog:   &access,
		Compression: comp,
		Logger:      log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, &access
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestHealth(t *testing.T) {
	ts, access := newTestServer(t, Compression{})
	var body map[string]any
	resp := getJSON(t, ts.URL+"/healthz", &body)
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("status %d body %v", resp.StatusCode, body)
	}
	if !strings.Contains(access.String(), "GET /healthz 200") {
		t.Fatalf("access log: %q", access.String())
	}
}

func TestCategories(t *testing.T) {
	ts, _ := newTestServer(t, Compression{})
	var cats []CategoryInfo
	getJSON(t, ts.URL+"/api/categories", &cats)

	if len(cats) != len(toolcatalog.Categories())+1 || cats[0].Name != domain.CategoryAll {
		t.Fatalf("categories %+v", cats)
	}
	sum := 0
	for _, c := range cats[1:] {
		if c.Icon == "" || c.Color == "" {
			t.Fatalf("missing meta: %+v", c)
		}
		sum += c.Count
	}
	if sum != cats[0].Count {
		t.Fatalf("counts %d != total %d", sum, cats[0].Count)
	}
}

func TestTools_FilterAndETag(t *testing.T) {
	ts, _ := newTestServer(t, Compression{})

	var list remote.ToolList
	resp := getJSON(t, ts.URL+"/api/tools?category=health&q=bmi", &list)
	if list.Category != domain.CategoryHealth || len(list.Tools) != 1 || list.Tools[0].Slug != "bmi" {
		t.Fatalf("category %q tools %+v", list.Category, list.Tools)
	}
	etag := resp.Header.Get("ETag")
	if etag == "" || etag != toolcatalog.Default().ETag() {
		t.Fatalf("etag %q", etag)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/tools", nil)
	req.Header.Set("If-None-Match", etag)
	cached, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	cached.Body.Close()
	if cached.StatusCode != http.StatusNotModified {
		t.Fatalf("status %d, want 304", cached.StatusCode)
	}
}

func TestTools_UnknownCategory(t *testing.T) {
	ts, _ := newTestServer(t, Compression{})
	var body remote.ErrorBody
	resp := getJSON(t, ts.URL+"/api/tools?category=astrology", &body)
	if resp.StatusCode != http.StatusBadRequest || body.Error == "" {
		t.Fatalf("status %d body %+v", resp.StatusCode, body)
	}
}

func TestToolDetail(t *testing.T) {
	ts, _ := newTestServer(t, Compression{})

	var d ToolDetail
	getJSON(t, ts.URL+"/api/tools/bmi", &d)
	if d.Slug != "bmi" || d.Route != "/tools/bmi" || !d.Runnable || len(d.Params) != 2 {
		t.Fatalf("detail %+v", d)
	}
	if !strings.HasPrefix(d.DescriptionHTML, "<p>") {
		t.Fatalf("description_html %q", d.DescriptionHTML)
	}

	var temp ToolDetail
	getJSON(t, ts.URL+"/api/tools/temperature-converter", &temp)
	if !strings.Contains(temp.DescriptionHTML, "<strong>Celsius</strong>") {
		t.Fatalf("markdown not rendered: %q", temp.DescriptionHTML)
	}

	var soon ToolDetail
	getJSON(t, ts.URL+"/api/tools/currency-converter", &soon)
	if soon.Runnable || soon.Status != domain.StatusComingSoon {
		t.Fatalf("coming soon detail %+v", soon)
	}

	resp := getJSON(t, ts.URL+"/api/tools/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestRun(t *testing.T) {
	ts, _ := newTestServer(t, Compression{})

	tests := []struct {
		slug   string
		body   string
		status int
		want   string
	}{
		{"bmi", `{"args":{"weight":"70","height":"175"}}`, http.StatusOK, "22.86 (normal)"},
		{"bmi", `{"args":{"weight":"70"}}`, http.StatusOK, "missing"},
		{"currency-converter", `{}`, http.StatusNotImplemented, "coming soon"},
		{"nope", `{}`, http.StatusNotFound, "unknown tool"},
		{"bmi", `{"args":`, http.StatusBadRequest, "invalid request body"},
		{"loan-emi", `{"args":{"principal":"1000","rate":"1e300","months":"12"}}`, http.StatusOK, `"kind":"bounds"`},
		{"quadratic-solver", `{"args":{"a":"1e200","b":"1e200","c":"1"}}`, http.StatusOK, `"kind":"bounds"`},
		{"scientific-notation", `{"args":{"value":"0e400","direction":"from"}}`, http.StatusOK, `"value":0`},
	}
	for _, tt := range tests {
		resp, err := http.Post(ts.URL+"/api/tools/"+tt.slug+"/run", "application/json", strings.NewReader(tt.body))
		if err != nil {
			t.Fatal(err)
		}
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != tt.status || !strings.Contains(string(raw), tt.want) {
			t.Errorf("%s %s: %d %s", tt.slug, tt.body, resp.StatusCode, raw)
		}
	}
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"x": math.NaN()})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
	var body remote.ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || !strings.Contains(body.Error, "encode response") {
		t.Fatalf("body %q, err %v", rec.Body.String(), err)
	}
}

func TestRun_MethodNotAllowed(t *testing.T) {
	ts, _ := newTestServer(t, Compression{})
	resp := getJSON(t, ts.URL+"/api/tools/bmi/run", nil)
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestUnits(t *testing.T) {
	ts, _ := newTestServer(t, Compression{})

	var table struct {
		Family string `json:"family"`
		Base   string `json:"base"`
		Units  []struct {
			Key string `json:"key"`
		} `json:"units"`
	}
	getJSON(t, ts.URL+"/api/units/length", &table)
	if table.Family != "length" || table.Base != "m" || len(table.Units) == 0 {
		t.Fatalf("table %+v", table)
	}

	resp := getJSON(t, ts.URL+"/api/units/colour", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestCompression(t *testing.T) {
	ts, _ := newTestServer(t, Compression{Enabled: true, Level: "fastest", MinSize: 0})

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/tools", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.Header.Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding %q", resp.Header.Get("Content-Encoding"))
	}
}

func TestCompression_None(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})
	got, err := newCompressionHandler(h, Compression{Enabled: true, Level: "none"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(http.HandlerFunc); !ok {
		t.Fatalf("level none should not wrap, got %T", got)
	}
}

func TestRemoteClient(t *testing.T) {
	ts, _ := newTestServer(t, Compression{Enabled: true, MinSize: 0})
	client := remote.NewHTTP(ts.URL+"/", nil)
	ctx := context.Background()

	tools, err := client.ListTools(ctx, "", domain.CategoryText)
	if err != nil {
		t.Fatal(err)
	}
	for _, tool := range tools {
		if tool.Category != domain.CategoryText {
			t.Fatalf("leak %+v", tool)
		}
	}
	if len(tools) == 0 {
		t.Fatal("no text tools")
	}

	out, err := client.RunTool(ctx, "roman-numerals", map[string]string{"value": "1994"})
	if err != nil {
		t.Fatal(err)
	}
	if !out.OK() || out.Display != "1994 = MCMXCIV" {
		t.Fatalf("outcome %+v", out)
	}

	if _, err := client.RunTool(ctx, "currency-converter", nil); err == nil ||
		!strings.Contains(err.Error(), "coming soon") {
		t.Fatalf("err = %v", err)
	}
	if _, err := client.ListTools(ctx, "", "Astrology"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestRequestLoggerJSON(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	var buf bytes.Buffer
	logger := newRequestLogger(handler, &buf, "json")

	req := httptest.NewRequest(http.MethodPost, "/api/tools/bmi/run", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	logger.ServeHTTP(httptest.NewRecorder(), req)

	var entry RequestLogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("parse log: %v", err)
	}
	if entry.Method != "POST" || entry.Status != 201 || entry.ClientIP != "10.0.0.1" || entry.UserAgent != "test-agent" {
		t.Fatalf("entry %+v", entry)
	}
}

func TestServe_GracefulShutdown(t *testing.T) {
	src, err := toolcatalog.NewSource("")
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(Options{
		Source:     src,
		Calculator: calculator.New(src, calculator.Options{}),
		AccessLog:  io.Discard,
		Logger:     log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp := getJSON(t, "http://"+ln.Addr().String()+"/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNew_RequiresDependencies(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestMCPOverHTTP(t *testing.T) {
	src, err := toolcatalog.NewSource("")
	if err != nil {
		t.Fatal(err)
	}
	calc := calculator.New(src, calculator.Options{})
	s, err := New(Options{
		Source:      src,
		Calculator:  calc,
		MCP:         mcptools.NewServer(&mcptools.Tools{Source: src, Calculator: calc}, "test"),
		AccessLog:   io.Discard,
		Compression: Compression{Enabled: true, MinSize: 0},
		Logger:      log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: ts.URL + "/mcp"}, nil)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "run_tool",
		Arguments: map[string]any{"tool": "roman-numerals", "args": map[string]any{"value": "2024"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError || !strings.Contains(res.Content[0].(*mcp.TextContent).Text, "MMXXIV") {
		t.Fatalf("result %+v", res.Content)
	}

	// The REST API is still reachable beside /mcp.
	if resp := getJSON(t, ts.URL+"/healthz", nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz %d", resp.StatusCode)
	}
}
