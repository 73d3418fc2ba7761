package mcptools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	toolcatalog "calcbox/internal/catalog"
	"calcbox/internal/domain"
	"calcbox/internal/services/calculator"
)

func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()
	src, err := toolcatalog.NewSource("")
	if err != nil {
		t.Fatal(err)
	}
	srv := NewServer(&Tools{
		Source: src,
		Calculator: calculator.New(src, calculator.Options{
			Now: func() time.Time { return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC) },
		}),
	}, "test")

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	if _, err := srv.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

// call returns the text content and whether the tool reported an error.
func call(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if len(result.Content) == 0 {
		t.Fatalf("CallTool(%s): empty content", name)
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s): expected TextContent, got %T", name, result.Content[0])
	}
	return tc.Text, result.IsError
}

func TestListTools_Registered(t *testing.T) {
	session := connect(t)
	res, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	names := map[string]bool{}
	for _, tool := range res.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"list_tools", "run_tool", "describe_tool", "convert_units"} {
		if !names[want] {
			t.Errorf("missing tool %s", want)
		}
	}
}

func TestListTools_Filter(t *testing.T) {
	session := connect(t)

	text, isErr := call(t, session, "list_tools", map[string]any{"category": "health"})
	if isErr {
		t.Fatal(text)
	}
	var tools []domain.ToolDescriptor
	if err := json.Unmarshal([]byte(text), &tools); err != nil {
		t.Fatal(err)
	}
	if len(tools) == 0 {
		t.Fatal("no health tools")
	}
	for _, tool := range tools {
		if tool.Category != domain.CategoryHealth {
			t.Fatalf("leak %+v", tool)
		}
	}

	if text, isErr := call(t, session, "list_tools", map[string]any{"category": "astrology"}); !isErr ||
		!strings.Contains(text, "Unknown category") {
		t.Fatalf("got %q", text)
	}
}

func TestRunTool(t *testing.T) {
	session := connect(t)

	text, isErr := call(t, session, "run_tool", map[string]any{
		"tool": "bmi",
		"args": map[string]any{"weight": "70", "height": "175"},
	})
	if isErr {
		t.Fatal(text)
	}
	var out domain.Outcome
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatal(err)
	}
	if out.Display != "22.86 (normal)" {
		t.Fatalf("display %q", out.Display)
	}

	tests := []struct {
		args map[string]any
		want string
	}{
		{map[string]any{"tool": "bmi", "args": map[string]any{"weight": "70"}}, "missing"},
		{map[string]any{"tool": "factorial", "args": map[string]any{"n": "-1"}}, "out_of_domain"},
		{map[string]any{"tool": "currency-converter"}, "coming soon"},
		{map[string]any{"tool": ""}, "required"},
	}
	for _, tt := range tests {
		text, isErr := call(t, session, "run_tool", tt.args)
		if !isErr || !strings.Contains(text, tt.want) {
			t.Errorf("%v: isErr=%v text=%q", tt.args, isErr, text)
		}
	}
}

func TestDescribeTool(t *testing.T) {
	session := connect(t)
	text, isErr := call(t, session, "describe_tool", map[string]any{"tool": "quadratic-solver"})
	if isErr || !strings.Contains(text, `"params"`) || !strings.Contains(text, "Quadratic") {
		t.Fatalf("isErr=%v text=%q", isErr, text)
	}
	if _, isErr := call(t, session, "describe_tool", map[string]any{"tool": "nope"}); !isErr {
		t.Fatal("expected error for unknown tool")
	}
}

func TestConvertUnits(t *testing.T) {
	session := connect(t)

	text, isErr := call(t, session, "convert_units", map[string]any{"value": 1, "from": "mi", "to": "m"})
	if isErr {
		t.Fatal(text)
	}
	var res struct {
		Family  string  `json:"family"`
		Value   float64 `json:"value"`
		Display string  `json:"display"`
	}
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		t.Fatal(err)
	}
	if res.Family != "length" || res.Value != 1609.34 || res.Display != "1 mi = 1,609.34 m" {
		t.Fatalf("res %+v", res)
	}

	if text, isErr := call(t, session, "convert_units", map[string]any{"value": 1, "from": "kg", "to": "m"}); !isErr ||
		!strings.Contains(text, "out_of_domain") {
		t.Fatalf("mixed families: %q", text)
	}
}
