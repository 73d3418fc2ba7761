// Package mcptools exposes the calculators as Model Context Protocol tools.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"calcbox/internal/calc/calcerr"
	"calcbox/internal/calc/units"
	toolcatalog "calcbox/internal/catalog"
	"calcbox/internal/domain"
	domaintypes "calcbox/internal/domain/types"
	"calcbox/internal/format"
)

// Tools holds what the MCP handlers need.
type Tools struct {
	Source     *toolcatalog.Source
	Calculator domain.CalculatorService
	Locale     string
}

// NewServer creates an MCP server with every calcbox tool registered.
func NewServer(t *Tools, version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "calcbox",
		Version: version,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_tools",
		Description: "List calculator tools, optionally filtered by a search term and a category",
	}, t.ListTools)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "run_tool",
		Description: "Run a calculator tool by slug with string arguments (see list_tools and describe_tool)",
	}, t.RunTool)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "describe_tool",
		Description: "Show a tool's description and parameters",
	}, t.DescribeTool)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "convert_units",
		Description: "Convert a value between two units of length, weight, time, speed, area, volume or data size",
	}, t.ConvertUnits)

	return srv
}

// --- Input types ---

type ListToolsInput struct {
	Search   string `json:"search,omitempty" jsonschema:"Case-insensitive text matched against tool names and descriptions"`
	Category string `json:"category,omitempty" jsonschema:"Category name such as Converters or Health; empty means All"`
}

type RunToolInput struct {
	Tool string            `json:"tool" jsonschema:"Tool slug, e.g. bmi or roman-numerals"`
	Args map[string]string `json:"args,omitempty" jsonschema:"Tool arguments by parameter name"`
}

type DescribeToolInput struct {
	Tool string `json:"tool" jsonschema:"Tool slug"`
}

type ConvertUnitsInput struct {
	Value  float64 `json:"value" jsonschema:"Amount to convert"`
	From   string  `json:"from" jsonschema:"Source unit key, e.g. km"`
	To     string  `json:"to" jsonschema:"Target unit key, e.g. mi"`
	Family string  `json:"family,omitempty" jsonschema:"Unit family; inferred from the units when empty"`
}

// --- Handlers ---

func (t *Tools) ListTools(_ context.Context, _ *mcp.CallToolRequest, input ListToolsInput) (*mcp.CallToolResult, any, error) {
	category, ok := domaintypes.ParseCategory(input.Category)
	if !ok {
		return toolError("Unknown category %q (one of: %s)", input.Category, categoryList()), nil, nil
	}
	tools := t.Source.Current().Filter(input.Search, category)
	if tools == nil {
		tools = []domain.ToolDescriptor{}
	}
	return toolJSON(tools)
}

func (t *Tools) RunTool(ctx context.Context, _ *mcp.CallToolRequest, input RunToolInput) (*mcp.CallToolResult, any, error) {
	if input.Tool == "" {
		return toolError("Tool slug is required"), nil, nil
	}
	out, err := t.Calculator.RunTool(ctx, input.Tool, input.Args)
	if err != nil {
		return toolError("Failed to run %s: %v", input.Tool, err), nil, nil
	}
	if out.Error != nil {
		return toolError("%s: %s", out.Error.Kind, out.Error.Message), nil, nil
	}
	return toolJSON(out)
}

func (t *Tools) DescribeTool(_ context.Context, _ *mcp.CallToolRequest, input DescribeToolInput) (*mcp.CallToolResult, any, error) {
	d, ok := t.Source.Current().Lookup(input.Tool)
	if !ok {
		return toolError("Unknown tool %q", input.Tool), nil, nil
	}
	params, err := t.Calculator.ToolParams(input.Tool)
	if err != nil {
		return toolError("%s: %v", d.Name, err), nil, nil
	}
	return toolJSON(struct {
		domain.ToolDescriptor
		Params []domain.Param `json:"params"`
	}{d, params})
}

func (t *Tools) ConvertUnits(_ context.Context, _ *mcp.CallToolRequest, input ConvertUnitsInput) (*mcp.CallToolResult, any, error) {
	var (
		table units.Table
		err   error
	)
	if input.Family != "" {
		table, err = units.Lookup(input.Family)
	} else {
		table, err = units.FamilyOf(input.From, input.To)
	}
	if err != nil {
		return toolError("%s: %v", calcerr.KindOf(err), err), nil, nil
	}

	v, err := units.Convert(input.Value, input.From, input.To, table)
	if err != nil {
		return toolError("%s: %v", calcerr.KindOf(err), err), nil, nil
	}
	from, _ := table.Find(input.From)
	to, _ := table.Find(input.To)
	return toolJSON(map[string]any{
		"family":  table.Family,
		"from":    from.Key,
		"to":      to.Key,
		"value":   v,
		"display": fmt.Sprintf("%s %s = %s %s", t.number(input.Value), from.Key, t.number(v), to.Key),
	})
}

func (t *Tools) number(x float64) string {
	locale := t.Locale
	if locale == "" {
		locale = "en"
	}
	return format.Number(locale, x, 4)
}

func categoryList() string {
	names := []string{string(domain.CategoryAll)}
	for _, c := range toolcatalog.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func toolError(msg string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(msg, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
