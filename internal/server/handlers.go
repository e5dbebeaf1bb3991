package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/ironsheep/latex-render-mcp/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "render_latex").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ContentBlock is one element of an MCP tool result. Type is "text"
// (Text populated) or "image" (Data carries base64 bytes, MimeType the
// declared format).
type ContentBlock struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "image", "data": "<base64>", "mimeType": "image/png"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	content, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": content,
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Builds the render style and/or composed expression
//  4. Calls the configured renderer or the locator builder
//  5. Encodes the outcome as MCP content blocks
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) ([]ContentBlock, error) {
	switch name {
	case "render_latex":
		return s.handleRenderLatex(ctx, args)
	case "render_solution":
		return s.handleRenderSolution(ctx, args)
	case "get_image_url":
		return s.handleGetImageURL(args)
	case "check_latex_syntax":
		return s.handleCheckLatexSyntax(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// encodeResult converts a render outcome into MCP content: the image
// variant becomes a base64 image attachment, the fallback variant a plain
// text block carrying the locator.
func encodeResult(res *render.Result) []ContentBlock {
	if res.OK() {
		return []ContentBlock{{
			Type:     "image",
			Data:     base64.StdEncoding.EncodeToString(res.Image),
			MimeType: res.MIMEType,
		}}
	}
	return []ContentBlock{{
		Type: "text",
		Text: res.Fallback,
	}}
}

// textContent wraps a string as a single text content block.
func textContent(text string) []ContentBlock {
	return []ContentBlock{{Type: "text", Text: text}}
}

// === Tool Handlers ===

type renderLatexArgs struct {
	Latex      string  `json:"latex"`
	Scale      float64 `json:"scale"`
	Theme      string  `json:"theme"`
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	FontSize   float64 `json:"font_size"`
}

func (s *Server) handleRenderLatex(ctx context.Context, args json.RawMessage) ([]ContentBlock, error) {
	var a renderLatexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Latex == "" {
		return nil, fmt.Errorf("latex is required")
	}
	if a.Scale <= 0 {
		a.Scale = 1.0
	}

	style := render.DefaultStyle()
	if a.Theme != "" {
		style = style.WithTheme(a.Theme)
	}
	if a.Foreground != "" {
		style.Foreground = a.Foreground
	}
	if a.Background != "" {
		style.Background = a.Background
	}
	if a.FontSize > 0 {
		style.FontSize = a.FontSize
	}
	style.DPI = int(math.Round(render.DefaultDPI * a.Scale))

	res, err := s.renderer.Render(ctx, a.Latex, style)
	if err != nil {
		return nil, err
	}
	return encodeResult(res), nil
}

type renderSolutionArgs struct {
	Problem string   `json:"problem"`
	Steps   []string `json:"steps"`
	Answer  string   `json:"answer"`
	DPI     int      `json:"dpi"`
	Theme   string   `json:"theme"`
}

func (s *Server) handleRenderSolution(ctx context.Context, args json.RawMessage) ([]ContentBlock, error) {
	var a renderSolutionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Answer == "" {
		return nil, fmt.Errorf("answer is required")
	}
	if a.DPI <= 0 {
		a.DPI = render.SolutionDPI
	}
	if a.Problem != "" {
		log.Printf("Rendering solution for: %s (%d steps)", a.Problem, len(a.Steps))
	}

	style := render.DefaultStyle()
	if a.Theme != "" {
		style = style.WithTheme(a.Theme)
	}
	style.DPI = a.DPI

	composed := render.ComposeSolution(a.Steps, a.Answer)

	res, err := s.renderer.Render(ctx, composed, style)
	if err != nil {
		return nil, err
	}
	return encodeResult(res), nil
}

type getImageURLArgs struct {
	Latex string `json:"latex"`
	DPI   int    `json:"dpi"`
	Color string `json:"color"`
}

func (s *Server) handleGetImageURL(args json.RawMessage) ([]ContentBlock, error) {
	var a getImageURLArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Latex == "" {
		return nil, fmt.Errorf("latex is required")
	}
	if a.DPI <= 0 {
		a.DPI = render.SolutionDPI
	}
	if a.Color == "" {
		a.Color = render.DefaultForeground
	}

	// Builds the locator only; no fetch happens here.
	return textContent(render.BuildLocatorURL(s.endpoint, a.Latex, a.DPI, a.Color)), nil
}

type checkLatexSyntaxArgs struct {
	Latex string `json:"latex"`
}

func (s *Server) handleCheckLatexSyntax(ctx context.Context, args json.RawMessage) ([]ContentBlock, error) {
	var a checkLatexSyntaxArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	lint := render.Lint(a.Latex)

	// With the local engine available, back the static checks with a
	// low-resolution dry-run render.
	if local, ok := s.renderer.(*render.Local); ok && lint.Valid {
		dry := render.DefaultStyle()
		dry.DPI = 72
		dry.FontSize = 12
		if _, err := local.Render(ctx, a.Latex, dry); err != nil {
			lint.Valid = false
			lint.Errors = append(lint.Errors, fmt.Sprintf("render test failed: %v", err))
		}
	}

	data, err := json.MarshalIndent(lint, "", "  ")
	if err != nil {
		return nil, err
	}
	return textContent(string(data)), nil
}
