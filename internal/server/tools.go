package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "render_latex",
			Description: "Render a LaTeX math expression to a PNG image, returned as a base64 image attachment. Supports raw LaTeX or $/$$-delimited math; separate solution steps with newlines to render them stacked.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"latex": map[string]interface{}{
						"type":        "string",
						"description": "LaTeX expression to render, without surrounding delimiters ($ and $$ are stripped if present)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Resolution scale factor; 1.0 renders at 150 DPI (default 1.0)",
						"default":     1.0,
					},
					"theme": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"light", "dark"},
						"description": "Color theme: light (black on white) or dark (default light)",
					},
					"foreground": map[string]interface{}{
						"type":        "string",
						"description": "Text color name or #RRGGBB hex; overrides the theme (default black)",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color name or #RRGGBB hex; overrides the theme (default white)",
					},
					"font_size": map[string]interface{}{
						"type":        "number",
						"description": "Font size in points (default 14)",
						"default":     14,
					},
				},
				"required": []string{"latex"},
			},
		},
		{
			Name:        "render_solution",
			Description: "Render a multi-step math solution as one PNG image: each step on its own labeled row, with the final answer boldfaced on the last row.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"problem": map[string]interface{}{
						"type":        "string",
						"description": "Optional plain-text description of the problem (informational only, not rendered)",
					},
					"steps": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
						},
						"description": "Ordered LaTeX fragments, one per solution step; may be empty to render only the answer",
					},
					"answer": map[string]interface{}{
						"type":        "string",
						"description": "Final answer expression in LaTeX",
					},
					"dpi": map[string]interface{}{
						"type":        "integer",
						"description": "Image resolution in DPI (default 200)",
						"default":     200,
					},
					"theme": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"light", "dark"},
						"description": "Color theme (default light)",
					},
				},
				"required": []string{"answer"},
			},
		},
		{
			Name:        "get_image_url",
			Description: "Build the rendering URL for a LaTeX expression without fetching any image bytes. The URL can be dereferenced directly by a browser or messaging client.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"latex": map[string]interface{}{
						"type":        "string",
						"description": "LaTeX expression, without surrounding delimiters",
					},
					"dpi": map[string]interface{}{
						"type":        "integer",
						"description": "Image resolution in DPI (default 200)",
						"default":     200,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Text color (default black)",
						"default":     "black",
					},
				},
				"required": []string{"latex"},
			},
		},
		{
			Name:        "check_latex_syntax",
			Description: "Check a LaTeX expression for common problems before rendering it. Returns a JSON report with validity, warnings and errors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"latex": map[string]interface{}{
						"type":        "string",
						"description": "LaTeX expression to check (max 10000 chars)",
					},
				},
				"required": []string{"latex"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
