package server

import (
	"encoding/json"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(tools))
	}

	names := make(map[string]Tool, len(tools))
	for _, tool := range tools {
		if tool.Name == "" {
			t.Error("tool with empty name")
		}
		if tool.Description == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
		if _, dup := names[tool.Name]; dup {
			t.Errorf("duplicate tool name %s", tool.Name)
		}
		names[tool.Name] = tool
	}

	for _, want := range []string{"render_latex", "render_solution", "get_image_url", "check_latex_syntax"} {
		if _, ok := names[want]; !ok {
			t.Errorf("missing tool %s", want)
		}
	}
}

func TestGetToolDefinitions_SchemaShape(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		schema := tool.InputSchema

		if schema["type"] != "object" {
			t.Errorf("%s: schema type should be object", tool.Name)
		}
		if _, ok := schema["properties"].(map[string]interface{}); !ok {
			t.Errorf("%s: schema should define properties", tool.Name)
		}
		if _, ok := schema["required"].([]string); !ok {
			t.Errorf("%s: schema should list required fields", tool.Name)
		}

		// Definitions must survive JSON marshaling for tools/list.
		if _, err := json.Marshal(tool); err != nil {
			t.Errorf("%s: failed to marshal: %v", tool.Name, err)
		}
	}
}

func TestGetToolDefinitions_RequiredFields(t *testing.T) {
	tests := map[string][]string{
		"render_latex":       {"latex"},
		"render_solution":    {"answer"},
		"get_image_url":      {"latex"},
		"check_latex_syntax": {"latex"},
	}

	for _, tool := range GetToolDefinitions() {
		want, ok := tests[tool.Name]
		if !ok {
			continue
		}
		got, _ := tool.InputSchema["required"].([]string)
		if len(got) != len(want) {
			t.Errorf("%s: required fields got %v, want %v", tool.Name, got, want)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: required[%d] got %s, want %s", tool.Name, i, got[i], want[i])
			}
		}
	}
}
