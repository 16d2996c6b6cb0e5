package validation

import (
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const taskSchemaURL = "https://kanban.local/schemas/task.json"

const taskSchema = `{
	"type": "object",
	"properties": {
		"title":          {"type": "string"},
		"osNumber":       {"type": "string"},
		"team":           {"type": "string"},
		"status":         {"type": "string"},
		"description":    {"type": ["string", "null"]},
		"estimatedHours": {"type": ["string", "null"]},
		"deadline":       {"type": ["string", "null"]}
	}
}`

const teamSchemaURL = "https://kanban.local/schemas/team.json"

const teamSchema = `{
	"type": "object",
	"properties": {
		"name":       {"type": "string"},
		"colorClass": {"type": "string"}
	}
}`

func compileSchema(url, schema string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(url, strings.NewReader(schema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return compiled, nil
}

// collectSchemaErrors walks the cause tree and records every leaf against
// the top-level field it points at.
func collectSchemaErrors(verr *Error, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		verr.add(jsonPointerToField(err.InstanceLocation), err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(verr, cause)
	}
}

func jsonPointerToField(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return "body"
	}
	if i := strings.Index(ptr, "/"); i >= 0 {
		ptr = ptr[:i]
	}
	return ptr
}
