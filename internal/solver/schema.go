package solver

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// solutionSchemaName identifies the solution schema; it doubles as the
// structured-output name sent to providers that want one.
const solutionSchemaName = "math-solution"

// solutionSchema is the JSON Schema every provider response must
// satisfy before it is decoded into a Solution.
var solutionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"answer": map[string]any{
			"type":        "string",
			"description": "The final answer, as compact as possible.",
		},
		"steps": map[string]any{
			"type":        "array",
			"description": "Ordered solution steps.",
			"items":       map[string]any{"type": "string"},
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "One-paragraph explanation of the key idea.",
		},
		"knowledge": map[string]any{
			"type":        "array",
			"description": "Knowledge points the problem exercises.",
			"items":       map[string]any{"type": "string"},
		},
	},
	"required":             []any{"answer", "steps", "explanation"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// decodeSolution validates raw provider output against the solution
// schema and decodes it. Any failure comes back as *ErrInvalidResponse
// so the retry layer can give the provider one more chance.
func decodeSolution(raw json.RawMessage) (*Solution, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledSolutionSchema()
	if err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var sol Solution
	if err := json.Unmarshal(raw, &sol); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("decode solution: %w", err)}
	}
	return &sol, nil
}

func compiledSolutionSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value; round-trip the map to
		// normalize it.
		defBytes, err := json.Marshal(solutionSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", solutionSchemaName)
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
