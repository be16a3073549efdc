package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

var personalizedSchemaJSON = json.RawMessage(`{
  "type": "object",
  "required": ["subject", "body"],
  "properties": {
    "subject": {"type": "string", "minLength": 1},
    "body": {"type": "string", "minLength": 1}
  }
}`)

var enrichmentSchemaJSON = json.RawMessage(`{
  "type": "object",
  "properties": {
    "domain": {"type": ["string", "null"]},
    "industry": {"type": ["string", "null"]},
    "employee_count": {"type": ["integer", "null"], "minimum": 0}
  }
}`)

func compileSchema(raw json.RawMessage) (*jsonschema.Schema, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(raw, rs); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return rs, nil
}

// decodeValidated extracts the JSON object from model output, checks it against the
// schema and unmarshals it into out
func decodeValidated(ctx context.Context, schema *jsonschema.Schema, output string, out any) error {
	j := extractJSON(output)
	if j == "" {
		return ErrMalformedOutput
	}

	verrs, err := schema.ValidateBytes(ctx, []byte(j))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if len(verrs) > 0 {
		msgs := make([]string, 0, len(verrs))
		for _, v := range verrs {
			msgs = append(msgs, v.PropertyPath+": "+v.Message)
		}
		return fmt.Errorf("%w: %s", ErrMalformedOutput, strings.Join(msgs, "; "))
	}

	if err := json.Unmarshal([]byte(j), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return nil
}

// extractJSON returns the span from the first '{' to the last '}' so answers wrapped
// in prose or markdown fences still parse
func extractJSON(s string) string {
	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first == -1 || last == -1 || last < first {
		return ""
	}
	return s[first : last+1]
}
