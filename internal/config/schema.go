package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaSource string

var ErrInvalid = errors.New("invalid config")

// compileSchema compiles the embedded config schema.
func compileSchema() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("happy-config.schema.json", schemaSource)
}

// validateDocument checks a decoded config document against the schema.
// doc is round-tripped through JSON so TOML/YAML scalar types line up
// with what the validator expects.
func validateDocument(doc map[string]any) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal config for validation: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal config for validation: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, schemaMessages(err))
	}
	return nil
}

// schemaMessages flattens a validation error tree into "path: message" pairs.
func schemaMessages(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var msgs []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := strings.TrimPrefix(e.InstanceLocation, "/")
			if loc == "" {
				loc = "(root)"
			}
			msgs = append(msgs, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return strings.Join(msgs, "; ")
}
