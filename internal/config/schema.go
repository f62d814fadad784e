package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const stallsSchemaURL = "https://stalls.local/stalls.schema.json"

var compileStallsSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(stallsSchemaURL, bytes.NewReader(stallsSchemaJSON)); err != nil {
		return nil, err
	}
	return c.Compile(stallsSchemaURL)
})

// validateStalls checks a YAML document against the embedded JSON schema.
// The YAML is re-encoded as JSON so numbers reach the validator as
// json.Number.
func validateStalls(data []byte) error {
	schema, err := compileStallsSchema()
	if err != nil {
		return fmt.Errorf("config schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		doc = map[string]any{}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config is not representable as JSON: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var inst any
	if err := dec.Decode(&inst); err != nil {
		return err
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
