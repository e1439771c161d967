package httpadapter

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"adpanel/internal/core/port"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema names of the request bodies checked before decoding.
const (
	schemaIdentifier  = "identifier.json"
	schemaLinkRequest = "link_request.json"
	schemaCampaign    = "campaign.json"
)

// Validator checks request bodies against the embedded JSON schemas.
type Validator struct {
	compiled map[string]*jsonschema.Schema
}

// NewValidator compiles every embedded schema.
func NewValidator() (*Validator, error) {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	for _, e := range entries {
		data, err := schemaFS.ReadFile("schemas/" + e.Name())
		if err != nil {
			return nil, err
		}
		if err = compiler.AddResource(e.Name(), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("load schema %s: %w", e.Name(), err)
		}
	}
	v := &Validator{compiled: make(map[string]*jsonschema.Schema, len(entries))}
	for _, e := range entries {
		schema, err := compiler.Compile(e.Name())
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", e.Name(), err)
		}
		v.compiled[e.Name()] = schema
	}
	return v, nil
}

// Validate checks body against the named schema. Failures wrap
// port.ErrValidation.
func (v *Validator) Validate(name string, body []byte) error {
	schema, ok := v.compiled[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: invalid JSON", port.ErrValidation)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", port.ErrValidation, err)
	}
	return nil
}
