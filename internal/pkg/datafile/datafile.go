// Package datafile decodes YAML data files after validating them against a
// JSON schema.
package datafile

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
)

// Schema is a compiled JSON schema
type Schema struct {
	name   string
	schema *jsonschema.Schema
}

// CompileSchema compiles an in-memory JSON schema document
func CompileSchema(name, document string) (*Schema, error) {
	s, err := jsonschema.CompileString(name, document)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to compile schema %s", name).
			WithMeta("file", name)
	}
	return &Schema{name: name, schema: s}, nil
}

// Decode validates raw YAML against the schema and decodes it into out.
// Unknown fields are rejected by the decoder as well as the schema. Every
// failure is an InvalidArgument naming the schema.
func (s *Schema) Decode(raw []byte, out any) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return s.invalid(err)
	}

	// jsonschema expects values shaped the way encoding/json produces them
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return s.invalid(err)
	}
	var normalized any
	if err := json.Unmarshal(asJSON, &normalized); err != nil {
		return s.invalid(err)
	}
	if err := s.schema.Validate(normalized); err != nil {
		return s.invalid(err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return s.invalid(err)
	}
	return nil
}

func (s *Schema) invalid(err error) error {
	return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "%s", s.name).
		WithMeta("file", s.name)
}
