package repository

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/document.schema.json
var documentSchemaJSON []byte

const documentSchemaURL = "https://later.invalid/document.schema.json"

var compileDocumentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(documentSchemaURL, bytes.NewReader(documentSchemaJSON)); err != nil {
		return nil, fmt.Errorf("loading document schema: %w", err)
	}
	schema, err := compiler.Compile(documentSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
})

// SchemaError describes the first place a stored document breaks its schema.
type SchemaError struct {
	// Path is the slash-separated location inside the document, "/" for the root.
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid document at %s: %s", e.Path, e.Message)
}

func validateDocument(data []byte) error {
	schema, err := compileDocumentSchema()
	if err != nil {
		return err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return mapSchemaError(err)
	}
	return nil
}

func mapSchemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &SchemaError{Path: "/", Message: err.Error()}
	}
	leaf := firstLeaf(ve)
	path := leaf.InstanceLocation
	if path == "" {
		path = "/"
	}
	return &SchemaError{Path: path, Message: strings.TrimSpace(leaf.Message)}
}

// firstLeaf follows the first cause down to the most specific failure.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
