// Package schemas provides JSON Schema validation for persisted and imported résumé data.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_document.schema.json
var documentSchemaJSON string

// DocumentSchema returns the JSON Schema for a single (possibly partial) résumé document
func DocumentSchema() string {
	return documentSchemaJSON
}

// CollectionSchema returns the JSON Schema for the persisted collection: an array of documents
func CollectionSchema() string {
	var item map[string]any
	if err := json.Unmarshal([]byte(documentSchemaJSON), &item); err != nil {
		// embedded at build time; covered by tests
		panic(fmt.Sprintf("invalid embedded document schema: %v", err))
	}
	// $schema is only meaningful at the root
	delete(item, "$schema")

	collection := map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title":   "ResumeCollection",
		"type":    "array",
		"items":   item,
	}
	out, err := json.Marshal(collection)
	if err != nil {
		panic(fmt.Sprintf("marshal collection schema: %v", err))
	}
	return string(out)
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// compiled schemas are built once on first use
var (
	compileOnce        sync.Once
	compiledDocument   *gojsonschema.Schema
	compiledCollection *gojsonschema.Schema
	compileErr         error
)

func compiled() (document, collection *gojsonschema.Schema, err error) {
	compileOnce.Do(func() {
		compiledDocument, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(DocumentSchema()))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Path: "resume_document.schema.json", Message: "invalid schema", Cause: compileErr}
			return
		}
		compiledCollection, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(CollectionSchema()))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Path: "(collection schema)", Message: "invalid schema", Cause: compileErr}
		}
	})
	return compiledDocument, compiledCollection, compileErr
}

// ValidateDocument checks that data is a JSON object shaped like a résumé document
func ValidateDocument(data []byte) error {
	document, _, err := compiled()
	if err != nil {
		return err
	}
	return validateWith(document, data)
}

// ValidateCollection checks that data is a JSON array of résumé documents
func ValidateCollection(data []byte) error {
	_, collection, err := compiled()
	if err != nil {
		return err
	}
	return validateWith(collection, data)
}

func validateWith(schema *gojsonschema.Schema, data []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		// The document itself is not parseable JSON
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}
	return resultError(result)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	return resultError(result)
}

func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
