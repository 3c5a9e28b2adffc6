package translation

import (
	"bytes"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Translation files are plain nested string maps; no executable content is
// ever permitted. The schema also admits arrays so authors can write FAQ
// blocks either as objects keyed by index or as JSON arrays.
const fileSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": {"$ref": "#/$defs/node"},
	"$defs": {
		"node": {
			"anyOf": [
				{"type": "string"},
				{"type": "object", "additionalProperties": {"$ref": "#/$defs/node"}},
				{"type": "array", "items": {"$ref": "#/$defs/node"}}
			]
		}
	}
}`

var (
	fileSchemaOnce     sync.Once
	fileSchemaCompiled *jsonschema.Schema
	fileSchemaErr      error
)

func compiledFileSchema() (*jsonschema.Schema, error) {
	fileSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("translation.json", bytes.NewReader([]byte(fileSchema))); err != nil {
			fileSchemaErr = err
			return
		}
		fileSchemaCompiled, fileSchemaErr = compiler.Compile("translation.json")
	})
	return fileSchemaCompiled, fileSchemaErr
}

// validateFileShape checks a decoded overlay against the translation file
// contract.
func validateFileShape(decoded map[string]any) error {
	schema, err := compiledFileSchema()
	if err != nil {
		return fmt.Errorf("translation: compile file schema: %w", err)
	}
	if err := schema.Validate(map[string]any(decoded)); err != nil {
		return err
	}
	return nil
}
