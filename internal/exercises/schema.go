package exercises

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed catalog.schema.json
var catalogSchemaJSON []byte

// ErrManifestInvalid marks a manifest that does not match the catalog schema.
var ErrManifestInvalid = errors.New("exercise manifest invalid")

const catalogSchemaName = "catalog.schema.json"

func compileCatalogSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(catalogSchemaName, bytes.NewReader(catalogSchemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(catalogSchemaName)
}

// decodeManifest validates body against schema and decodes the entries.
func decodeManifest(schema *jsonschema.Schema, body []byte) ([]Entry, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}
	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
