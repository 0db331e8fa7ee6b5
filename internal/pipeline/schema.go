// internal/pipeline/schema.go
//
// Manifest documents are validated against a bundled JSON schema before
// unmarshalling, so authoring mistakes (wrong types, unknown keys) fail
// with a schema path instead of a zero-value surprise later on.
package pipeline

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	sigsyaml "sigs.k8s.io/yaml"
)

//go:embed schema/acrpipe.schema.json
var schemaBytes []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// validateSchema checks a raw YAML manifest against the bundled schema.
func validateSchema(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := sigsyaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("manifest is not valid yaml: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decode manifest: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("manifest does not match schema: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("acrpipe.schema.json", strings.NewReader(string(schemaBytes))); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("acrpipe.schema.json")
	})
	return compiledSchema, schemaErr
}
