package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed seed.json
var seedJSON []byte

//go:embed seed_schema.json
var seedSchemaJSON []byte

// seedFile is the top-level shape of the embedded catalog.
type seedFile struct {
	Skills []Skill `json:"skills"`
}

var (
	compileSchemaOnce sync.Once
	compiledSchema    *jsonschema.Schema
	compileErr        error
)

// Seed parses and validates the embedded catalog and returns its skills
// with modules sorted by week. The result is a fresh copy on every call, so
// callers may mutate it freely.
func Seed() ([]Skill, error) {
	return Load(seedJSON)
}

// Load parses raw catalog JSON, validates it against the catalog schema,
// and returns the skills. Validation runs before decoding into structs so
// a malformed catalog fails with a pointed schema error rather than a
// half-populated result.
func Load(raw []byte) ([]Skill, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	schema, err := catalogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	var file seedFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	for i := range file.Skills {
		file.Skills[i].SortModules()
	}
	return file.Skills, nil
}

// catalogSchema returns the compiled catalog schema, compiling it once.
func catalogSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(seedSchemaJSON, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://catalog.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
