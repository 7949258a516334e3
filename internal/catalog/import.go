package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// importSchema validates learner-authored unit files before anything enters
// the resolvable catalog. Imported units always get an open grade range and
// no prerequisites.
const importSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["units"],
  "additionalProperties": false,
  "properties": {
    "units": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["subjectKey", "title"],
        "additionalProperties": false,
        "properties": {
          "subjectKey": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "topics": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["title"],
              "additionalProperties": false,
              "properties": {
                "title": {"type": "string", "minLength": 1},
                "description": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

// UnitImport is one learner-authored unit from an import file.
type UnitImport struct {
	SubjectKey  string        `json:"subjectKey"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Topics      []TopicImport `json:"topics"`
}

// TopicImport is one topic belonging to an imported unit.
type TopicImport struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type importFile struct {
	Units []UnitImport `json:"units"`
}

var (
	compiledImportSchema *jsonschema.Schema
	importSchemaOnce     sync.Once
	importSchemaErr      error
)

func importSchemaCompiled() (*jsonschema.Schema, error) {
	importSchemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(importSchema), &doc); err != nil {
			importSchemaErr = fmt.Errorf("parse import schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://custom-units.json"
		if err := c.AddResource(url, doc); err != nil {
			importSchemaErr = fmt.Errorf("add import schema: %w", err)
			return
		}
		compiledImportSchema, importSchemaErr = c.Compile(url)
	})
	return compiledImportSchema, importSchemaErr
}

// ParseImport validates raw JSON against the import schema and, if the
// referenced subjects exist, returns the parsed units.
func ParseImport(raw []byte) ([]UnitImport, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := importSchemaCompiled()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("import file rejected: %w", err)
	}

	var file importFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode import file: %w", err)
	}
	for _, u := range file.Units {
		if _, ok := SubjectByKey(u.SubjectKey); !ok {
			return nil, fmt.Errorf("import file rejected: unknown subject %q", u.SubjectKey)
		}
	}
	return file.Units, nil
}
