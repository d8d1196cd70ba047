package registry

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/registry.schema.json
var registrySchemaBytes []byte

//go:embed schema/entries.schema.json
var entriesSchemaBytes []byte

var (
	compileOnce    sync.Once
	registrySchema *jsonschema.Schema
	entriesSchema  *jsonschema.Schema
	compileErr     error
	schemaPrinter  = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // instance location (e.g., "/H2D/SUNLU/count")
	Message string // human-readable error message
	Keyword string // schema keyword that failed
}

// getSchemas compiles the embedded JSON Schemas once.
func getSchemas() (*jsonschema.Schema, *jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()

		for name, raw := range map[string][]byte{
			"registry.schema.json": registrySchemaBytes,
			"entries.schema.json":  entriesSchemaBytes,
		} {
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
			if err != nil {
				compileErr = fmt.Errorf("unmarshaling %s: %w", name, err)
				return
			}
			if err := c.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("adding schema resource %s: %w", name, err)
				return
			}
		}

		registrySchema, compileErr = c.Compile("registry.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling registry schema: %w", compileErr)
			return
		}
		entriesSchema, compileErr = c.Compile("entries.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling entries schema: %w", compileErr)
		}
	})
	return registrySchema, entriesSchema, compileErr
}

// ValidateRegistryFile validates a registry document file against the
// embedded schema. The error return covers I/O and schema-compilation
// failures; validation problems land in the result.
func ValidateRegistryFile(path string) (*ValidationResult, error) {
	rs, _, err := getSchemas()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}
	return validateFile(rs, path)
}

// ValidateEntriesFile validates one per-vendor entries file against the
// embedded schema.
func ValidateEntriesFile(path string) (*ValidationResult, error) {
	_, es, err := getSchemas()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}
	return validateFile(es, path)
}

func validateFile(schema *jsonschema.Schema, path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively walks the error tree to find leaf
// errors with specific property information.
func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(schemaPrinter)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
