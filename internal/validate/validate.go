// Package validate provides JSON schema and semantic validation for
// generation requests and stored puzzles.
package validate

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var (
	generateRequestSchema *jsonschema.Schema
	puzzleSchema          *jsonschema.Schema
)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	generateRequestSchema = mustCompile(compiler, "schemas/generate_request.schema.json", "generate_request.schema.json")
	puzzleSchema = mustCompile(compiler, "schemas/puzzle.schema.json", "puzzle.schema.json")
}

func mustCompile(compiler *jsonschema.Compiler, path, resourceName string) *jsonschema.Schema {
	data, err := schemasFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("failed to read schema %s: %v", path, err))
	}
	if err := compiler.AddResource(resourceName, strings.NewReader(string(data))); err != nil {
		panic(fmt.Sprintf("failed to add schema %s: %v", resourceName, err))
	}
	schema, err := compiler.Compile(resourceName)
	if err != nil {
		panic(fmt.Sprintf("failed to compile schema %s: %v", resourceName, err))
	}
	return schema
}

// ValidationError represents a single validation error with path context.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no errors"
	}
	var msgs []string
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// ValidateGenerateRequestJSON validates a generation request body against
// the schema before it reaches the search core.
func ValidateGenerateRequestJSON(data []byte) ValidationErrors {
	return validateAgainst(generateRequestSchema, data)
}

// ValidatePuzzleJSON validates a stored puzzle document against the schema.
func ValidatePuzzleJSON(data []byte) ValidationErrors {
	return validateAgainst(puzzleSchema, data)
}

func validateAgainst(schema *jsonschema.Schema, data []byte) ValidationErrors {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return ValidationErrors{{Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}
	if err := schema.Validate(doc); err != nil {
		return schemaErrorToValidationErrors(err)
	}
	return nil
}

func schemaErrorToValidationErrors(err error) ValidationErrors {
	var errors ValidationErrors
	if ve, ok := err.(*jsonschema.ValidationError); ok {
		errors = append(errors, extractValidationErrors(ve)...)
	} else {
		errors = append(errors, ValidationError{Message: err.Error()})
	}
	return errors
}

func extractValidationErrors(ve *jsonschema.ValidationError) ValidationErrors {
	var errors ValidationErrors
	if ve.Message != "" {
		errors = append(errors, ValidationError{
			Path:    ve.InstanceLocation,
			Message: ve.Message,
		})
	}
	for _, cause := range ve.Causes {
		errors = append(errors, extractValidationErrors(cause)...)
	}
	return errors
}

// ValidatePuzzleSemantic catches errors JSON Schema cannot express: a
// rectangular grid, and that every word in the word list actually
// appears somewhere in the grid along one of the eight straight-line
// directions.
func ValidatePuzzleSemantic(p *domain.Puzzle) ValidationErrors {
	var errors ValidationErrors

	if len(p.Grid) == 0 {
		return ValidationErrors{{Path: "/grid", Message: "grid must not be empty"}}
	}

	width := len(p.Grid[0])
	for i, row := range p.Grid {
		if len(row) != width {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("/grid/%d", i),
				Message: fmt.Sprintf("row has %d columns, expected %d", len(row), width),
			})
		}
	}
	if len(errors) > 0 {
		return errors
	}

	for _, word := range p.Words {
		if !wordAppearsInGrid(word, p.Grid) {
			errors = append(errors, ValidationError{
				Path:    "/words",
				Message: fmt.Sprintf("word %q does not appear in the grid along any straight line", word),
			})
		}
	}

	return errors
}

func wordAppearsInGrid(word string, grid []string) bool {
	height := len(grid)
	if height == 0 {
		return false
	}
	width := len(grid[0])

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for _, v := range domain.Directions {
				if runMatches(grid, word, x, y, v.DX, v.DY) {
					return true
				}
			}
		}
	}
	return false
}

func runMatches(grid []string, word string, x, y, dx, dy int) bool {
	height := len(grid)
	width := len(grid[0])
	for i := 0; i < len(word); i++ {
		cx, cy := x+dx*i, y+dy*i
		if cx < 0 || cy < 0 || cx >= width || cy >= height {
			return false
		}
		if grid[cy][cx] != word[i] {
			return false
		}
	}
	return true
}
