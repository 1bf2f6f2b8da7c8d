package validate

import (
	"strings"
	"testing"

	"github.com/rask004/WordSearchPuzzleGenerator/internal/wordsearch/domain"
)

func TestValidateGenerateRequestJSON_InvalidJSON(t *testing.T) {
	errs := ValidateGenerateRequestJSON([]byte("not valid json"))
	if len(errs) == 0 {
		t.Fatal("expected error for invalid JSON")
	}
	if !strings.Contains(errs[0].Message, "invalid JSON") {
		t.Errorf("expected 'invalid JSON' in error, got: %s", errs[0].Message)
	}
}

func TestValidateGenerateRequestJSON_MissingWords(t *testing.T) {
	errs := ValidateGenerateRequestJSON([]byte(`{"width": 5}`))
	if len(errs) == 0 {
		t.Fatal("expected error for missing words")
	}
}

func TestValidateGenerateRequestJSON_RejectsNonAlphaWord(t *testing.T) {
	errs := ValidateGenerateRequestJSON([]byte(`{"words": ["cat1"]}`))
	if len(errs) == 0 {
		t.Fatal("expected error for non-alphabetic word")
	}
}

func TestValidateGenerateRequestJSON_Valid(t *testing.T) {
	errs := ValidateGenerateRequestJSON([]byte(`{"words": ["cat", "dog"], "width": 5, "height": 5}`))
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got: %v", errs)
	}
}

func TestValidatePuzzleJSON_Valid(t *testing.T) {
	errs := ValidatePuzzleJSON([]byte(`{"width": 3, "height": 3, "words": ["cat"], "grid": ["cat", "***", "***"]}`))
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got: %v", errs)
	}
}

func TestValidatePuzzleSemantic_RectangularGridRequired(t *testing.T) {
	p := &domain.Puzzle{
		Width: 3, Height: 2,
		Words: []string{"cat"},
		Grid:  []string{"cat", "do"},
	}
	errs := ValidatePuzzleSemantic(p)
	if len(errs) == 0 {
		t.Fatal("expected error for ragged grid")
	}
}

func TestValidatePuzzleSemantic_WordMustAppear(t *testing.T) {
	p := &domain.Puzzle{
		Width: 3, Height: 3,
		Words: []string{"dog"},
		Grid:  []string{"cat", "***", "***"},
	}
	errs := ValidatePuzzleSemantic(p)
	if len(errs) == 0 {
		t.Fatal("expected error for word absent from grid")
	}
}

func TestValidatePuzzleSemantic_WordPresentPasses(t *testing.T) {
	p := &domain.Puzzle{
		Width: 3, Height: 3,
		Words: []string{"cat", "tac"},
		Grid:  []string{"cat", "***", "***"},
	}
	errs := ValidatePuzzleSemantic(p)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got: %v", errs)
	}
}

func TestValidatePuzzleSemantic_DiagonalWord(t *testing.T) {
	p := &domain.Puzzle{
		Width: 3, Height: 3,
		Words: []string{"cat"},
		Grid:  []string{"c**", "*a*", "**t"},
	}
	errs := ValidatePuzzleSemantic(p)
	if len(errs) != 0 {
		t.Fatalf("expected no errors for diagonal word, got: %v", errs)
	}
}
