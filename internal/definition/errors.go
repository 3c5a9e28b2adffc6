package definition

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIDRequired         = errors.New("definition: calculator id is required")
	ErrTitleRequired      = errors.New("definition: default title is required")
	ErrCategoryInvalid    = errors.New("definition: category is not in the closed set")
	ErrDuplicateID        = errors.New("definition: duplicate id within collection")
	ErrUnknownSectionKind = errors.New("definition: unknown education section kind")
	ErrAlreadyRegistered  = errors.New("definition: calculator already registered")
	ErrNotRegistered      = errors.New("definition: calculator not registered")
	ErrCalculatorRequired = errors.New("definition: calculator is required")
)

// ConfigValidationError reports every structural invariant a definition
// violates, so an author can fix the whole file in one pass.
type ConfigValidationError struct {
	CalculatorID string
	Issues       []string
}

func (e *ConfigValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "definition: invalid configuration"
	}
	return fmt.Sprintf("definition %q: %s", e.CalculatorID, strings.Join(e.Issues, "; "))
}

// Suggestion returns a human-actionable hint for operators.
func (e *ConfigValidationError) Suggestion() string {
	return fmt.Sprintf("review the structural definition of %q and resolve the listed issues before registering it", e.CalculatorID)
}
