package loader

import "fmt"

// Error codes for failures that stop a document from loading.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeReadFailed  = "E002" // File could not be read
	ErrCodeUnsupported = "E003" // Unsupported file extension
	ErrCodeSyntax      = "E004" // Source is not valid JSON, YAML or CUE
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE value is incomplete or inconsistent
	ErrCodeStructure   = "E007" // Not a document object, or slides is not a list
)

// Diagnostic codes reported by Validate.
const (
	ErrCodeSchema          = "E101" // Field has the wrong type
	ErrCodeUnknownLayout   = "E102" // Layout falls back to content
	ErrCodeUnknownSeverity = "E103" // Item type is not a severity
	ErrCodeUnknownColor    = "E104" // Column color is not a palette token
	ErrCodeHiddenColumns   = "E105" // Three-column slide has more than three columns
)

// LoadError is a failure to load a document. Line and Column are 1-based
// and zero when unknown.
type LoadError struct {
	Code    string
	Message string
	File    string
	Line    int
	Column  int
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Line, e.Column, e.Code, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
