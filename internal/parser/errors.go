package parser

import "fmt"

// SyntaxError is the hard error returned by the single-value "parse a X"
// entry points (ParseRule, ParseDeclaration, ParseComponentValue) when
// trailing non-whitespace content follows the extracted value (§6).
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("SyntaxError: %s", e.Message)
}

func newSyntaxError(format string, args ...any) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}
