// Package errsink implements the two failure regimes of the CSS Syntax
// parser: recoverable parse errors, reported through a pluggable sink but
// never fatal to tokenization or parsing, and hard user errors, returned as
// Go errors from the handful of operations that can fail outright.
//
// The recoverable side generalizes the teacher codebase's
// source-line-and-caret error formatter (internal/errors.CompilerError) into
// something that can be swapped out. The tokenizer and parser report to
// DiscardSink unless the caller supplies another Sink.
package errsink

import (
	"fmt"
	"os"
	"strings"

	"github.com/csssyntax/csssyntax/pkg/token"
)

// ParseError is a single recoverable parse error: unterminated comment, bad
// URL contents, a missing declaration colon, and so on. Tokenization and
// parsing always continue past one of these.
type ParseError struct {
	Code    string
	Message string
	Pos     token.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Pos, e.Code, e.Message)
}

// Recoverable parse error codes (§4.2, §4.4).
const (
	ErrUnterminatedComment  = "css-unterminated-comment"
	ErrUnterminatedString   = "css-unterminated-string"
	ErrBadURL               = "css-bad-url"
	ErrBadEscape            = "css-bad-escape"
	ErrStrayCDOCDC          = "css-stray-cdo-cdc"
	ErrMissingColon         = "css-missing-colon"
	ErrEOFInPrelude         = "css-eof-in-prelude"
	ErrUnexpectedTokenInDecl = "css-unexpected-token-in-declaration"
	ErrInvalidUTF16         = "css-invalid-utf16"
)

// Sink receives recoverable parse errors as they are produced. Tokenizer and
// parser state never depends on what a Sink does with an error — it is
// purely an observation point.
type Sink interface {
	Report(e *ParseError)
}

// DiscardSink drops every error. Useful when a caller only wants the token
// or tree result and will inspect a Collecting sink separately, or not at
// all.
type DiscardSink struct{}

func (DiscardSink) Report(*ParseError) {}

// StderrSink writes each error to stderr, formatted with the offending
// source line and a caret, in the manner of the teacher's
// internal/errors.CompilerError.Format. It is not the default: the
// tokenizer and parser use DiscardSink unless given a StderrSink through
// WithSink.
type StderrSink struct {
	Source string
	File   string
}

func NewStderrSink(source, file string) *StderrSink {
	return &StderrSink{Source: source, File: file}
}

func (s *StderrSink) Report(e *ParseError) {
	fmt.Fprint(os.Stderr, s.Format(e))
}

// Format renders a single error with source context, matching the teacher's
// "Error in FILE:LINE:COL" header followed by the source line and a caret.
func (s *StderrSink) Format(e *ParseError) string {
	var sb strings.Builder

	if s.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d: %s\n", s.File, e.Pos.Line, e.Pos.Column, e.Message)
	} else {
		fmt.Fprintf(&sb, "Error at %d:%d: %s\n", e.Pos.Line, e.Pos.Column, e.Message)
	}

	if line := sourceLine(s.Source, e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := e.Pos.Column - 1
		if col < 0 {
			col = 0
		}
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col))
		sb.WriteString("^\n")
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// CollectingSink buffers every reported error, the way the teacher's
// Lexer.Errors() buffers lexer errors for the parser to inspect afterward.
type CollectingSink struct {
	Errors []*ParseError
}

func (s *CollectingSink) Report(e *ParseError) {
	s.Errors = append(s.Errors, e)
}

// MultiSink fans a report out to more than one Sink, e.g. CollectingSink
// for tests plus StderrSink for visibility.
type MultiSink []Sink

func (m MultiSink) Report(e *ParseError) {
	for _, s := range m {
		s.Report(e)
	}
}
