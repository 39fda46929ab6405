/*
Package scanner defines an interface for scanners to be used with the
calculator parser.

A default implementation is provided by sub-package `lexmach`, an adapter
for lexmachine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"text/scanner"

	"github.com/npillmayer/lcalc"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lcalc.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lcalc.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons. Single character
// tokens ('+', '(', …) use the character as their token type.
const (
	EOF   = scanner.EOF
	Ident = scanner.Ident
	Int   = scanner.Int
	Error = -9 // input the scanner could not match
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lcalc.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// LogError is the default error handler of scanners. It traces e and
// otherwise ignores it.
var LogError = logError

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the
// LexMachine scanner.
type DefaultToken struct {
	kind   lcalc.TokType
	lexeme string
	span   lcalc.Span
}

var _ lcalc.Token = DefaultToken{}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ lcalc.TokType, lexeme string, span lcalc.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() lcalc.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() lcalc.Span {
	return t.span
}

// TokenName returns a printable name for a token type.
func TokenName(t lcalc.TokType) string {
	switch t {
	case EOF:
		return "end of line"
	case Ident:
		return "identifier"
	case Int:
		return "integer"
	case Error:
		return "illegal input"
	}
	return "'" + string(rune(t)) + "'"
}
