package lcalc

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Constants are defined by package
// scanner.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals of the calculator language.
//
// An example would be a token for an integer:
//
//    TokType = scanner.Int // identifier for this kind of tokens
//    Lexeme  = "42"        // lexeme how it appreared in the input line
//    Span    = 4…6         // occured from column 4 in the input line
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input columns. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span, i.e. a token without source position.
func (s Span) IsNull() bool {
	return s == Span{}
}

// String renders s as "(x…y)".
func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
