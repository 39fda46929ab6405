package lexmach

import (
	"strings"

	"github.com/npillmayer/lcalc"
	"github.com/npillmayer/lcalc/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'lcalc.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lcalc.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('(', '+', …), a list of keywords and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, input: input, Error: scanner.LogError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	input   string
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Spans of tokens are byte offsets into the input.
func (lms *LMScanner) NextToken() lcalc.Token {
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			return lms.skip(ui.StartTC, ui.FailTC)
		}
		// cannot recover without position information
		end := uint64(len(lms.input))
		return scanner.MakeDefaultToken(scanner.Error, "", lcalc.Span{end, end})
	}
	if eof {
		end := uint64(len(lms.input))
		return scanner.MakeDefaultToken(scanner.EOF, "", lcalc.Span{end, end})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	from := uint64(token.TC)
	return scanner.MakeDefaultToken(
		lcalc.TokType(token.Type),
		string(token.Lexeme),
		lcalc.Span{from, from + uint64(len(token.Lexeme))},
	)
}

// skip advances the scanner behind unmatched input and returns it as an
// error token.
func (lms *LMScanner) skip(start, fail int) lcalc.Token {
	if fail <= start {
		fail = start + 1
	}
	if fail > len(lms.input) {
		fail = len(lms.input)
	}
	lms.scanner.TC = fail
	if start > fail {
		start = fail
	}
	return scanner.MakeDefaultToken(scanner.Error, lms.input[start:fail],
		lcalc.Span{uint64(start), uint64(fail)})
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
