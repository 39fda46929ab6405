package parser

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/lcalc"
	"github.com/npillmayer/lcalc/ast"
	"github.com/npillmayer/lcalc/scanner"
)

// --- Errors ----------------------------------------------------------------

// SyntaxError is an error of a single input line.
type SyntaxError struct {
	Line   int // 1-based
	Column int // 1-based
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Msg)
}

// ErrorList collects the syntax errors of a program, in line order.
type ErrorList []*SyntaxError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
}

// --- Programs --------------------------------------------------------------

// Parse reads a program from r, one statement per line.
//
// Lines with syntax errors are left out of the resulting program; all other
// lines are kept. If there were syntax errors, Parse returns them as an
// ErrorList. Any other error is returned if reading the input failed.
//
func Parse(r io.Reader) (ast.Program, error) {
	var prog ast.Program
	var errs ErrorList
	input := bufio.NewScanner(r)
	input.Buffer(make([]byte, 0, 64*1024), math.MaxInt32) // no limit on line length
	lineno := 0
	for input.Scan() {
		lineno++
		stmt, err := ParseLine(input.Text(), lineno)
		if err != nil {
			serr, ok := err.(*SyntaxError)
			if !ok {
				return prog, err
			}
			tracer().Infof("skipping line %d: %s", lineno, serr.Msg)
			errs = append(errs, serr)
			continue
		}
		prog = append(prog, stmt)
	}
	if err := input.Err(); err != nil {
		return prog, fmt.Errorf("cannot read program input: %w", err)
	}
	tracer().Debugf("parsed %d lines into %d statements", lineno, len(prog))
	if len(errs) > 0 {
		return prog, errs
	}
	return prog, nil
}

// ParseString is a shortcut for Parse(strings.NewReader(input)).
func ParseString(input string) (ast.Program, error) {
	return Parse(strings.NewReader(input))
}

// --- Statements ------------------------------------------------------------

// ParseLine parses a single line of input. lineno is recorded in the
// statement and in syntax errors. Errors are of type *SyntaxError, unless
// the lexer could not be created.
//
func ParseLine(line string, lineno int) (stmt ast.Stmt, err error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lex.Scanner(line)
	if err != nil {
		return nil, err
	}
	p := newParser(scan, lineno)
	defer func() {
		if r := recover(); r != nil {
			serr, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			stmt, err = nil, serr
		}
	}()
	stmt = p.statement()
	tracer().Debugf("line %d: %s", lineno, stmt)
	return stmt, nil
}

// parser is a recursive descent parser for one line. The tokens of the
// line are read up front.
type parser struct {
	toks   []lcalc.Token
	pos    int
	lineno int
}

func newParser(scan scanner.Tokenizer, lineno int) *parser {
	p := &parser{lineno: lineno}
	for {
		tok := scan.NextToken()
		p.toks = append(p.toks, tok)
		if tok.TokType() == scanner.EOF {
			break
		}
	}
	return p
}

func (p *parser) peek(k int) lcalc.Token {
	if p.pos+k < len(p.toks) {
		return p.toks[p.pos+k]
	}
	return p.toks[len(p.toks)-1] // EOF
}

func (p *parser) is(k int, typ int) bool {
	return int(p.peek(k).TokType()) == typ
}

func (p *parser) next() lcalc.Token {
	tok := p.peek(0)
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) fail(tok lcalc.Token, format string, args ...interface{}) {
	panic(&SyntaxError{
		Line:   p.lineno,
		Column: int(tok.Span().From()) + 1,
		Msg:    fmt.Sprintf(format, args...),
	})
}

func (p *parser) unexpected(tok lcalc.Token, expected string) {
	what := scanner.TokenName(tok.TokType())
	if tok.TokType() == scanner.Error {
		what = fmt.Sprintf("illegal input %q", tok.Lexeme())
	}
	p.fail(tok, "unexpected %s, expected %s", what, expected)
}

func (p *parser) expect(typ int, expected string) lcalc.Token {
	if !p.is(0, typ) {
		p.unexpected(p.peek(0), expected)
	}
	return p.next()
}

// Stmt ::= ident '=' Expr  |  Expr  |  ε
func (p *parser) statement() ast.Stmt {
	_, assign := Token("=")
	var stmt ast.Stmt
	switch {
	case p.is(0, scanner.EOF):
		stmt = &ast.Blank{Line: p.lineno}
	case p.is(0, scanner.Ident) && p.is(1, assign):
		name := p.next().Lexeme()
		p.next()
		stmt = &ast.Assign{Name: name, Value: p.expr(), Line: p.lineno}
	default:
		stmt = &ast.PrintExpr{X: p.expr(), Line: p.lineno}
	}
	p.expect(scanner.EOF, "end of line")
	return stmt
}

// Expr ::= Expr SumOp Term  |  Term
func (p *parser) expr() ast.Expr {
	x := p.term()
	for {
		var op ast.Op
		switch {
		case p.is(0, '+'):
			op = ast.Add
		case p.is(0, '-'):
			op = ast.Sub
		default:
			return x
		}
		p.next()
		x = ast.Bin(op, x, p.term())
	}
}

// Term ::= Term ProdOp Factor  |  Factor
func (p *parser) term() ast.Expr {
	x := p.factor()
	for {
		var op ast.Op
		switch {
		case p.is(0, '*'):
			op = ast.Mul
		case p.is(0, '/'):
			op = ast.Div
		default:
			return x
		}
		p.next()
		x = ast.Bin(op, x, p.factor())
	}
}

// Factor ::= number  |  ident  |  '(' Expr ')'
func (p *parser) factor() ast.Expr {
	tok := p.peek(0)
	switch int(tok.TokType()) {
	case scanner.Int:
		p.next()
		n, err := strconv.ParseInt(tok.Lexeme(), 10, 64)
		if err != nil {
			p.fail(tok, "integer literal out of range: %s", tok.Lexeme())
		}
		return ast.Int(n)
	case scanner.Ident:
		p.next()
		return ast.Var(tok.Lexeme())
	case '(':
		p.next()
		x := p.expr()
		p.expect(')', "')'")
		return ast.Group(x)
	}
	p.unexpected(tok, "number, identifier or '('")
	return nil // not reached
}
