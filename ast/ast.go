package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Program is a sequence of statements, in execution order.
type Program []Stmt

func (p Program) String() string {
	var b strings.Builder
	for _, stmt := range p {
		b.WriteString(stmt.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// --- Statements ------------------------------------------------------------

// Stmt is one line of a program.
type Stmt interface {
	fmt.Stringer
	isStmt()
}

// Assign binds the value of an expression to a variable.
type Assign struct {
	Name  string
	Value Expr
	Line  int
}

// PrintExpr prints the value of an expression.
type PrintExpr struct {
	X    Expr
	Line int
}

// Blank is an empty line.
type Blank struct {
	Line int
}

func (*Assign) isStmt()    {}
func (*PrintExpr) isStmt() {}
func (*Blank) isStmt()     {}

func (s *Assign) String() string {
	return s.Name + " = " + s.Value.String()
}

func (s *PrintExpr) String() string {
	return s.X.String()
}

func (s *Blank) String() string {
	return ""
}

// --- Expressions -----------------------------------------------------------

// Expr is an integer valued expression.
type Expr interface {
	fmt.Stringer
	isExpr()
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// VarRef references a variable by name.
type VarRef struct {
	Name string
}

// BinaryOp applies an arithmetic operator to two operands.
type BinaryOp struct {
	Op          Op
	Left, Right Expr
}

// Paren is a parenthesized expression. It has no effect on the value.
type Paren struct {
	X Expr
}

func (*IntLit) isExpr()   {}
func (*VarRef) isExpr()   {}
func (*BinaryOp) isExpr() {}
func (*Paren) isExpr()    {}

func (e *IntLit) String() string {
	return strconv.FormatInt(e.Value, 10)
}

func (e *VarRef) String() string {
	return e.Name
}

// String renders the operation with parentheses where operator precedence
// or left associativity would otherwise change the meaning of the output.
func (e *BinaryOp) String() string {
	p := e.Op.Precedence()
	return operand(e.Left, p, false) + " " + e.Op.String() + " " + operand(e.Right, p, true)
}

func operand(x Expr, prec int, right bool) string {
	b, ok := x.(*BinaryOp)
	if !ok {
		return x.String()
	}
	if q := b.Op.Precedence(); q < prec || right && q == prec {
		return "(" + b.String() + ")"
	}
	return b.String()
}

func (e *Paren) String() string {
	return "(" + e.X.String() + ")"
}

// --- Operators -------------------------------------------------------------

// Op is an arithmetic operator.
type Op int8

// The four arithmetic operators of the language.
const (
	Add Op = iota + 1
	Sub
	Mul
	Div
)

var opSymbols = [...]string{"?", "+", "-", "*", "/"}

func (op Op) String() string {
	if op < Add || op > Div {
		return fmt.Sprintf("Op(%d)", int8(op))
	}
	return opSymbols[op]
}

// Precedence returns the binding strength of op. Multiplicative operators
// bind tighter than additive ones.
func (op Op) Precedence() int {
	switch op {
	case Mul, Div:
		return 2
	case Add, Sub:
		return 1
	}
	return 0
}
