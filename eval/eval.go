package eval

import (
	"fmt"
	"math"

	"github.com/alecthomas/repr"
	"github.com/npillmayer/lcalc/ast"
	"github.com/npillmayer/lcalc/runtime"
	"github.com/npillmayer/schuko/tracing"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Store is the variable store an evaluator reads and assigns variables in.
// Get has to return 0 for variables never set.
type Store interface {
	Get(name string) int64
	Set(name string, value int64)
}

// A store implementing lookuper is able to tell unbound variables from
// variables set to 0. Option StrictVars depends on it.
type lookuper interface {
	Lookup(name string) (int64, bool)
}

var _ Store = (*runtime.SymbolTable)(nil)
var _ lookuper = (*runtime.SymbolTable)(nil)

// Evaluator executes statements against a store, sending output to a sink.
// An evaluator is not safe for concurrent use.
type Evaluator struct {
	store   Store
	sink    runtime.Sink
	strict  bool // report unbound variables
	checked bool // report integer overflow
	line    int  // line of the statement being executed
}

// Option configures an evaluator.
type Option func(*Evaluator)

// StrictVars sets or clears option StrictVars: reading an unbound variable
// emits an UndefinedError diagnostic. The value is 0 either way.
func StrictVars(b bool) Option {
	return func(ev *Evaluator) {
		ev.strict = b
	}
}

// CheckOverflow sets or clears option CheckOverflow: overflowing arithmetic
// emits an ErrOverflow diagnostic and yields 0, instead of wrapping around.
func CheckOverflow(b bool) Option {
	return func(ev *Evaluator) {
		ev.checked = b
	}
}

// New creates an evaluator. A nil store is replaced by a fresh symbol table,
// a nil sink discards all output.
func New(store Store, sink runtime.Sink, opts ...Option) *Evaluator {
	if store == nil {
		store = runtime.NewSymbolTable()
	}
	if sink == nil {
		sink = runtime.Discard
	}
	ev := &Evaluator{store: store, sink: sink}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Execute runs a program against store, sending output to sink.
func Execute(prog ast.Program, store Store, sink runtime.Sink, opts ...Option) {
	New(store, sink, opts...).Run(prog)
}

// ExecuteIn runs a program within a runtime environment.
func ExecuteIn(rt *runtime.Runtime, prog ast.Program, opts ...Option) {
	Execute(prog, rt.Vars, rt.Out, opts...)
}

// Run executes the statements of prog in order.
func (ev *Evaluator) Run(prog ast.Program) {
	tracer().Debugf("running program of %d statements", len(prog))
	for _, stmt := range prog {
		ev.Exec(stmt)
	}
}

// Exec executes a single statement. All of its effects are applied when
// Exec returns.
func (ev *Evaluator) Exec(stmt ast.Stmt) {
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		tracer().Debugf("exec %s", repr.String(stmt))
	}
	ev.line = ast.Line(stmt)
	switch s := stmt.(type) {
	case *ast.Assign:
		v := ev.Value(s.Value)
		ev.store.Set(s.Name, v)
	case *ast.PrintExpr:
		v := ev.Value(s.X)
		ev.sink.Result(v)
	case *ast.Blank:
		// nothing to do
	default:
		panic(fmt.Sprintf("unknown statement type %T", stmt))
	}
}

// Value evaluates an expression.
func (ev *Evaluator) Value(x ast.Expr) int64 {
	switch e := x.(type) {
	case *ast.IntLit:
		return e.Value
	case *ast.VarRef:
		return ev.variable(e.Name)
	case *ast.BinaryOp:
		l := ev.Value(e.Left)
		r := ev.Value(e.Right)
		return ev.arith(e.Op, l, r)
	case *ast.Paren:
		return ev.Value(e.X)
	}
	panic(fmt.Sprintf("unknown expression type %T", x))
}

func (ev *Evaluator) variable(name string) int64 {
	if !ev.strict {
		return ev.store.Get(name)
	}
	if lu, ok := ev.store.(lookuper); ok {
		v, found := lu.Lookup(name)
		if !found {
			ev.diagnose(&UndefinedError{Name: name, Line: ev.line})
		}
		return v
	}
	return ev.store.Get(name)
}

func (ev *Evaluator) diagnose(err error) {
	tracer().Infof("recovered: %v", err)
	ev.sink.Diagnostic(err)
}

// --- Arithmetic ------------------------------------------------------------

func (ev *Evaluator) arith(op ast.Op, l, r int64) int64 {
	if op == ast.Div && r == 0 {
		ev.diagnose(ErrDivisionByZero)
		return 0
	}
	v, overflow := apply(op, l, r)
	if overflow && ev.checked {
		ev.diagnose(fmt.Errorf("%w: %d %s %d", ErrOverflow, l, op, r))
		return 0
	}
	return v
}

// apply computes l op r with wrap-around semantics and reports whether the
// result wrapped. r must not be 0 for Div.
func apply(op ast.Op, l, r int64) (int64, bool) {
	switch op {
	case ast.Add:
		v := l + r
		return v, (l^v)&(r^v) < 0
	case ast.Sub:
		v := l - r
		return v, (l^r)&(l^v) < 0
	case ast.Mul:
		v := l * r
		if l == 0 || r == 0 {
			return 0, false
		}
		if (l == -1 && r == math.MinInt64) || (r == -1 && l == math.MinInt64) {
			return v, true
		}
		return v, v/r != l
	case ast.Div:
		// Go's integer division truncates toward zero
		return l / r, l == math.MinInt64 && r == -1
	}
	panic(fmt.Sprintf("unknown operator %v", op))
}
