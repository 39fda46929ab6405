package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/lcalc/ast"
	"github.com/npillmayer/lcalc/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func run(prog ast.Program, opts ...Option) *runtime.RecordingSink {
	sink := &runtime.RecordingSink{}
	Execute(prog, runtime.NewSymbolTable(), sink, opts...)
	return sink
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var valueTests = []struct {
	expr ast.Expr
	want int64
}{
	{ast.Int(42), 42},
	{ast.Var("unbound"), 0},
	{ast.Bin(ast.Add, ast.Int(3), ast.Bin(ast.Mul, ast.Int(4), ast.Int(2))), 11},
	{ast.Bin(ast.Mul, ast.Group(ast.Bin(ast.Add, ast.Int(3), ast.Int(4))), ast.Int(2)), 14},
	{ast.Bin(ast.Sub, ast.Bin(ast.Sub, ast.Int(10), ast.Int(3)), ast.Int(2)), 5},
	{ast.Bin(ast.Div, ast.Int(-7), ast.Int(2)), -3},
	{ast.Bin(ast.Div, ast.Int(7), ast.Int(-2)), -3},
	{ast.Bin(ast.Div, ast.Int(7), ast.Int(2)), 3},
	{ast.Bin(ast.Div, ast.Int(-7), ast.Int(-2)), 3},
	{ast.Group(ast.Group(ast.Int(-1))), -1},
	{ast.Bin(ast.Add, ast.Int(math.MaxInt64), ast.Int(1)), math.MinInt64},
}

func TestValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	for _, tt := range valueTests {
		ev := New(nil, nil)
		if got := ev.Value(tt.expr); got != tt.want {
			t.Errorf("Value(%s) = %d, want %d", tt.expr, got, tt.want)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	for _, a := range []int64{0, 1, -5, math.MaxInt64, math.MinInt64} {
		sink := &runtime.RecordingSink{}
		ev := New(nil, sink)
		if v := ev.Value(ast.Bin(ast.Div, ast.Int(a), ast.Int(0))); v != 0 {
			t.Errorf("%d / 0 = %d, want 0", a, v)
		}
		if !equal(sink.Diagnostics, []string{"division by zero"}) {
			t.Errorf("%d / 0: expected exactly one diagnostic, got %v", a, sink.Diagnostics)
		}
	}
}

func TestAssignThenReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	sink := run(ast.Program{
		ast.Let("x", ast.Int(5)),
		ast.Print(ast.Bin(ast.Mul, ast.Var("x"), ast.Int(2))),
	})
	if !equal(sink.Results, []string{"10"}) {
		t.Errorf("expected [10], got %v", sink.Results)
	}
}

func TestReassignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	sink := run(ast.Program{
		ast.Let("x", ast.Int(1)),
		ast.Let("x", ast.Int(2)),
		ast.Print(ast.Var("x")),
	})
	if !equal(sink.Results, []string{"2"}) {
		t.Errorf("expected [2], got %v", sink.Results)
	}
}

func TestBlankHasNoEffect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	sink := run(ast.Program{&ast.Blank{}})
	if len(sink.Results) != 0 || len(sink.Diagnostics) != 0 {
		t.Errorf("blank line produced output: %v %v", sink.Results, sink.Diagnostics)
	}
	sink = run(ast.Program{
		ast.Let("x", ast.Int(3)),
		&ast.Blank{},
		ast.Print(ast.Var("x")),
	})
	if !equal(sink.Results, []string{"3"}) {
		t.Errorf("expected [3], got %v", sink.Results)
	}
}

func TestScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	sink := run(ast.Program{
		ast.Let("x", ast.Int(10)),
		ast.Let("y", ast.Int(0)),
		ast.Print(ast.Bin(ast.Div, ast.Var("x"), ast.Var("y"))),
		ast.Print(ast.Bin(ast.Add, ast.Var("x"), ast.Int(1))),
	})
	if !equal(sink.Results, []string{"0", "11"}) {
		t.Errorf("expected results [0 11], got %v", sink.Results)
	}
	if !equal(sink.Diagnostics, []string{"division by zero"}) {
		t.Errorf("expected one division by zero, got %v", sink.Diagnostics)
	}
}

func TestAssignDivisionByZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	sink := run(ast.Program{
		ast.Let("z", ast.Bin(ast.Div, ast.Int(1), ast.Int(0))),
		ast.Print(ast.Var("z")),
	})
	if !equal(sink.Results, []string{"0"}) || len(sink.Diagnostics) != 1 {
		t.Errorf("unexpected output %v / %v", sink.Results, sink.Diagnostics)
	}
}

// recorder logs the order of evaluation effects across both channels.
type recorder struct {
	log []string
}

func (r *recorder) Result(v int64)       { r.log = append(r.log, "result") }
func (r *recorder) Diagnostic(err error) { r.log = append(r.log, "diag:"+err.Error()) }

func TestLeftBeforeRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	rec := &recorder{}
	ev := New(nil, rec, StrictVars(true))
	// (a / 0) + b: the division diagnostic must precede the undefined b
	ev.Exec(ast.Print(ast.Bin(ast.Add,
		ast.Bin(ast.Div, ast.Int(1), ast.Int(0)),
		ast.Var("b"))))
	want := []string{"diag:division by zero", "diag:undefined variable 'b'", "result"}
	if !equal(rec.log, want) {
		t.Errorf("expected effects %v, got %v", want, rec.log)
	}
}

func TestStrictVars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	sink := run(ast.Program{
		&ast.PrintExpr{X: ast.Var("q"), Line: 3},
	}, StrictVars(true))
	if !equal(sink.Results, []string{"0"}) {
		t.Errorf("expected [0], got %v", sink.Results)
	}
	if !equal(sink.Diagnostics, []string{"line 3: undefined variable 'q'"}) {
		t.Errorf("unexpected diagnostics %v", sink.Diagnostics)
	}
	sink = run(ast.Program{ast.Let("q", ast.Int(0)), ast.Print(ast.Var("q"))}, StrictVars(true))
	if len(sink.Diagnostics) != 0 {
		t.Errorf("variable set to 0 reported as undefined: %v", sink.Diagnostics)
	}
}

// mapStore has no Lookup method
type mapStore map[string]int64

func (m mapStore) Get(name string) int64        { return m[name] }
func (m mapStore) Set(name string, value int64) { m[name] = value }

func TestCustomStore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	store := mapStore{}
	sink := &runtime.RecordingSink{}
	Execute(ast.Program{
		ast.Let("a", ast.Int(4)),
		ast.Print(ast.Bin(ast.Mul, ast.Var("a"), ast.Var("b"))),
	}, store, sink, StrictVars(true))
	if store["a"] != 4 {
		t.Errorf("expected a = 4 in store, is %d", store["a"])
	}
	if !equal(sink.Results, []string{"0"}) || len(sink.Diagnostics) != 0 {
		t.Errorf("unexpected output %v / %v", sink.Results, sink.Diagnostics)
	}
}

var overflowTests = []struct {
	op   ast.Op
	l, r int64
	wrap int64
}{
	{ast.Add, math.MaxInt64, 1, math.MinInt64},
	{ast.Sub, math.MinInt64, 1, math.MaxInt64},
	{ast.Mul, math.MaxInt64, 2, -2},
	{ast.Mul, -1, math.MinInt64, math.MinInt64},
	{ast.Div, math.MinInt64, -1, math.MinInt64},
}

func TestOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	for _, tt := range overflowTests {
		x := ast.Bin(tt.op, ast.Int(tt.l), ast.Int(tt.r))
		sink := &runtime.RecordingSink{}
		if v := New(nil, sink).Value(x); v != tt.wrap || len(sink.Diagnostics) != 0 {
			t.Errorf("%s = %d (%v), want %d wrapped", x, v, sink.Diagnostics, tt.wrap)
		}
		sink = &runtime.RecordingSink{}
		if v := New(nil, sink, CheckOverflow(true)).Value(x); v != 0 || len(sink.Diagnostics) != 1 {
			t.Errorf("checked %s = %d (%v), want 0 and a diagnostic", x, v, sink.Diagnostics)
		}
	}
}

func TestNoFalseOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	sink := &runtime.RecordingSink{}
	ev := New(nil, sink, CheckOverflow(true))
	for _, x := range []ast.Expr{
		ast.Bin(ast.Mul, ast.Int(math.MinInt64), ast.Int(1)),
		ast.Bin(ast.Mul, ast.Int(0), ast.Int(math.MinInt64)),
		ast.Bin(ast.Add, ast.Int(math.MaxInt64), ast.Int(math.MinInt64)),
		ast.Bin(ast.Sub, ast.Int(-1), ast.Int(math.MaxInt64)),
		ast.Bin(ast.Mul, ast.Int(-3037000499), ast.Int(3037000499)),
	} {
		ev.Value(x)
	}
	if len(sink.Diagnostics) != 0 {
		t.Errorf("unexpected overflow diagnostics: %v", sink.Diagnostics)
	}
}

func TestOverflowErrorIs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	var got error
	ev := New(nil, errorCatcher(func(err error) { got = err }), CheckOverflow(true))
	ev.Value(ast.Bin(ast.Add, ast.Int(math.MaxInt64), ast.Int(1)))
	if !errors.Is(got, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", got)
	}
}

type errorCatcher func(error)

func (c errorCatcher) Result(int64)         {}
func (c errorCatcher) Diagnostic(err error) { c(err) }

func TestExecuteIn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lcalc.eval")
	defer teardown()
	//
	sink := &runtime.RecordingSink{}
	rt := runtime.NewRuntimeEnvironment(sink)
	ExecuteIn(rt, ast.Program{ast.Let("n", ast.Int(9)), ast.Print(ast.Var("n"))})
	if rt.Vars.Get("n") != 9 || !equal(sink.Results, []string{"9"}) {
		t.Errorf("unexpected state after run: n=%d, out=%v", rt.Vars.Get("n"), sink.Results)
	}
}
