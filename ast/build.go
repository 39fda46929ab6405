package ast

// Helpers for building trees in code. Use as
//
//    prog := ast.Program{
//        ast.Let("x", ast.Int(5)),
//        ast.Print(ast.Bin(ast.Mul, ast.Var("x"), ast.Int(2))),
//    }
//

// Int creates an integer literal.
func Int(v int64) *IntLit {
	return &IntLit{Value: v}
}

// Var creates a variable reference.
func Var(name string) *VarRef {
	return &VarRef{Name: name}
}

// Bin creates a binary operation.
func Bin(op Op, left, right Expr) *BinaryOp {
	return &BinaryOp{Op: op, Left: left, Right: right}
}

// Group wraps x in parentheses.
func Group(x Expr) *Paren {
	return &Paren{X: x}
}

// Let creates an assignment statement.
func Let(name string, value Expr) *Assign {
	return &Assign{Name: name, Value: value}
}

// Print creates a print statement.
func Print(x Expr) *PrintExpr {
	return &PrintExpr{X: x}
}

// Line returns the source line a statement stems from, or 0 if unknown.
func Line(stmt Stmt) int {
	switch s := stmt.(type) {
	case *Assign:
		return s.Line
	case *PrintExpr:
		return s.Line
	case *Blank:
		return s.Line
	}
	return 0
}
