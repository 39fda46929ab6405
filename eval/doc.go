/*
Package eval implements a tree-walking evaluator for calculator programs.

Statements are executed strictly in program order. Expressions are evaluated
depth first, left operand before right operand. Precedence is a property of
the tree shape as built by the parser; the evaluator itself has no notion of
it.

Runtime errors never stop a program. Dividing by zero sends a diagnostic
to the sink's diagnostic channel and yields 0, then evaluation continues.
Reading a variable which has never been assigned yields 0.

Arithmetic is on int64 and wraps around on overflow, unless option
CheckOverflow is set. With it, an overflowing operation is treated like a
division by zero: a diagnostic is emitted and the operation yields 0.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lcalc.eval'.
func tracer() tracing.Trace {
	return tracing.Select("lcalc.eval")
}
