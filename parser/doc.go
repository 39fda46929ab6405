/*
Package parser builds ASTs for the calculator language.

Input is line oriented, with one statement per line:

    Stmt    ::=  ident '=' Expr  |  Expr  |  ε
    Expr    ::=  Expr SumOp Term  |  Term
    Term    ::=  Term ProdOp Factor  |  Factor
    Factor  ::=  number  |  ident  |  '(' Expr ')'
    SumOp   ::=  '+'  |  '-'
    ProdOp  ::=  '*'  |  '/'

Products are nested below sums, and chains of operators of equal precedence
associate to the left:

    10 - 3 - 2   ⇒   (- (- 10 3) 2)
    3 + 4 * 2    ⇒   (+ 3 (* 4 2))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lcalc.parser'
func tracer() tracing.Trace {
	return tracing.Select("lcalc.parser")
}
