/*
Package lcalc is a line-oriented calculator language.

Each input line is either a variable assignment, an expression whose value
is printed, or blank:

    x = 10
    y = x * 2 + 1
    (x + y) / 3

Package structure is as follows:

■ ast: Package ast holds the abstract syntax tree for programs.

■ scanner: Package scanner tokenizes input lines (backed by lexmachine).

■ parser: Package parser builds ASTs from input lines.

■ runtime: Package runtime provides the variable store and output sinks.

■ eval: Package eval implements the tree-walking evaluator.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lcalc
