/*
Command lcalc runs calculator programs.

    lcalc [flags] [file]

Without a file argument, the program is read from standard input. Results
are written to standard output, diagnostics and syntax errors to standard
error. With flag -i, lcalc starts an interactive session instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lcalc.cmd'
func tracer() tracing.Trace {
	return tracing.Select("lcalc.cmd")
}
