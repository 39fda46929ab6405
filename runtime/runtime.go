/*
Package runtime implements the runtime environment of the calculator,
consisting of a variable store and an output sink.

Variable Store

Variables live in a symbol table, mapping names to tags. A tag holds the
most recently assigned integer value of a variable. Reading a variable which
has never been assigned yields 0; this is not an error.

Output Sinks

Evaluation produces two independent streams of output: results (one decimal
integer per line) and diagnostics (one message per recovered error). Sinks
receive both.

Lifetime

A runtime environment lives for exactly one program run. Nothing is shared
between environments, so independent programs may run side by side.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lcalc.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("lcalc.runtime")
}

// Runtime is a type implementing a runtime environment for one program run.
type Runtime struct {
	Vars *SymbolTable // variable store
	Out  Sink         // receives results and diagnostics
}

// NewRuntimeEnvironment constructs a new runtime environment with an empty
// variable store, writing to sink. If sink is nil, output is discarded.
//
func NewRuntimeEnvironment(sink Sink) *Runtime {
	if sink == nil {
		sink = Discard
	}
	rt := &Runtime{
		Vars: NewSymbolTable(),
		Out:  sink,
	}
	tracer().Debugf("new runtime environment")
	return rt
}
