package runtime

import (
	"io"
	"strconv"
)

// Sink receives the observable output of a program run. Results and
// diagnostics are independent channels; within a channel, calls arrive in
// evaluation order.
type Sink interface {
	Result(value int64)   // a printed value
	Diagnostic(err error) // a recovered runtime error
}

// Discard is a sink which drops all output.
var Discard Sink = discard{}

type discard struct{}

func (discard) Result(int64)     {}
func (discard) Diagnostic(error) {}

// --- Writer sink -----------------------------------------------------------

// WriterSink writes results and diagnostics to two writers, one line each.
// Write errors are remembered; the first one is available from Err.
type WriterSink struct {
	results     io.Writer
	diagnostics io.Writer
	err         error
}

var _ Sink = (*WriterSink)(nil)

// NewWriterSink creates a sink writing results to res and diagnostics to diag.
func NewWriterSink(res, diag io.Writer) *WriterSink {
	return &WriterSink{results: res, diagnostics: diag}
}

// Result is part of interface Sink.
func (ws *WriterSink) Result(value int64) {
	ws.write(ws.results, strconv.FormatInt(value, 10))
}

// Diagnostic is part of interface Sink.
func (ws *WriterSink) Diagnostic(err error) {
	ws.write(ws.diagnostics, err.Error())
}

// Err returns the first error encountered while writing, if any.
func (ws *WriterSink) Err() error {
	return ws.err
}

func (ws *WriterSink) write(w io.Writer, line string) {
	if ws.err != nil {
		return
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		tracer().Errorf("cannot write output: %v", err)
		ws.err = err
	}
}

// --- Recording sink --------------------------------------------------------

// RecordingSink collects output in memory.
type RecordingSink struct {
	Results     []string
	Diagnostics []string
}

var _ Sink = (*RecordingSink)(nil)

// Result is part of interface Sink.
func (rs *RecordingSink) Result(value int64) {
	rs.Results = append(rs.Results, strconv.FormatInt(value, 10))
}

// Diagnostic is part of interface Sink.
func (rs *RecordingSink) Diagnostic(err error) {
	rs.Diagnostics = append(rs.Diagnostics, err.Error())
}
