package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/lcalc/eval"
	"github.com/npillmayer/lcalc/parser"
	"github.com/npillmayer/lcalc/runtime"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

// Exit codes
const (
	exitOK          = 0
	exitSyntaxError = 1
	exitNoInput     = 2
)

// Tracing keys of the packages of this module
var traceKeys = []string{
	"lcalc.cmd",
	"lcalc.eval",
	"lcalc.parser",
	"lcalc.runtime",
	"lcalc.scanner",
}

// Configuration keys and the environment variables they are read from
var configEnv = map[string]string{
	"lcalc.strict":         "LCALC_STRICT",
	"lcalc.check-overflow": "LCALC_CHECK_OVERFLOW",
}

func main() {
	app := &cli.App{
		Name:      "lcalc",
		Usage:     "line oriented integer calculator",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "trace",
				Value: "Error",
				Usage: "Trace level [Debug|Info|Error]",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "report variables read before being assigned",
			},
			&cli.BoolFlag{
				Name:  "check-overflow",
				Usage: "report integer overflow instead of wrapping around",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "start an interactive session (file argument is loaded first)",
			},
		},
		Action: func(c *cli.Context) error {
			configure(os.LookupEnv)
			setupTracing(c.String("trace"))
			opts := evalOptions(c)
			if c.Bool("interactive") {
				return exitWith(startREPL(c.Args().First(), opts))
			}
			return exitWith(runFile(c.Args().First(), opts))
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitNoInput)
	}
}

func exitWith(code int) error {
	if code == exitOK {
		return nil
	}
	return cli.Exit("", code)
}

// configure initializes the global configuration. Values for the keys of
// configEnv are taken from the environment, e.g. LCALC_STRICT=true.
func configure(lookupEnv func(string) (string, bool)) {
	conf := testconfig.Conf{}
	for key, env := range configEnv {
		if v, ok := lookupEnv(env); ok {
			conf[key] = v
		}
	}
	gconf.Initialize(conf)
}

// setupTracing installs Go-logger based tracers for all packages of this
// module and sets them to level.
func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Infof("Trace level is %s", level)
}

// evalOptions merges configuration keys 'lcalc.strict' and
// 'lcalc.check-overflow' with command line flags. Flags take precedence.
func evalOptions(c *cli.Context) []eval.Option {
	strict := gconf.GetBool("lcalc.strict")
	if c.IsSet("strict") {
		strict = c.Bool("strict")
	}
	checked := gconf.GetBool("lcalc.check-overflow")
	if c.IsSet("check-overflow") {
		checked = c.Bool("check-overflow")
	}
	tracer().Debugf("strict=%v, check-overflow=%v", strict, checked)
	return []eval.Option{eval.StrictVars(strict), eval.CheckOverflow(checked)}
}

// runFile runs the program in file filename, or from stdin if filename is
// empty. It returns the exit code for the process.
func runFile(filename string, opts []eval.Option) int {
	in := os.Stdin
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			fatal(err)
			return exitNoInput
		}
		defer f.Close()
		in = f
	}
	return run(in, os.Stdout, os.Stderr, opts...)
}

// run parses a program from in and executes it. Lines with syntax errors are
// reported to errw and skipped, all other lines are executed.
func run(in io.Reader, out, errw io.Writer, opts ...eval.Option) int {
	prog, err := parser.Parse(in)
	code := exitOK
	if err != nil {
		errs, ok := err.(parser.ErrorList)
		if !ok {
			fmt.Fprintf(errw, "lcalc: %v\n", err)
			return exitNoInput
		}
		for _, e := range errs {
			fmt.Fprintf(errw, "syntax error: %v\n", e)
		}
		code = exitSyntaxError
	}
	sink := runtime.NewWriterSink(out, errw)
	rt := runtime.NewRuntimeEnvironment(sink)
	eval.ExecuteIn(rt, prog, opts...)
	if sink.Err() != nil {
		tracer().Errorf("output incomplete: %v", sink.Err())
	}
	return code
}

func fatal(err error) {
	err = tracerr.Wrap(err)
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		tracerr.PrintSourceColor(err)
		return
	}
	tracer().Errorf("%v", err)
}
