package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lcalc/ast"
	"github.com/npillmayer/lcalc/eval"
	"github.com/npillmayer/lcalc/parser"
	"github.com/npillmayer/lcalc/runtime"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// startREPL starts an interactive session. If initf is not empty, the
// statements in it are executed first, within the same session.
func startREPL(initf string, opts []eval.Option) int {
	initDisplay()
	pterm.Info.Println("Welcome to lcalc")
	repl, err := readline.New("lcalc> ")
	if err != nil {
		tracer().Errorf(err.Error())
		return exitNoInput
	}
	defer repl.Close()
	intp := newIntp(displaySink{}, opts...)
	intp.repl = repl
	if initf != "" && !intp.loadInitFile(initf) {
		return exitNoInput
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
	return exitOK
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// displaySink prints results and diagnostics to the terminal.
type displaySink struct{}

func (displaySink) Result(v int64) {
	pterm.Info.Println(strconv.FormatInt(v, 10))
}

func (displaySink) Diagnostic(err error) {
	pterm.Error.Println(err.Error())
}

// Intp is our interpreter object. All statements of a session share one
// runtime environment.
type Intp struct {
	rt     *runtime.Runtime
	ev     *eval.Evaluator
	repl   *readline.Instance
	lineno int
}

func newIntp(sink runtime.Sink, opts ...eval.Option) *Intp {
	rt := runtime.NewRuntimeEnvironment(sink)
	return &Intp{
		rt: rt,
		ev: eval.New(rt.Vars, rt.Out, opts...),
	}
}

func (intp *Intp) loadInitFile(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		fatal(err)
		return false
	}
	defer f.Close()
	prog, err := parser.Parse(f)
	if errs, ok := err.(parser.ErrorList); ok {
		for _, e := range errs {
			pterm.Error.Println(e.Error())
		}
	} else if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	intp.ev.Run(prog)
	tracer().Infof("loaded %d statements from %s", len(prog), filename)
	return true
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a single line of input. Lines starting with ':' are
// session commands:
//
//    :vars        list all variables
//    :ast <stmt>  display the syntax tree of a statement
//    :quit        end the session
//
func (intp *Intp) Eval(line string) (bool, error) {
	if cmd := strings.TrimSpace(line); strings.HasPrefix(cmd, ":") {
		return intp.command(cmd)
	}
	intp.lineno++
	stmt, err := parser.ParseLine(line, intp.lineno)
	if err != nil {
		return false, err
	}
	intp.ev.Exec(stmt)
	return false, nil
}

func (intp *Intp) command(cmd string) (bool, error) {
	args := strings.SplitN(cmd, " ", 2)
	switch args[0] {
	case ":quit", ":q":
		return true, nil
	case ":vars":
		for _, line := range intp.vars() {
			pterm.Println(line)
		}
		return false, nil
	case ":ast":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: :ast <statement>")
		}
		stmt, err := parser.ParseLine(args[1], 0)
		if err != nil {
			return false, err
		}
		root := pterm.NewTreeFromLeveledList(leveledStmt(stmt))
		pterm.DefaultTree.WithRoot(root).Render()
		return false, nil
	}
	return false, fmt.Errorf("unknown command %s", args[0])
}

// vars lists the variables of the session, sorted by name.
func (intp *Intp) vars() []string {
	var lines []string
	intp.rt.Vars.Each(func(name string, tag *runtime.Tag) {
		lines = append(lines, fmt.Sprintf("%s = %d", name, tag.Value))
	})
	return lines
}

// --- Tree display ----------------------------------------------------------

func leveledStmt(stmt ast.Stmt) pterm.LeveledList {
	var ll pterm.LeveledList
	switch s := stmt.(type) {
	case *ast.Assign:
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: s.Name + " ="})
		ll = leveledExpr(s.Value, ll, 1)
	case *ast.PrintExpr:
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "print"})
		ll = leveledExpr(s.X, ll, 1)
	default:
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "blank"})
	}
	return ll
}

func leveledExpr(x ast.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch e := x.(type) {
	case *ast.BinaryOp:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: e.Op.String()})
		ll = leveledExpr(e.Left, ll, level+1)
		ll = leveledExpr(e.Right, ll, level+1)
	case *ast.Paren:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "( )"})
		ll = leveledExpr(e.X, ll, level+1)
	default:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: x.String()})
	}
	return ll
}
