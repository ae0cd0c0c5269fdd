/*
File    : loxgo/internal/repl/repl.go
Author  : amaji
*/

// Package repl implements an interactive read-eval-print loop for loxgo:
// a persistent Evaluator that survives across lines (so `var`/`fun`
// declarations at one prompt are visible at the next), readline-backed
// line editing and history, and colorized diagnostics. A line that
// parses as a bare expression (no trailing `;`) has its value echoed,
// the way a Lox-style REPL is expected to behave, by retrying the
// expression grammar as a fallback when the statement grammar doesn't
// accept the line outright.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/amaji/loxgo/eval"
	"github.com/amaji/loxgo/lexer"
	"github.com/amaji/loxgo/parser"
	"github.com/amaji/loxgo/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner text and prompt shown at startup.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	Line    string
}

// NewRepl creates a Repl with the given display text.
func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "loxgo "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type loxgo statements and press enter. Ctrl-D to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against reader/writer until EOF or a read
// error. A single Evaluator persists for the whole session so later
// lines can see earlier declarations.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  readerOrStdin(reader),
		Stdout: writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	ev := eval.NewEvaluator()
	ev.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Goodbye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, ev)
	}
}

// readerOrStdin lets Start be used over a plain io.Reader (the TCP
// server case) while still satisfying readline's io.ReadCloser Stdin.
func readerOrStdin(reader io.Reader) io.ReadCloser {
	if rc, ok := reader.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(reader)
}

// evalLine lexes and parses one line, preferring the statement grammar;
// if that fails, it retries as a single expression so a bare `1 + 2`
// (no semicolon) echoes its value the way most Lox REPLs do.
func (r *Repl) evalLine(writer io.Writer, line string, ev *eval.Evaluator) {
	lex := lexer.NewLexer(line)
	tokens := lex.ConsumeTokens()
	if lex.HadError {
		for _, msg := range lex.Errors {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	statements, stmtErr := parser.NewParser(tokens).ParseProgram()
	if stmtErr == nil {
		if err := ev.Interpret(statements); err != nil {
			redColor.Fprintf(writer, "%s\n", err.Error())
		}
		return
	}

	expr, exprErr := parser.NewParser(tokens).ParseExpression()
	if exprErr != nil {
		redColor.Fprintf(writer, "%s\n", stmtErr.Error())
		return
	}

	result, err := ev.Evaluate(expr)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", value.Stringify(result))
}
