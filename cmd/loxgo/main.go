/*
File    : loxgo/cmd/loxgo/main.go
Author  : amaji
*/

// Package main is the loxgo CLI driver: argv dispatch, subcommand
// selection, file I/O and process exit codes around the tokenize/parse/
// evaluate/run pipeline stages, plus repl/server subcommands for
// interactive use.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/amaji/loxgo/ast"
	"github.com/amaji/loxgo/eval"
	"github.com/amaji/loxgo/internal/repl"
	"github.com/amaji/loxgo/lexer"
	"github.com/amaji/loxgo/parser"
	"github.com/amaji/loxgo/value"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

const (
	exitLexOrParseError = 65
	exitRuntimeError    = 70
)

var (
	banner  = "loxgo - a tree-walking Lox-family interpreter"
	version = "v1.0.0"
	line    = "----------------------------------------------------------------"
	prompt  = "loxgo >>> "
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "repl":
		repl.NewRepl(banner, version, line, prompt).Start(os.Stdin, os.Stdout)
	case "server":
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "Usage: loxgo server <port>")
			os.Exit(1)
		}
		startServer(os.Args[2])
	case "tokenize", "parse", "evaluate", "run":
		if len(os.Args) < 3 {
			redColor.Fprintf(os.Stderr, "Usage: loxgo %s <file>\n", os.Args[1])
			os.Exit(1)
		}
		runFileWithRecovery(os.Args[1], os.Args[2])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	cyanColor.Println("Usage:")
	fmt.Println("  loxgo tokenize <file>    print tokens, exit 65 on lex errors")
	fmt.Println("  loxgo parse    <file>    print expression AST, exit 65 on parse errors")
	fmt.Println("  loxgo evaluate <file>    evaluate a single expression, exit 70 on runtime errors")
	fmt.Println("  loxgo run      <file>    execute a program, exit 65/70 on parse/runtime errors")
	fmt.Println("  loxgo repl               start an interactive session")
	fmt.Println("  loxgo server <port>      start the REPL over TCP, one goroutine per connection")
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("loxgo REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repl.NewRepl(banner, version, line, prompt).Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}

// runFileWithRecovery reads fileName and drives it through the
// subcommand's pipeline stage, recovering from any evaluator panic so a
// bug in the tree-walker surfaces as a runtime error rather than a crash
// in front of a user.
func runFileWithRecovery(subcommand, fileName string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(exitRuntimeError)
		}
	}()

	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	switch subcommand {
	case "tokenize":
		runTokenize(string(source))
	case "parse":
		runParse(string(source))
	case "evaluate":
		runEvaluate(string(source))
	case "run":
		runProgram(string(source))
	}
}

func runTokenize(source string) {
	lex := lexer.NewLexer(source)
	tokens := lex.ConsumeTokens()
	for _, tok := range tokens {
		fmt.Printf("%s %s %s\n", tok.Type, tok.Lexeme, tok.Literal)
	}
	if lex.HadError {
		for _, msg := range lex.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(exitLexOrParseError)
	}
}

func runParse(source string) {
	lex := lexer.NewLexer(source)
	tokens := lex.ConsumeTokens()
	if lex.HadError {
		for _, msg := range lex.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(exitLexOrParseError)
	}

	expr, err := parser.NewParser(tokens).ParseExpression()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exitLexOrParseError)
	}

	printer := ast.Printer{}
	fmt.Println(printer.Print(expr))
}

func runEvaluate(source string) {
	lex := lexer.NewLexer(source)
	tokens := lex.ConsumeTokens()
	if lex.HadError {
		for _, msg := range lex.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(exitLexOrParseError)
	}

	expr, err := parser.NewParser(tokens).ParseExpression()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exitLexOrParseError)
	}

	result, err := eval.NewEvaluator().Evaluate(expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exitRuntimeError)
	}
	fmt.Println(value.Stringify(result))
}

func runProgram(source string) {
	lex := lexer.NewLexer(source)
	tokens := lex.ConsumeTokens()
	if lex.HadError {
		for _, msg := range lex.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(exitLexOrParseError)
	}

	statements, err := parser.NewParser(tokens).ParseProgram()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exitLexOrParseError)
	}

	ev := eval.NewEvaluator()
	ev.SetWriter(os.Stdout)
	if err := ev.Interpret(statements); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(exitRuntimeError)
	}
}
