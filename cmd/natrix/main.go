// Command natrix runs a natrix source file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tethal/natrix/pkg/arena"
	"github.com/tethal/natrix/pkg/ast"
	"github.com/tethal/natrix/pkg/debug"
	"github.com/tethal/natrix/pkg/diag"
	"github.com/tethal/natrix/pkg/eval"
	"github.com/tethal/natrix/pkg/gc"
	"github.com/tethal/natrix/pkg/lexer"
	"github.com/tethal/natrix/pkg/parse"
	"github.com/tethal/natrix/pkg/rterror"
	"github.com/tethal/natrix/pkg/source"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newFlagSet(stderr io.Writer, dumpTokens, dumpAST, noColor *bool) *flag.FlagSet {
	fs := flag.NewFlagSet("natrix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(dumpTokens, "dump-tokens", false, "dump the token stream as YAML before evaluating")
	fs.BoolVar(dumpAST, "dump-ast", false, "dump the parsed AST as YAML before evaluating")
	fs.BoolVar(noColor, "no-color", false, "disable ANSI coloring of diagnostics even on a terminal")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: natrix [-dump-tokens] [-dump-ast] [-no-color] <filename> [arg]")
		fs.PrintDefaults()
	}
	return fs
}

// run implements the CLI contract and returns the process exit code. stdout
// and stderr are threaded through explicitly so tests can drive it without
// touching the real file descriptors. Parse diagnostics are the exception:
// diag.ShowError writes them to the process's standard error.
func run(args []string, stdout, stderr io.Writer) int {
	var dumpTokens, dumpAST, noColor bool
	fs := newFlagSet(stderr, &dumpTokens, &dumpAST, &noColor)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	diag.NoColor = noColor

	positional := fs.Args()
	if len(positional) < 1 || len(positional) > 2 {
		fs.Usage()
		return 1
	}

	arg := int64(0)
	if len(positional) == 2 {
		n, err := strconv.ParseInt(positional[1], 10, 64)
		if err != nil || n < 0 {
			fmt.Fprintf(stderr, "natrix: invalid arg %q: must be a non-negative integer\n", positional[1])
			return 1
		}
		arg = n
	}

	src := source.LoadFile(positional[0])
	if src.Empty() {
		fmt.Fprintf(stderr, "natrix: cannot read %q\n", positional[0])
		return 1
	}

	if dumpTokens {
		if err := dumpTokenStream(stdout, src); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	a := arena.New()
	stmts, err := parse.Parse(a, src)
	if err != nil {
		diag.ShowError(err)
		return 1
	}

	if dumpAST {
		if err := debug.DumpAST(stdout, stmts, src.Code); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	return runProgram(stmts, arg, stdout, stderr)
}

// runProgram evaluates stmts, converting the single rterror.Fault a run can
// panic with into the one-line fatal message spec.md's panic path requires.
// This is the only recover in the module.
func runProgram(stmts []ast.Stmt, arg int64, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			if f, ok := r.(rterror.Fault); ok {
				fmt.Fprintln(stderr, f.Error())
				code = 1
				return
			}
			panic(r)
		}
	}()
	eval.Run(gc.New(), stmts, arg, stdout)
	return 0
}

func dumpTokenStream(stdout io.Writer, src *source.Source) error {
	lex := lexer.New(src.Code)
	var toks []lexer.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Kind == lexer.EOF || tok.Kind == lexer.ERROR {
			break
		}
	}
	return debug.DumpTokens(stdout, toks, src.Code)
}
