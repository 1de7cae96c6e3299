// Command ks is the KS language's command-line entry point: run a file,
// dump its tokens or AST, or start an interactive REPL.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ksgo/ks/eval"
	"github.com/ksgo/ks/lexer"
	"github.com/ksgo/ks/parser"
	"github.com/ksgo/ks/repl"
)

const version = "v0.1.0"

const banner = `
 oooo    oooo  .oooooo..o
 888   .8P'  d8P'    Y8
  888  d8'     Y88bo.
  88888[        Y8888o.
  888 88b.          Y88b
  888  88b.    oo     .d8P
 o888o  o888o  8""88888P'
`

const line = "----------------------------------------------------------------"

const prompt = "ks> "

var redColor = color.New(color.FgRed)

func main() {
	var showTokens bool
	var showAST bool

	root := &cobra.Command{
		Use:           "ks [file]",
		Short:         "KS language interpreter",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				repl.New(banner, version, line, prompt).Start(os.Stdout)
				return nil
			}

			source, err := readSourceFile(args[0])
			if err != nil {
				redColor.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}

			var code int
			switch {
			case showTokens:
				code = tokensSource(source, os.Stdout, os.Stderr)
			case showAST:
				code = astSource(source, os.Stdout, os.Stderr)
			default:
				code = runSource(source, os.Stdout, os.Stderr)
			}
			os.Exit(code)
			return nil
		},
	}

	root.Flags().BoolVar(&showTokens, "tokens", false, "print the token stream instead of running the file")
	root.Flags().BoolVar(&showAST, "ast", false, "print the parsed AST instead of running the file")

	if err := root.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// readSourceFile reads a .ks source file, rejecting any other extension —
// matching original_source/ks.py's compile_file, which exits 1 before even
// opening a file that doesn't end in ".ks".
func readSourceFile(path string) (string, error) {
	if !strings.HasSuffix(path, ".ks") {
		return "", fmt.Errorf("%q is not a .ks file", path)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read file %q: %w", path, err)
	}
	return string(source), nil
}

// runSource parses and interprets source, writing gorun output to stdout
// and any error to stderr. The return value is the exit code the CLI
// surface assigns each outcome: 0 on success, 65 for a lex/parse error, 70
// for a runtime error.
func runSource(source string, stdout, stderr io.Writer) int {
	prog, err := parser.Parse(source)
	if err != nil {
		redColor.Fprintf(stderr, "%v\n", err)
		return 65
	}

	in := eval.New(stdout)
	if err := in.Interpret(prog); err != nil {
		redColor.Fprintf(stderr, "%v\n", err)
		return 70
	}
	return 0
}

// tokensSource prints the non-EOF token stream (kind, lexeme, line,
// column) to stdout, one token per line.
func tokensSource(source string, stdout, stderr io.Writer) int {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		redColor.Fprintf(stderr, "%v\n", err)
		return 65
	}
	for _, t := range tokens {
		if t.Kind == lexer.EOF {
			continue
		}
		fmt.Fprintf(stdout, "%-12s %-20q line:%d col:%d\n", t.Kind, t.Lexeme, t.Line, t.Column)
	}
	return 0
}

// astSource prints the parsed ast.Program as an indented tree to stdout.
func astSource(source string, stdout, stderr io.Writer) int {
	prog, err := parser.Parse(source)
	if err != nil {
		redColor.Fprintf(stderr, "%v\n", err)
		return 65
	}
	for _, stmt := range prog.Statements {
		printNode(stdout, stmt, 0)
	}
	return 0
}
