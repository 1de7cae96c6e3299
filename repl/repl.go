// Package repl implements the interactive Read-Eval-Print Loop for KS.
// Input lines are parsed and executed against one Interpreter, so
// declarations and state made on one line remain visible on the next.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ksgo/ks/eval"
	"github.com/ksgo/ks/lexer"
	"github.com/ksgo/ks/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text plus the prompt
// readline shows at the start of each line.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New builds a Repl with the given banner, version string, separator line,
// and prompt.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "KS "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Type a statement and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type 'exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop until the user types "exit", sends EOF, or
// readline itself errors. Every accepted line runs against the same
// Interpreter, so top-level let/func declarations persist across lines.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(w, "readline: %v\n", err)
		return
	}
	defer rl.Close()

	in := eval.New(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(w, "\n")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}
		rl.SaveHistory(line)

		r.evalLine(w, in, line)
	}
}

func (r *Repl) evalLine(w io.Writer, in *eval.Interpreter, line string) {
	prog, err := parser.Parse(line)
	if err != nil {
		switch err.(type) {
		case *lexer.LexError:
			redColor.Fprintf(w, "%v\n", err)
		case *parser.ParseError:
			redColor.Fprintf(w, "%v\n", err)
		default:
			redColor.Fprintf(w, "%v\n", err)
		}
		return
	}

	if err := in.Interpret(prog); err != nil {
		redColor.Fprintf(w, "%v\n", err)
	}
}
