package internal

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// context is the interpreter's side-channel to the outside world: an output
// stream and nothing else.
type context struct {
	out io.Writer
}

func (c *context) output() io.Writer {
	return c.out
}

// RunSourceWithOutput runs source code on a fresh interpreter instance,
// writing program output to out. It returns false when any phase failed;
// diagnostics go to stderr.
func RunSourceWithOutput(source string, out io.Writer) bool {
	state := newInterpreterState(source)

	lex := newLexer(strings.NewReader(source), state)
	lex.scan()
	if !state.Valid() {
		state.PrintErrors()
		return false
	}
	log.WithField("tokens", len(lex.tokens)).Debug("lexing complete")

	newParser(lex, state).parse()
	if !state.Valid() {
		state.PrintErrors()
		return false
	}
	log.WithField("statements", len(state.stmts)).Debug("parsing complete")

	defer state.PrintErrors()
	ok := state.interpret(&context{out: out})
	log.WithField("ok", ok).Debug("evaluation finished")
	return ok
}

// PrintTokens lexes source and dumps the token stream, one token per line.
func PrintTokens(source string, out io.Writer) bool {
	state := newInterpreterState(source)
	lex := newLexer(strings.NewReader(source), state)
	lex.scan()
	if !state.Valid() {
		state.PrintErrors()
		return false
	}
	for _, tk := range lex.tokens {
		fmt.Fprintln(out, tk)
	}
	return true
}

// PrintAST lexes and parses source, then prints the tree as s-expressions.
func PrintAST(source string) bool {
	state := newInterpreterState(source)
	lex := newLexer(strings.NewReader(source), state)
	lex.scan()
	if !state.Valid() {
		state.PrintErrors()
		return false
	}
	newParser(lex, state).parse()
	if !state.Valid() {
		state.PrintErrors()
		return false
	}
	state.PrintTree()
	return true
}
