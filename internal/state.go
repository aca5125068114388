package internal

import (
	"errors"
	"fmt"
	"os"
)

type parseError struct {
	err  error
	line int
}

// interpreterState stores the state of an interpreter run
type interpreterState struct {
	errors []parseError
	source string
	stmts  []stmt
}

func newInterpreterState(source string) *interpreterState {
	return &interpreterState{source: source, errors: make([]parseError, 0)}
}

func (s *interpreterState) setError(err error, line int) {
	s.errors = append(s.errors, parseError{
		err:  err,
		line: line,
	})
}

// fatalError records the error and aborts the current phase.
func (s *interpreterState) fatalError(err error, line int) {
	s.setError(err, line)
	panic(err)
}

// Valid returns true if no errors were recorded
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors prints all recorded errors to stderr
func (s *interpreterState) PrintErrors() {
	for _, e := range s.errors {
		if e.line > 0 {
			fmt.Fprintf(os.Stderr, "Error on line %d\n", e.line)
		}
		fmt.Fprintln(os.Stderr, e.err)
	}
}

// runtimeError is the carrier for fatal evaluation errors. It is recovered
// only at the interpret boundary, never by AST nodes.
type runtimeError struct {
	err error
	tk  *token
}

func (e runtimeError) Error() string {
	return e.err.Error()
}

func runtimeErr(err error, tk *token) {
	panic(runtimeError{err: err, tk: tk})
}

// Lexer errors
var errUnclosedString = errors.New("Closing quote was expected")
var errBadNumber = errors.New("Failed to read number")
var errUnreadable = errors.New("Failed to read from input stream")

// Parser errors
var errExpectedIdentifier = errors.New("Expected identifier")
var errExpectedNewline = errors.New("Expected new line")
var errExpectedIndent = errors.New("Expected indented block")
var errExpectedDedent = errors.New("Expected end of indented block")
var errExpectedColon = errors.New("Expected ':'")
var errExpectedParen = errors.New("Expected '(' after method name")
var errUnclosedParen = errors.New("Expect ')' after expression")
var errExpectedDef = errors.New("Expected method definition")
var errUndefinedExpr = errors.New("Undefined expression")
var errUnknownClass = errors.New("Unknown class name")
var errInvalidTarget = errors.New("Invalid assignment target")

// Runtime errors
var errNoSuchVariable = errors.New("No such variable")
var errNoSuchMethod = errors.New("No such method")
var errNotAnInstance = errors.New("Not a class instance")
var errWrongTypes = errors.New("Wrong types")
var errCannotCompare = errors.New("Cannot compare objects")
var errZeroDivision = errors.New("Zero division")
var errReturnOutsideMethod = errors.New("Return outside of a method")
