package internal

import "fmt"

// tokenType holds the kind of a token
type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Structural tokens emitted by the indentation machinery.
	tkNewline
	tkIndent
	tkDedent

	// Valued tokens.
	// number, identifier, string, single punctuation/operator char
	tkNumber
	tkIdentifier
	tkString
	tkChar

	// Two-character comparison operators.
	// ==, !=, <=, >=
	tkEq
	tkNotEq
	tkLessOrEq
	tkGreaterOrEq

	// Keywords.
	// class, return, if, else, def, print, and, or, not, None, True, False
	tkClass
	tkReturn
	tkIf
	tkElse
	tkDef
	tkPrint
	tkAnd
	tkOr
	tkNot
	tkNone
	tkTrue
	tkFalse
)

type token struct {
	typ     tokenType
	lexeme  string
	literal interface{}
	line    int
}

// equals compares tokens by kind, and by payload for valued kinds.
func (t token) equals(other token) bool {
	if t.typ != other.typ {
		return false
	}
	switch t.typ {
	case tkNumber:
		return t.literal.(int64) == other.literal.(int64)
	case tkString:
		return t.literal.(string) == other.literal.(string)
	case tkChar:
		return t.literal.(byte) == other.literal.(byte)
	case tkIdentifier:
		return t.lexeme == other.lexeme
	}
	return true
}

var tokenNames = map[tokenType]string{
	tkEOF:         "Eof",
	tkNewline:     "Newline",
	tkIndent:      "Indent",
	tkDedent:      "Dedent",
	tkEq:          "Eq",
	tkNotEq:       "NotEq",
	tkLessOrEq:    "LessOrEq",
	tkGreaterOrEq: "GreaterOrEq",
	tkClass:       "Class",
	tkReturn:      "Return",
	tkIf:          "If",
	tkElse:        "Else",
	tkDef:         "Def",
	tkPrint:       "Print",
	tkAnd:         "And",
	tkOr:          "Or",
	tkNot:         "Not",
	tkNone:        "None",
	tkTrue:        "True",
	tkFalse:       "False",
}

func (t token) String() string {
	switch t.typ {
	case tkNumber:
		return fmt.Sprintf("Number{%d}", t.literal.(int64))
	case tkIdentifier:
		return fmt.Sprintf("Id{%s}", t.lexeme)
	case tkString:
		return fmt.Sprintf("String{%s}", t.literal.(string))
	case tkChar:
		return fmt.Sprintf("Char{%c}", t.literal.(byte))
	}
	if name, ok := tokenNames[t.typ]; ok {
		return name
	}
	return "Unknown"
}
