package internal

import (
	"fmt"
	"strings"
)

// PrintTree prints the parsed program as s-expressions, one top-level
// statement per line.
func (s *interpreterState) PrintTree() {
	out := ""
	for _, st := range s.stmts {
		out += astRepr(st) + "\n"
	}
	fmt.Print(out)
}

var comparatorNames = map[comparator]string{
	cmpEq:          "==",
	cmpNotEq:       "!=",
	cmpLess:        "<",
	cmpGreater:     ">",
	cmpLessOrEq:    "<=",
	cmpGreaterOrEq: ">=",
}

func astRepr(node stmt) string {
	switch n := node.(type) {
	case *literal:
		if str, isStr := n.value.obj.(pyriteString); isStr {
			return "\"" + string(str) + "\""
		}
		return fmt.Sprintf("%v", n.value.obj)
	case *noneStmt:
		return "None"
	case *assignment:
		return fmt.Sprintf("(set %s %s)", n.name, astRepr(n.rhs))
	case *variableValue:
		return strings.Join(n.ids, ".")
	case *fieldAssignment:
		return fmt.Sprintf("(setfield %s %s %s)", astRepr(n.object), n.field, astRepr(n.rhs))
	case *printStmt:
		return "(print" + reprList(n.args) + ")"
	case *methodCall:
		return fmt.Sprintf("(call %s %s%s)", astRepr(n.object), n.method, reprList(n.args))
	case *newInstance:
		return fmt.Sprintf("(new %s%s)", n.cls.name, reprList(n.args))
	case *classDefinition:
		out := "(class " + n.cls.name
		if n.cls.parent != nil {
			out += " (parent " + n.cls.parent.name + ")"
		}
		for _, m := range n.cls.methods {
			out += fmt.Sprintf(" (def %s (%s) %s)", m.name, strings.Join(m.params, ", "), astRepr(m.body))
		}
		return out + ")"
	case *stringify:
		return fmt.Sprintf("(str %s)", astRepr(n.arg))
	case *add:
		return fmt.Sprintf("(+ %s %s)", astRepr(n.lhs), astRepr(n.rhs))
	case *sub:
		return fmt.Sprintf("(- %s %s)", astRepr(n.lhs), astRepr(n.rhs))
	case *mult:
		return fmt.Sprintf("(* %s %s)", astRepr(n.lhs), astRepr(n.rhs))
	case *div:
		return fmt.Sprintf("(/ %s %s)", astRepr(n.lhs), astRepr(n.rhs))
	case *andStmt:
		return fmt.Sprintf("(and %s %s)", astRepr(n.lhs), astRepr(n.rhs))
	case *orStmt:
		return fmt.Sprintf("(or %s %s)", astRepr(n.lhs), astRepr(n.rhs))
	case *notStmt:
		return fmt.Sprintf("(not %s)", astRepr(n.arg))
	case *comparison:
		return fmt.Sprintf("(%s %s %s)", comparatorNames[n.op], astRepr(n.lhs), astRepr(n.rhs))
	case *ifElse:
		out := fmt.Sprintf("(if %s (then %s)", astRepr(n.condition), astRepr(n.thenBody))
		if n.elseBody != nil {
			out += fmt.Sprintf(" (else %s)", astRepr(n.elseBody))
		}
		return out + ")"
	case *compound:
		return "(scope" + reprList(n.stmts) + ")"
	case *returnStmt:
		return fmt.Sprintf("(return %s)", astRepr(n.value))
	case *methodBody:
		return astRepr(n.body)
	}
	return ""
}

func reprList(nodes []stmt) string {
	out := ""
	for _, n := range nodes {
		out += " " + astRepr(n)
	}
	return out
}
