package internal

// stmt is any AST node. Every node evaluates against a closure and a
// context and yields a holder.
type stmt interface {
	execute(cl *closure, ctx *context) holder
}

// comparator selects the relation applied by a comparison node.
type comparator int

const (
	cmpEq comparator = iota
	cmpNotEq
	cmpLess
	cmpGreater
	cmpLessOrEq
	cmpGreaterOrEq
)

// literal yields a constant value.
type literal struct {
	value holder
}

// noneStmt yields an empty holder.
type noneStmt struct{}

// assignment stores the result of rhs into the current closure.
type assignment struct {
	name string
	rhs  stmt
}

// variableValue is a dotted lookup: the first identifier resolves in the
// current closure, each subsequent one in the preceding result's fields.
type variableValue struct {
	ids []string
	tk  *token
}

// fieldAssignment stores the result of rhs into an instance's fields.
type fieldAssignment struct {
	object *variableValue
	field  string
	rhs    stmt
}

// printStmt renders its arguments separated by single spaces, then a
// newline.
type printStmt struct {
	args []stmt
}

// methodCall dispatches a named method on the result of object.
type methodCall struct {
	object stmt
	method string
	args   []stmt
	tk     *token
}

// newInstance constructs an instance of a statically resolved class.
type newInstance struct {
	cls  *pyriteClass
	args []stmt
}

// classDefinition binds the class value under the class's own name.
type classDefinition struct {
	cls *pyriteClass
}

// stringify converts its argument to a String value.
type stringify struct {
	arg stmt
}

type add struct {
	lhs, rhs stmt
	tk       *token
}

type sub struct {
	lhs, rhs stmt
	tk       *token
}

type mult struct {
	lhs, rhs stmt
	tk       *token
}

type div struct {
	lhs, rhs stmt
	tk       *token
}

// andStmt and orStmt evaluate both operands, always.
type andStmt struct {
	lhs, rhs stmt
}

type orStmt struct {
	lhs, rhs stmt
}

type notStmt struct {
	arg stmt
}

type comparison struct {
	op       comparator
	lhs, rhs stmt
	tk       *token
}

type ifElse struct {
	condition stmt
	thenBody  stmt
	elseBody  stmt
}

// compound evaluates its statements in order and yields None.
type compound struct {
	stmts []stmt
}

// returnStmt evaluates its expression and exits the enclosing method.
type returnStmt struct {
	value stmt
}

// methodBody wraps a method body and converts return propagation into the
// method's result.
type methodBody struct {
	body stmt
}
