package internal

import (
	"fmt"
	"io"
	"strings"
)

// returnValue is the abrupt-completion carrier produced by returnStmt. It
// propagates as a panic until the nearest enclosing methodBody catches it.
// It is distinct from runtimeError: no other node may catch it.
type returnValue holder

// interpret runs the parsed program against a fresh top-level closure.
// Runtime errors terminate evaluation and are recorded on the state.
func (s *interpreterState) interpret(ctx *context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isReturn := r.(returnValue); isReturn {
				s.setError(errReturnOutsideMethod, 0)
				ok = false
				return
			}
			runErr, isRuntime := r.(runtimeError)
			if !isRuntime {
				panic(r)
			}
			line := 0
			if runErr.tk != nil {
				line = runErr.tk.line
			}
			s.setError(runErr.err, line)
			ok = false
		}
	}()
	top := newClosure()
	for _, st := range s.stmts {
		st.execute(top, ctx)
	}
	return true
}

func (s *literal) execute(cl *closure, ctx *context) holder {
	return s.value
}

func (s *noneStmt) execute(cl *closure, ctx *context) holder {
	return emptyHolder()
}

func (s *assignment) execute(cl *closure, ctx *context) holder {
	value := s.rhs.execute(cl, ctx)
	cl.define(s.name, value)
	return value
}

func (s *variableValue) execute(cl *closure, ctx *context) holder {
	result, ok := cl.lookup(s.ids[0])
	if !ok {
		runtimeErr(errNoSuchVariable, s.tk)
	}
	for _, id := range s.ids[1:] {
		obj, isObj := result.obj.(*pyriteObject)
		if !isObj {
			runtimeErr(errNotAnInstance, s.tk)
		}
		result, ok = obj.fields.lookup(id)
		if !ok {
			runtimeErr(errNoSuchVariable, s.tk)
		}
	}
	return result
}

func (s *fieldAssignment) execute(cl *closure, ctx *context) holder {
	obj, isObj := s.object.execute(cl, ctx).obj.(*pyriteObject)
	if !isObj {
		runtimeErr(errNotAnInstance, s.object.tk)
	}
	value := s.rhs.execute(cl, ctx)
	obj.fields.define(s.field, value)
	return value
}

func (s *printStmt) execute(cl *closure, ctx *context) holder {
	out := ctx.output()
	for i, arg := range s.args {
		if i > 0 {
			io.WriteString(out, " ")
		}
		printValue(arg.execute(cl, ctx), out, ctx)
	}
	io.WriteString(out, "\n")
	return emptyHolder()
}

func (s *methodCall) execute(cl *closure, ctx *context) holder {
	obj, isObj := s.object.execute(cl, ctx).obj.(*pyriteObject)
	if !isObj {
		runtimeErr(errNotAnInstance, s.tk)
	}
	args := make([]holder, len(s.args))
	for i, arg := range s.args {
		args[i] = arg.execute(cl, ctx)
	}
	if !obj.hasMethod(s.method, len(args)) {
		runtimeErr(errNoSuchMethod, s.tk)
	}
	return obj.call(s.method, args, ctx)
}

func (s *newInstance) execute(cl *closure, ctx *context) holder {
	obj := newObject(s.cls)
	args := make([]holder, len(s.args))
	for i, arg := range s.args {
		args[i] = arg.execute(cl, ctx)
	}
	if obj.hasMethod(initMethod, len(args)) {
		obj.call(initMethod, args, ctx)
	}
	return own(obj)
}

func (s *classDefinition) execute(cl *closure, ctx *context) holder {
	value := own(s.cls)
	cl.define(s.cls.name, value)
	return value
}

func (s *stringify) execute(cl *closure, ctx *context) holder {
	var sb strings.Builder
	value := s.arg.execute(cl, ctx)
	if obj, isObj := value.obj.(*pyriteObject); isObj && !obj.hasMethod(strMethod, 0) {
		fmt.Fprintf(&sb, "%p", obj)
	} else {
		printValue(value, &sb, ctx)
	}
	return own(pyriteString(sb.String()))
}

func (s *add) execute(cl *closure, ctx *context) holder {
	lhs := s.lhs.execute(cl, ctx)
	rhs := s.rhs.execute(cl, ctx)
	if l, ok := lhs.obj.(pyriteNumber); ok {
		if r, ok := rhs.obj.(pyriteNumber); ok {
			return own(l + r)
		}
	}
	if l, ok := lhs.obj.(pyriteString); ok {
		if r, ok := rhs.obj.(pyriteString); ok {
			return own(l + r)
		}
	}
	if obj, ok := lhs.obj.(*pyriteObject); ok && obj.hasMethod(addMethod, 1) {
		return obj.call(addMethod, []holder{rhs}, ctx)
	}
	runtimeErr(errWrongTypes, s.tk)
	return emptyHolder()
}

func (s *sub) execute(cl *closure, ctx *context) holder {
	l, r := numericOperands(s.lhs, s.rhs, s.tk, cl, ctx)
	return own(l - r)
}

func (s *mult) execute(cl *closure, ctx *context) holder {
	l, r := numericOperands(s.lhs, s.rhs, s.tk, cl, ctx)
	return own(l * r)
}

func (s *div) execute(cl *closure, ctx *context) holder {
	l, r := numericOperands(s.lhs, s.rhs, s.tk, cl, ctx)
	if r == 0 {
		runtimeErr(errZeroDivision, s.tk)
	}
	return own(l / r)
}

func numericOperands(lhs, rhs stmt, tk *token, cl *closure, ctx *context) (pyriteNumber, pyriteNumber) {
	l, lok := lhs.execute(cl, ctx).obj.(pyriteNumber)
	r, rok := rhs.execute(cl, ctx).obj.(pyriteNumber)
	if !lok || !rok {
		runtimeErr(errWrongTypes, tk)
	}
	return l, r
}

// Logical operators never short-circuit: both sides run before the boolean
// is formed.
func (s *andStmt) execute(cl *closure, ctx *context) holder {
	lhs := isTrue(s.lhs.execute(cl, ctx))
	rhs := isTrue(s.rhs.execute(cl, ctx))
	return own(pyriteBool(lhs && rhs))
}

func (s *orStmt) execute(cl *closure, ctx *context) holder {
	lhs := isTrue(s.lhs.execute(cl, ctx))
	rhs := isTrue(s.rhs.execute(cl, ctx))
	return own(pyriteBool(lhs || rhs))
}

func (s *notStmt) execute(cl *closure, ctx *context) holder {
	return own(pyriteBool(!isTrue(s.arg.execute(cl, ctx))))
}

func (s *comparison) execute(cl *closure, ctx *context) holder {
	lhs := s.lhs.execute(cl, ctx)
	rhs := s.rhs.execute(cl, ctx)
	var result bool
	switch s.op {
	case cmpEq:
		result = equal(lhs, rhs, ctx)
	case cmpNotEq:
		result = notEqual(lhs, rhs, ctx)
	case cmpLess:
		result = less(lhs, rhs, ctx)
	case cmpGreater:
		result = greater(lhs, rhs, ctx)
	case cmpLessOrEq:
		result = lessOrEqual(lhs, rhs, ctx)
	case cmpGreaterOrEq:
		result = greaterOrEqual(lhs, rhs, ctx)
	}
	return own(pyriteBool(result))
}

func (s *ifElse) execute(cl *closure, ctx *context) holder {
	if isTrue(s.condition.execute(cl, ctx)) {
		return s.thenBody.execute(cl, ctx)
	}
	if s.elseBody != nil {
		return s.elseBody.execute(cl, ctx)
	}
	return emptyHolder()
}

func (s *compound) execute(cl *closure, ctx *context) holder {
	for _, st := range s.stmts {
		st.execute(cl, ctx)
	}
	return emptyHolder()
}

func (s *returnStmt) execute(cl *closure, ctx *context) holder {
	panic(returnValue(s.value.execute(cl, ctx)))
}

func (s *methodBody) execute(cl *closure, ctx *context) (result holder) {
	defer func() {
		if r := recover(); r != nil {
			rv, isReturn := r.(returnValue)
			if !isReturn {
				panic(r)
			}
			result = holder(rv)
		}
	}()
	s.body.execute(cl, ctx)
	return emptyHolder()
}
