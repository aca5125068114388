package internal

import (
	"fmt"
	"io"
)

const (
	initMethod = "__init__"
	strMethod  = "__str__"
	eqMethod   = "__eq__"
	ltMethod   = "__lt__"
	addMethod  = "__add__"
)

// pyriteObject is a class instance: a reference to its class plus a mutable
// closure of fields.
type pyriteObject struct {
	cls    *pyriteClass
	fields *closure
}

func newObject(cls *pyriteClass) *pyriteObject {
	return &pyriteObject{cls: cls, fields: newClosure()}
}

// hasMethod reports whether the named method exists with exactly the given
// formal-parameter count.
func (o *pyriteObject) hasMethod(name string, args int) bool {
	m := o.cls.findMethod(name)
	return m != nil && len(m.params) == args
}

// call dispatches a method on this instance. The invocation closure is
// fresh: self shares the instance, formal parameters bind the positional
// arguments.
func (o *pyriteObject) call(name string, args []holder, ctx *context) holder {
	if !o.hasMethod(name, len(args)) {
		runtimeErr(errNoSuchMethod, nil)
	}
	m := o.cls.findMethod(name)
	cl := newClosure()
	cl.define("self", share(o))
	for i, param := range m.params {
		cl.define(param, args[i])
	}
	return m.body.execute(cl, ctx)
}

func (o *pyriteObject) print(w io.Writer, ctx *context) {
	if o.hasMethod(strMethod, 0) {
		printValue(o.call(strMethod, nil, ctx), w, ctx)
		return
	}
	fmt.Fprintf(w, "%p", o)
}
