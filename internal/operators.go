package internal

import "io"

// printValue renders a holder to the output stream. An empty holder prints
// as None.
func printValue(h holder, w io.Writer, ctx *context) {
	if h.isEmpty() {
		io.WriteString(w, "None")
		return
	}
	h.obj.print(w, ctx)
}

// isTrue coerces a holder to a boolean. Class and instance values are never
// truthy.
func isTrue(h holder) bool {
	if h.isEmpty() {
		return false
	}
	switch v := h.obj.(type) {
	case pyriteNumber:
		return v != 0
	case pyriteString:
		return v != ""
	case pyriteBool:
		return bool(v)
	}
	return false
}

// equal compares two holders. Two empty holders are equal. Instances on the
// left dispatch to __eq__ when it is defined with one parameter; primitives
// compare payloads within the same variant. Everything else is a fatal
// comparison error.
func equal(lhs, rhs holder, ctx *context) bool {
	if lhs.isEmpty() && rhs.isEmpty() {
		return true
	}
	if obj, ok := lhs.obj.(*pyriteObject); ok && obj.hasMethod(eqMethod, 1) {
		return isTrue(obj.call(eqMethod, []holder{rhs}, ctx))
	}
	switch l := lhs.obj.(type) {
	case pyriteNumber:
		if r, ok := rhs.obj.(pyriteNumber); ok {
			return l == r
		}
	case pyriteString:
		if r, ok := rhs.obj.(pyriteString); ok {
			return l == r
		}
	case pyriteBool:
		if r, ok := rhs.obj.(pyriteBool); ok {
			return l == r
		}
	}
	runtimeErr(errCannotCompare, nil)
	return false
}

// less mirrors equal with __lt__ dispatch.
func less(lhs, rhs holder, ctx *context) bool {
	if obj, ok := lhs.obj.(*pyriteObject); ok && obj.hasMethod(ltMethod, 1) {
		return isTrue(obj.call(ltMethod, []holder{rhs}, ctx))
	}
	switch l := lhs.obj.(type) {
	case pyriteNumber:
		if r, ok := rhs.obj.(pyriteNumber); ok {
			return l < r
		}
	case pyriteString:
		if r, ok := rhs.obj.(pyriteString); ok {
			return l < r
		}
	case pyriteBool:
		if r, ok := rhs.obj.(pyriteBool); ok {
			return !bool(l) && bool(r)
		}
	}
	runtimeErr(errCannotCompare, nil)
	return false
}

func notEqual(lhs, rhs holder, ctx *context) bool {
	return !equal(lhs, rhs, ctx)
}

func greater(lhs, rhs holder, ctx *context) bool {
	return !less(lhs, rhs, ctx) && notEqual(lhs, rhs, ctx)
}

func lessOrEqual(lhs, rhs holder, ctx *context) bool {
	return !greater(lhs, rhs, ctx)
}

func greaterOrEqual(lhs, rhs holder, ctx *context) bool {
	return !less(lhs, rhs, ctx)
}
