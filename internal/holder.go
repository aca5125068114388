package internal

import "io"

// object is implemented by every runtime value variant.
type object interface {
	print(w io.Writer, ctx *context)
}

// holder is a shareable handle to a runtime value. The zero holder is empty
// and denotes None. Dereferencing an empty holder is a programming error.
type holder struct {
	obj object
}

// own wraps a freshly built value.
func own(o object) holder {
	return holder{obj: o}
}

// share aliases an existing value without taking ownership. Under Go's GC
// both flavors carry the same pointer; share marks the borrow-of-self call
// sites where the value's lifetime is tied to the caller.
func share(o object) holder {
	return holder{obj: o}
}

func emptyHolder() holder {
	return holder{}
}

func (h holder) isEmpty() bool {
	return h.obj == nil
}

func (h holder) mustObject() object {
	if h.obj == nil {
		panic("dereference of empty holder")
	}
	return h.obj
}
