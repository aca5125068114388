package internal

import "io"

// method is a named function defined within a class. The body is a
// methodBody-wrapped subtree so that return propagation stops there.
type method struct {
	name   string
	params []string
	body   stmt
}

// pyriteClass is itself a runtime value; instances hold a reference to it.
// Single inheritance only: parent chains are acyclic.
type pyriteClass struct {
	name    string
	methods []*method
	parent  *pyriteClass
}

// findMethod resolves a name by exact match in the current class, then by a
// depth-first walk of the ancestor chain.
func (c *pyriteClass) findMethod(name string) *method {
	for cls := c; cls != nil; cls = cls.parent {
		for _, m := range cls.methods {
			if m.name == name {
				return m
			}
		}
	}
	return nil
}

func (c *pyriteClass) print(w io.Writer, ctx *context) {
	io.WriteString(w, "Class "+c.name)
}
