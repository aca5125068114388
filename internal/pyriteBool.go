package internal

import "io"

type pyriteBool bool

func (b pyriteBool) print(w io.Writer, ctx *context) {
	if b {
		io.WriteString(w, "True")
	} else {
		io.WriteString(w, "False")
	}
}

func (b pyriteBool) String() string {
	if b {
		return "True"
	}
	return "False"
}
