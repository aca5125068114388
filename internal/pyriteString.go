package internal

import "io"

type pyriteString string

func (s pyriteString) print(w io.Writer, ctx *context) {
	io.WriteString(w, string(s))
}

func (s pyriteString) String() string {
	return string(s)
}
