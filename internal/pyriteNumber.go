package internal

import (
	"io"
	"strconv"
)

type pyriteNumber int64

func (n pyriteNumber) print(w io.Writer, ctx *context) {
	io.WriteString(w, strconv.FormatInt(int64(n), 10))
}

func (n pyriteNumber) String() string {
	return strconv.FormatInt(int64(n), 10)
}
