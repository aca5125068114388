package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/labstack/gommon/color"
	log "github.com/sirupsen/logrus"

	"pyrite/internal"
)

func main() {
	debug := flag.Bool("debug", false, "enable phase tracing")
	tokens := flag.Bool("tokens", false, "dump the token stream and exit")
	ast := flag.Bool("ast", false, "dump the parsed tree and exit")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pyrite [flags] /path/to/source.py")
		os.Exit(2)
	}

	b, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	source := string(b)

	var ok bool
	switch {
	case *tokens:
		ok = internal.PrintTokens(source, os.Stdout)
	case *ast:
		ok = internal.PrintAST(source)
	default:
		ok = internal.RunSourceWithOutput(source, os.Stdout)
	}

	if !ok {
		fmt.Fprintln(os.Stderr, color.Red("pyrite: execution failed"))
		os.Exit(1)
	}
}
