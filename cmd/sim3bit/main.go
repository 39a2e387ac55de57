// Command sim3bit loads a program into the 3-bit computer and runs it
// interactively, printing PC, instruction and RAM state each cycle.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/rparrett/sim3bit/computer"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <program>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	comp, err := computer.New()
	if err != nil {
		slog.Error("building computer", "err", err)
		os.Exit(1)
	}
	if err := comp.LoadProgram(flag.Arg(0)); err != nil {
		slog.Error("loading program", "err", err)
		os.Exit(1)
	}

	computer.RunInteractive(comp, os.Stdin, os.Stdout)
}
