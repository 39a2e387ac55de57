package computer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RunInteractive prints PC, the current instruction and a RAM dump, then
// waits on in for <Enter> (step) or 'q'/'Q' (quit), repeating until the
// machine halts or the user quits. out receives all printed state.
func RunInteractive(c *Computer, in io.Reader, out io.Writer) {
	r := bufio.NewReader(in)
	for {
		printState(c, out)
		if !c.Running() {
			fmt.Fprintln(out, "halted.")
			return
		}
		fmt.Fprint(out, "<Enter> to step, q to quit: ")
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		if strings.EqualFold(strings.TrimSpace(line), "q") {
			return
		}
		c.Step()
	}
}

func printState(c *Computer, out io.Writer) {
	opcode, cf, af, bf, mnemonic := c.Instruction()
	if mnemonic == "" {
		mnemonic = "???"
	}

	state := table.NewWriter()
	state.AppendHeader(table.Row{"PC", "opcode", "C", "A", "B", "instruction"})
	state.AppendRow(table.Row{c.PC(), opcode, cf, af, bf, mnemonic})
	fmt.Fprintln(out, state.Render())

	ram := table.NewWriter()
	header := table.Row{"RAM"}
	row := table.Row{"value"}
	for i, v := range c.RAM() {
		header = append(header, i)
		row = append(row, v)
	}
	ram.AppendHeader(header)
	ram.AppendRow(row)
	fmt.Fprintln(out, ram.Render())
}
