// Package computer assembles cpu.CPU with program and data memories into the
// 3-bit computer: PM/RAM wiring, the MOVL/ADD/SUB/CMP/JEQ/JGT/HALT/NOP
// instruction set, a text program loader, and an interactive stepper.
package computer

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rparrett/sim3bit"
	"github.com/rparrett/sim3bit/cpu"
	"github.com/rparrett/sim3bit/hwlib"
)

// Configuration constants for the canonical 3-bit computer: N is the data
// and opcode width, P is the program counter width (3*N, wide enough to
// hold a concatenated C,A,B jump address), R is the RAM address width (8
// slots, matching N so PM's A/B/C fields address RAM directly).
const (
	N = 3
	P = 3 * N
	R = N

	stepsPerCycle = 16
)

// Computer is an assembled, runnable 3-bit machine.
type Computer struct {
	circuit *hwsim.Circuit
	table   *cpu.OpcodeTable

	loadAddrVal                 int64
	loadOp, loadC, loadA, loadB int64
	loading, pmWE               bool

	pc                             int64
	running                        bool
	opcode, cField, aField, bField int64
	result                         int64
	eq, neq, ltU, gtU, ltS, gtS    bool
	ram                            []int64
}

// New builds and wires a complete 3-bit computer using the ISAv2 opcode
// table.
func New() (*Computer, error) {
	table, err := cpu.ParseOpcodeTable(ISAv2)
	if err != nil {
		return nil, errors.Wrap(err, "parsing opcode table")
	}
	if table.Bits != N {
		return nil, errors.Errorf("opcode table width %d does not match N=%d", table.Bits, N)
	}

	cpuPart, err := cpu.New(table, N, P)
	if err != nil {
		return nil, errors.Wrap(err, "composing cpu")
	}

	comp := &Computer{table: table, running: true, ram: make([]int64, 1<<uint(R))}

	movl, hasMovl := table.Opcode("MOVL")
	add, hasAdd := table.Opcode("ADD")
	jeq, hasJeq := table.Opcode("JEQ")
	jgt, hasJgt := table.Opcode("JGT")
	if !hasMovl || !hasAdd || !hasJeq || !hasJgt {
		return nil, errors.New("ISAv2 table is missing a required opcode")
	}
	decNet := func(op int) string { return "dec" + strconv.Itoa(op) }

	cpuConn := busConn(N, "a", "ram_data_a") + ", " + busConn(N, "b", "ram_data_b") + ", " +
		busConn(N, "opcode_in", "pm_opcode_out") + ", " +
		concatConn(N, "jump_addr", "pm_c_out", "pm_a_out", "pm_b_out") + ", " +
		pin("jump_enable", "jump_enable_net") + ", " +
		busConn(P, "pc_out", "pc") + ", " +
		busConn(N, "result_out", "alu_result") + ", " +
		"eq=flag_eq, neq=flag_neq, lt_u=flag_lt_u, gt_u=flag_gt_u, lt_s=flag_lt_s, gt_s=flag_gt_s, " +
		decoderPassthroughConn(1<<uint(N)) + ", " +
		busConn(P, "page_out", "cpu_page_out") + ", " +
		pin("run", "run_net")

	parts := []hwsim.Part{
		cpuPart(cpuConn),

		hwlib.ProgramMemory(P, N)(
			busConn(P, "addr", "pm_addr") + ", " +
				busConn(N, "opcode", "load_op") + ", " + busConn(N, "c", "load_c") + ", " +
				busConn(N, pA, "load_a") + ", " + busConn(N, pB, "load_b") + ", " +
				pin(pWE, "pm_we") + ", " + pin(pRE, "pm_re") + ", " +
				busConn(N, "opcode_out", "pm_opcode_out") + ", " + busConn(N, "c_out", "pm_c_out") + ", " +
				busConn(N, "a_out", "pm_a_out") + ", " + busConn(N, "b_out", "pm_b_out")),

		hwlib.MainMemory(R, N, &comp.ram)(
			busConn(R, "addr_a", "pm_a_out") + ", " + busConn(R, "addr_b", "pm_b_out") + ", " +
				busConn(R, "addr_c", "pm_c_out") + ", " + busConn(N, pData, "ram_write_data") + ", " +
				pin(pWE, "ram_we") + ", " + pin("re_a", "ram_re") + ", " + pin("re_b", "ram_re") + ", " +
				busConn(N, "data_a", "ram_data_a") + ", " + busConn(N, "data_b", "ram_data_b")),

		hwlib.SpecMuxN(P).NewPart(
			busConn(P, pA, "pc") + ", " + busConn(P, pB, "load_addr") + ", " + pin(pSel, "loading") + ", " +
				busConn(P, pOut, "pm_addr")),

		hwlib.SpecMuxN(N).NewPart(
			busConn(N, pA, "alu_result") + ", " + busConn(N, pB, "pm_a_out") + ", " + pin(pSel, decNet(movl)) + ", " +
				busConn(N, pOut, "ram_write_data")),

		hwlib.Or(pin(pA, decNet(movl)) + ", " + pin(pB, decNet(add)) + ", " + pin(pOut, "ram_we")),

		hwlib.And(pin(pA, decNet(jeq)) + ", " + pin(pB, "flag_eq") + ", " + pin(pOut, "jeq_and")),
		hwlib.And(pin(pA, decNet(jgt)) + ", " + pin(pB, "flag_gt_s") + ", " + pin(pOut, "jgt_and")),
		hwlib.Or(pin(pA, "jeq_and") + ", " + pin(pB, "jgt_and") + ", " + pin(pOut, "jump_enable_net")),

		hwlib.LatchN(P, &comp.loadAddrVal)(busConn(P, pOut, "load_addr")),
		hwlib.LatchN(N, &comp.loadOp)(busConn(N, pOut, "load_op")),
		hwlib.LatchN(N, &comp.loadC)(busConn(N, pOut, "load_c")),
		hwlib.LatchN(N, &comp.loadA)(busConn(N, pOut, "load_a")),
		hwlib.LatchN(N, &comp.loadB)(busConn(N, pOut, "load_b")),
		hwlib.Latch(&comp.loading)(pin(pOut, "loading")),
		hwlib.Latch(&comp.pmWE)(pin(pOut, "pm_we")),
		hwlib.Const(true)(pin(pOut, "pm_re")),
		hwlib.Const(true)(pin(pOut, "ram_re")),

		hwlib.OutputN(P, func(v int64) { comp.pc = v })(busConn(P, pIn, "pc")),
		hwlib.Output(func(v bool) { comp.running = v })(pin(pIn, "run_net")),
		hwlib.OutputN(N, func(v int64) { comp.opcode = v })(busConn(N, pIn, "pm_opcode_out")),
		hwlib.OutputN(N, func(v int64) { comp.cField = v })(busConn(N, pIn, "pm_c_out")),
		hwlib.OutputN(N, func(v int64) { comp.aField = v })(busConn(N, pIn, "pm_a_out")),
		hwlib.OutputN(N, func(v int64) { comp.bField = v })(busConn(N, pIn, "pm_b_out")),
		hwlib.OutputN(N, func(v int64) { comp.result = v })(busConn(N, pIn, "alu_result")),
		hwlib.Output(func(v bool) { comp.eq = v })(pin(pIn, "flag_eq")),
		hwlib.Output(func(v bool) { comp.neq = v })(pin(pIn, "flag_neq")),
		hwlib.Output(func(v bool) { comp.ltU = v })(pin(pIn, "flag_lt_u")),
		hwlib.Output(func(v bool) { comp.gtU = v })(pin(pIn, "flag_gt_u")),
		hwlib.Output(func(v bool) { comp.ltS = v })(pin(pIn, "flag_lt_s")),
		hwlib.Output(func(v bool) { comp.gtS = v })(pin(pIn, "flag_gt_s")),
	}

	comp.loading = true
	circuit, err := hwsim.NewCircuit(0, stepsPerCycle, parts...)
	if err != nil {
		return nil, errors.Wrap(err, "building circuit")
	}
	comp.circuit = circuit
	return comp, nil
}

// Step runs one full instruction cycle (one clock TickTock) and returns
// whether the machine is still running afterward.
func (c *Computer) Step() bool {
	c.circuit.TickTock()
	return c.running
}

// PC returns the current program counter.
func (c *Computer) PC() int64 { return c.pc }

// Running reports whether the machine has not yet halted.
func (c *Computer) Running() bool { return c.running }

// Instruction returns the opcode, C, A and B fields of the instruction
// currently addressed by PC, plus its mnemonic (empty if unrecognized).
func (c *Computer) Instruction() (opcode, cf, af, bf int64, mnemonic string) {
	name, _ := c.table.Name(int(c.opcode))
	return c.opcode, c.cField, c.aField, c.bField, name
}

// RAM returns a snapshot of all data memory slots.
func (c *Computer) RAM() []int64 {
	out := make([]int64, len(c.ram))
	copy(out, c.ram)
	return out
}

// Flags returns the comparator flag register: eq, neq, lt_u, gt_u, lt_s, gt_s.
func (c *Computer) Flags() (eq, neq, ltU, gtU, ltS, gtS bool) {
	return c.eq, c.neq, c.ltU, c.gtU, c.ltS, c.gtS
}

// decoderPassthroughConn wires every decoder_out bit to a distinct private
// net "dec<k>", so none lands unconnected (which would alias the circuit's
// constant-false wire — see cpu.New's halt wiring for the same technique
// used one level down).
func decoderPassthroughConn(width int) string {
	s := ""
	for k := 0; k < width; k++ {
		if k > 0 {
			s += ", "
		}
		s += "decoder_out[" + strconv.Itoa(k) + "]=dec" + strconv.Itoa(k)
	}
	return s
}

// concatConn wires a pBits-wide public bus from N-bit fields, lowest field
// first, e.g. concatConn(3, "jump_addr", "c", "a", "b") binds
// jump_addr[0..2]=c[0..2], jump_addr[3..5]=a[0..2], jump_addr[6..8]=b[0..2].
func concatConn(n int, pub string, fields ...string) string {
	var b strings.Builder
	for fi, f := range fields {
		for i := 0; i < n; i++ {
			if fi > 0 || i > 0 {
				b.WriteString(", ")
			}
			idx := fi*n + i
			b.WriteString(pub + "[" + strconv.Itoa(idx) + "]=" + f + "[" + strconv.Itoa(i) + "]")
		}
	}
	return b.String()
}

const (
	pA    = "a"
	pB    = "b"
	pOut  = "out"
	pIn   = "in"
	pSel  = "sel"
	pData = "data"
	pWE   = "we"
	pRE   = "re"
)
