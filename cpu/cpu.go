package cpu

import (
	"strconv"
	"strings"

	"github.com/rparrett/sim3bit"
	"github.com/rparrett/sim3bit/hwlib"
)

// New composes ALU and ControlUnit into a CPU: a decoder-to-enable fan built
// from table, wiring ADD/SUB/INC/DEC/MUL/AND/OR/XOR/NOT/RSH/LSH opcodes onto
// the ALU's enables, and (if the table names one) a HALT opcode wired back
// into the Control_Unit's halt_in from its own decoder output — the static
// equivalent of connecting a late-discovered signal after construction,
// since every wire here is just two Conns naming the same net.
//
// Any opcode not recognized as one of those eleven names, and not named
// HALT, drives nothing inside the CPU; a containing computer package reads
// it off decoder_out and wires its own semantics (MOVL, jumps, ...).
//
//	Inputs: a[bits], b[bits], opcode_in[table.Bits], jump_addr[pBits],
//	        jump_enable, page_data[pBits], page_we
//	Outputs: pc_out[pBits], result_out[bits], eq, neq, lt_u, gt_u,
//	         lt_s, gt_s, decoder_out[2^table.Bits],
//	         page_out[pBits], run
func New(table *OpcodeTable, bits, pBits int) (hwsim.NewPartFn, error) {
	decoderWidth := 1 << uint(table.Bits)

	inputs := busNames(bits, "a", "b")
	inputs = append(inputs, busNames(table.Bits, "opcode_in")...)
	inputs = append(inputs, busNames(pBits, "jump_addr")...)
	inputs = append(inputs, "jump_enable")
	inputs = append(inputs, busNames(pBits, "page_data")...)
	inputs = append(inputs, "page_we")

	outputs := busNames(pBits, "pc_out")
	outputs = append(outputs, busNames(bits, "result_out")...)
	outputs = append(outputs, "eq", "neq", "lt_u", "gt_u", "lt_s", "gt_s")
	outputs = append(outputs, busNames(decoderWidth, "decoder_out")...)
	outputs = append(outputs, busNames(pBits, "page_out")...)
	outputs = append(outputs, "run")

	decoderNet := func(k int) string { return hwsim.BusPinName("decoder_out", k) }

	// decoder -> ALU enable fan: one N-way OR per recognized ALU op, its
	// inputs are the decoder lines whose opcode the table assigns that name,
	// everything else left unconnected (defaults false).
	aluConn := busConn(bits, "a", "a") + ", " + busConn(bits, "b", "b") + ", "
	var parts []hwsim.Part
	for _, op := range arithLogicOps {
		enNet := "en_" + strings.ToLower(op)
		var in []string
		for k := 0; k < decoderWidth; k++ {
			if name, ok := table.Name(k); ok && name == op {
				in = append(in, decoderNet(k))
			}
		}
		parts = append(parts, hwlib.OrNWay(decoderWidth)(sparseOrConn(decoderWidth, in, enNet)))
		aluConn += strings.ToLower(op) + "=" + enNet + ", "
	}
	aluConn += "eq=flag_eq, neq=flag_neq, lt_u=flag_lt_u, gt_u=flag_gt_u, lt_s=flag_lt_s, gt_s=flag_gt_s, " +
		busConn(bits, pOut, "result_out")
	parts = append(parts, ALU(bits)(aluConn))

	cuConn := busConn(table.Bits, "opcode_in", "opcode_in") + ", " +
		busConn(pBits, "jump_addr", "jump_addr") + ", jump_enable=jump_enable, " +
		"flags_in[0]=flag_eq, flags_in[1]=flag_neq, flags_in[2]=flag_lt_u, " +
		"flags_in[3]=flag_gt_u, flags_in[4]=flag_lt_s, flags_in[5]=flag_gt_s, "
	if halt, ok := table.Opcode("HALT"); ok {
		cuConn += "halt_in=" + decoderNet(halt) + ", "
	}
	cuConn += busConn(pBits, "page_data", "page_data") + ", page_we=page_we, " +
		busConn(pBits, "pc_out", "pc_out") + ", " +
		busConn(decoderWidth, "decoder_out", "decoder_out") + ", " +
		"flags_out[0]=eq, flags_out[1]=neq, flags_out[2]=lt_u, flags_out[3]=gt_u, " +
		"flags_out[4]=lt_s, flags_out[5]=gt_s, " +
		busConn(pBits, "page_out", "page_out") + ", run=run"
	parts = append(parts, ControlUnit(pBits, table.Bits)(cuConn))

	return hwsim.Chip("CPU"+strconv.Itoa(bits)+"x"+strconv.Itoa(pBits), inputs, outputs, parts...)
}

// sparseOrConn wires only the given nets onto an OrNWay's in[] bus by
// index; any in[] pin not named in nets is left unconnected (false).
func sparseOrConn(width int, nets []string, out string) string {
	s := ""
	for i := range nets {
		s += "in[" + strconv.Itoa(i) + "]=" + nets[i] + ", "
	}
	return s + "out=" + out
}
