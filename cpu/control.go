package cpu

import (
	"strconv"

	"github.com/rparrett/sim3bit"
	"github.com/rparrett/sim3bit/hwlib"
)

// ControlUnit returns the instruction sequencer: a pBits program counter, its
// +1 incrementer, a jump mux, an oBits opcode decoder, a 6-bit flag latch, a
// pBits RAM-page latch, and a run/halt latch gated by halt_in OR'd with the
// incrementer's own carry-out (a PC that wraps past its top address halts
// the machine as a safety valve).
//
// Unlike the gate-composed structural parts in hwlib, ControlUnit is one
// flattened Mount closure holding its own state (pcVal, flagsVal, ...),
// following hwlib.ProgramMemory/ArithmeticUnit's precedent for wide
// sequential parts: the corrected update ordering this package depends on
// (PC must latch once per cycle, never twice) is far easier to guarantee by
// construction in a single closure than by composing separately-clocked
// sub-parts and hoping their evaluation order cooperates.
//
//	Inputs: opcode_in[oBits], jump_addr[pBits], jump_enable, flags_in[6]
//	        (eq,neq,lt_u,gt_u,lt_s,gt_s), halt_in, page_data[pBits], page_we
//	Outputs: pc_out[pBits], decoder_out[2^oBits], flags_out[6],
//	         page_out[pBits], run
func ControlUnit(pBits, oBits int) hwsim.NewPartFn {
	decoderWidth := 1 << uint(oBits)
	pcMask := int64(1)<<uint(pBits) - 1

	inputs := busNames(oBits, "opcode_in")
	inputs = append(inputs, busNames(pBits, "jump_addr")...)
	inputs = append(inputs, "jump_enable")
	inputs = append(inputs, busNames(6, "flags_in")...)
	inputs = append(inputs, "halt_in")
	inputs = append(inputs, busNames(pBits, "page_data")...)
	inputs = append(inputs, "page_we")

	outputs := busNames(pBits, "pc_out")
	outputs = append(outputs, busNames(decoderWidth, "decoder_out")...)
	outputs = append(outputs, busNames(6, "flags_out")...)
	outputs = append(outputs, busNames(pBits, "page_out")...)
	outputs = append(outputs, "run")

	return (&hwsim.PartSpec{
		Name:    "ControlUnit" + strconv.Itoa(pBits) + "x" + strconv.Itoa(oBits),
		Inputs:  inputs,
		Outputs: outputs,
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			opcodeIn := s.Bus("opcode_in", oBits)
			jumpAddr := s.Bus("jump_addr", pBits)
			jumpEnable := s.Pin("jump_enable")
			flagsIn := s.Bus("flags_in", 6)
			haltIn := s.Pin("halt_in")
			pageData := s.Bus("page_data", pBits)
			pageWE := s.Pin("page_we")

			pcOut := s.Bus("pc_out", pBits)
			decoderOut := s.Bus("decoder_out", decoderWidth)
			flagsOut := s.Bus("flags_out", 6)
			pageOut := s.Bus("page_out", pBits)
			run := s.Pin("run")

			var pcVal, pageVal int64
			var flagsVal [6]bool
			running := true

			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					opcodeVal := hwlib.Int64(c, opcodeIn)
					for k, o := range decoderOut {
						c.Set(o, int64(k) == opcodeVal)
					}

					pcCarry := pcVal == pcMask
					haltTrigger := c.Get(haltIn) || pcCarry
					haltNow := haltTrigger || !running

					var pcNext int64
					switch {
					case haltNow:
						pcNext = pcVal
					case c.Get(jumpEnable):
						pcNext = hwlib.Int64(c, jumpAddr)
					default:
						pcNext = (pcVal + 1) & pcMask
					}

					hwlib.SetInt64(c, pcOut, pcVal)
					for i, o := range flagsOut {
						c.Set(o, flagsVal[i])
					}
					hwlib.SetInt64(c, pageOut, pageVal)
					c.Set(run, running)

					if c.AtTick() {
						pcVal = pcNext
						for i := range flagsVal {
							flagsVal[i] = c.Get(flagsIn[i])
						}
						if c.Get(pageWE) {
							pageVal = hwlib.Int64(c, pageData)
						}
						running = running && !haltTrigger
					}
				}}
		}}).NewPart
}
