package hwlib

import (
	"strconv"

	"github.com/rparrett/sim3bit"
)

// RegisterN returns a bits-wide register: an array of level-gated latches
// sharing write_enable and read_enable. Following the same flattened style
// as AdderN/gateN, the n latches are computed directly over Socket.Bus pin
// slices in one Mount closure rather than wired up as n MemoryBit chips;
// the observable semantics (see MemoryBit) are identical.
//
//	Inputs: data[bits], we, re
//	Outputs: out[bits]
//	Function: on we, out(t+1) latches data; out reflects the latch iff re.
//
func RegisterN(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "REGISTER" + strconv.Itoa(bits),
		Inputs:  append(bus(bits, pData), pWE, pRE),
		Outputs: bus(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			data := s.Bus(pData, bits)
			we, re := s.Pin(pWE), s.Pin(pRE)
			out := s.Bus(pOut, bits)
			state := make([]bool, bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					if c.Get(we) {
						for i := range state {
							state[i] = c.Get(data[i])
						}
					}
					reOn := c.Get(re)
					for i, o := range out {
						c.Set(o, reOn && state[i])
					}
				},
			}
		},
	}).NewPart
}
