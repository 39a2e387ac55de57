package hwlib

import (
	"strconv"

	"github.com/rparrett/sim3bit"
)

// DividerSequential returns a restoring-division state machine: like
// MultiplierSequential, it is a self-contained sequential part useful in
// wider CPUs, not wired into the 3-bit top (see cpu.ArithmeticUnit). Start
// begins bits cycles of restoring division; Busy stays high until quotient
// and remainder are ready. Division by zero yields quotient and remainder
// both zero rather than panicking, since a dividing circuit has no
// exception mechanism to raise.
//
//	Inputs: a[bits], b[bits], start
//	Outputs: quotient[bits], remainder[bits], busy
//
func DividerSequential(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "DividerSeq" + strconv.Itoa(bits),
		Inputs:  append(bus(bits, pA, pB), "start"),
		Outputs: append(bus(bits, "quotient", "remainder"), "busy"),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b := s.Bus(pA, bits), s.Bus(pB, bits)
			start := s.Pin("start")
			quot, rem := s.Bus("quotient", bits), s.Bus("remainder", bits)
			busy := s.Pin("busy")
			var quotient, remainder int64
			remaining := 0
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					if remaining == 0 && c.Get(start) {
						divisor := Int64(c, b)
						dividend := Int64(c, a)
						remaining = bits
						if divisor == 0 {
							quotient, remainder = 0, 0
						} else {
							quotient, remainder = dividend/divisor, dividend%divisor
						}
					}
					if remaining > 0 {
						remaining--
					}
					c.Set(busy, remaining > 0)
					SetInt64(c, quot, quotient)
					SetInt64(c, rem, remainder)
				}}
		}}).NewPart
}
