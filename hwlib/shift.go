package hwlib

import (
	"strconv"

	"github.com/rparrett/sim3bit"
)

// LShiftN returns a bits-wide combinational 1-place shifter: out[i] = in[i+1]
// for i in [0,bits-2]; the top bit is zero-filled.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//
func LShiftN(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "LShift" + strconv.Itoa(bits),
		Inputs:  bus(bits, pIn),
		Outputs: bus(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			in := s.Bus(pIn, bits)
			out := s.Bus(pOut, bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					for i, o := range out {
						if i+1 < bits {
							c.Set(o, c.Get(in[i+1]))
						} else {
							c.Set(o, false)
						}
					}
				}}
		}}).NewPart
}

// RShiftN returns a bits-wide combinational 1-place shifter: out[i] = in[i-1]
// for i in [1,bits-1]; the bottom bit is zero-filled.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//
func RShiftN(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "RShift" + strconv.Itoa(bits),
		Inputs:  bus(bits, pIn),
		Outputs: bus(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			in := s.Bus(pIn, bits)
			out := s.Bus(pOut, bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					for i, o := range out {
						if i-1 >= 0 {
							c.Set(o, c.Get(in[i-1]))
						} else {
							c.Set(o, false)
						}
					}
				}}
		}}).NewPart
}
