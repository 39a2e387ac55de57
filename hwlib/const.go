package hwlib

import (
	"strconv"

	"github.com/rparrett/sim3bit"
)

// Const returns a zero-input source permanently driving out to v. Unlike
// Input, which samples a caller-provided function every step, Const always
// reports the same value and needs no backing state.
//
//	Outputs: out
//	Function: out = v
//
func Const(v bool) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "CONST",
		Outputs: []string{pOut},
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			out := s.Pin(pOut)
			return []hwsim.Component{
				func(c *hwsim.Circuit) { c.Set(out, v) },
			}
		},
	}).NewPart
}

// Latch returns a single-bit source driven by the current value of *v, read
// fresh on every step. It is the drive-stub a program loader uses to push
// address and instruction-field bits into memory inputs one line at a time,
// without allocating a fresh part per loaded value.
//
//	Outputs: out
//	Function: out = *v
//
func Latch(v *bool) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "LATCH",
		Outputs: []string{pOut},
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			out := s.Pin(pOut)
			return []hwsim.Component{
				func(c *hwsim.Circuit) { c.Set(out, *v) },
			}
		},
	}).NewPart
}

// LatchN returns a bits-wide source driven by the current value of *v, lsb
// first, read fresh on every step.
//
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = (*v)&(1<<i) != 0 }
//
func LatchN(bits int, v *int64) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "LATCH" + strconv.Itoa(bits),
		Outputs: bus(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			out := s.Bus(pOut, bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) { SetInt64(c, out, *v) },
			}
		},
	}).NewPart
}
