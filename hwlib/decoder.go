package hwlib

import (
	"strconv"

	"github.com/rparrett/sim3bit"
)

// DecoderN returns an n-to-2^n one-hot decoder: output k is high iff the
// binary pattern on in[0..bits) equals k, lsb first.
//
//	Inputs: in[bits]
//	Outputs: out[2^bits]
//
func DecoderN(bits int) hwsim.NewPartFn {
	n := 1 << uint(bits)
	return (&hwsim.PartSpec{
		Name:    "DECODER" + strconv.Itoa(bits),
		Inputs:  bus(bits, pIn),
		Outputs: bus(n, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			in := s.Bus(pIn, bits)
			out := s.Bus(pOut, n)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					val := int(Int64(c, in))
					for k, o := range out {
						c.Set(o, k == val)
					}
				},
			}
		},
	}).NewPart
}
