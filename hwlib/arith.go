package hwlib

import (
	"strconv"

	"github.com/rparrett/sim3bit"
)

var hAdder = &hwsim.PartSpec{
	Name:    "HalfAdder",
	Inputs:  []string{pA, pB},
	Outputs: []string{"s", "c"},
	Mount: func(s *hwsim.Socket) []hwsim.Component {
		a, b := s.Pin(pA), s.Pin(pB)
		sum, cout := s.Pin("s"), s.Pin("c")
		return []hwsim.Component{
			func(c *hwsim.Circuit) {
				va, vb := c.Get(a), c.Get(b)
				c.Set(sum, va && !vb || !va && vb)
				c.Set(cout, va && vb)
			}}
	}}

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(c string) hwsim.Part {
	return hAdder.NewPart(c)
}

var adder = &hwsim.PartSpec{
	Name:    "FullAdder",
	Inputs:  []string{pA, pB, "cin"},
	Outputs: []string{"s", "cout"},
	Mount: func(s *hwsim.Socket) []hwsim.Component {
		a, b, cin := s.Pin(pA), s.Pin(pB), s.Pin("cin")
		sum, cout := s.Pin("s"), s.Pin("cout")
		return []hwsim.Component{
			func(c *hwsim.Circuit) {
				va, vb, cin := c.Get(a), c.Get(b), c.Get(cin)
				s := va && !vb || !va && vb
				c.Set(sum, s && !cin || !s && cin)
				c.Set(cout, s && cin || va && vb)
			}}
	}}

// FullAdder returns a 3 bit adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(c string) hwsim.Part {
	return adder.NewPart(c)
}

// AdderN returns a N-bits adder
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//
func AdderN(bits int) hwsim.NewPartFn {
	adderN := &hwsim.PartSpec{
		Name:    "Adder" + strconv.Itoa(bits),
		Inputs:  bus(bits, pA, pB),
		Outputs: append(bus(bits, pOut), "c"),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b := s.Bus(pA, bits), s.Bus(pB, bits)
			out, cout := s.Bus(pOut, bits), s.Pin("c")
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					cc := false
					for i, o := range out {
						va, vb := c.Get(a[i]), c.Get(b[i])
						s0 := va && !vb || !va && vb
						s := !s0 && cc || s0 && !cc
						cc = va && vb || s0 && cc
						c.Set(o, s)
					}
					c.Set(cout, cc)
				}}
		}}
	return adderN.NewPart
}

var fas = &hwsim.PartSpec{
	Name:    "FullAdderSubtractor",
	Inputs:  []string{pA, pB, "cin", "sub"},
	Outputs: []string{"s", "cout"},
	Mount: func(s *hwsim.Socket) []hwsim.Component {
		a, b, cin, sub := s.Pin(pA), s.Pin(pB), s.Pin("cin"), s.Pin("sub")
		sum, cout := s.Pin("s"), s.Pin("cout")
		return []hwsim.Component{
			func(c *hwsim.Circuit) {
				va, vsub := c.Get(a), c.Get(sub)
				vb := c.Get(b) != vsub
				vcin := c.Get(cin)
				s0 := va != vb
				c.Set(sum, s0 != vcin)
				c.Set(cout, (s0 && vcin) || (va && vb))
			}}
	}}

// FullAdderSubtractor returns a 1-bit adder/subtractor cell: b is XORed with
// sub before entering the adder, and the chain's initial cin equals sub,
// giving two's-complement subtraction when sub is high.
//
//	Inputs: a, b, cin, sub
//	Outputs: s, cout
//
func FullAdderSubtractor(w string) hwsim.Part {
	return fas.NewPart(w)
}

// addSubRaw computes the raw n-bit two's-complement sum (and final carry) of
// a and b, subtracting when sub is true. It backs both AdderSubtractorN and
// ComparatorN, which need the unrounded sum/carry pair before any
// output_enable gating is applied.
func addSubRaw(a, b []bool, sub bool) (sum []bool, carry bool) {
	sum = make([]bool, len(a))
	cc := sub
	for i := range a {
		vb := b[i] != sub
		s0 := a[i] != vb
		sum[i] = s0 != cc
		cc = (s0 && cc) || (a[i] && vb)
	}
	return sum, cc
}

// AdderSubtractorN returns a bits-wide adder/subtractor: sub_enable feeds the
// chain's initial cin and every cell's sub pin (two's-complement
// subtraction); output_enable gates every sum bit, yielding all zero when
// low.
//
//	Inputs: a[bits], b[bits], sub, oe
//	Outputs: out[bits]
//
func AdderSubtractorN(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "AdderSubtractor" + strconv.Itoa(bits),
		Inputs:  append(bus(bits, pA, pB), "sub", "oe"),
		Outputs: bus(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b := s.Bus(pA, bits), s.Bus(pB, bits)
			sub, oe := s.Pin("sub"), s.Pin("oe")
			out := s.Bus(pOut, bits)
			av := make([]bool, bits)
			bv := make([]bool, bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					for i := range av {
						av[i] = c.Get(a[i])
						bv[i] = c.Get(b[i])
					}
					sum, _ := addSubRaw(av, bv, c.Get(sub))
					en := c.Get(oe)
					for i, o := range out {
						c.Set(o, en && sum[i])
					}
				}}
		}}).NewPart
}
