package hwlib

import (
	"strconv"

	"github.com/rparrett/sim3bit"
)

// ComparatorN returns a bits-wide comparator producing the six-flag result
// of a - b (always computed, regardless of how the caller uses the flags):
// EQ, NEQ, LT_U, GT_U (unsigned), LT_S, GT_S (signed). It shares addSubRaw
// with AdderSubtractorN rather than tapping a live adder's pins, since both
// only need the raw sum and carry, not a wired dependency between them.
//
//	Inputs: a[bits], b[bits]
//	Outputs: eq, neq, lt_u, gt_u, lt_s, gt_s
//
func ComparatorN(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "Comparator" + strconv.Itoa(bits),
		Inputs:  bus(bits, pA, pB),
		Outputs: []string{"eq", "neq", "lt_u", "gt_u", "lt_s", "gt_s"},
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b := s.Bus(pA, bits), s.Bus(pB, bits)
			eq, neq := s.Pin("eq"), s.Pin("neq")
			ltU, gtU := s.Pin("lt_u"), s.Pin("gt_u")
			ltS, gtS := s.Pin("lt_s"), s.Pin("gt_s")
			av := make([]bool, bits)
			bv := make([]bool, bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					for i := range av {
						av[i] = c.Get(a[i])
						bv[i] = c.Get(b[i])
					}
					sum, carry := addSubRaw(av, bv, true)
					z := true
					for _, bit := range sum {
						if bit {
							z = false
							break
						}
					}
					n := sum[bits-1]
					aSign := av[bits-1]
					bEffSign := !bv[bits-1]
					v := (aSign == bEffSign) && (aSign != n)

					c.Set(eq, z)
					c.Set(neq, !z)
					c.Set(ltU, !carry)
					c.Set(gtU, carry && !z)
					c.Set(ltS, n != v)
					c.Set(gtS, (n == v) && !z)
				}}
		}}).NewPart
}
