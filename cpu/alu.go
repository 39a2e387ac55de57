package cpu

import (
	"strconv"

	"github.com/rparrett/sim3bit"
	"github.com/rparrett/sim3bit/hwlib"
)

// ArithmeticUnit returns a bits-wide arithmetic unit. Exactly one of its
// five enables is expected high; if more than one is, the first in source
// order (add, sub, inc, dec, mul) wins, matching the ALU's own priority.
//
//	Inputs: a[bits], b[bits], add_en, sub_en, inc_en, dec_en, mul_en
//	Outputs: out[bits]
//
func ArithmeticUnit(bits int) hwsim.NewPartFn {
	mask := int64(1)<<uint(bits) - 1
	return (&hwsim.PartSpec{
		Name:    "ArithmeticUnit" + strconv.Itoa(bits),
		Inputs:  append(busNames(bits, "a", "b"), "add_en", "sub_en", "inc_en", "dec_en", "mul_en"),
		Outputs: busNames(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b := s.Bus("a", bits), s.Bus("b", bits)
			addEn, subEn := s.Pin("add_en"), s.Pin("sub_en")
			incEn, decEn, mulEn := s.Pin("inc_en"), s.Pin("dec_en"), s.Pin("mul_en")
			out := s.Bus(pOut, bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					av, bv := hwlib.Int64(c, a), hwlib.Int64(c, b)
					var res int64
					switch {
					case c.Get(addEn):
						res = av + bv
					case c.Get(subEn):
						res = av - bv
					case c.Get(incEn):
						res = av + 1
					case c.Get(decEn):
						res = av - 1
					case c.Get(mulEn):
						res = av * bv
					}
					hwlib.SetInt64(c, out, res&mask)
				}}
		}}).NewPart
}

// LogicUnit returns a bits-wide logic unit. Exactly one enable is expected
// high; NOT ignores b. lsh/rsh follow the same out[i]=a[i+1]/out[i]=a[i-1]
// per-bit routing as hwlib.LShiftN/RShiftN.
//
//	Inputs: a[bits], b[bits], and_en, or_en, xor_en, not_en, rsh_en, lsh_en
//	Outputs: out[bits]
//
func LogicUnit(bits int) hwsim.NewPartFn {
	mask := int64(1)<<uint(bits) - 1
	return (&hwsim.PartSpec{
		Name:    "LogicUnit" + strconv.Itoa(bits),
		Inputs:  append(busNames(bits, "a", "b"), "and_en", "or_en", "xor_en", "not_en", "rsh_en", "lsh_en"),
		Outputs: busNames(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			a, b := s.Bus("a", bits), s.Bus("b", bits)
			andEn, orEn, xorEn := s.Pin("and_en"), s.Pin("or_en"), s.Pin("xor_en")
			notEn, rshEn, lshEn := s.Pin("not_en"), s.Pin("rsh_en"), s.Pin("lsh_en")
			out := s.Bus(pOut, bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					av, bv := hwlib.Int64(c, a), hwlib.Int64(c, b)
					var res int64
					switch {
					case c.Get(andEn):
						res = av & bv
					case c.Get(orEn):
						res = av | bv
					case c.Get(xorEn):
						res = av ^ bv
					case c.Get(notEn):
						res = ^av & mask
					case c.Get(rshEn):
						res = (av << 1) & mask
					case c.Get(lshEn):
						res = av >> 1
					}
					hwlib.SetInt64(c, out, res&mask)
				}}
		}}).NewPart
}

const pOut = "out"

// selector picks ALU result: arith_out when any arithmetic enable is high,
// else logic_out when any logic enable is high, else zero.
func selector(bits int) hwsim.NewPartFn {
	return (&hwsim.PartSpec{
		Name:    "ALUSelect" + strconv.Itoa(bits),
		Inputs:  append(busNames(bits, "arith_out", "logic_out"), "arith_any", "logic_any"),
		Outputs: busNames(bits, pOut),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			arith, logic := s.Bus("arith_out", bits), s.Bus("logic_out", bits)
			arithAny, logicAny := s.Pin("arith_any"), s.Pin("logic_any")
			out := s.Bus(pOut, bits)
			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					switch {
					case c.Get(arithAny):
						for i, o := range out {
							c.Set(o, c.Get(arith[i]))
						}
					case c.Get(logicAny):
						for i, o := range out {
							c.Set(o, c.Get(logic[i]))
						}
					default:
						for _, o := range out {
							c.Set(o, false)
						}
					}
				}}
		}}).NewPart
}

// ALU assembles ArithmeticUnit, LogicUnit and hwlib.ComparatorN: arithmetic
// wins over logic when both fire (shouldn't happen under well-formed
// decoding), the comparator always runs, and its six outputs become the
// ALU's flag bits regardless of which enable fired.
//
//	Inputs: a[bits], b[bits], add, sub, inc, dec, mul, and, or, xor, not, rsh, lsh
//	Outputs: out[bits], eq, neq, lt_u, gt_u, lt_s, gt_s
//
func ALU(bits int) hwsim.NewPartFn {
	arithEnables := []string{"add", "sub", "inc", "dec", "mul"}
	logicEnables := []string{"and", "or", "xor", "not", "rsh", "lsh"}

	inputs := append(busNames(bits, "a", "b"), arithEnables...)
	inputs = append(inputs, logicEnables...)
	outputs := append(busNames(bits, pOut), "eq", "neq", "lt_u", "gt_u", "lt_s", "gt_s")

	ab := busConn(bits, "a", "a") + ", " + busConn(bits, "b", "b") + ", "
	arithConn := ab + "add_en=add, sub_en=sub, inc_en=inc, dec_en=dec, mul_en=mul, " + busConn(bits, pOut, "arith_out")
	logicConn := ab + "and_en=and, or_en=or, xor_en=xor, not_en=not, rsh_en=rsh, lsh_en=lsh, " + busConn(bits, pOut, "logic_out")
	cmpConn := ab + "eq=eq, neq=neq, lt_u=lt_u, gt_u=gt_u, lt_s=lt_s, gt_s=gt_s"
	selConn := busConn(bits, "arith_out", "arith_out") + ", " + busConn(bits, "logic_out", "logic_out") +
		", arith_any=arith_any, logic_any=logic_any, " + busConn(bits, pOut, pOut)

	parts := []hwsim.Part{
		ArithmeticUnit(bits)(arithConn),
		LogicUnit(bits)(logicConn),
		hwlib.ComparatorN(bits)(cmpConn),
		hwlib.OrNWay(len(arithEnables))(orWayConn(arithEnables, "arith_any")),
		hwlib.OrNWay(len(logicEnables))(orWayConn(logicEnables, "logic_any")),
		selector(bits)(selConn),
	}

	p, err := hwsim.Chip("ALU"+strconv.Itoa(bits), inputs, outputs, parts...)
	if err != nil {
		panic(err)
	}
	return p
}

// busConn returns a connection-string fragment wiring a local bus pub to
// net, e.g. busConn(3, "out", "arith_out") -> "out[0..2]=arith_out[0..2]".
func busConn(bits int, pub, net string) string {
	last := strconv.Itoa(bits - 1)
	return pub + "[0.." + last + "]=" + net + "[0.." + last + "]"
}

// orWayConn wires named single-bit pins onto an N-Way OR's in[] bus, e.g.
// orWayConn([]string{"add","sub"}, "arith_any") -> "in[0]=add, in[1]=sub, out=arith_any".
func orWayConn(names []string, out string) string {
	s := ""
	for i, n := range names {
		s += "in[" + strconv.Itoa(i) + "]=" + n + ", "
	}
	return s + "out=" + out
}
