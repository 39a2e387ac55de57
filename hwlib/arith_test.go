package hwlib_test

import (
	"strconv"
	"testing"
	"testing/quick"

	hw "github.com/rparrett/sim3bit"
	hl "github.com/rparrett/sim3bit/hwlib"
)

func TestAdderN(t *testing.T) {
	const bits = 4
	mask := int64(1)<<bits - 1
	var a, b int64
	var out int64
	var carry bool
	c, err := hw.NewCircuit(0, testTPC,
		hl.InputN(bits, func() int64 { return a })("out[0..3]=a[0..3]"),
		hl.InputN(bits, func() int64 { return b })("out[0..3]=b[0..3]"),
		hl.AdderN(bits)("a[0..3]=a[0..3], b[0..3]=b[0..3], out[0..3]=out[0..3], c=c"),
		hl.OutputN(bits, func(v int64) { out = v })("in[0..3]=out[0..3]"),
		hl.Output(func(v bool) { carry = v })("in=c"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	f := func(x, y uint8) bool {
		a, b = int64(x)&mask, int64(y)&mask
		c.TickTock()
		sum := a + b
		return out == sum&mask && carry == (sum > mask)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestAdderSubtractorN(t *testing.T) {
	const bits = 4
	mask := int64(1)<<bits - 1
	var a, b int64
	var sub bool
	var out int64
	c, err := hw.NewCircuit(0, testTPC,
		hl.InputN(bits, func() int64 { return a })("out[0..3]=a[0..3]"),
		hl.InputN(bits, func() int64 { return b })("out[0..3]=b[0..3]"),
		hl.Input(func() bool { return sub })("out=sub"),
		hl.Const(true)("out=oe"),
		hl.AdderSubtractorN(bits)("a[0..3]=a[0..3], b[0..3]=b[0..3], sub=sub, oe=oe, out[0..3]=out[0..3]"),
		hl.OutputN(bits, func(v int64) { out = v })("in[0..3]=out[0..3]"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	for _, sub = range []bool{false, true} {
		for av := int64(0); av <= mask; av++ {
			for bv := int64(0); bv <= mask; bv++ {
				a, b = av, bv
				c.TickTock()
				var exp int64
				if sub {
					exp = (av - bv) & mask
				} else {
					exp = (av + bv) & mask
				}
				if out != exp {
					t.Fatalf("sub=%v %d %d: expected %d, got %d", sub, av, bv, exp, out)
				}
			}
		}
	}
}

func TestComparatorN(t *testing.T) {
	const bits = 4
	mask := int64(1)<<bits - 1
	var a, b int64
	var eq, neq, ltU, gtU, ltS, gtS bool
	c, err := hw.NewCircuit(0, testTPC,
		hl.InputN(bits, func() int64 { return a })("out[0..3]=a[0..3]"),
		hl.InputN(bits, func() int64 { return b })("out[0..3]=b[0..3]"),
		hl.ComparatorN(bits)("a[0..3]=a[0..3], b[0..3]=b[0..3], eq=eq, neq=neq, lt_u=lt_u, gt_u=gt_u, lt_s=lt_s, gt_s=gt_s"),
		hl.Output(func(v bool) { eq = v })("in=eq"),
		hl.Output(func(v bool) { neq = v })("in=neq"),
		hl.Output(func(v bool) { ltU = v })("in=lt_u"),
		hl.Output(func(v bool) { gtU = v })("in=gt_u"),
		hl.Output(func(v bool) { ltS = v })("in=lt_s"),
		hl.Output(func(v bool) { gtS = v })("in=gt_s"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	toSigned := func(v int64) int64 {
		if v&(1<<(bits-1)) != 0 {
			return v - (1 << bits)
		}
		return v
	}

	for av := int64(0); av <= mask; av++ {
		for bv := int64(0); bv <= mask; bv++ {
			a, b = av, bv
			c.TickTock()
			wantEq := av == bv
			if eq != wantEq || neq != !wantEq {
				t.Fatalf("%d vs %d: eq=%v neq=%v", av, bv, eq, neq)
			}
			if ltU != (av < bv) || gtU != (av > bv) {
				t.Fatalf("%d vs %d unsigned: lt_u=%v gt_u=%v", av, bv, ltU, gtU)
			}
			sa, sb := toSigned(av), toSigned(bv)
			if ltS != (sa < sb) || gtS != (sa > sb) {
				t.Fatalf("%d vs %d signed: lt_s=%v gt_s=%v", av, bv, ltS, gtS)
			}
		}
	}
}

func TestDecoderN(t *testing.T) {
	const bits = 3
	n := 1 << bits
	var in int64
	outs := make([]bool, n)
	last := strconv.Itoa(n - 1)
	parts := []hw.Part{
		hl.InputN(bits, func() int64 { return in })("out[0..2]=in[0..2]"),
		hl.DecoderN(bits)("in[0..2]=in[0..2], out[0.." + last + "]=out[0.." + last + "]"),
	}
	for i := 0; i < n; i++ {
		idx := i
		parts = append(parts, hl.Output(func(v bool) { outs[idx] = v })("in=out["+strconv.Itoa(idx)+"]"))
	}
	c, err := hw.NewCircuit(0, testTPC, parts...)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	for in = 0; in < int64(n); in++ {
		c.TickTock()
		for i := 0; i < n; i++ {
			if exp := int64(i) == in; outs[i] != exp {
				t.Fatalf("decode %d: out[%d]=%v, want %v", in, i, outs[i], exp)
			}
		}
	}
}

func TestShiftN(t *testing.T) {
	const bits = 4
	mask := int64(1)<<bits - 1
	var in int64
	var l, r int64
	c, err := hw.NewCircuit(0, testTPC,
		hl.InputN(bits, func() int64 { return in })("out[0..3]=in[0..3]"),
		hl.LShiftN(bits)("in[0..3]=in[0..3], out[0..3]=l[0..3]"),
		hl.RShiftN(bits)("in[0..3]=in[0..3], out[0..3]=r[0..3]"),
		hl.OutputN(bits, func(v int64) { l = v })("in[0..3]=l[0..3]"),
		hl.OutputN(bits, func(v int64) { r = v })("in[0..3]=r[0..3]"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	for in = 0; in <= mask; in++ {
		c.TickTock()
		if exp := (in >> 1) & mask; l != exp {
			t.Fatalf("LShiftN(%04b): got %04b, want %04b", in, l, exp)
		}
		if exp := (in << 1) & mask; r != exp {
			t.Fatalf("RShiftN(%04b): got %04b, want %04b", in, r, exp)
		}
	}
}
