package cpu_test

import (
	"testing"

	hw "github.com/rparrett/sim3bit"
	"github.com/rparrett/sim3bit/cpu"
	hl "github.com/rparrett/sim3bit/hwlib"
)

func TestALU(t *testing.T) {
	const bits = 3
	mask := int64(1)<<bits - 1

	var a, b int64
	names := []string{"add", "sub", "inc", "dec", "mul", "and", "or", "xor", "not", "rsh", "lsh"}
	enables := make(map[string]*bool, len(names))
	var out int64
	var eq, gtS bool

	conn := "a[0..2]=a[0..2], b[0..2]=b[0..2], "
	parts := []hw.Part{
		hl.InputN(bits, func() int64 { return a })("out[0..2]=a[0..2]"),
		hl.InputN(bits, func() int64 { return b })("out[0..2]=b[0..2]"),
	}
	for _, n := range names {
		v := new(bool)
		enables[n] = v
		parts = append(parts, hl.Input(func() bool { return *v })("out="+n))
		conn += n + "=" + n + ", "
	}
	conn += "eq=eq, neq=neq, lt_u=lt_u, gt_u=gt_u, lt_s=lt_s, gt_s=gt_s, out[0..2]=out[0..2]"

	parts = append(parts, cpu.ALU(bits)(conn))
	parts = append(parts,
		hl.OutputN(bits, func(v int64) { out = v })("in[0..2]=out[0..2]"),
		hl.Output(func(v bool) { eq = v })("in=eq"),
		hl.Output(func(v bool) { gtS = v })("in=gt_s"),
	)

	c, err := hw.NewCircuit(0, 8, parts...)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	set := func(on string) {
		for n, v := range enables {
			*v = n == on
		}
	}

	a, b = 5, 3
	set("add")
	c.TickTock()
	if exp := (5 + 3) & mask; out != exp {
		t.Fatalf("add: got %d, want %d", out, exp)
	}

	set("sub")
	c.TickTock()
	if exp := (5 - 3) & mask; out != exp {
		t.Fatalf("sub: got %d, want %d", out, exp)
	}

	set("mul")
	a, b = 3, 2
	c.TickTock()
	if exp := (3 * 2) & mask; out != exp {
		t.Fatalf("mul: got %d, want %d", out, exp)
	}

	set("and")
	a, b = 0b110, 0b011
	c.TickTock()
	if exp := int64(0b010); out != exp {
		t.Fatalf("and: got %03b, want %03b", out, exp)
	}

	set("not")
	a = 0b101
	c.TickTock()
	if exp := ^a & mask; out != exp {
		t.Fatalf("not: got %03b, want %03b", out, exp)
	}

	a, b = 4, 4
	set("")
	c.TickTock()
	if !eq {
		t.Fatalf("a==b should set eq regardless of which enable fired")
	}

	a, b = 3, 2
	c.TickTock()
	if !gtS {
		t.Fatalf("a>b signed should set gt_s")
	}
}
