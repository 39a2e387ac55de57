package hwlib_test

import (
	"testing"

	hw "github.com/rparrett/sim3bit"
	hl "github.com/rparrett/sim3bit/hwlib"
)

func TestProgramMemory(t *testing.T) {
	const addrBits, dataBits = 3, 3
	var addr, op, cf, af, bf int64
	var we, re bool
	var opOut, cOut, aOut, bOut int64
	c, err := hw.NewCircuit(0, testTPC,
		hl.InputN(addrBits, func() int64 { return addr })("out[0..2]=addr[0..2]"),
		hl.InputN(dataBits, func() int64 { return op })("out[0..2]=op[0..2]"),
		hl.InputN(dataBits, func() int64 { return cf })("out[0..2]=c[0..2]"),
		hl.InputN(dataBits, func() int64 { return af })("out[0..2]=a[0..2]"),
		hl.InputN(dataBits, func() int64 { return bf })("out[0..2]=b[0..2]"),
		hl.Input(func() bool { return we })("out=we"),
		hl.Input(func() bool { return re })("out=re"),
		hl.ProgramMemory(addrBits, dataBits)(
			"addr[0..2]=addr[0..2], opcode[0..2]=op[0..2], c[0..2]=c[0..2], a[0..2]=a[0..2], b[0..2]=b[0..2], "+
				"we=we, re=re, opcode_out[0..2]=op_out[0..2], c_out[0..2]=c_out[0..2], a_out[0..2]=a_out[0..2], b_out[0..2]=b_out[0..2]"),
		hl.OutputN(dataBits, func(v int64) { opOut = v })("in[0..2]=op_out[0..2]"),
		hl.OutputN(dataBits, func(v int64) { cOut = v })("in[0..2]=c_out[0..2]"),
		hl.OutputN(dataBits, func(v int64) { aOut = v })("in[0..2]=a_out[0..2]"),
		hl.OutputN(dataBits, func(v int64) { bOut = v })("in[0..2]=b_out[0..2]"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	addr, op, cf, af, bf, we, re = 2, 1, 2, 3, 4, true, true
	c.TickTock()
	if opOut != 1 || cOut != 2 || aOut != 3 || bOut != 4 {
		t.Fatalf("write+read slot 2: got op=%d c=%d a=%d b=%d", opOut, cOut, aOut, bOut)
	}

	addr, we = 5, true
	op, cf, af, bf = 7, 6, 5, 4
	c.TickTock()
	if opOut != 7 || cOut != 6 || aOut != 5 || bOut != 4 {
		t.Fatalf("write+read slot 5: got op=%d c=%d a=%d b=%d", opOut, cOut, aOut, bOut)
	}

	addr, we, re = 2, false, true
	c.TickTock()
	if opOut != 1 || cOut != 2 || aOut != 3 || bOut != 4 {
		t.Fatalf("re-read slot 2 unaffected by slot 5 write: got op=%d c=%d a=%d b=%d", opOut, cOut, aOut, bOut)
	}

	re = false
	c.TickTock()
	if opOut != 0 || cOut != 0 || aOut != 0 || bOut != 0 {
		t.Fatalf("re low should read zero: got op=%d c=%d a=%d b=%d", opOut, cOut, aOut, bOut)
	}
}

func TestMainMemory(t *testing.T) {
	const addrBits, dataBits = 3, 3
	var addrA, addrB, addrC, data int64
	var we, reA, reB bool
	var dataA, dataB int64
	var dump []int64

	c, err := hw.NewCircuit(0, testTPC,
		hl.InputN(addrBits, func() int64 { return addrA })("out[0..2]=addr_a[0..2]"),
		hl.InputN(addrBits, func() int64 { return addrB })("out[0..2]=addr_b[0..2]"),
		hl.InputN(addrBits, func() int64 { return addrC })("out[0..2]=addr_c[0..2]"),
		hl.InputN(dataBits, func() int64 { return data })("out[0..2]=data[0..2]"),
		hl.Input(func() bool { return we })("out=we"),
		hl.Input(func() bool { return reA })("out=re_a"),
		hl.Input(func() bool { return reB })("out=re_b"),
		hl.MainMemory(addrBits, dataBits, &dump)(
			"addr_a[0..2]=addr_a[0..2], addr_b[0..2]=addr_b[0..2], addr_c[0..2]=addr_c[0..2], data[0..2]=data[0..2], "+
				"we=we, re_a=re_a, re_b=re_b, data_a[0..2]=data_a[0..2], data_b[0..2]=data_b[0..2]"),
		hl.OutputN(dataBits, func(v int64) { dataA = v })("in[0..2]=data_a[0..2]"),
		hl.OutputN(dataBits, func(v int64) { dataB = v })("in[0..2]=data_b[0..2]"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	// write 5 at slot 3, read slot 3 through port A in the same step: the
	// pre-write value (zero) is what's observed.
	addrA, addrC, data, we, reA = 3, 3, 5, true, true
	c.TickTock()
	if dataA != 0 {
		t.Fatalf("same-cycle read should see pre-write value: got %d, want 0", dataA)
	}
	if dump[3] != 5 {
		t.Fatalf("dump should reflect the write: got %d, want 5", dump[3])
	}

	// next cycle, port B sees the settled value.
	we = false
	addrB, reB = 3, true
	c.TickTock()
	if dataB != 5 {
		t.Fatalf("next-cycle read: got %d, want 5", dataB)
	}
}
