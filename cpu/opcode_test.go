package cpu_test

import (
	"testing"

	"github.com/rparrett/sim3bit/cpu"
)

func TestParseOpcodeTable(t *testing.T) {
	table, err := cpu.ParseOpcodeTable(`
		# comment
		000 HALT
		001 movl

		010 ADD
	`)
	if err != nil {
		t.Fatal(err)
	}
	if table.Bits != 3 {
		t.Fatalf("Bits = %d, want 3", table.Bits)
	}
	if op, ok := table.Opcode("MOVL"); !ok || op != 1 {
		t.Fatalf("Opcode(MOVL) = %d,%v, want 1,true (case-insensitive)", op, ok)
	}
	if name, ok := table.Name(0); !ok || name != "HALT" {
		t.Fatalf("Name(0) = %q,%v, want HALT,true", name, ok)
	}
	if _, ok := table.Name(7); ok {
		t.Fatalf("Name(7) should not exist")
	}
}

func TestParseOpcodeTableSkipsMalformedLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string // mnemonic that should have made it into the table
	}{
		{"width mismatch", "000 HALT\n01 ADD", "HALT"},
		{"not binary", "002 BAD\n000 HALT", "HALT"},
		{"wrong field count", "000 HALT extra ADD\n001 ADD", "ADD"},
	}
	for _, c := range cases {
		table, err := cpu.ParseOpcodeTable(c.in)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		if _, ok := table.Opcode(c.want); !ok {
			t.Errorf("%s: %s should still be mapped despite the skipped line", c.name, c.want)
		}
	}
}

func TestParseOpcodeTableErrors(t *testing.T) {
	cases := []string{
		"",                     // empty table
		"002 BAD\nnot 2 words", // no line yields a valid opcode
	}
	for _, in := range cases {
		if _, err := cpu.ParseOpcodeTable(in); err == nil {
			t.Errorf("ParseOpcodeTable(%q): expected error", in)
		}
	}
}

func TestParseOpcodeTableDuplicateOverwrites(t *testing.T) {
	table, err := cpu.ParseOpcodeTable("000 A\n000 B")
	if err != nil {
		t.Fatal(err)
	}
	if name, _ := table.Name(0); name != "B" {
		t.Fatalf("later line should win: Name(0) = %q, want B", name)
	}
	if _, ok := table.Opcode("A"); ok {
		t.Fatalf("A should no longer be mapped once overwritten")
	}
}
