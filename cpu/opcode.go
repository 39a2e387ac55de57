package cpu

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// OpcodeTable maps operation names to their binary opcode and back, parsed
// once from a newline-separated "<bits> <name>" table. All opcodes must
// share the same bit width; that width becomes the CPU's opcode field size.
type OpcodeTable struct {
	Bits    int
	ToCode  map[string]int
	ToName  map[int]string
}

// arithLogicOps are the operation names New routes to ALU enables; every other name is left for the containing computer to wire to
// its own control fabric (HALT, jumps, MOVL, ...).
var arithLogicOps = []string{"ADD", "SUB", "INC", "DEC", "MUL", "AND", "OR", "XOR", "NOT", "RSH", "LSH"}

// ParseOpcodeTable parses a table of "<bits> <name>" lines, one per
// operation. Blank lines and '#'-prefixed comments are skipped. A line with
// the wrong field count, a non-binary bits token, or a width mismatched
// against earlier lines is logged as a warning and skipped rather than
// aborting the parse; a duplicate binary code or name silently overwrites
// the earlier mapping. Parsing only fails if no line yields a valid opcode.
func ParseOpcodeTable(table string) (*OpcodeTable, error) {
	t := &OpcodeTable{ToCode: make(map[string]int), ToName: make(map[int]string)}
	for lineNo, line := range strings.Split(table, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			slog.Warn("opcode table: skipping malformed line", "line", lineNo+1, "text", line)
			continue
		}
		bits, name := fields[0], strings.ToUpper(fields[1])
		binary := true
		for _, r := range bits {
			if r != '0' && r != '1' {
				binary = false
				break
			}
		}
		if !binary {
			slog.Warn("opcode table: skipping non-binary opcode", "line", lineNo+1, "bits", bits)
			continue
		}
		if t.Bits == 0 {
			t.Bits = len(bits)
		} else if len(bits) != t.Bits {
			slog.Warn("opcode table: skipping width mismatch", "line", lineNo+1, "width", len(bits), "table_width", t.Bits)
			continue
		}
		code, err := strconv.ParseInt(bits, 2, 64)
		if err != nil {
			slog.Warn("opcode table: skipping unparseable opcode", "line", lineNo+1, "err", err)
			continue
		}
		if old, ok := t.ToName[int(code)]; ok {
			delete(t.ToCode, old)
		}
		if old, ok := t.ToCode[name]; ok {
			delete(t.ToName, old)
		}
		t.ToCode[name] = int(code)
		t.ToName[int(code)] = name
	}
	if len(t.ToCode) == 0 {
		return nil, errors.New("opcode table has no valid opcodes")
	}
	return t, nil
}

// Opcode returns the numeric opcode assigned to name, if any.
func (t *OpcodeTable) Opcode(name string) (int, bool) {
	c, ok := t.ToCode[strings.ToUpper(name)]
	return c, ok
}

// Name returns the operation name assigned to opcode, if any.
func (t *OpcodeTable) Name(opcode int) (string, bool) {
	n, ok := t.ToName[opcode]
	return n, ok
}
