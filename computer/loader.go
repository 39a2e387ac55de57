package computer

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// searchPaths are tried in order when the given program path does not
// resolve directly, mirroring a loader invoked from varying working
// directories (repo root, cmd/, or a nested test binary).
func searchPaths(name string) []string {
	return []string{name, "./" + name, "../" + name, "../src/" + name}
}

// resolveProgramPath returns the first existing candidate for name.
func resolveProgramPath(name string) (string, error) {
	for _, p := range searchPaths(name) {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.Errorf("program %q not found (tried %s)", name, strings.Join(searchPaths(name), ", "))
}

// LoadProgram reads a text program (one "opcode C A B" instruction per
// line, blank lines and '#' comments ignored) and drives it into program
// memory one line at a time, exactly as a loader pulsing the PM write
// enable would: address and instruction-field values are pushed through
// dedicated drive-stubs (hwlib.LatchN) and the write pulsed high then low
// for each line. Once every line is loaded, the PM address input is
// switched from the loader's counter back to the program counter and the
// field drive-stubs are zeroed, so the next Step sees the instruction at
// PC=0.
func (c *Computer) LoadProgram(name string) error {
	path, err := resolveProgramPath(name)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var addr int64
	sc := bufio.NewScanner(f)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return errors.Errorf("%s:%d: expected \"<opcode> <C> <A> <B>\", got %q", path, lineNo, line)
		}
		vals := make([]int64, 4)
		for i, tok := range fields {
			v, err := parseField(tok)
			if err != nil {
				return errors.Wrapf(err, "%s:%d", path, lineNo)
			}
			vals[i] = v
		}

		c.loadAddrVal = addr
		c.loadOp, c.loadC, c.loadA, c.loadB = vals[0], vals[1], vals[2], vals[3]
		// The address passes through the PM address mux, one step behind
		// the field values, so it settles before the write pulse.
		c.circuit.Step()
		c.pmWE = true
		c.circuit.Step()
		c.pmWE = false
		c.circuit.Step()
		addr++
	}
	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	c.loading = false
	c.loadAddrVal, c.loadOp, c.loadC, c.loadA, c.loadB = 0, 0, 0, 0, 0
	for i := uint(0); i < stepsPerCycle; i++ {
		c.circuit.Step()
	}
	return nil
}

// parseField parses one whitespace-separated program token: a binary
// literal if every character is '0' or '1', a decimal literal otherwise.
// The result must fit in N bits.
func parseField(tok string) (int64, error) {
	base := 2
	for _, r := range tok {
		if r != '0' && r != '1' {
			base = 10
			break
		}
	}
	v, err := strconv.ParseInt(tok, base, 64)
	if err != nil {
		return 0, errors.Errorf("%q is not a valid base-%d literal", tok, base)
	}
	if v < 0 || v >= 1<<uint(N) {
		return 0, errors.Errorf("%q does not fit in %d bits", tok, N)
	}
	return v, nil
}
