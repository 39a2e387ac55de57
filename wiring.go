package hwsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// BusPinName returns the indexed pin name of a bus, e.g. BusPinName("a", 2)
// returns "a[2]".
func BusPinName(bus string, i int) string {
	return bus + "[" + strconv.Itoa(i) + "]"
}

// expandRange expands a single bus range reference such as "a[0..3]" into
// []string{"a[0]", "a[1]", "a[2]", "a[3]"}. Descending ranges are allowed.
// Plain names without a ".." range pass through unchanged.
func expandRange(name string) ([]string, error) {
	i := strings.IndexByte(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("empty bus name in " + name)
	}
	n := name[i+1:]
	dots := strings.Index(n, "..")
	if dots < 0 {
		return []string{name}, nil
	}
	start, err := strconv.Atoi(n[:dots])
	if err != nil {
		return nil, errors.Wrap(err, "bad bus range in "+name)
	}
	n = n[dots+2:]
	end := strings.IndexByte(n, ']')
	if end < 0 {
		return nil, errors.New("missing ']' in " + name)
	}
	last, err := strconv.Atoi(n[:end])
	if err != nil {
		return nil, errors.Wrap(err, "bad bus range in "+name)
	}
	var r []string
	if start <= last {
		r = make([]string, 0, last-start+1)
		for i := start; i <= last; i++ {
			r = append(r, BusPinName(bus, i))
		}
	} else {
		r = make([]string, 0, start-last+1)
		for i := start; i >= last; i-- {
			r = append(r, BusPinName(bus, i))
		}
	}
	return r, nil
}

// ExpandNames expands a list of comma-separated pin declarations, including
// bus ranges such as "a[0..2]", into a flat list of individual pin names.
// It panics on malformed ranges, since it is meant to be used on constant
// PartSpec declarations, not on user input.
func ExpandNames(names ...string) []string {
	var r []string
	for _, decl := range names {
		for _, part := range strings.Split(decl, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			xs, err := expandRange(part)
			if err != nil {
				panic(err)
			}
			r = append(r, xs...)
		}
	}
	return r
}

// IO is an alias for ExpandNames, matching PartSpec's doc comment: use IO to
// expand an input or output pin declaration like "a, b, bus[0..1]".
func IO(names ...string) []string {
	return ExpandNames(names...)
}

// Inputs and Outputs are convenience aliases for declaring a PartSpec's pin
// lists inline, e.g. hwsim.Inputs{"a", "b"}.
type Inputs = []string
type Outputs = []string

// Parts is a convenience alias for a slice of Part, e.g. when building up a
// chip's part list incrementally with append before passing it to Chip or
// NewCircuit (which both take parts as a trailing variadic argument, so a
// Parts value must be spread with "...").
type Parts = []Part

// In and Out expand pin declarations (including bus ranges such as
// "a[0..2]") into a flat pin list for use as PartSpec.Inputs/Outputs.
func In(names ...string) []string  { return ExpandNames(names...) }
func Out(names ...string) []string { return ExpandNames(names...) }
