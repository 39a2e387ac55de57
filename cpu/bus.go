// Package cpu assembles the ALU and Control_Unit structural composites from
// hwlib into a datapath/decoder pair, then composes them into a CPU: an
// opcode table, a decoder-to-enable fan, and a wired data/PC interface.
package cpu

import "github.com/rparrett/sim3bit"

// busNames returns the expanded pin names of one or more bits-wide buses,
// e.g. busNames(3, "a", "b") -> a[0],a[1],a[2],b[0],b[1],b[2]. It mirrors
// hwlib's unexported bus() helper for this package's own wide PartSpecs.
func busNames(bits int, names ...string) []string {
	var r []string
	for _, n := range names {
		for i := 0; i < bits; i++ {
			r = append(r, hwsim.BusPinName(n, i))
		}
	}
	return r
}
