package hwlib

import "github.com/rparrett/sim3bit"

// mustChip wraps hwsim.Chip for package-level part definitions whose wiring
// is fixed at compile time: a wiring error here is a bug in this package, not
// a caller mistake, so it panics instead of threading an error back up.
func mustChip(name string, inputs, outputs []string, parts ...hwsim.Part) hwsim.NewPartFn {
	p, err := hwsim.Chip(name, inputs, outputs, parts...)
	if err != nil {
		panic(err)
	}
	return p
}

// cat concatenates pin name slices, e.g. when assembling a wide PartSpec's
// Inputs/Outputs out of several bus() calls.
func cat(ss ...[]string) []string {
	var r []string
	for _, s := range ss {
		r = append(r, s...)
	}
	return r
}
