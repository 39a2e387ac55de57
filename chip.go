package hwsim

import "github.com/pkg/errors"

// Chip composes existing parts into a new part packaged as a PartSpec. The
// pin names given as inputs and outputs (bus ranges such as "a[0..2]" are
// expanded automatically) become the inputs and outputs of the chip; every
// other net name used in a sub-part's connection string is a wire private
// to the chip.
//
// An Xor gate can be built like this:
//
//	xor, err := Chip("XOR", []string{"a", "b"}, []string{"out"},
//		hwlib.Nand("a=a, b=b, out=nandAB"),
//		...
//	)
//
// The returned NewPartFn can then be used to instantiate the chip when
// wiring other chips, exactly like a built-in gate.
func Chip(name string, inputs, outputs []string, parts ...Part) (NewPartFn, error) {
	inputs = ExpandNames(inputs...)
	outputs = ExpandNames(outputs...)

	driven := make(map[string]bool, len(outputs))
	for pn, p := range parts {
		pins := make(map[string]bool, len(p.Inputs)+len(p.Outputs))
		for _, i := range p.Inputs {
			pins[i] = true
		}
		for _, o := range p.Outputs {
			pins[o] = true
		}
		for _, conn := range p.Conns {
			if !pins[conn.PP] {
				return nil, errors.Errorf("chip %s: part %d (%s): unknown pin %q", name, pn, p.Name, conn.PP)
			}
		}
		for _, o := range p.Outputs {
			net := resolveNet(p, o)
			if net == "" {
				continue
			}
			if driven[net] {
				return nil, errors.Errorf("chip %s: net %q driven by more than one output", name, net)
			}
			driven[net] = true
		}
	}
	for _, o := range outputs {
		if !driven[o] {
			return nil, errors.Errorf("chip %s: output %q not driven by any part", name, o)
		}
	}

	cparts := parts
	sp := &PartSpec{
		Name:    name,
		Inputs:  inputs,
		Outputs: outputs,
	}
	sp.Mount = func(s *Socket) []Component {
		var cs []Component
		for _, p := range cparts {
			sub := newSocket(s.c)
			for _, in := range p.Inputs {
				sub.m[in] = s.PinOrNew(resolveNet(p, in))
			}
			for _, out := range p.Outputs {
				sub.m[out] = s.PinOrNew(resolveNet(p, out))
			}
			cs = append(cs, p.Mount(sub)...)
		}
		return cs
	}
	return sp.NewPart, nil
}

// resolveNet returns the wire name a part's pin is connected to within its
// enclosing chip, or "" if the pin is left unconnected (which the enclosing
// Socket resolves to the constant false wire).
func resolveNet(p Part, pinName string) string {
	for _, c := range p.Conns {
		if c.PP == pinName {
			return c.CP
		}
	}
	return ""
}
