package hwlib

import "github.com/rparrett/sim3bit"

// FlipFlop returns an SR latch built from two cross-coupled NAND gates.
// Both inputs are active-high; S=R=1 is not guarded and settles to whatever
// the feedback produces. Because q and its internal complement each read
// the other's previous-step value, the latch needs two simulation steps to
// settle after an edge on s or r — budget stepsPerCycle accordingly.
//
//	Inputs: s, r
//	Outputs: q
//
func FlipFlop(w string) hwsim.Part {
	return flipFlop.NewPart(w)
}

var flipFlop = &hwsim.PartSpec{
	Name:    "SR",
	Inputs:  []string{"s", "r"},
	Outputs: []string{"q"},
	Mount: func(s *hwsim.Socket) []hwsim.Component {
		sIn, rIn, q := s.Pin("s"), s.Pin("r"), s.Pin("q")
		nq := s.PinOrNew("nq")
		return []hwsim.Component{
			func(c *hwsim.Circuit) { c.Set(q, !(!c.Get(sIn) && c.Get(nq))) },
			func(c *hwsim.Circuit) { c.Set(nq, !(!c.Get(rIn) && c.Get(q))) },
		}
	},
}

// MemoryBit returns a single-bit latch: S = data & WE, R = !data & WE feed
// an SR latch, and Q is gated by RE on the way out.
//
//	Inputs: data, we, re
//	Outputs: out
//
func MemoryBit(w string) hwsim.Part {
	return memoryBit(w)
}

var memoryBit = mustChip("MEMBIT", []string{pData, pWE, pRE}, []string{pOut},
	And("a="+pData+", b="+pWE+", out=s"),
	Not("in="+pData+", out=ndata"),
	And("a=ndata, b="+pWE+", out=r"),
	FlipFlop("s=s, r=r, q=q"),
	And("a=q, b="+pRE+", out="+pOut),
)
