package hwsim_test

import (
	hw "github.com/rparrett/sim3bit"
	hl "github.com/rparrett/sim3bit/hwlib"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Circuit", func() {

	Describe("clock edges", func() {
		It("reports AtTick only at the start of a cycle", func() {
			c, err := hw.NewCircuit(0, 8, hl.Const(true)("out=x"))
			Expect(err).NotTo(HaveOccurred())
			defer c.Dispose()

			Expect(c.AtTick()).To(BeTrue())
			seenTickAgain := false
			for i := 0; i < 16; i++ {
				c.Step()
				if c.AtTick() {
					seenTickAgain = true
				}
			}
			Expect(seenTickAgain).To(BeTrue())
		})

		It("advances Steps by one per Step call", func() {
			c, err := hw.NewCircuit(0, 8, hl.Const(true)("out=x"))
			Expect(err).NotTo(HaveOccurred())
			defer c.Dispose()

			before := c.Steps()
			c.Step()
			Expect(c.Steps()).To(Equal(before + 1))
		})

		It("rounds stepsPerCycle up to the next power of two", func() {
			c, err := hw.NewCircuit(0, 5, hl.Const(true)("out=x"))
			Expect(err).NotTo(HaveOccurred())
			defer c.Dispose()
			Expect(c.SPC()).To(Equal(uint(8)))
		})
	})

	Describe("FlipFlop", func() {
		It("needs two steps to settle after an edge on s or r", func() {
			var s, r bool
			var q bool
			c, err := hw.NewCircuit(0, 8,
				hl.Input(func() bool { return s })("out=s"),
				hl.Input(func() bool { return r })("out=r"),
				hl.FlipFlop("s=s, r=r, q=q"),
				hl.Output(func(v bool) { q = v })("in=q"),
			)
			Expect(err).NotTo(HaveOccurred())
			defer c.Dispose()

			// Each phase runs four steps: the Input parts deliver s and r
			// one step late and the Output probe reads q one step late,
			// around the latch's own two settling steps.
			s, r = true, false
			for i := 0; i < 4; i++ {
				c.Step()
			}
			Expect(q).To(BeTrue(), "setting s should latch q true")

			s, r = false, true
			for i := 0; i < 4; i++ {
				c.Step()
			}
			Expect(q).To(BeFalse(), "setting r should reset q false")

			s, r = false, false
			for i := 0; i < 4; i++ {
				c.Step()
			}
			Expect(q).To(BeFalse(), "with s=r=0 the latch holds its last state")
		})
	})

	Describe("composition", func() {
		It("rejects a chip with an undriven declared output", func() {
			_, err := hw.Chip("broken", hw.IO("a"), hw.IO("out"),
				hl.And("a=a, b=a, out=unused"),
			)
			Expect(err).To(HaveOccurred())
		})

		It("wires nested chips by net name", func() {
			inner, err := hw.Chip("inner", hw.IO("a", "b"), hw.IO("out"),
				hl.And("a=a, b=b, out=out"),
			)
			Expect(err).NotTo(HaveOccurred())

			outer, err := hw.Chip("outer", hw.IO("a", "b", "c"), hw.IO("out"),
				inner("a=a, b=b, out=mid"),
				hl.And("a=mid, b=c, out=out"),
			)
			Expect(err).NotTo(HaveOccurred())

			var a, b, cIn int64
			var out bool
			circuit, err := hw.NewCircuit(0, 8,
				hl.Input(func() bool { return a != 0 })("out=a"),
				hl.Input(func() bool { return b != 0 })("out=b"),
				hl.Input(func() bool { return cIn != 0 })("out=c"),
				outer("a=a, b=b, c=c, out=out"),
				hl.Output(func(v bool) { out = v })("in=out"),
			)
			Expect(err).NotTo(HaveOccurred())
			defer circuit.Dispose()

			for a = 0; a < 2; a++ {
				for b = 0; b < 2; b++ {
					for cIn = 0; cIn < 2; cIn++ {
						circuit.TickTock()
						Expect(out).To(Equal(a != 0 && b != 0 && cIn != 0))
					}
				}
			}
		})
	})
})
