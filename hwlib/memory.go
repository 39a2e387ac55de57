package hwlib

import (
	"strconv"

	"github.com/rparrett/sim3bit"
)

// ProgramMemory returns a 2^addrBits-slot instruction store: each slot holds
// four dataBits-wide fields (opcode, c, a, b). A write pulse on we latches
// all four fields of the addressed slot; a read with re high reproduces
// them on the field outputs, otherwise the outputs are zero.
//
// As with AdderN and the other wide parts in this package, the 2^addrBits
// slots are a plain Go slice indexed by the address bus read as an integer,
// not a fabric of individually-wired Register/Decoder parts: the externally
// observable read/write behavior is identical and this is dramatically
// cheaper to simulate at the widths the program counter needs.
//
//	Inputs: addr[addrBits], opcode[dataBits], c[dataBits], a[dataBits], b[dataBits], we, re
//	Outputs: opcode_out[dataBits], c_out[dataBits], a_out[dataBits], b_out[dataBits]
//
func ProgramMemory(addrBits, dataBits int) hwsim.NewPartFn {
	n := 1 << uint(addrBits)
	return (&hwsim.PartSpec{
		Name: "ProgramMemory" + strconv.Itoa(addrBits) + "x" + strconv.Itoa(dataBits),
		Inputs: cat(
			bus(addrBits, "addr"),
			bus(dataBits, "opcode", "c", pA, pB),
			[]string{pWE, pRE},
		),
		Outputs: cat(
			bus(dataBits, "opcode_out", "c_out", "a_out", "b_out"),
		),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			addr := s.Bus("addr", addrBits)
			opIn, cIn, aIn, bIn := s.Bus("opcode", dataBits), s.Bus("c", dataBits), s.Bus(pA, dataBits), s.Bus(pB, dataBits)
			we, re := s.Pin(pWE), s.Pin(pRE)
			opOut, cOut, aOut, bOut := s.Bus("opcode_out", dataBits), s.Bus("c_out", dataBits), s.Bus("a_out", dataBits), s.Bus("b_out", dataBits)

			opcode := make([][]bool, n)
			cField := make([][]bool, n)
			aField := make([][]bool, n)
			bField := make([][]bool, n)
			for i := range opcode {
				opcode[i] = make([]bool, dataBits)
				cField[i] = make([]bool, dataBits)
				aField[i] = make([]bool, dataBits)
				bField[i] = make([]bool, dataBits)
			}

			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					idx := int(Int64(c, addr))
					if c.Get(we) {
						for i := 0; i < dataBits; i++ {
							opcode[idx][i] = c.Get(opIn[i])
							cField[idx][i] = c.Get(cIn[i])
							aField[idx][i] = c.Get(aIn[i])
							bField[idx][i] = c.Get(bIn[i])
						}
					}
					rd := c.Get(re)
					for i := 0; i < dataBits; i++ {
						c.Set(opOut[i], rd && opcode[idx][i])
						c.Set(cOut[i], rd && cField[idx][i])
						c.Set(aOut[i], rd && aField[idx][i])
						c.Set(bOut[i], rd && bField[idx][i])
					}
				}}
		}}).NewPart
}

// MainMemory returns a 2^addrBits-slot, triple-ported (2 read, 1 write) data
// store. Port A and port B each read independently (gated by re_a/re_b); the
// write port (we, addr_c, data) is separate and commits once per clock
// cycle, on the cycle's last step, from the we, addr_c and data values
// present then. A write and a read of the same address in the same cycle
// observe the pre-write value on the read port; the new value is visible
// starting the next cycle, because the read is computed from the backing
// slice before the write mutates it.
//
// dump, if non-nil, is overwritten with every slot's current value (as an
// int64) on every step — a read-side counterpart to Latch/LatchN, letting a
// driver show the full memory contents without adding wired read ports for
// every slot.
//
//	Inputs: addr_a[addrBits], addr_b[addrBits], addr_c[addrBits], data[dataBits], we, re_a, re_b
//	Outputs: data_a[dataBits], data_b[dataBits]
//
func MainMemory(addrBits, dataBits int, dump *[]int64) hwsim.NewPartFn {
	n := 1 << uint(addrBits)
	return (&hwsim.PartSpec{
		Name: "MainMemory" + strconv.Itoa(addrBits) + "x" + strconv.Itoa(dataBits),
		Inputs: cat(
			bus(addrBits, "addr_a", "addr_b", "addr_c"),
			bus(dataBits, pData),
			[]string{pWE, "re_a", "re_b"},
		),
		Outputs: cat(bus(dataBits, "data_a", "data_b")),
		Mount: func(s *hwsim.Socket) []hwsim.Component {
			addrA, addrB, addrC := s.Bus("addr_a", addrBits), s.Bus("addr_b", addrBits), s.Bus("addr_c", addrBits)
			data := s.Bus(pData, dataBits)
			we, reA, reB := s.Pin(pWE), s.Pin("re_a"), s.Pin("re_b")
			dataA, dataB := s.Bus("data_a", dataBits), s.Bus("data_b", dataBits)

			mem := make([][]bool, n)
			for i := range mem {
				mem[i] = make([]bool, dataBits)
			}
			if dump != nil {
				*dump = make([]int64, n)
			}

			return []hwsim.Component{
				func(c *hwsim.Circuit) {
					idxA := int(Int64(c, addrA))
					idxB := int(Int64(c, addrB))
					idxC := int(Int64(c, addrC))

					rdA, rdB := c.Get(reA), c.Get(reB)
					for i := 0; i < dataBits; i++ {
						c.Set(dataA[i], rdA && mem[idxA][i])
						c.Set(dataB[i], rdB && mem[idxB][i])
					}

					lastStep := (c.Steps()+1)&(c.SPC()-1) == 0
					if lastStep && c.Get(we) {
						for i := 0; i < dataBits; i++ {
							mem[idxC][i] = c.Get(data[i])
						}
					}

					if dump != nil {
						for i, slot := range mem {
							var v int64
							for b, bit := range slot {
								if bit {
									v |= 1 << uint(b)
								}
							}
							(*dump)[i] = v
						}
					}
				}}
		}}).NewPart
}
