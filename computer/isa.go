package computer

// ISAv2 is the 3-bit computer's eight-opcode instruction set: one ALU
// operation per opcode is absent (CMP/JEQ/JGT/MOVL/HALT/NOP are control
// operations the cpu package leaves unrouted; New wires them itself).
const ISAv2 = `
000 HALT
001 MOVL
010 ADD
011 SUB
100 CMP
101 JEQ
110 JGT
111 NOP
`
