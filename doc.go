/*
Package hwsim provides a structural digital logic simulator: a small
hardware description API and a stepped circuit evaluator, used here to
build a 3-bit computer from individual gates up through a working CPU.

A Circuit holds double-buffered wire state; each Step evaluates every
mounted Component against the current buffer and writes to the other,
so a sub-part never observes another sub-part's output from the same
step. Gates, muxers, registers and other reusable parts live in
sibling package hwlib; the cpu and computer packages compose them into
a datapath, a control unit, and a loadable, steppable machine.

The API relies on closures: a PartSpec's Mount function receives a
Socket bound to its caller's wire numbers and returns the Components
that implement it, so composite chips are themselves ordinary parts.
*/
package hwsim
