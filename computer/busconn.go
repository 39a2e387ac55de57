package computer

import "strconv"

// busConn returns a connection-string fragment wiring a local bus pub to
// net, e.g. busConn(3, "out", "arith_out") -> "out[0..2]=arith_out[0..2]".
// bits must be >= 1; a 1-bit "bus" degenerates to a single-element range,
// which ExpandNames accepts.
func busConn(bits int, pub, net string) string {
	last := strconv.Itoa(bits - 1)
	return pub + "[0.." + last + "]=" + net + "[0.." + last + "]"
}

func pin(name, net string) string { return name + "=" + net }
