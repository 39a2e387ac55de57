package hwsim

import (
	"strings"

	"github.com/pkg/errors"
)

// A Connection binds one of a part's public pin names (PP) to the name of
// the wire it is connected to in the enclosing chip (CP).
type Connection struct {
	PP string
	CP string
}

// ParseConnections parses a comma-separated connection list such as
// "a=x, b=y, out[0..2]=bus[0..2]" into a slice of Connections.
//
// Bus ranges on either side of '=' are expanded first. If both sides expand
// to the same number of pins they are zipped pairwise; if one side is a
// single pin it is broadcast to every pin on the other side.
func ParseConnections(s string) ([]Connection, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []Connection
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		eq := strings.IndexByte(item, '=')
		if eq < 0 {
			return nil, errors.Errorf("invalid connection %q: missing '='", item)
		}
		lhs := strings.TrimSpace(item[:eq])
		rhs := strings.TrimSpace(item[eq+1:])
		ls, err := expandRange(lhs)
		if err != nil {
			return nil, errors.Wrap(err, "left side "+lhs)
		}
		rs, err := expandRange(rhs)
		if err != nil {
			return nil, errors.Wrap(err, "right side "+rhs)
		}
		switch {
		case len(ls) == len(rs):
			for i := range ls {
				out = append(out, Connection{ls[i], rs[i]})
			}
		case len(ls) == 1:
			for _, r := range rs {
				out = append(out, Connection{ls[0], r})
			}
		case len(rs) == 1:
			for _, l := range ls {
				out = append(out, Connection{l, rs[0]})
			}
		default:
			return nil, errors.Errorf("pin count mismatch: %s = %s", lhs, rhs)
		}
	}
	return out, nil
}
