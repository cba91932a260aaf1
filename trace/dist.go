package trace

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Dist is a tentative distance: a finite int64 or one of the two infinite
// sentinels. It never relies on math.MaxInt64 arithmetic, so adding a
// weight to Inf stays Inf instead of overflowing.
type Dist struct {
	v   int64
	inf int8 // 0 finite, +1 +∞, -1 -∞
}

// Inf is the "unreachable" sentinel, greater than every finite value.
var Inf = Dist{inf: 1}

// NegInf is the longest-path sentinel, less than every finite value.
var NegInf = Dist{inf: -1}

// Finite wraps v.
func Finite(v int64) Dist { return Dist{v: v} }

// IsInf reports whether d is +∞ or -∞.
func (d Dist) IsInf() bool { return d.inf != 0 }

// IsPosInf reports whether d is +∞.
func (d Dist) IsPosInf() bool { return d.inf > 0 }

// IsNegInf reports whether d is -∞.
func (d Dist) IsNegInf() bool { return d.inf < 0 }

// Value returns the finite value; it is 0 for infinite distances.
func (d Dist) Value() int64 { return d.v }

// Less orders -∞ < finite < +∞.
func (d Dist) Less(o Dist) bool {
	if d.inf != o.inf {
		return d.inf < o.inf
	}
	if d.inf != 0 {
		return false
	}

	return d.v < o.v
}

// Add returns d+w; infinities absorb the weight.
func (d Dist) Add(w int64) Dist {
	if d.inf != 0 {
		return d
	}

	return Dist{v: d.v + w}
}

// Plus returns d+o. +∞ wins over -∞ so an unreachable leg keeps the whole
// path unreachable.
func (d Dist) Plus(o Dist) Dist {
	switch {
	case d.inf > 0 || o.inf > 0:
		return Inf
	case d.inf < 0 || o.inf < 0:
		return NegInf
	}

	return Dist{v: d.v + o.v}
}

// String renders "∞", "-∞" or the decimal value.
func (d Dist) String() string {
	switch {
	case d.inf > 0:
		return "∞"
	case d.inf < 0:
		return "-∞"
	}

	return strconv.FormatInt(d.v, 10)
}

// MarshalJSON encodes finite values as numbers and infinities as "inf"/"-inf".
func (d Dist) MarshalJSON() ([]byte, error) {
	switch {
	case d.inf > 0:
		return []byte(`"inf"`), nil
	case d.inf < 0:
		return []byte(`"-inf"`), nil
	}

	return []byte(strconv.FormatInt(d.v, 10)), nil
}

// UnmarshalJSON accepts a number, "inf" or "-inf".
func (d *Dist) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		switch s {
		case "inf":
			*d = Inf
			return nil
		case "-inf":
			*d = NegInf
			return nil
		}
		return fmt.Errorf("trace: bad distance %q", s)
	}
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("trace: bad distance %s: %w", b, err)
	}
	*d = Finite(v)

	return nil
}
