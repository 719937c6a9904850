package trace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// InfinitySymbol is how an unreachable distance is rendered by String.
const InfinitySymbol = "∞"

// Distance is a path length that may be "not reachable".
//
// The zero value is Infinite, so a freshly allocated map or matrix of
// Distances starts out unreachable. The sentinel is a separate flag rather
// than math.Inf: comparisons and arithmetic below are the whole contract.
type Distance struct {
	v  float64
	ok bool
}

// Infinite is the not-reachable marker.
var Infinite = Distance{}

// Finite wraps a real path length. A non-finite v (±Inf, NaN) is not a
// length and yields Infinite.
func Finite(v float64) Distance {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Infinite
	}

	return Distance{v: v, ok: true}
}

// IsInf reports whether d is the not-reachable marker.
func (d Distance) IsInf() bool { return !d.ok }

// Value returns the length and true, or 0 and false for Infinite.
func (d Distance) Value() (float64, bool) { return d.v, d.ok }

// Add returns d + w. Infinite absorbs any weight.
func (d Distance) Add(w float64) Distance {
	if !d.ok {
		return Infinite
	}

	return Finite(d.v + w)
}

// Plus returns d + o. The sum is Infinite if either operand is.
func (d Distance) Plus(o Distance) Distance {
	if !d.ok || !o.ok {
		return Infinite
	}

	return Finite(d.v + o.v)
}

// Less reports d < o under the ordering "every finite value < Infinite".
// Infinite is never less than anything, including itself.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.ok:
		return false
	case !o.ok:
		return true
	default:
		return d.v < o.v
	}
}

// String renders Infinite as "∞" and finite values in their shortest
// decimal form ("9", "2.5", "-1").
func (d Distance) String() string {
	if !d.ok {
		return InfinitySymbol
	}

	return FormatWeight(d.v)
}

// MarshalJSON encodes Infinite as null and finite values as numbers.
func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.ok {
		return []byte("null"), nil
	}

	return json.Marshal(d.v)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (d *Distance) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = Infinite
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("trace: distance: %w", err)
	}
	*d = Finite(v)

	return nil
}

// FormatWeight renders a weight the way step messages print numbers.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
