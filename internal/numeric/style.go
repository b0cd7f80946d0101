package numeric

// Range is an advisory numeric bound. A nil side leaves the range open on
// that side. Nothing in this package enforces it; see Contains.
type Range struct {
	Min *float64
	Max *float64
}

// Contains reports whether v lies within the range. Open sides always match.
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Style describes which characters Filter permits in an input string.
// The zero value permits digits only.
type Style struct {
	// AllowDecimalSeparator permits one decimal separator. Both "." and the
	// comma decimal mark are accepted; output always uses ".".
	AllowDecimalSeparator bool

	// AllowNegative permits a single leading minus (and, when combined with
	// AllowExponent, a minus directly after the exponent marker).
	AllowNegative bool

	// AllowExponent permits a single exponent marker. Both "e" and "E" are
	// accepted; output always uses "E".
	AllowExponent bool

	// Range is an advisory numeric bound, never enforced during filtering.
	Range *Range
}

// DefaultStyle returns the documented defaults: decimal separator, negatives
// and exponent all permitted, no range.
func DefaultStyle() Style {
	return Style{
		AllowDecimalSeparator: true,
		AllowNegative:         true,
		AllowExponent:         true,
	}
}
