package numeric

import "strings"

// Filter sanitizes input so it only contains characters permitted by style.
//
// The input is scanned left to right. Digits are always kept. A decimal
// separator ("." or ","), a minus, and an exponent marker ("e" or "E") are
// kept only when the style permits them and they have not already appeared:
// at most one separator (before the exponent marker), at most one mantissa
// sign (emitted at position 0 regardless of where it was typed), at most one
// exponent marker, and at most one exponent sign ("-" or "+") directly after
// the marker. The separator is normalized to "." and the exponent marker
// to "E". When the style disallows exponents, a stripped marker takes a
// sign typed directly after it along with it.
//
// Filter never fails; disallowed characters are dropped silently. The output
// is a valid intermediate typing state, not necessarily a parsable number:
// a lone "-" or "1." survives filtering.
func Filter(input string, style Style) string {
	var b strings.Builder
	b.Grow(len(input))

	var negative, seenSep, seenExp bool
	var droppedExp bool
	for _, r := range input {
		// A sign directly after a stripped exponent marker belongs to the
		// stripped exponent, not the mantissa: "1e-5" with exponents
		// disallowed filters to "15", not "-15".
		wasDroppedExp := droppedExp
		droppedExp = false

		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == ',':
			if style.AllowDecimalSeparator && !seenSep && !seenExp {
				b.WriteByte('.')
				seenSep = true
			}
		case r == '-':
			if wasDroppedExp || !style.AllowNegative {
				continue
			}
			if !seenExp {
				// Mantissa sign: collected once, prepended below so that
				// "1-2-3" filters to "-123" rather than keeping the minus
				// where it was typed.
				negative = true
			} else if b.Len() > 0 && b.String()[b.Len()-1] == 'E' {
				// Exponent sign: legal only directly after the marker.
				b.WriteByte('-')
			}
		case r == '+':
			// Only as an explicit exponent sign, so canonical scientific
			// output like "1.5E+03" survives refiltering.
			if seenExp && b.Len() > 0 && b.String()[b.Len()-1] == 'E' {
				b.WriteByte('+')
			}
		case r == 'e' || r == 'E':
			if !style.AllowExponent {
				droppedExp = true
			} else if !seenExp {
				b.WriteByte('E')
				seenExp = true
			}
		}
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
