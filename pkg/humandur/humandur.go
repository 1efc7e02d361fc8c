// Package humandur parses short human-readable duration strings such as
// "1h 1m 1s" into second counts.
package humandur

// Unit is a recognized duration suffix.
type Unit byte

const (
	Second Unit = 's'
	Minute Unit = 'm'
	Hour   Unit = 'h'
	Day    Unit = 'd'
)

// Seconds returns the unit multiplier in seconds, or 0 for an unknown unit.
func (u Unit) Seconds() uint64 {
	switch u {
	case Second:
		return 1
	case Minute:
		return 60
	case Hour:
		return 3600
	case Day:
		return 86400
	}
	return 0
}

// ParseSeconds scans input for magnitude+unit tokens ("1h", "30m") and
// returns the accumulated total in seconds. Units are case-sensitive: d
// (days), h (hours), m (minutes), s (seconds). Tokens may be separated by
// whitespace or written back to back ("1h1m"); repeated units accumulate
// and token order does not matter.
//
// A token is the longest run of ASCII digits followed by exactly one unit
// letter. Anything else ends the current segment: the pending digits are
// dropped and scanning resumes at the next whitespace boundary, so
// "1s foobar" parses to 1. The parse fails with ErrNoValidToken only when
// the whole input yields no token at all.
func ParseSeconds(input string) (uint64, error) {
	var (
		total   uint64
		matched bool
	)

	for i := 0; i < len(input); {
		c := input[i]
		if isSpace(c) {
			i++
			continue
		}
		if c < '0' || c > '9' {
			i = skipSegment(input, i)
			continue
		}

		start := i
		for i < len(input) && input[i] >= '0' && input[i] <= '9' {
			i++
		}
		if i == len(input) {
			// Trailing digits with no unit
			break
		}

		unit := Unit(input[i])
		if unit.Seconds() == 0 {
			i = skipSegment(input, i)
			continue
		}

		var magnitude uint64
		for j := start; j < i; j++ {
			magnitude = magnitude*10 + uint64(input[j]-'0')
		}

		total += magnitude * unit.Seconds()
		matched = true
		i++
	}

	if !matched {
		return 0, ErrNoValidToken
	}
	return total, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// skipSegment advances past the remainder of a non-matching segment.
func skipSegment(s string, i int) int {
	for i < len(s) && !isSpace(s[i]) {
		i++
	}
	return i
}
