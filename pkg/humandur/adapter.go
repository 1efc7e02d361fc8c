package humandur

import "time"

// FromSeconds converts a second count into a time.Duration with a zero
// sub-second component.
func FromSeconds(secs uint64) time.Duration {
	return time.Duration(secs) * time.Second
}

// ParseDuration parses input with ParseSeconds and returns the result as a
// time.Duration. It performs no parsing of its own.
func ParseDuration(input string) (time.Duration, error) {
	secs, err := ParseSeconds(input)
	if err != nil {
		return 0, err
	}
	return FromSeconds(secs), nil
}
