package getarg

import "strconv"

// GetInt returns the base-10 integer value of name, or def if name was never
// given.
//
// A flag that was given but does not hold a valid int64 (no value, not a
// number, out of range) yields 0 rather than def. A flag given only as -noX
// has no value and so also yields 0. Callers cannot tell such a flag apart
// from an explicit 0; IsSet only reports presence.
func (a *Args) GetInt(name string, def int64) int64 {
	value, r := a.resolve(name)
	switch r {
	case resolvedPositive:
		return parseIntOrZero(value)
	case resolvedNegated:
		return 0
	default:
		return def
	}
}

func parseIntOrZero(value string) int64 {
	val, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return val
}
