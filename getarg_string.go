package getarg

// GetString returns the raw value of name. A flag given without "=value"
// returns the empty string, not def. A flag given only as -noX carries no
// string and also returns the empty string.
func (a *Args) GetString(name, def string) string {
	value, r := a.resolve(name)
	switch r {
	case resolvedPositive:
		return value
	case resolvedNegated:
		return ""
	default:
		return def
	}
}

// GetStrings returns every value given for name as -X, in the order the
// tokens appeared. -noX tokens contribute nothing.
func (a *Args) GetStrings(name string) []string {
	if a == nil {
		return nil
	}
	values, ok := a.multi[name]
	if !ok {
		return nil
	}
	return append([]string(nil), values...)
}
