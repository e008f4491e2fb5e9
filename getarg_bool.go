package getarg

// GetBool returns the boolean value of name. A -X token is true unless its
// value is exactly "0". A -noX token, when no -X token exists, is the inverse
// of that rule, so -noX=0 is true. If name was never given, def is returned.
func (a *Args) GetBool(name string, def bool) bool {
	value, r := a.resolve(name)
	switch r {
	case resolvedPositive:
		return interpretBool(value)
	case resolvedNegated:
		return !interpretBool(value)
	default:
		return def
	}
}

// Bool is GetBool with a false default.
func (a *Args) Bool(name string) bool {
	return a.GetBool(name, false)
}
