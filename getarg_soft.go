package getarg

// SoftSet returns a copy of a with name set to value, unless name was already
// given in either form. The receiver is never modified. The boolean reports
// whether the value was applied.
func (a *Args) SoftSet(name, value string) (*Args, bool) {
	if a.IsSet(name) {
		return a, false
	}
	next := deepCopyArgs(a)
	next.record(occurrence{Name: name, Value: value})
	return next, true
}

// SoftSetBool is SoftSet with "1" for true and "0" for false.
func (a *Args) SoftSetBool(name string, value bool) (*Args, bool) {
	if value {
		return a.SoftSet(name, "1")
	}
	return a.SoftSet(name, "0")
}
