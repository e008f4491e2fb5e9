package getarg

// Args is the result of one Parse call. It is never modified after Parse
// returns, so it may be shared freely between goroutines.
//
// A nil *Args behaves as if no flag was given: every accessor returns its
// default.
type Args struct {
	positive map[string]string   // flag name -> last value from a -X token
	negated  map[string]string   // flag name -> last value from a -noX token
	multi    map[string][]string // flag name -> every value from -X tokens, in order
	order    []string            // flag names in the order they were first seen
	raw      []string            // tokens considered for parsing (program name excluded)
}

type resolution int

const (
	unset resolution = iota
	resolvedPositive
	resolvedNegated
)

func newArgs() *Args {
	return &Args{
		positive: make(map[string]string),
		negated:  make(map[string]string),
		multi:    make(map[string][]string),
	}
}

func (a *Args) record(o occurrence) {
	_, seenPositive := a.positive[o.Name]
	_, seenNegated := a.negated[o.Name]
	if !seenPositive && !seenNegated {
		a.order = append(a.order, o.Name)
	}

	if o.Negated {
		a.negated[o.Name] = o.Value
		return
	}
	a.positive[o.Name] = o.Value
	a.multi[o.Name] = append(a.multi[o.Name], o.Value)
}

// resolve picks the effective raw value for name. A -X token anywhere in the
// input beats any -noX token, wherever it appears.
func (a *Args) resolve(name string) (string, resolution) {
	if a == nil {
		return "", unset
	}
	if v, ok := a.positive[name]; ok {
		return v, resolvedPositive
	}
	if v, ok := a.negated[name]; ok {
		return v, resolvedNegated
	}
	return "", unset
}

// IsSet reports whether name was given in either form (-X or -noX).
func (a *Args) IsSet(name string) bool {
	_, r := a.resolve(name)
	return r != unset
}

// Names returns every flag name seen, in order of first appearance.
func (a *Args) Names() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.order...)
}

// Len returns the number of distinct flag names seen.
func (a *Args) Len() int {
	if a == nil {
		return 0
	}
	return len(a.order)
}
