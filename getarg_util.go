package getarg

import "strings"

func isFlag(token string) bool {
	return strings.HasPrefix(token, "-")
}

// interpretBool applies the flag truth rule: only the literal "0" is false.
func interpretBool(value string) bool {
	return value != "0"
}

func copyValues(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyMulti(src map[string][]string) map[string][]string {
	dst := make(map[string][]string, len(src))
	for k, v := range src {
		dst[k] = append([]string(nil), v...)
	}
	return dst
}

// deepCopyArgs returns an independent copy of a, safe to modify before it is
// handed out.
func deepCopyArgs(a *Args) *Args {
	if a == nil {
		return newArgs()
	}
	return &Args{
		positive: copyValues(a.positive),
		negated:  copyValues(a.negated),
		multi:    copyMulti(a.multi),
		order:    append([]string(nil), a.order...),
		raw:      append([]string(nil), a.raw...),
	}
}
