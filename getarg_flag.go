package getarg

import "strings"

const negationPrefix = "-no"

// occurrence is a single flag token after normalization.
type occurrence struct {
	Name    string // Base flag name with a single leading dash, negation prefix removed
	Value   string // Everything after the first '=', or empty if there was none
	Negated bool   // Whether the token was written as -noX
}

// newOccurrence normalizes a raw token. The second return is false for tokens
// that are not flags.
func newOccurrence(token string) (occurrence, bool) {
	if !isFlag(token) {
		return occurrence{}, false
	}

	// --X is the same as -X
	if strings.HasPrefix(token, "--") {
		token = token[1:]
	}

	name, value, _ := strings.Cut(token, "=")

	if strings.HasPrefix(name, negationPrefix) && len(name) > len(negationPrefix) {
		return occurrence{Name: "-" + name[len(negationPrefix):], Value: value, Negated: true}, true
	}
	return occurrence{Name: name, Value: value}, true
}
