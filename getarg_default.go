package getarg

import (
	"errors"
	"sync"
)

// NotParsedErr is returned by Current when ParseParameters has not been called.
var NotParsedErr = errors.New("arguments not parsed")

// The process-wide snapshot. Writers swap the pointer; the Args it points to
// is never modified.
var (
	currentMut sync.RWMutex
	current    *Args
)

// ParseParameters parses args and makes the result the process-wide snapshot,
// discarding any previous one. It is typically called once from main with
// os.Args.
func ParseParameters(args []string, opts ...ParseOpt) *Args {
	parsed := Parse(args, opts...)

	currentMut.Lock()
	defer currentMut.Unlock()
	current = parsed
	return parsed
}

// Current returns the process-wide snapshot, or NotParsedErr if
// ParseParameters has not been called since start-up or the last Reset.
func Current() (*Args, error) {
	currentMut.RLock()
	defer currentMut.RUnlock()
	if current == nil {
		return nil, NotParsedErr
	}
	return current, nil
}

// Reset drops the process-wide snapshot.
func Reset() {
	currentMut.Lock()
	defer currentMut.Unlock()
	current = nil
}

func snapshot() *Args {
	currentMut.RLock()
	defer currentMut.RUnlock()
	return current
}

// The package-level accessors read the process-wide snapshot. Before
// ParseParameters they behave as if no flag was given.

func GetString(name, def string) string {
	return snapshot().GetString(name, def)
}

func GetInt(name string, def int64) int64 {
	return snapshot().GetInt(name, def)
}

func GetBool(name string, def bool) bool {
	return snapshot().GetBool(name, def)
}

func IsSet(name string) bool {
	return snapshot().IsSet(name)
}

// SoftSetArg applies SoftSet to the process-wide snapshot.
func SoftSetArg(name, value string) bool {
	currentMut.Lock()
	defer currentMut.Unlock()
	next, applied := current.SoftSet(name, value)
	current = next
	return applied
}

// SoftSetBoolArg applies SoftSetBool to the process-wide snapshot.
func SoftSetBoolArg(name string, value bool) bool {
	currentMut.Lock()
	defer currentMut.Unlock()
	next, applied := current.SoftSetBool(name, value)
	current = next
	return applied
}
