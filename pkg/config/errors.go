package config

import (
	"fmt"
	"strings"
)

// ValidationErrors collects every configuration problem so startup can
// report them all at once instead of failing one at a time.
type ValidationErrors struct {
	problems []string
}

// Add records a problem for the named setting.
func (v *ValidationErrors) Add(key, msg string) {
	v.problems = append(v.problems, fmt.Sprintf("%s: %s", key, msg))
}

// OrNil returns the collected errors, or nil when there are none.
func (v ValidationErrors) OrNil() error {
	if len(v.problems) == 0 {
		return nil
	}
	return v
}

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	return "invalid configuration: " + strings.Join(v.problems, "; ")
}
