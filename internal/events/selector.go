package events

import (
	"fmt"
	"regexp"
)

// Selector chooses which event names a subscription receives.
// The zero Selector matches nothing.
type Selector struct {
	name    Name
	pattern *regexp.Regexp
}

// Exact selects a single event name.
func Exact(name Name) Selector {
	return Selector{name: name}
}

// Pattern selects every event name matched by the regular expression.
func Pattern(expr string) (Selector, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Selector{}, fmt.Errorf("invalid event pattern %q: %w", expr, err)
	}
	return Selector{pattern: re}, nil
}

// MustPattern is like Pattern but panics on an invalid expression.
func MustPattern(expr string) Selector {
	s, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return s
}

// Match reports whether the selector accepts the event name.
func (s Selector) Match(name Name) bool {
	if s.pattern != nil {
		return s.pattern.MatchString(string(name))
	}
	return s.name != "" && s.name == name
}

// String returns the event name or the pattern source.
func (s Selector) String() string {
	if s.pattern != nil {
		return s.pattern.String()
	}
	return string(s.name)
}
