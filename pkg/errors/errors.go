package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrNotFound is returned when a resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrInvalidStateTransition is returned when a checkout step change is not allowed.
// From and To are kept as fmt.Stringer so that any step enum can be reported.
type ErrInvalidStateTransition struct {
	From fmt.Stringer
	To   fmt.Stringer
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// ErrAPI is returned when the storefront backend answers with a non-2xx status
type ErrAPI struct {
	Status  int
	Message string
}

func (e *ErrAPI) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// ErrUnknownEvent is returned when an event name is not part of the event set
type ErrUnknownEvent struct {
	Name string
}

func (e *ErrUnknownEvent) Error() string {
	return fmt.Sprintf("unknown event: %q", e.Name)
}

// ErrValidation is returned when a checkout step is submitted while some of
// its fields still have errors. Fields maps field name to message.
type ErrValidation struct {
	Fields map[string]string
}

func (e *ErrValidation) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}
