package events

import "errors"

// Sentinel errors for the event bus.
var (
	// ErrNilHandler is raised when On is called without a handler.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrMaxDepth is reported when nested emission exceeds the configured depth.
	ErrMaxDepth = errors.New("emit depth exceeded")

	// ErrPayloadType is returned by typed handlers that receive an unexpected event type.
	ErrPayloadType = errors.New("unexpected event payload type")

	// ErrHandlerPanic is matched by PanicError.
	ErrHandlerPanic = errors.New("handler panicked")
)

// HandlerError wraps an error returned by a handler.
type HandlerError struct {
	SubscriptionID string
	Event          Name
	Err            error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return "handler error for subscription " + e.SubscriptionID + " on event " + string(e.Event) + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError wraps a recovered handler panic.
type PanicError struct {
	SubscriptionID string
	Event          Name
	Value          any
	Stack          string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return "handler panic for subscription " + e.SubscriptionID + " on event " + string(e.Event)
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
