package events

import (
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Name identifies an event kind.
type Name string

func (n Name) String() string { return string(n) }

// Event is implemented by every payload type in the event set.
// EventName must work on the zero value.
type Event interface {
	EventName() Name
}

// Handler receives an emitted event.
type Handler func(e Event) error

// Subscription is the handle returned by On and OnAll.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// Selector returns the selector the handler was registered with.
	// Catch-all subscriptions return the zero Selector.
	Selector() Selector

	// Active reports whether the handler still receives events.
	Active() bool
}

// Stats counts bus activity since construction.
type Stats struct {
	Emitted   uint64
	Delivered uint64
	Failed    uint64
	Dropped   uint64
}

type subscription struct {
	id       string
	selector Selector
	all      bool
	handler  Handler
	active   bool
}

func (s *subscription) ID() string         { return s.id }
func (s *subscription) Selector() Selector { return s.selector }
func (s *subscription) Active() bool       { return s.active }

func (s *subscription) matches(name Name) bool {
	return s.all || s.selector.Match(name)
}

// Bus delivers events synchronously to subscribed handlers.
//
// Handlers run in registration order on the goroutine that calls Emit. Events
// emitted from inside a handler are delivered completely before the outer Emit
// returns. A Bus is owned by one session and is not safe for concurrent use.
type Bus struct {
	subs   []*subscription
	depth  int
	stats  Stats
	config busConfig
}

// NewBus creates an event bus with the given options.
func NewBus(opts ...BusOption) *Bus {
	config := defaultBusConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Bus{config: config}
}

// On registers handler for every future event matched by selector.
func (b *Bus) On(selector Selector, handler Handler) Subscription {
	return b.add(&subscription{selector: selector, handler: handler})
}

// OnAll registers handler for every emitted event.
func (b *Bus) OnAll(handler Handler) Subscription {
	return b.add(&subscription{all: true, handler: handler})
}

func (b *Bus) add(sub *subscription) Subscription {
	if sub.handler == nil {
		panic(ErrNilHandler)
	}
	sub.id = uuid.NewString()
	sub.active = true

	subs := make([]*subscription, len(b.subs), len(b.subs)+1)
	copy(subs, b.subs)
	b.subs = append(subs, sub)
	return sub
}

// Off removes a subscription. Unknown or already removed subscriptions are ignored.
func (b *Bus) Off(sub Subscription) {
	if sub == nil {
		return
	}

	subs := make([]*subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.id == sub.ID() {
			s.active = false
			continue
		}
		subs = append(subs, s)
	}
	b.subs = subs
}

// Emit delivers e to every matching handler. It never panics and never fails;
// handler errors and panics are logged and passed to the error hook.
func (b *Bus) Emit(e Event) {
	if e == nil {
		return
	}
	name := e.EventName()

	if b.depth >= b.config.maxDepth {
		b.stats.Dropped++
		b.config.logger.Error("Event dropped",
			zap.String("event", string(name)),
			zap.Int("depth", b.depth),
			zap.Error(ErrMaxDepth),
		)
		b.report(name, ErrMaxDepth)
		return
	}

	b.depth++
	defer func() { b.depth-- }()

	b.stats.Emitted++

	// Registration and removal replace b.subs, so this slice stays stable
	// while handlers subscribe or unsubscribe during delivery.
	for _, sub := range b.subs {
		if !sub.active || !sub.matches(name) {
			continue
		}
		b.deliver(sub, name, e)
	}
}

func (b *Bus) deliver(sub *subscription, name Name, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.fail(name, &PanicError{
				SubscriptionID: sub.id,
				Event:          name,
				Value:          r,
				Stack:          string(debug.Stack()),
			})
		}
	}()

	if err := sub.handler(e); err != nil {
		b.fail(name, &HandlerError{SubscriptionID: sub.id, Event: name, Err: err})
		return
	}
	b.stats.Delivered++
}

func (b *Bus) fail(name Name, err error) {
	b.stats.Failed++
	b.config.logger.Error("Event handler failed",
		zap.String("event", string(name)),
		zap.Error(err),
	)
	b.report(name, err)
}

func (b *Bus) report(name Name, err error) {
	if b.config.errorHandler == nil {
		return
	}
	// a failing error hook must not break delivery
	defer func() {
		if r := recover(); r != nil {
			b.config.logger.Error("Error handler panicked", zap.Any("panic", r))
		}
	}()
	b.config.errorHandler(name, err)
}

// Stats returns the current counters.
func (b *Bus) Stats() Stats {
	return b.stats
}

// Subscribe registers a handler typed to one event kind.
func Subscribe[T Event](b *Bus, fn func(T) error) Subscription {
	var zero T
	return b.On(Exact(zero.EventName()), func(e Event) error {
		typed, ok := e.(T)
		if !ok {
			return fmt.Errorf("%w: %T", ErrPayloadType, e)
		}
		return fn(typed)
	})
}
