package events_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jafarshop/weblarek/internal/domain"
	"github.com/jafarshop/weblarek/internal/events"
)

type ping struct{ n int }

func (ping) EventName() events.Name { return "ping" }

type pong struct{}

func (pong) EventName() events.Name { return "pong" }

func record(calls *[]string, label string) events.Handler {
	return func(events.Event) error {
		*calls = append(*calls, label)
		return nil
	}
}

func TestBus_RegistrationOrder(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	var calls []string
	bus.On(events.Exact("ping"), record(&calls, "first"))
	bus.On(events.Exact("ping"), record(&calls, "second"))

	bus.Emit(ping{})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestBus_Off(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	var calls []string
	first := bus.On(events.Exact("ping"), record(&calls, "first"))
	bus.On(events.Exact("ping"), record(&calls, "second"))

	bus.Off(first)
	bus.Emit(ping{})

	assert.Equal(t, []string{"second"}, calls)
	assert.False(t, first.Active())

	// removing twice or removing nil is a no-op
	bus.Off(first)
	bus.Off(nil)
	bus.Emit(ping{})
	assert.Equal(t, []string{"second", "second"}, calls)
}

func TestBus_ExactDoesNotMatchOthers(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	var calls []string
	bus.On(events.Exact("ping"), record(&calls, "ping"))

	bus.Emit(pong{})

	assert.Empty(t, calls)
	assert.False(t, events.Selector{}.Match("ping"))
}

func TestBus_Pattern(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	var names []events.Name
	bus.On(events.MustPattern(`^item-`), func(e events.Event) error {
		names = append(names, e.EventName())
		return nil
	})

	bus.Emit(events.ItemAdded{})
	bus.Emit(events.ItemRemoved{})
	bus.Emit(events.CatalogChanged{})

	assert.Equal(t, []events.Name{events.ItemAddedName, events.ItemRemovedName}, names)

	_, err := events.Pattern("(")
	assert.Error(t, err)
}

func TestBus_OnAll(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	var names []events.Name
	bus.OnAll(func(e events.Event) error {
		names = append(names, e.EventName())
		return nil
	})

	bus.Emit(ping{})
	bus.Emit(pong{})

	assert.Equal(t, []events.Name{"ping", "pong"}, names)
}

func TestBus_NestedEmitIsDepthFirst(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	var calls []string
	bus.On(events.Exact("ping"), func(events.Event) error {
		calls = append(calls, "ping:before")
		bus.Emit(pong{})
		calls = append(calls, "ping:after")
		return nil
	})
	bus.On(events.Exact("ping"), record(&calls, "ping:second"))
	bus.On(events.Exact("pong"), record(&calls, "pong"))

	bus.Emit(ping{})

	assert.Equal(t, []string{"ping:before", "pong", "ping:after", "ping:second"}, calls)
}

func TestBus_HandlerFailureIsIsolated(t *testing.T) {
	t.Parallel()

	var reported []error
	bus := events.NewBus(events.WithErrorHandler(func(_ events.Name, err error) {
		reported = append(reported, err)
	}))

	var calls []string
	bus.On(events.Exact("ping"), func(events.Event) error {
		panic("boom")
	})
	bus.On(events.Exact("ping"), func(events.Event) error {
		return errors.New("bad")
	})
	bus.On(events.Exact("ping"), record(&calls, "third"))

	require.NotPanics(t, func() { bus.Emit(ping{}) })

	assert.Equal(t, []string{"third"}, calls)
	require.Len(t, reported, 2)
	assert.ErrorIs(t, reported[0], events.ErrHandlerPanic)

	var herr *events.HandlerError
	require.ErrorAs(t, reported[1], &herr)
	assert.Equal(t, events.Name("ping"), herr.Event)

	stats := bus.Stats()
	assert.Equal(t, uint64(1), stats.Emitted)
	assert.Equal(t, uint64(1), stats.Delivered)
	assert.Equal(t, uint64(2), stats.Failed)
}

func TestBus_UnsubscribeDuringEmit(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	var calls []string
	var second events.Subscription
	bus.On(events.Exact("ping"), func(events.Event) error {
		calls = append(calls, "first")
		bus.Off(second)
		return nil
	})
	second = bus.On(events.Exact("ping"), record(&calls, "second"))

	bus.Emit(ping{})

	assert.Equal(t, []string{"first"}, calls)
}

func TestBus_SubscribeDuringEmitStartsWithNextEvent(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	var calls []string
	bus.On(events.Exact("ping"), func(events.Event) error {
		calls = append(calls, "outer")
		bus.On(events.Exact("ping"), record(&calls, "late"))
		return nil
	})

	bus.Emit(ping{})
	assert.Equal(t, []string{"outer"}, calls)
}

func TestBus_MaxDepthStopsCycles(t *testing.T) {
	t.Parallel()

	var dropped int
	bus := events.NewBus(
		events.WithMaxDepth(5),
		events.WithErrorHandler(func(_ events.Name, err error) {
			if errors.Is(err, events.ErrMaxDepth) {
				dropped++
			}
		}),
	)

	var count int
	bus.On(events.Exact("ping"), func(e events.Event) error {
		count++
		bus.Emit(ping{n: e.(ping).n + 1})
		return nil
	})

	require.NotPanics(t, func() { bus.Emit(ping{}) })

	assert.Equal(t, 5, count)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, uint64(1), bus.Stats().Dropped)
}

func TestBus_NilHandlerPanics(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	assert.PanicsWithValue(t, events.ErrNilHandler, func() {
		bus.On(events.Exact("ping"), nil)
	})
}

func TestSubscribe_Typed(t *testing.T) {
	t.Parallel()

	bus := events.NewBus()
	var got []domain.Product
	events.Subscribe(bus, func(e events.ItemAdded) error {
		got = append(got, e.Product)
		return nil
	})

	bus.Emit(events.ItemAdded{Product: domain.Product{ID: "a"}})
	bus.Emit(events.ItemRemoved{Product: domain.Product{ID: "b"}})

	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}
