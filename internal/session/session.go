package session

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jafarshop/weblarek/internal/domain"
	"github.com/jafarshop/weblarek/internal/events"
	"github.com/jafarshop/weblarek/internal/orchestrator"
	"github.com/jafarshop/weblarek/internal/state"
	"github.com/jafarshop/weblarek/internal/view"
)

// Snapshot is the state of a session as reported over HTTP
type Snapshot struct {
	ID            string              `json:"id"`
	Step          domain.CheckoutStep `json:"step"`
	Preview       string              `json:"preview,omitempty"`
	Items         []domain.Product    `json:"items"`
	Count         int                 `json:"count"`
	Total         decimal.Decimal     `json:"total"`
	Form          domain.OrderForm    `json:"form"`
	OrderErrors   domain.FormErrors   `json:"order_errors"`
	ContactErrors domain.FormErrors   `json:"contact_errors"`
}

// Session is the composition root of one storefront session: bus, state,
// screen and orchestrator. The core is single-threaded, so every call
// holds the session mutex.
type Session struct {
	ID string

	mu     sync.Mutex
	bus    *events.Bus
	state  *state.State
	screen *view.Screen
	orch   *orchestrator.Orchestrator
	logger *zap.Logger

	// errors reported by handlers during the current dispatch
	failures []error
}

// New builds a session. ctx bounds the backend calls made while handling intents.
func New(ctx context.Context, backend orchestrator.Backend, logger *zap.Logger) *Session {
	s := &Session{
		ID:     uuid.NewString(),
		screen: view.NewScreen(),
	}
	s.logger = logger.With(zap.String("session_id", s.ID))

	s.bus = events.NewBus(
		events.WithLogger(s.logger),
		events.WithErrorHandler(func(_ events.Name, err error) {
			s.failures = append(s.failures, err)
		}),
	)
	s.state = state.New(s.bus, s.logger)
	s.orch = orchestrator.New(ctx, s.bus, s.state, s.screen, backend, s.logger)
	return s
}

// Dispatch delivers one event and returns the errors its handlers reported
func (s *Session) Dispatch(e events.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures = nil
	s.bus.Emit(e)
	err := stderrors.Join(s.failures...)
	s.failures = nil
	return err
}

// LoadCatalog refreshes the catalog from the backend
func (s *Session) LoadCatalog(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.orch.LoadCatalog(ctx)
}

// Catalog returns the loaded catalog
func (s *Session) Catalog() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Catalog()
}

// Screen returns what is currently rendered
func (s *Session) Screen() view.ScreenState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.screen.Snapshot()
}

// StepAndScreen returns the checkout step together with what is rendered for it
func (s *Session) StepAndScreen() (domain.CheckoutStep, view.ScreenState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.orch.Step(), s.screen.Snapshot()
}

// Snapshot returns the session state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:            s.ID,
		Step:          s.orch.Step(),
		Items:         s.state.Items(),
		Count:         s.state.ItemCount(),
		Total:         s.state.Total(),
		Form:          s.state.Form(),
		OrderErrors:   s.state.OrderErrors(),
		ContactErrors: s.state.ContactErrors(),
	}
	if p, ok := s.state.Preview(); ok {
		snap.Preview = p.ID
	}
	return snap
}

// Stats returns the bus counters
func (s *Session) Stats() events.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bus.Stats()
}

// Close detaches the orchestrator from the bus
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orch.Close()
}
