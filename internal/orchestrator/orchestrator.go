package orchestrator

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jafarshop/weblarek/internal/domain"
	"github.com/jafarshop/weblarek/internal/events"
	"github.com/jafarshop/weblarek/internal/state"
	"github.com/jafarshop/weblarek/pkg/errors"
)

// Views renders state into whatever the user sees
type Views interface {
	RenderCatalog(products []domain.Product)
	RenderPreview(p domain.Product, inBasket bool)
	RenderBasket(items []domain.Product, total decimal.Decimal, open bool)
	RenderCounter(count int)
	RenderPaymentForm(form domain.OrderForm, errs domain.FormErrors)
	RenderContactsForm(form domain.OrderForm, errs domain.FormErrors)
	RenderSuccess(total decimal.Decimal)
	CloseModal()
	SetLocked(locked bool)
}

// Backend is the storefront API
type Backend interface {
	GetProductList(ctx context.Context) ([]domain.Product, error)
	GetProductItem(ctx context.Context, id string) (domain.Product, error)
	OrderProducts(ctx context.Context, order domain.OrderSnapshot) (domain.OrderResult, error)
}

// Orchestrator routes user intents to state operations and state changes to views.
// Like the bus and state it drives, it is not safe for concurrent use.
type Orchestrator struct {
	ctx     context.Context
	bus     *events.Bus
	state   *state.State
	views   Views
	backend Backend
	logger  *zap.Logger

	step domain.CheckoutStep
	subs []events.Subscription
}

// New wires the routing table onto the bus. ctx bounds every backend call.
func New(
	ctx context.Context,
	bus *events.Bus,
	st *state.State,
	views Views,
	backend Backend,
	logger *zap.Logger,
) *Orchestrator {
	o := &Orchestrator{
		ctx:     ctx,
		bus:     bus,
		state:   st,
		views:   views,
		backend: backend,
		logger:  logger,
		step:    domain.StepCatalog,
	}

	o.subs = append(o.subs, bus.OnAll(func(e events.Event) error {
		logger.Debug("Event", zap.String("event", string(e.EventName())), zap.Any("payload", e))
		return nil
	}))

	for _, name := range Routes() {
		r := routes[name]
		o.subs = append(o.subs, bus.On(events.Exact(name), func(e events.Event) error {
			return r(o, e)
		}))
	}

	return o
}

// Close removes every subscription made by New
func (o *Orchestrator) Close() {
	for _, sub := range o.subs {
		o.bus.Off(sub)
	}
	o.subs = nil
}

// Step returns the current checkout step
func (o *Orchestrator) Step() domain.CheckoutStep {
	return o.step
}

// LoadCatalog fetches the catalog and hands it to the state.
// On failure the current catalog is kept.
func (o *Orchestrator) LoadCatalog(ctx context.Context) error {
	products, err := o.backend.GetProductList(ctx)
	if err != nil {
		o.logger.Error("Failed to load catalog", zap.Error(err))
		return err
	}
	o.state.SetCatalog(products)
	return nil
}

// transition moves to the next step if the step machine allows it
func (o *Orchestrator) transition(next domain.CheckoutStep) error {
	if !o.step.CanTransitionTo(next) {
		return &errors.ErrInvalidStateTransition{From: o.step, To: next}
	}
	o.logger.Debug("Checkout step",
		zap.Stringer("from", o.step),
		zap.Stringer("to", next),
	)
	o.step = next
	return nil
}

// require fails unless the session is on one of the given steps
func (o *Orchestrator) require(intent events.Name, steps ...domain.CheckoutStep) error {
	for _, s := range steps {
		if o.step == s {
			return nil
		}
	}
	return &errors.ErrInvalidStateTransition{From: o.step, To: intent}
}

// backToCatalog closes the modal and forgets the preview
func (o *Orchestrator) backToCatalog() {
	o.state.ClearPreview()
	o.step = domain.StepCatalog
	o.views.CloseModal()
}

// submitOrder sends the order. A failure keeps the order so the user can retry.
func (o *Orchestrator) submitOrder() error {
	snapshot := o.state.Snapshot()

	result, err := o.backend.OrderProducts(o.ctx, snapshot)
	if err != nil {
		o.logger.Error("Failed to submit order",
			zap.Int("items", len(snapshot.Items)),
			zap.Error(err),
		)
		o.step = domain.StepFailed
		o.bus.Emit(events.OrderFailed{Err: err})
		return nil
	}

	if err := o.transition(domain.StepSubmitted); err != nil {
		return err
	}
	o.state.ClearOrder()
	o.bus.Emit(events.OrderSubmitted{Result: result})
	return nil
}
