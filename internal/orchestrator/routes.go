package orchestrator

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jafarshop/weblarek/internal/domain"
	"github.com/jafarshop/weblarek/internal/events"
	"github.com/jafarshop/weblarek/pkg/errors"
)

type route func(o *Orchestrator, e events.Event) error

// on adapts a typed handler to a route
func on[T events.Event](fn func(o *Orchestrator, e T) error) route {
	return func(o *Orchestrator, e events.Event) error {
		payload, ok := e.(T)
		if !ok {
			return fmt.Errorf("%w: %s carries %T", events.ErrPayloadType, e.EventName(), e)
		}
		return fn(o, payload)
	}
}

// routes maps every incoming event to exactly one state operation or render.
var routes = map[events.Name]route{
	// user intents
	events.CardSelectName:          on(selectCard),
	events.CardAddName:             on(addCard),
	events.CardRemoveName:          on(removeCard),
	events.BasketOpenName:          on(openBasket),
	events.BasketSubmitName:        on(submitBasket),
	events.PaymentChangeName:       on(changePayment),
	events.OrderFieldChangeName:    on(changeOrderField),
	events.OrderSubmitName:         on(submitOrderForm),
	events.ContactsFieldChangeName: on(changeContactsField),
	events.ContactsSubmitName:      on(submitContacts),
	events.ModalOpenName:           on(openModal),
	events.ModalCloseName:          on(closeModal),
	events.SuccessCloseName:        on(closeSuccess),

	// state changes
	events.CatalogChangedName:       on(renderCatalog),
	events.PreviewChangedName:       on(renderPreview),
	events.ItemAddedName:            on(renderItemAdded),
	events.ItemRemovedName:          on(renderItemRemoved),
	events.OrderFieldsValidatedName: on(renderOrderErrors),
	events.ContactsValidatedName:    on(renderContactErrors),
	events.OrderClearedName:         on(renderOrderCleared),
	events.OrderSubmittedName:       on(renderOrderSubmitted),
}

const (
	msgUnknownField   = "unknown field"
	msgUnknownPayment = "unsupported payment method"
)

func invalidField(field, message string) error {
	return &errors.ErrValidation{Fields: map[string]string{field: message}}
}

// Routes returns the routed event names in sorted order
func Routes() []events.Name {
	names := make([]events.Name, 0, len(routes))
	for name := range routes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func selectCard(o *Orchestrator, e events.CardSelect) error {
	if err := o.require(e.EventName(), domain.StepCatalog, domain.StepPreview); err != nil {
		return err
	}
	if _, ok := o.state.ProductByID(e.ProductID); !ok {
		return &errors.ErrNotFound{Resource: "product", ID: e.ProductID}
	}

	// the detail fetch confirms the lot is still on sale before it is shown
	if _, err := o.backend.GetProductItem(o.ctx, e.ProductID); err != nil {
		o.logger.Error("Failed to fetch product",
			zap.String("product_id", e.ProductID),
			zap.Error(err),
		)
		return fmt.Errorf("fetch product %s: %w", e.ProductID, err)
	}

	if o.step != domain.StepPreview {
		if err := o.transition(domain.StepPreview); err != nil {
			return err
		}
	}
	o.state.SetPreview(e.ProductID)
	return nil
}

func addCard(o *Orchestrator, e events.CardAdd) error {
	if err := o.require(e.EventName(), domain.StepPreview); err != nil {
		return err
	}
	p, ok := o.state.ProductByID(e.ProductID)
	if !ok {
		return &errors.ErrNotFound{Resource: "product", ID: e.ProductID}
	}
	o.state.AddItem(p)
	return nil
}

func removeCard(o *Orchestrator, e events.CardRemove) error {
	if err := o.require(e.EventName(), domain.StepPreview, domain.StepBasket); err != nil {
		return err
	}
	o.state.RemoveItem(e.ProductID)
	return nil
}

func openBasket(o *Orchestrator, _ events.BasketOpen) error {
	if o.step != domain.StepBasket {
		if err := o.transition(domain.StepBasket); err != nil {
			return err
		}
	}
	o.state.ClearPreview()
	o.views.RenderBasket(o.state.Items(), o.state.Total(), true)
	return nil
}

func submitBasket(o *Orchestrator, e events.BasketSubmit) error {
	if err := o.require(e.EventName(), domain.StepBasket); err != nil {
		return err
	}
	if o.state.ItemCount() == 0 {
		return &errors.ErrValidation{Fields: map[string]string{"items": "basket is empty"}}
	}
	if err := o.transition(domain.StepPayment); err != nil {
		return err
	}
	o.views.RenderPaymentForm(o.state.Form(), o.state.OrderErrors())
	return nil
}

func changePayment(o *Orchestrator, e events.PaymentChange) error {
	if err := o.require(e.EventName(), domain.StepPayment); err != nil {
		return err
	}
	if !e.Method.IsValid() {
		return invalidField(string(domain.OrderFieldPayment), msgUnknownPayment)
	}
	o.state.SetOrderField(domain.OrderFieldPayment, string(e.Method))
	return nil
}

func changeOrderField(o *Orchestrator, e events.OrderFieldChange) error {
	if err := o.require(e.EventName(), domain.StepPayment); err != nil {
		return err
	}
	if !e.Field.IsValid() {
		return invalidField(string(e.Field), msgUnknownField)
	}
	// an empty value clears the method; anything else must be a known one
	if e.Field == domain.OrderFieldPayment && e.Value != "" && !domain.PaymentMethod(e.Value).IsValid() {
		return invalidField(string(e.Field), msgUnknownPayment)
	}
	o.state.SetOrderField(e.Field, e.Value)
	return nil
}

func submitOrderForm(o *Orchestrator, e events.OrderSubmit) error {
	if err := o.require(e.EventName(), domain.StepPayment); err != nil {
		return err
	}
	if errs := o.state.OrderErrors(); !errs.Valid() {
		return &errors.ErrValidation{Fields: errs}
	}
	if err := o.transition(domain.StepContacts); err != nil {
		return err
	}
	o.views.RenderContactsForm(o.state.Form(), o.state.ContactErrors())
	return nil
}

func changeContactsField(o *Orchestrator, e events.ContactsFieldChange) error {
	if err := o.require(e.EventName(), domain.StepContacts, domain.StepFailed); err != nil {
		return err
	}
	if !e.Field.IsValid() {
		return invalidField(string(e.Field), msgUnknownField)
	}
	o.state.SetContactField(e.Field, e.Value)
	return nil
}

func submitContacts(o *Orchestrator, e events.ContactsSubmit) error {
	if err := o.require(e.EventName(), domain.StepContacts, domain.StepFailed); err != nil {
		return err
	}
	if errs := o.state.ContactErrors(); !errs.Valid() {
		return &errors.ErrValidation{Fields: errs}
	}
	return o.submitOrder()
}

func openModal(o *Orchestrator, _ events.ModalOpen) error {
	o.views.SetLocked(true)
	return nil
}

func closeModal(o *Orchestrator, _ events.ModalClose) error {
	o.backToCatalog()
	return nil
}

func closeSuccess(o *Orchestrator, e events.SuccessClose) error {
	if err := o.require(e.EventName(), domain.StepSubmitted); err != nil {
		return err
	}
	o.backToCatalog()
	return nil
}

func renderCatalog(o *Orchestrator, e events.CatalogChanged) error {
	o.views.RenderCatalog(e.Catalog)
	return nil
}

func renderPreview(o *Orchestrator, e events.PreviewChanged) error {
	if e.Product == nil {
		o.backToCatalog()
		return nil
	}
	o.views.RenderPreview(*e.Product, o.state.HasItem(e.Product.ID))
	return nil
}

// renderItemAdded closes the preview the product was added from
func renderItemAdded(o *Orchestrator, _ events.ItemAdded) error {
	o.views.RenderBasket(o.state.Items(), o.state.Total(), false)
	o.views.RenderCounter(o.state.ItemCount())
	o.backToCatalog()
	return nil
}

func renderItemRemoved(o *Orchestrator, e events.ItemRemoved) error {
	o.views.RenderBasket(o.state.Items(), o.state.Total(), false)
	o.views.RenderCounter(o.state.ItemCount())
	if o.step == domain.StepPreview {
		if p, ok := o.state.Preview(); ok && p.ID == e.Product.ID {
			o.views.RenderPreview(p, false)
		}
	}
	return nil
}

func renderOrderErrors(o *Orchestrator, e events.OrderFieldsValidated) error {
	if o.step == domain.StepPayment {
		o.views.RenderPaymentForm(o.state.Form(), e.Errors)
	}
	return nil
}

func renderContactErrors(o *Orchestrator, e events.ContactsValidated) error {
	if o.step == domain.StepContacts || o.step == domain.StepFailed {
		o.views.RenderContactsForm(o.state.Form(), e.Errors)
	}
	return nil
}

func renderOrderCleared(o *Orchestrator, _ events.OrderCleared) error {
	o.views.RenderBasket(nil, o.state.Total(), false)
	o.views.RenderCounter(o.state.ItemCount())
	return nil
}

func renderOrderSubmitted(o *Orchestrator, e events.OrderSubmitted) error {
	o.views.RenderSuccess(e.Result.Total)
	return nil
}
