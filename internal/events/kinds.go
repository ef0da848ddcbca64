package events

import (
	"github.com/jafarshop/weblarek/internal/domain"
)

// State change events, emitted by the application state and the orchestrator.
const (
	CatalogChangedName       Name = "catalog-changed"
	PreviewChangedName       Name = "preview-changed"
	ItemAddedName            Name = "item-added"
	ItemRemovedName          Name = "item-removed"
	OrderFieldsValidatedName Name = "order-fields-validated"
	OrderReadyName           Name = "order-ready"
	ContactsValidatedName    Name = "contacts-validated"
	ContactsReadyName        Name = "contacts-ready"
	OrderClearedName         Name = "order-cleared"
	OrderSubmittedName       Name = "order-submitted"
	OrderFailedName          Name = "order-failed"
)

// CatalogChanged carries the new catalog.
type CatalogChanged struct {
	Catalog []domain.Product
}

func (CatalogChanged) EventName() Name { return CatalogChangedName }

// PreviewChanged carries the previewed product, nil when the preview was cleared.
type PreviewChanged struct {
	Product *domain.Product
}

func (PreviewChanged) EventName() Name { return PreviewChangedName }

// ItemAdded carries the product appended to the order.
type ItemAdded struct {
	Product domain.Product
}

func (ItemAdded) EventName() Name { return ItemAddedName }

// ItemRemoved carries the product removed from the order.
type ItemRemoved struct {
	Product domain.Product
}

func (ItemRemoved) EventName() Name { return ItemRemovedName }

// OrderFieldsValidated carries the payment/address error set.
type OrderFieldsValidated struct {
	Errors domain.FormErrors
}

func (OrderFieldsValidated) EventName() Name { return OrderFieldsValidatedName }

// OrderReady is emitted when the payment/address step has no errors.
type OrderReady struct {
	Order domain.OrderSnapshot
}

func (OrderReady) EventName() Name { return OrderReadyName }

// ContactsValidated carries the contacts error set.
type ContactsValidated struct {
	Errors domain.FormErrors
}

func (ContactsValidated) EventName() Name { return ContactsValidatedName }

// ContactsReady is emitted when the contacts step has no errors.
type ContactsReady struct {
	Order domain.OrderSnapshot
}

func (ContactsReady) EventName() Name { return ContactsReadyName }

// OrderCleared is emitted after the order in progress was reset.
type OrderCleared struct{}

func (OrderCleared) EventName() Name { return OrderClearedName }

// OrderSubmitted carries the backend answer for an accepted order.
type OrderSubmitted struct {
	Result domain.OrderResult
}

func (OrderSubmitted) EventName() Name { return OrderSubmittedName }

// OrderFailed carries the submission error. The order in progress is kept.
type OrderFailed struct {
	Err error
}

func (OrderFailed) EventName() Name { return OrderFailedName }
