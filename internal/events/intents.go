package events

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jafarshop/weblarek/internal/domain"
	"github.com/jafarshop/weblarek/pkg/errors"
)

// User intents, emitted by view collaborators.
const (
	CardSelectName          Name = "card-select"
	CardAddName             Name = "card-add"
	CardRemoveName          Name = "card-remove"
	BasketOpenName          Name = "basket-open"
	BasketSubmitName        Name = "basket-submit"
	PaymentChangeName       Name = "payment-change"
	OrderFieldChangeName    Name = "order-field-change"
	OrderSubmitName         Name = "order-submit"
	ContactsFieldChangeName Name = "contacts-field-change"
	ContactsSubmitName      Name = "contacts-submit"
	ModalOpenName           Name = "modal-open"
	ModalCloseName          Name = "modal-close"
	SuccessCloseName        Name = "success-close"
)

// CardSelect asks to open the product preview.
type CardSelect struct {
	ProductID string `json:"product_id"`
}

func (CardSelect) EventName() Name { return CardSelectName }

// CardAdd asks to put a product into the basket.
type CardAdd struct {
	ProductID string `json:"product_id"`
}

func (CardAdd) EventName() Name { return CardAddName }

// CardRemove asks to take a product out of the basket.
type CardRemove struct {
	ProductID string `json:"product_id"`
}

func (CardRemove) EventName() Name { return CardRemoveName }

type BasketOpen struct{}

func (BasketOpen) EventName() Name { return BasketOpenName }

type BasketSubmit struct{}

func (BasketSubmit) EventName() Name { return BasketSubmitName }

// PaymentChange is the payment method toggle.
type PaymentChange struct {
	Method domain.PaymentMethod `json:"method"`
}

func (PaymentChange) EventName() Name { return PaymentChangeName }

// OrderFieldChange is an edit in the payment/address form.
type OrderFieldChange struct {
	Field domain.OrderField `json:"field"`
	Value string            `json:"value"`
}

func (OrderFieldChange) EventName() Name { return OrderFieldChangeName }

type OrderSubmit struct{}

func (OrderSubmit) EventName() Name { return OrderSubmitName }

// ContactsFieldChange is an edit in the contacts form.
type ContactsFieldChange struct {
	Field domain.ContactField `json:"field"`
	Value string              `json:"value"`
}

func (ContactsFieldChange) EventName() Name { return ContactsFieldChangeName }

type ContactsSubmit struct{}

func (ContactsSubmit) EventName() Name { return ContactsSubmitName }

type ModalOpen struct{}

func (ModalOpen) EventName() Name { return ModalOpenName }

type ModalClose struct{}

func (ModalClose) EventName() Name { return ModalCloseName }

type SuccessClose struct{}

func (SuccessClose) EventName() Name { return SuccessCloseName }

var intentDecoders = map[Name]func([]byte) (Event, error){
	CardSelectName:          decode[CardSelect],
	CardAddName:             decode[CardAdd],
	CardRemoveName:          decode[CardRemove],
	BasketOpenName:          decode[BasketOpen],
	BasketSubmitName:        decode[BasketSubmit],
	PaymentChangeName:       decode[PaymentChange],
	OrderFieldChangeName:    decode[OrderFieldChange],
	OrderSubmitName:         decode[OrderSubmit],
	ContactsFieldChangeName: decode[ContactsFieldChange],
	ContactsSubmitName:      decode[ContactsSubmit],
	ModalOpenName:           decode[ModalOpen],
	ModalCloseName:          decode[ModalClose],
	SuccessCloseName:        decode[SuccessClose],
}

func decode[T Event](raw []byte) (Event, error) {
	var e T
	if len(raw) == 0 {
		return e, nil
	}
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", e.EventName(), err)
	}
	return e, nil
}

// ParseIntent decodes a user intent received from outside the process.
func ParseIntent(name Name, raw []byte) (Event, error) {
	dec, ok := intentDecoders[name]
	if !ok {
		return nil, &errors.ErrUnknownEvent{Name: string(name)}
	}
	return dec(raw)
}

// IsIntent reports whether name is a user intent.
func IsIntent(name Name) bool {
	_, ok := intentDecoders[name]
	return ok
}

// Intents lists the intent names in sorted order.
func Intents() []Name {
	names := make([]Name, 0, len(intentDecoders))
	for name := range intentDecoders {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
