package domain

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog lot
type Product struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Category    Category            `json:"category"`
	Price       decimal.NullDecimal `json:"price"` // invalid when the lot is not for sale
}

// Sellable reports whether the product has a price
func (p Product) Sellable() bool {
	return p.Price.Valid
}

// OrderForm holds the checkout form fields
type OrderForm struct {
	Payment PaymentMethod `json:"payment"`
	Address string        `json:"address"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
}

// OrderSnapshot is an immutable copy of the order in progress
type OrderSnapshot struct {
	OrderForm
	Items []Product       `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// ItemIDs returns the ids of all items in basket order
func (o OrderSnapshot) ItemIDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// SellableIDs returns the ids of the items that have a price
func (o OrderSnapshot) SellableIDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if item.Sellable() {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// OrderResult is the backend answer to a submitted order
type OrderResult struct {
	ID    string          `json:"id"`
	Total decimal.Decimal `json:"total"`
}

// FormErrors maps a form field name to a message
type FormErrors map[string]string

// Valid reports whether there are no errors
func (e FormErrors) Valid() bool {
	return len(e) == 0
}

// Clone returns an independent copy
func (e FormErrors) Clone() FormErrors {
	out := make(FormErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Form error messages shown next to the checkout fields
const (
	MessagePaymentRequired = "Необходимо указать способ оплаты"
	MessageAddressRequired = "Необходимо указать адрес доставки"
	MessageEmailRequired   = "Необходимо указать email"
	MessagePhoneRequired   = "Необходимо указать телефон"
)
