package view

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jafarshop/weblarek/internal/domain"
)

// ModalContent names what the modal window shows
type ModalContent string

const (
	ModalNone     ModalContent = ""
	ModalPreview  ModalContent = "preview"
	ModalBasket   ModalContent = "basket"
	ModalPayment  ModalContent = "payment"
	ModalContacts ModalContent = "contacts"
	ModalSuccess  ModalContent = "success"
)

const (
	emptyBasketLabel = "Корзина пуста"
	successTitle     = "Заказ оформлен"
)

// Page is the catalog page with the basket counter
type Page struct {
	Catalog []Card `json:"catalog"`
	Counter int    `json:"counter"`
	Locked  bool   `json:"locked"`
}

// Basket is the rendered basket with its total
type Basket struct {
	Items     []Card `json:"items"`
	Empty     string `json:"empty,omitempty"`
	Price     string `json:"price"`
	CanSubmit bool   `json:"can_submit"`
}

// Form is a rendered checkout step
type Form struct {
	Fields map[string]string `json:"fields"`
	Valid  bool              `json:"valid"`
	Errors string            `json:"errors"`
}

// Success is the order confirmation
type Success struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Modal is the modal window. Only the field named by Content is set.
type Modal struct {
	Content  ModalContent `json:"content"`
	Preview  *Card        `json:"preview,omitempty"`
	Basket   *Basket      `json:"basket,omitempty"`
	Payment  *Form        `json:"payment,omitempty"`
	Contacts *Form        `json:"contacts,omitempty"`
	Success  *Success     `json:"success,omitempty"`
}

// ScreenState is everything currently on screen
type ScreenState struct {
	Page  Page  `json:"page"`
	Modal Modal `json:"modal"`
}

// Screen keeps the latest rendered models of one session.
// Opening the modal locks the page; closing it unlocks.
type Screen struct {
	page   Page
	basket Basket
	modal  Modal
}

// NewScreen creates a screen with an empty catalog and basket
func NewScreen() *Screen {
	return &Screen{
		page:   Page{Catalog: []Card{}},
		basket: renderBasket(nil, decimal.Zero),
	}
}

// RenderCatalog renders the catalog cards on the page
func (s *Screen) RenderCatalog(products []domain.Product) {
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, RenderCard(p, CatalogCard, CardContext{}))
	}
	s.page.Catalog = cards
}

// RenderPreview opens the product preview in the modal
func (s *Screen) RenderPreview(p domain.Product, inBasket bool) {
	card := RenderCard(p, PreviewCard, CardContext{InBasket: inBasket})
	s.open(Modal{Content: ModalPreview, Preview: &card})
}

// RenderBasket refreshes the basket and, if open is set, shows it in the modal
func (s *Screen) RenderBasket(items []domain.Product, total decimal.Decimal, open bool) {
	s.basket = renderBasket(items, total)
	if open || s.modal.Content == ModalBasket {
		basket := s.basket
		s.open(Modal{Content: ModalBasket, Basket: &basket})
	}
}

// RenderCounter sets the basket counter on the page
func (s *Screen) RenderCounter(count int) {
	s.page.Counter = count
}

// RenderPaymentForm opens the payment/address step
func (s *Screen) RenderPaymentForm(form domain.OrderForm, errs domain.FormErrors) {
	s.open(Modal{Content: ModalPayment, Payment: renderForm([]field{
		{string(domain.OrderFieldPayment), string(form.Payment)},
		{string(domain.OrderFieldAddress), form.Address},
	}, errs)})
}

// RenderContactsForm opens the contacts step
func (s *Screen) RenderContactsForm(form domain.OrderForm, errs domain.FormErrors) {
	s.open(Modal{Content: ModalContacts, Contacts: renderForm([]field{
		{string(domain.ContactFieldEmail), form.Email},
		{string(domain.ContactFieldPhone), form.Phone},
	}, errs)})
}

// RenderSuccess shows the charged total
func (s *Screen) RenderSuccess(total decimal.Decimal) {
	s.open(Modal{Content: ModalSuccess, Success: &Success{
		Title:       successTitle,
		Description: "Списано " + FormatAmount(total),
	}})
}

// CloseModal empties the modal and unlocks the page
func (s *Screen) CloseModal() {
	s.modal = Modal{}
	s.page.Locked = false
}

// SetLocked locks or unlocks page scrolling
func (s *Screen) SetLocked(locked bool) {
	s.page.Locked = locked
}

// Snapshot returns a copy of the screen
func (s *Screen) Snapshot() ScreenState {
	page := s.page
	page.Catalog = append([]Card(nil), s.page.Catalog...)
	return ScreenState{Page: page, Modal: s.modal}
}

func (s *Screen) open(m Modal) {
	s.modal = m
	s.page.Locked = true
}

func renderBasket(items []domain.Product, total decimal.Decimal) Basket {
	basket := Basket{
		Items:     make([]Card, 0, len(items)),
		Price:     FormatAmount(total),
		CanSubmit: len(items) > 0,
	}
	for i, p := range items {
		basket.Items = append(basket.Items, RenderCard(p, BasketCard, CardContext{Index: i + 1, InBasket: true}))
	}
	if len(items) == 0 {
		basket.Empty = emptyBasketLabel
	}
	return basket
}

type field struct {
	name, value string
}

// renderForm joins the messages in field order
func renderForm(fields []field, errs domain.FormErrors) *Form {
	form := &Form{
		Fields: make(map[string]string, len(fields)),
		Valid:  errs.Valid(),
	}

	messages := make([]string, 0, len(errs))
	for _, f := range fields {
		form.Fields[f.name] = f.value
		if msg, ok := errs[f.name]; ok {
			messages = append(messages, msg)
		}
	}
	form.Errors = strings.Join(messages, "; ")
	return form
}
