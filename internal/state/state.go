package state

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jafarshop/weblarek/internal/domain"
	"github.com/jafarshop/weblarek/internal/events"
)

// Emitter publishes state change events
type Emitter interface {
	Emit(e events.Event)
}

// State holds the catalog, the order in progress, the preview selection and
// the two form error sets of one storefront session.
//
// Every read returns a copy. Mutations emit the matching event through the
// Emitter. State is not safe for concurrent use.
type State struct {
	emitter  Emitter
	logger   *zap.Logger
	validate *validator.Validate

	catalog []domain.Product
	index   map[string]int

	preview string

	form          domain.OrderForm
	items         []string
	orderErrors   domain.FormErrors
	contactErrors domain.FormErrors
}

// New creates an empty state
func New(emitter Emitter, logger *zap.Logger) *State {
	s := &State{
		emitter:  emitter,
		logger:   logger,
		validate: newValidator(),
		index:    map[string]int{},
	}
	s.revalidate()
	return s
}

// SetCatalog replaces the catalog. Items whose ids are gone from the new
// catalog are removed from the order, and a previewed product that is gone
// clears the preview with a preview-changed event.
func (s *State) SetCatalog(products []domain.Product) {
	catalog := make([]domain.Product, len(products))
	copy(catalog, products)

	index := make(map[string]int, len(catalog))
	for i, p := range catalog {
		if _, dup := index[p.ID]; dup {
			s.logger.Warn("Duplicate product id in catalog", zap.String("id", p.ID))
			continue
		}
		index[p.ID] = i
	}

	s.catalog = catalog
	s.index = index

	previewGone := false
	if _, ok := s.index[s.preview]; s.preview != "" && !ok {
		s.preview = ""
		previewGone = true
	}

	s.emitter.Emit(events.CatalogChanged{Catalog: s.Catalog()})
	if previewGone {
		s.emitter.Emit(events.PreviewChanged{})
	}

	for _, id := range s.items {
		if _, ok := s.index[id]; !ok {
			s.dropItem(id, domain.Product{ID: id})
		}
	}
}

// Catalog returns the current catalog in order
func (s *State) Catalog() []domain.Product {
	out := make([]domain.Product, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// ProductByID looks a product up in the catalog
func (s *State) ProductByID(id string) (domain.Product, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.catalog[i], true
}

// SetPreview selects the previewed product. An empty id clears the selection.
// Ids missing from the catalog are ignored.
func (s *State) SetPreview(id string) {
	if id == "" {
		s.preview = ""
		s.emitter.Emit(events.PreviewChanged{})
		return
	}

	p, ok := s.ProductByID(id)
	if !ok {
		s.logger.Debug("Preview of unknown product ignored", zap.String("id", id))
		return
	}

	s.preview = id
	s.emitter.Emit(events.PreviewChanged{Product: &p})
}

// ClearPreview drops the selection without emitting
func (s *State) ClearPreview() {
	s.preview = ""
}

// Preview returns the previewed product, if any
func (s *State) Preview() (domain.Product, bool) {
	if s.preview == "" {
		return domain.Product{}, false
	}
	return s.ProductByID(s.preview)
}

// AddItem appends a catalog product to the order. Products already in the
// order or missing from the catalog are ignored.
func (s *State) AddItem(p domain.Product) {
	if s.HasItem(p.ID) {
		return
	}
	product, ok := s.ProductByID(p.ID)
	if !ok {
		s.logger.Debug("Unknown product not added", zap.String("id", p.ID))
		return
	}

	items := make([]string, len(s.items), len(s.items)+1)
	copy(items, s.items)
	s.items = append(items, p.ID)

	s.emitter.Emit(events.ItemAdded{Product: product})
}

// RemoveItem takes a product out of the order. Absent ids are ignored.
func (s *State) RemoveItem(id string) {
	if !s.HasItem(id) {
		return
	}
	product, _ := s.ProductByID(id)
	s.dropItem(id, product)
}

func (s *State) dropItem(id string, product domain.Product) {
	items := make([]string, 0, len(s.items))
	for _, itemID := range s.items {
		if itemID != id {
			items = append(items, itemID)
		}
	}
	s.items = items

	s.emitter.Emit(events.ItemRemoved{Product: product})
}

// HasItem reports whether the product is in the order
func (s *State) HasItem(id string) bool {
	for _, itemID := range s.items {
		if itemID == id {
			return true
		}
	}
	return false
}

// Items returns the ordered products in basket order
func (s *State) Items() []domain.Product {
	out := make([]domain.Product, 0, len(s.items))
	for _, id := range s.items {
		if p, ok := s.ProductByID(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// ItemCount returns the number of distinct products in the order
func (s *State) ItemCount() int {
	return len(s.items)
}

// Total sums the prices of the ordered products. Priceless products add nothing.
func (s *State) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Items() {
		if p.Price.Valid {
			total = total.Add(p.Price.Decimal)
		}
	}
	return total
}

// SetOrderField updates the payment/address step and revalidates it
func (s *State) SetOrderField(field domain.OrderField, value string) {
	switch field {
	case domain.OrderFieldPayment:
		s.form.Payment = domain.PaymentMethod(value)
	case domain.OrderFieldAddress:
		s.form.Address = value
	default:
		s.logger.Warn("Unknown order field ignored", zap.String("field", string(field)))
		return
	}

	s.revalidate()

	s.emitter.Emit(events.OrderFieldsValidated{Errors: s.OrderErrors()})
	if s.orderErrors.Valid() {
		s.emitter.Emit(events.OrderReady{Order: s.Snapshot()})
	}
}

// SetContactField updates the contacts step and revalidates it
func (s *State) SetContactField(field domain.ContactField, value string) {
	switch field {
	case domain.ContactFieldEmail:
		s.form.Email = value
	case domain.ContactFieldPhone:
		s.form.Phone = value
	default:
		s.logger.Warn("Unknown contact field ignored", zap.String("field", string(field)))
		return
	}

	s.revalidate()

	s.emitter.Emit(events.ContactsValidated{Errors: s.ContactErrors()})
	if s.contactErrors.Valid() {
		s.emitter.Emit(events.ContactsReady{Order: s.Snapshot()})
	}
}

// OrderErrors returns the payment/address error set
func (s *State) OrderErrors() domain.FormErrors {
	return s.orderErrors.Clone()
}

// ContactErrors returns the contacts error set
func (s *State) ContactErrors() domain.FormErrors {
	return s.contactErrors.Clone()
}

// Form returns the checkout form fields
func (s *State) Form() domain.OrderForm {
	return s.form
}

// Snapshot returns an immutable copy of the order in progress
func (s *State) Snapshot() domain.OrderSnapshot {
	return domain.OrderSnapshot{
		OrderForm: s.form,
		Items:     s.Items(),
		Total:     s.Total(),
	}
}

// ClearOrder resets the order in progress and revalidates the empty form
func (s *State) ClearOrder() {
	s.form = domain.OrderForm{}
	s.items = nil
	s.revalidate()

	s.emitter.Emit(events.OrderCleared{})
}

// revalidate recomputes both error sets from the current form
func (s *State) revalidate() {
	s.orderErrors = formErrors(s.validate, paymentStep{
		Payment: string(s.form.Payment),
		Address: s.form.Address,
	})
	s.contactErrors = formErrors(s.validate, contactsStep{
		Email: s.form.Email,
		Phone: s.form.Phone,
	})
}
