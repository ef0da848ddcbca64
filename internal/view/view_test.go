package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jafarshop/weblarek/internal/domain"
	"github.com/jafarshop/weblarek/internal/events"
)

var (
	hat = domain.Product{
		ID:          "a",
		Title:       "Шапка",
		Description: "тёплая",
		Image:       "https://cdn/a.svg",
		Category:    domain.CategorySoftSkill,
		Price:       decimal.NewNullDecimal(decimal.NewFromInt(750)),
	}
	timer = domain.Product{ID: "b", Title: "Таймер", Category: domain.CategoryOther}
)

func TestRenderCard_Layouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  CardConfig
		ctx  CardContext
		want Card
	}{
		{
			name: "catalog",
			cfg:  CatalogCard,
			want: Card{ID: "a", Title: "Шапка", Price: "750 синапсов", Category: "софт-скил",
				CategoryClass: "card__category_soft", Image: "https://cdn/a.svg"},
		},
		{
			name: "preview",
			cfg:  PreviewCard,
			want: Card{ID: "a", Title: "Шапка", Price: "750 синапсов", Category: "софт-скил",
				CategoryClass: "card__category_soft", Image: "https://cdn/a.svg", Description: "тёплая",
				Action: &Action{Label: "В корзину", Event: events.CardAddName}},
		},
		{
			name: "preview in basket",
			cfg:  PreviewCard,
			ctx:  CardContext{InBasket: true},
			want: Card{ID: "a", Title: "Шапка", Price: "750 синапсов", Category: "софт-скил",
				CategoryClass: "card__category_soft", Image: "https://cdn/a.svg", Description: "тёплая",
				Action: &Action{Label: "Удалить", Event: events.CardRemoveName}},
		},
		{
			name: "basket",
			cfg:  BasketCard,
			ctx:  CardContext{Index: 3, InBasket: true},
			want: Card{ID: "a", Title: "Шапка", Price: "750 синапсов", Index: 3,
				Action: &Action{Label: "Удалить", Event: events.CardRemoveName}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RenderCard(hat, tt.cfg, tt.ctx))
		})
	}
}

func TestRenderCard_PricelessCannotBeAdded(t *testing.T) {
	t.Parallel()

	card := RenderCard(timer, PreviewCard, CardContext{})
	assert.Equal(t, "Бесценно", card.Price)
	require.NotNil(t, card.Action)
	assert.True(t, card.Action.Disabled)
}

func TestScreen_Flow(t *testing.T) {
	t.Parallel()

	s := NewScreen()
	s.RenderCatalog([]domain.Product{hat, timer})

	snap := s.Snapshot()
	assert.Len(t, snap.Page.Catalog, 2)
	assert.False(t, snap.Page.Locked)
	assert.Equal(t, ModalNone, snap.Modal.Content)

	s.RenderPreview(hat, false)
	snap = s.Snapshot()
	assert.True(t, snap.Page.Locked)
	assert.Equal(t, ModalPreview, snap.Modal.Content)

	s.CloseModal()
	s.RenderBasket([]domain.Product{hat}, decimal.NewFromInt(750), false)
	s.RenderCounter(1)
	snap = s.Snapshot()
	assert.Equal(t, ModalNone, snap.Modal.Content)
	assert.Equal(t, 1, snap.Page.Counter)

	s.RenderBasket([]domain.Product{hat}, decimal.NewFromInt(750), true)
	snap = s.Snapshot()
	require.NotNil(t, snap.Modal.Basket)
	assert.Equal(t, "750 синапсов", snap.Modal.Basket.Price)
	assert.True(t, snap.Modal.Basket.CanSubmit)
	assert.Equal(t, 1, snap.Modal.Basket.Items[0].Index)

	// an open basket follows updates
	s.RenderBasket(nil, decimal.Zero, false)
	snap = s.Snapshot()
	assert.Equal(t, ModalBasket, snap.Modal.Content)
	assert.Equal(t, "Корзина пуста", snap.Modal.Basket.Empty)
	assert.False(t, snap.Modal.Basket.CanSubmit)

	s.RenderSuccess(decimal.NewFromInt(750))
	snap = s.Snapshot()
	assert.Equal(t, "Списано 750 синапсов", snap.Modal.Success.Description)
}

func TestScreen_Forms(t *testing.T) {
	t.Parallel()

	s := NewScreen()
	s.RenderPaymentForm(domain.OrderForm{Payment: domain.PaymentCard}, domain.FormErrors{
		"address": domain.MessageAddressRequired,
	})

	snap := s.Snapshot()
	require.NotNil(t, snap.Modal.Payment)
	assert.False(t, snap.Modal.Payment.Valid)
	assert.Equal(t, "card", snap.Modal.Payment.Fields["payment"])
	assert.Equal(t, domain.MessageAddressRequired, snap.Modal.Payment.Errors)

	s.RenderContactsForm(domain.OrderForm{}, domain.FormErrors{
		"phone": domain.MessagePhoneRequired,
		"email": domain.MessageEmailRequired,
	})
	snap = s.Snapshot()
	require.NotNil(t, snap.Modal.Contacts)
	assert.Equal(t, domain.MessageEmailRequired+"; "+domain.MessagePhoneRequired, snap.Modal.Contacts.Errors)

	s.RenderContactsForm(domain.OrderForm{Email: "a@b.c", Phone: "1"}, domain.FormErrors{})
	assert.True(t, s.Snapshot().Modal.Contacts.Valid)
}

func TestScreen_SnapshotIsACopy(t *testing.T) {
	t.Parallel()

	s := NewScreen()
	s.RenderCatalog([]domain.Product{hat})

	snap := s.Snapshot()
	snap.Page.Catalog[0].Title = "changed"

	assert.Equal(t, "Шапка", s.Snapshot().Page.Catalog[0].Title)
}
