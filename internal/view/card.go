package view

import (
	"github.com/shopspring/decimal"

	"github.com/jafarshop/weblarek/internal/domain"
	"github.com/jafarshop/weblarek/internal/events"
)

const (
	currency       = "синапсов"
	pricelessLabel = "Бесценно"

	labelAddToBasket = "В корзину"
	labelRemove      = "Удалить"
)

// CardConfig chooses the optional parts of a rendered card
type CardConfig struct {
	Category    bool
	Image       bool
	Description bool
	Index       bool
	Action      bool
}

// Card layouts used by the storefront
var (
	CatalogCard = CardConfig{Category: true, Image: true}
	PreviewCard = CardConfig{Category: true, Image: true, Description: true, Action: true}
	BasketCard  = CardConfig{Index: true, Action: true}
)

// Card is a rendered product card
type Card struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Price         string  `json:"price"`
	Category      string  `json:"category,omitempty"`
	CategoryClass string  `json:"category_class,omitempty"`
	Image         string  `json:"image,omitempty"`
	Description   string  `json:"description,omitempty"`
	Index         int     `json:"index,omitempty"`
	Action        *Action `json:"action,omitempty"`
}

// Action is the card button and the intent it emits
type Action struct {
	Label    string      `json:"label"`
	Event    events.Name `json:"event"`
	Disabled bool        `json:"disabled"`
}

// CardContext carries per-render facts the product itself does not know
type CardContext struct {
	Index    int
	InBasket bool
}

// RenderCard renders a product with the parts cfg selects
func RenderCard(p domain.Product, cfg CardConfig, ctx CardContext) Card {
	card := Card{
		ID:    p.ID,
		Title: p.Title,
		Price: FormatPrice(p.Price),
	}
	if cfg.Category {
		card.Category = string(p.Category)
		card.CategoryClass = p.Category.Modifier()
	}
	if cfg.Image {
		card.Image = p.Image
	}
	if cfg.Description {
		card.Description = p.Description
	}
	if cfg.Index {
		card.Index = ctx.Index
	}
	if cfg.Action {
		card.Action = cardAction(p, ctx)
	}
	return card
}

func cardAction(p domain.Product, ctx CardContext) *Action {
	if ctx.InBasket {
		return &Action{Label: labelRemove, Event: events.CardRemoveName}
	}
	return &Action{
		Label:    labelAddToBasket,
		Event:    events.CardAddName,
		Disabled: !p.Sellable(),
	}
}

// FormatPrice renders a price in synapses
func FormatPrice(price decimal.NullDecimal) string {
	if !price.Valid {
		return pricelessLabel
	}
	return FormatAmount(price.Decimal)
}

// FormatAmount renders an amount in synapses
func FormatAmount(amount decimal.Decimal) string {
	return amount.String() + " " + currency
}
