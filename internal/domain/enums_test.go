package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jafarshop/weblarek/internal/domain"
)

func TestCheckoutStepTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to domain.CheckoutStep
		want     bool
	}{
		{domain.StepCatalog, domain.StepPreview, true},
		{domain.StepCatalog, domain.StepBasket, true},
		{domain.StepCatalog, domain.StepPayment, false},
		{domain.StepPreview, domain.StepCatalog, true},
		{domain.StepBasket, domain.StepPayment, true},
		{domain.StepBasket, domain.StepContacts, false},
		{domain.StepPayment, domain.StepContacts, true},
		{domain.StepContacts, domain.StepSubmitted, true},
		{domain.StepContacts, domain.StepFailed, true},
		{domain.StepFailed, domain.StepSubmitted, true},
		{domain.StepFailed, domain.StepPayment, false},
		{domain.StepSubmitted, domain.StepCatalog, true},
		{domain.StepSubmitted, domain.StepContacts, false},
		{domain.CheckoutStep("bogus"), domain.StepCatalog, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCategory(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.CategorySoftSkill.IsValid())
	assert.False(t, domain.Category("прочее").IsValid())
	assert.Equal(t, "card__category_hard", domain.CategoryHardSkill.Modifier())
	assert.Equal(t, "card__category_other", domain.Category("прочее").Modifier())
}

func TestSnapshotIDs(t *testing.T) {
	t.Parallel()

	snap := domain.OrderSnapshot{
		Items: []domain.Product{
			{ID: "a", Price: decimal.NewNullDecimal(decimal.NewFromInt(100))},
			{ID: "b"},
		},
	}

	assert.Equal(t, []string{"a", "b"}, snap.ItemIDs())
	assert.Equal(t, []string{"a"}, snap.SellableIDs())
}
