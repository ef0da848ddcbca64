package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jafarshop/weblarek/internal/domain"
	"github.com/jafarshop/weblarek/internal/events"
	"github.com/jafarshop/weblarek/pkg/errors"
)

func TestParseIntent(t *testing.T) {
	t.Parallel()

	t.Run("payload", func(t *testing.T) {
		t.Parallel()

		e, err := events.ParseIntent(events.OrderFieldChangeName,
			[]byte(`{"event":"order-field-change","field":"address","value":"Main St"}`))
		require.NoError(t, err)
		assert.Equal(t, events.OrderFieldChange{Field: domain.OrderFieldAddress, Value: "Main St"}, e)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		e, err := events.ParseIntent(events.BasketOpenName, nil)
		require.NoError(t, err)
		assert.Equal(t, events.BasketOpen{}, e)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := events.ParseIntent(events.CatalogChangedName, nil)
		var unknown *errors.ErrUnknownEvent
		assert.ErrorAs(t, err, &unknown)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		_, err := events.ParseIntent(events.CardAddName, []byte(`{"product_id":1}`))
		assert.Error(t, err)
	})
}

func TestIntents(t *testing.T) {
	t.Parallel()

	names := events.Intents()
	assert.Len(t, names, 13)
	assert.True(t, events.IsIntent(events.ContactsSubmitName))
	assert.False(t, events.IsIntent(events.OrderReadyName))
}
