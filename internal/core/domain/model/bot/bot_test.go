package bot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastroute/internal/core/domain/model/bot"
	"fastroute/internal/core/domain/model/kernel"
	"fastroute/internal/pkg/errs"
)

func TestNewBot(t *testing.T) {
	location := mustNewLocation(t, 4, 4)

	tests := []struct {
		name     string
		id       bot.ID
		botName  string
		location kernel.Location
		wantErr  bool
	}{
		{
			name:     "valid bot",
			id:       1,
			botName:  "Bot-1",
			location: location,
		},
		{
			name:     "zero id",
			id:       0,
			botName:  "Bot-1",
			location: location,
			wantErr:  true,
		},
		{
			name:     "negative id",
			id:       -1,
			botName:  "Bot-1",
			location: location,
			wantErr:  true,
		},
		{
			name:     "empty name",
			id:       1,
			botName:  "",
			location: location,
			wantErr:  true,
		},
		{
			name:    "zero value location",
			id:      1,
			botName: "Bot-1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := bot.NewBot(tt.id, tt.botName, tt.location)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, b)
			} else {
				require.NoError(t, err)
				assert.NoError(t, b.Validate())
				assert.Equal(t, tt.id, b.ID())
				assert.Equal(t, tt.botName, b.Name())
				assert.Equal(t, bot.StatusAvailable, b.Status())
				assert.Equal(t, 0, b.ActiveOrders())
				assert.Equal(t, 0, b.TotalDeliveries())
			}
		})
	}
}

func TestRestoreBot(t *testing.T) {
	location := mustNewLocation(t, 2, 7)

	t.Run("restores full state", func(t *testing.T) {
		b, err := bot.RestoreBot(3, "Bot-3", bot.StatusBusy, location, 2, 15)
		require.NoError(t, err)

		assert.Equal(t, bot.ID(3), b.ID())
		assert.Equal(t, bot.StatusBusy, b.Status())
		assert.Equal(t, 2, b.ActiveOrders())
		assert.Equal(t, 15, b.TotalDeliveries())
	})

	t.Run("rejects load above capacity", func(t *testing.T) {
		_, err := bot.RestoreBot(3, "Bot-3", bot.StatusBusy, location, bot.MaxActiveOrders+1, 0)
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects negative deliveries", func(t *testing.T) {
		_, err := bot.RestoreBot(3, "Bot-3", bot.StatusAvailable, location, 0, -1)
		assert.Error(t, err)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := bot.RestoreBot(3, "Bot-3", bot.StatusUnknown, location, 0, 0)
		assert.Error(t, err)
	})
}

func TestBot_TakeOrder(t *testing.T) {
	t.Run("marks bot busy", func(t *testing.T) {
		b := mustNewBot(t, 1)

		require.NoError(t, b.TakeOrder())

		assert.Equal(t, bot.StatusBusy, b.Status())
		assert.Equal(t, 1, b.ActiveOrders())
	})

	t.Run("allows stacking up to capacity", func(t *testing.T) {
		b := mustNewBot(t, 1)

		for range bot.MaxActiveOrders {
			require.NoError(t, b.TakeOrder())
		}

		assert.Equal(t, bot.MaxActiveOrders, b.ActiveOrders())
		assert.False(t, b.CanTakeOrder())

		err := b.TakeOrder()
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("offline bot with spare capacity still takes orders", func(t *testing.T) {
		b := mustNewBot(t, 1)
		require.NoError(t, b.SetStatus(bot.StatusOffline))

		assert.True(t, b.CanTakeOrder())
		require.NoError(t, b.TakeOrder())
		assert.Equal(t, bot.StatusBusy, b.Status())
		assert.Equal(t, 1, b.ActiveOrders())
	})
}

func TestBot_CompleteDelivery(t *testing.T) {
	t.Run("last delivery frees the bot", func(t *testing.T) {
		b := mustNewBot(t, 1)
		require.NoError(t, b.TakeOrder())

		require.NoError(t, b.CompleteDelivery())

		assert.Equal(t, bot.StatusAvailable, b.Status())
		assert.Equal(t, 0, b.ActiveOrders())
		assert.Equal(t, 1, b.TotalDeliveries())
	})

	t.Run("bot stays busy with remaining orders", func(t *testing.T) {
		b := mustNewBot(t, 1)
		require.NoError(t, b.TakeOrder())
		require.NoError(t, b.TakeOrder())

		require.NoError(t, b.CompleteDelivery())

		assert.Equal(t, bot.StatusBusy, b.Status())
		assert.Equal(t, 1, b.ActiveOrders())
	})

	t.Run("no active orders", func(t *testing.T) {
		b := mustNewBot(t, 1)

		err := b.CompleteDelivery()
		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestBot_ReleaseOrder(t *testing.T) {
	t.Run("release does not count a delivery", func(t *testing.T) {
		b := mustNewBot(t, 1)
		require.NoError(t, b.TakeOrder())

		require.NoError(t, b.ReleaseOrder())

		assert.Equal(t, bot.StatusAvailable, b.Status())
		assert.Equal(t, 0, b.ActiveOrders())
		assert.Equal(t, 0, b.TotalDeliveries())
	})

	t.Run("no active orders", func(t *testing.T) {
		b := mustNewBot(t, 1)
		assert.Error(t, b.ReleaseOrder())
	})
}

func TestBot_MoveTo(t *testing.T) {
	b := mustNewBot(t, 1)
	target := mustNewLocation(t, 8, 8)

	require.NoError(t, b.MoveTo(target))

	equal, err := b.Location().IsEqual(target)
	require.NoError(t, err)
	assert.True(t, equal)

	t.Run("rejects zero value location", func(t *testing.T) {
		assert.Error(t, b.MoveTo(kernel.Location{}))
	})
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    bot.Status
		wantErr bool
	}{
		{input: "available", want: bot.StatusAvailable},
		{input: "busy", want: bot.StatusBusy},
		{input: "returning", want: bot.StatusReturning},
		{input: "offline", want: bot.StatusOffline},
		{input: "AVAILABLE", wantErr: true},
		{input: "unknown", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := bot.ParseStatus(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}

func TestBot_Validate(t *testing.T) {
	t.Run("zero value bot", func(t *testing.T) {
		var b bot.Bot
		err := b.Validate()
		assert.Error(t, err)
		assert.Equal(t, bot.ErrBotIsNotConstructed, err)
	})
}

func mustNewLocation(t *testing.T, x, y kernel.Coordinate) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	return loc
}

func mustNewBot(t *testing.T, id bot.ID) *bot.Bot {
	t.Helper()
	b, err := bot.NewBot(id, "Bot-1", mustNewLocation(t, 4, 4))
	require.NoError(t, err)
	return b
}
