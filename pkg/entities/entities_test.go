package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGuild(t *testing.T) {
	g := NewGuild("g1", "c1", "m1", "cat1", "2024-05-01")

	require.Equal(t, StoreStatusClosed, g.Status)
	require.Equal(t, 0, g.TicketLimit)
	require.Equal(t, 0, g.TicketsToday)
	require.Equal(t, "2024-05-01", g.LastReset.String())
	require.NotNil(t, g.Notify)
	require.Empty(t, g.Notify)
}

func TestGuild_Remaining(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		today     int
		want      int
		wantLimit bool
	}{
		{name: "Unlimited", limit: 0, today: 12, want: 0, wantLimit: false},
		{name: "SomeLeft", limit: 5, today: 2, want: 3, wantLimit: true},
		{name: "Exhausted", limit: 3, today: 3, want: 0, wantLimit: true},
		{name: "OverridePastLimit", limit: 3, today: 7, want: 0, wantLimit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Guild{TicketLimit: tt.limit, TicketsToday: tt.today}
			got, limited := g.Remaining()
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantLimit, limited)
		})
	}
}

func TestStoreStatus(t *testing.T) {
	require.True(t, StoreStatusOpen.AcceptsOrders())
	require.False(t, StoreStatusPaused.AcceptsOrders())
	require.False(t, StoreStatusClosed.AcceptsOrders())
	require.False(t, StoreStatus("Sleeping").IsValid())
}

func TestGuild_Validate(t *testing.T) {
	require.NoError(t, NewGuild("g1", "c1", "m1", "cat1", "2024-05-01").Validate())
	require.NoError(t, (&Guild{Status: StoreStatusOpen}).Validate())

	tests := []struct {
		name  string
		guild *Guild
	}{
		{name: "UnknownStatus", guild: &Guild{Status: "Sleeping", LastReset: "2024-05-01"}},
		{name: "MissingStatus", guild: &Guild{LastReset: "2024-05-01"}},
		{name: "BadLastReset", guild: &Guild{Status: StoreStatusOpen, LastReset: "yesterday"}},
		{name: "NegativeLimit", guild: &Guild{Status: StoreStatusOpen, TicketLimit: -1}},
		{name: "NegativeCount", guild: &Guild{Status: StoreStatusOpen, TicketsToday: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.guild.Validate(), ErrInvalidGuild)
		})
	}
}

func TestChannelName(t *testing.T) {
	require.Equal(t, "order-big-wolf", ChannelName("Big Wolf"))
	require.Equal(t, "order-cub", ChannelName("cub"))
}
