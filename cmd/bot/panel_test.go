package main

import (
	"fmt"
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/orderbot/pkg/entities"
	"github.com/Jacobbrewer1/orderbot/pkg/messages"
	"github.com/Jacobbrewer1/orderbot/pkg/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttonIDs(t *testing.T, components []discordgo.MessageComponent) []string {
	t.Helper()

	require.Len(t, components, 1)
	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)

	ids := make([]string, 0, len(row.Components))
	for _, c := range row.Components {
		b, ok := c.(discordgo.Button)
		require.True(t, ok)
		ids = append(ids, b.CustomID)
	}
	return ids
}

func TestPanelEmbed(t *testing.T) {
	tests := []struct {
		name     string
		view     ordering.PanelView
		contains []string
		missing  []string
		color    int
	}{
		{
			name:     "open with limit",
			view:     ordering.PanelView{Status: entities.StoreStatusOpen, Limited: true, Limit: 5, Remaining: 2},
			contains: []string{":green_circle: Open", fmt.Sprintf(messages.PanelRemaining, 2, 5)},
			missing:  []string{messages.PanelNotify, messages.PanelNoLimit},
			color:    colorGreen,
		},
		{
			name:     "paused without limit",
			view:     ordering.PanelView{Status: entities.StoreStatusPaused, ShowNotify: true},
			contains: []string{":pause_button: Paused", messages.PanelNoLimit, messages.PanelNotify},
			color:    colorOrange,
		},
		{
			name:     "closed",
			view:     ordering.PanelView{Status: entities.StoreStatusClosed, ShowNotify: true},
			contains: []string{":red_circle: Closed", messages.PanelNotify},
			color:    colorRed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embed := panelEmbed(tt.view)
			assert.Equal(t, messages.PanelTitle, embed.Title)
			assert.Equal(t, tt.color, embed.Color)
			for _, s := range tt.contains {
				assert.Contains(t, embed.Description, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, embed.Description, s)
			}
		})
	}
}

func TestPanelComponents(t *testing.T) {
	open := panelComponents(ordering.PanelView{Status: entities.StoreStatusOpen})
	assert.Equal(t, []string{StartOrderButtonID}, buttonIDs(t, open))

	paused := panelComponents(ordering.PanelView{Status: entities.StoreStatusPaused, ShowNotify: true})
	assert.Equal(t, []string{StartOrderButtonID, NotifyButtonID}, buttonIDs(t, paused))
}

func TestTicketWelcomeMessage(t *testing.T) {
	msg := ticketWelcomeMessage("u1")

	assert.Equal(t, "<@u1>", msg.Content)
	require.NotNil(t, msg.Embed)
	assert.Contains(t, msg.Embed.Description, "<@u1>")
	assert.Equal(t, []string{"u1"}, msg.AllowedMentions.Users)
	assert.Equal(t, []string{CloseTicketButtonID}, buttonIDs(t, msg.Components))
}
