package main

import (
	"fmt"
	"strings"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/orderbot/pkg/entities"
	"github.com/Jacobbrewer1/orderbot/pkg/messages"
	"github.com/Jacobbrewer1/orderbot/pkg/ordering"
)

const (
	// StartOrderButtonID is the ID for the start order button on the panel.
	StartOrderButtonID = "order:start"

	// NotifyButtonID is the ID for the notify me button on the panel.
	NotifyButtonID = "order:notify"

	// CloseTicketButtonID is the ID for the close button in a ticket channel.
	CloseTicketButtonID = "order:close"
)

const (
	// OrderEmoji is the emoji for the start order button. (Receipt)
	OrderEmoji = "\U0001F9FE"

	// NotifyEmoji is the emoji for the notify button. (Bell)
	NotifyEmoji = "\U0001F514"

	// CloseEmoji is the emoji for the close button. (Padlock)
	CloseEmoji = "\U0001F510"
)

const (
	colorGreen   = 0x57F287
	colorOrange  = 0xE67E22
	colorRed     = 0xED4245
	colorBlurple = 0x5865F2
)

// statusLine renders the store status with its emoji.
func statusLine(status entities.StoreStatus) string {
	switch status {
	case entities.StoreStatusOpen:
		return ":green_circle: Open"
	case entities.StoreStatusPaused:
		return ":pause_button: Paused"
	default:
		return ":red_circle: Closed"
	}
}

func statusColor(status entities.StoreStatus) int {
	switch status {
	case entities.StoreStatusOpen:
		return colorGreen
	case entities.StoreStatusPaused:
		return colorOrange
	default:
		return colorRed
	}
}

func panelEmbed(view ordering.PanelView) *discordgo.MessageEmbed {
	lines := []string{
		messages.PanelDescription,
		"",
		fmt.Sprintf(messages.PanelStatus, statusLine(view.Status)),
	}

	if view.Limited {
		lines = append(lines, fmt.Sprintf(messages.PanelRemaining, view.Remaining, view.Limit))
	} else {
		lines = append(lines, messages.PanelNoLimit)
	}

	if view.ShowNotify {
		lines = append(lines, "", messages.PanelNotify)
	}

	return &discordgo.MessageEmbed{
		Title:       messages.PanelTitle,
		Description: strings.Join(lines, "\n"),
		Color:       statusColor(view.Status),
	}
}

// panelComponents renders the panel buttons. Start order is always there; notify me only while the store is
// not taking orders.
func panelComponents(view ordering.PanelView) []discordgo.MessageComponent {
	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    fmt.Sprintf("%s Start Order", OrderEmoji),
			Style:    discordgo.PrimaryButton,
			CustomID: StartOrderButtonID,
		},
	}

	if view.ShowNotify {
		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("%s Notify me", NotifyEmoji),
			Style:    discordgo.SecondaryButton,
			CustomID: NotifyButtonID,
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: buttons,
		},
	}
}

func ticketWelcomeMessage(userID string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s>", userID),
		Embed: &discordgo.MessageEmbed{
			Title:       messages.TicketWelcomeTitle,
			Description: fmt.Sprintf(messages.TicketWelcome, userID),
			Color:       colorBlurple,
		},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: []string{userID},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    fmt.Sprintf("%s Close Ticket", CloseEmoji),
						Style:    discordgo.DangerButton,
						CustomID: CloseTicketButtonID,
					},
				},
			},
		},
	}
}
