package main

import (
	"github.com/Jacobbrewer1/discordgo"
)

const (
	setupCmdName    = "setup"
	openCmdName     = "open"
	unpauseCmdName  = "unpause"
	pauseCmdName    = "pause"
	closeCmdName    = "close"
	limitCmdName    = "limit"
	setTodayCmdName = "settoday"
	helpCmdName     = "help"

	// amountOptionName is the integer option of limit and settoday.
	amountOptionName = "amount"
)

// adminPermission hides admin commands from members who cannot use them.
var adminPermission int64 = discordgo.PermissionAdministrator

func adminCommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     name,
		Type:                     discordgo.ChatApplicationCommand,
		Description:              description,
		DefaultMemberPermissions: &adminPermission,
		Options:                  options,
	}
}

func amountOption(description string) *discordgo.ApplicationCommandOption {
	minValue := float64(0)
	return &discordgo.ApplicationCommandOption{
		Name:        amountOptionName,
		Type:        discordgo.ApplicationCommandOptionInteger,
		Description: description,
		Required:    true,
		MinValue:    &minValue,
	}
}

// slashCommands are the commands registered in every guild.
func slashCommands() []*slashCommand {
	return []*slashCommand{
		{
			cmd:       adminCommand(setupCmdName, "[ADMIN] Sets up the server with the order channel and panel"),
			adminOnly: true,
			process:   setupProcessor,
		},
		{
			cmd:       adminCommand(openCmdName, "[ADMIN] Open order creation and notify users"),
			adminOnly: true,
			process:   openProcessor,
		},
		{
			cmd:       adminCommand(unpauseCmdName, "[ADMIN] Re-open order creation and notify users"),
			adminOnly: true,
			process:   openProcessor,
		},
		{
			cmd:       adminCommand(pauseCmdName, "[ADMIN] Pause order creation"),
			adminOnly: true,
			process:   pauseProcessor,
		},
		{
			cmd:       adminCommand(closeCmdName, "[ADMIN] Close order creation"),
			adminOnly: true,
			process:   closeProcessor,
		},
		{
			cmd:       adminCommand(limitCmdName, "[ADMIN] Set the daily ticket limit", amountOption("Tickets per day, 0 for no limit")),
			adminOnly: true,
			process:   limitProcessor,
		},
		{
			cmd:       adminCommand(setTodayCmdName, "[ADMIN] Override today's ticket count", amountOption("Tickets opened today")),
			adminOnly: true,
			process:   setTodayProcessor,
		},
		{
			cmd: &discordgo.ApplicationCommand{
				Name:        helpCmdName,
				Type:        discordgo.ChatApplicationCommand,
				Description: "Lists the order commands",
			},
			process: helpProcessor,
		},
	}
}

// applicationCommands returns the discord definitions of the commands.
func applicationCommands(commands []*slashCommand) []*discordgo.ApplicationCommand {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(commands))
	for _, c := range commands {
		cmds = append(cmds, c.cmd)
	}
	return cmds
}

// buttonProcessors are the processors for the panel and ticket buttons.
func buttonProcessors() map[string]interactionProcessor {
	return map[string]interactionProcessor{
		StartOrderButtonID:  startOrderProcessor,
		NotifyButtonID:      notifyProcessor,
		CloseTicketButtonID: closeTicketProcessor,
	}
}
