package main

import (
	"reflect"
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlashCommands(t *testing.T) {
	commands := slashCommands()

	byName := make(map[string]*slashCommand, len(commands))
	for _, c := range commands {
		_, dup := byName[c.cmd.Name]
		require.False(t, dup, "duplicate command %s", c.cmd.Name)
		byName[c.cmd.Name] = c
		require.NotNil(t, c.process, c.cmd.Name)
	}

	for _, name := range []string{setupCmdName, openCmdName, unpauseCmdName, pauseCmdName, closeCmdName, limitCmdName, setTodayCmdName} {
		c, ok := byName[name]
		require.True(t, ok, name)
		assert.True(t, c.adminOnly, name)
		require.NotNil(t, c.cmd.DefaultMemberPermissions, name)
		assert.Equal(t, int64(discordgo.PermissionAdministrator), *c.cmd.DefaultMemberPermissions, name)
	}

	help, ok := byName[helpCmdName]
	require.True(t, ok)
	assert.False(t, help.adminOnly)
	assert.Nil(t, help.cmd.DefaultMemberPermissions)

	// unpause is an alias of open.
	assert.Equal(t,
		reflect.ValueOf(byName[openCmdName].process).Pointer(),
		reflect.ValueOf(byName[unpauseCmdName].process).Pointer(),
	)

	for _, name := range []string{limitCmdName, setTodayCmdName} {
		opts := byName[name].cmd.Options
		require.Len(t, opts, 1, name)
		assert.Equal(t, amountOptionName, opts[0].Name)
		assert.True(t, opts[0].Required)
		require.NotNil(t, opts[0].MinValue)
		assert.Equal(t, float64(0), *opts[0].MinValue)
	}
}

func TestApplicationCommands(t *testing.T) {
	commands := slashCommands()
	cmds := applicationCommands(commands)

	require.Len(t, cmds, len(commands))
	for i := range commands {
		assert.Same(t, commands[i].cmd, cmds[i])
	}
}

func TestButtonProcessors(t *testing.T) {
	buttons := buttonProcessors()
	for _, id := range []string{StartOrderButtonID, NotifyButtonID, CloseTicketButtonID} {
		assert.NotNil(t, buttons[id], id)
	}
}
