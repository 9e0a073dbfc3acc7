package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagesCommand(t *testing.T) {
	cmd := NewPagesCommand()
	assert.Equal(t, "pages", cmd.Use)
	assert.Equal(t, []string{"page"}, cmd.Aliases)
	assert.Equal(t, "Manage pages", cmd.Short)

	// Check subcommands are added
	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 7)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "create")
	assert.Contains(t, commandNames, "update")
	assert.Contains(t, commandNames, "delete")
	assert.Contains(t, commandNames, "publish")
	assert.Contains(t, commandNames, "unpublish")
}

func TestPagesListCommand(t *testing.T) {
	cmd := newPagesListCommand()
	assert.Equal(t, "list", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	assert.NotNil(t, cmd.Flags().Lookup("status"))
	assert.NotNil(t, cmd.Flags().Lookup("limit"))
	assert.NotNil(t, cmd.Flags().Lookup("offset"))
	assert.NotNil(t, cmd.Flags().Lookup("search"))
}

func TestPagesUpdateCommand(t *testing.T) {
	cmd := newPagesUpdateCommand()
	assert.Equal(t, "update ID", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	assert.NotNil(t, cmd.Flags().Lookup("slug"))
	assert.NotNil(t, cmd.Flags().Lookup("title"))
	assert.NotNil(t, cmd.Flags().Lookup("status"))
	assert.NotNil(t, cmd.Flags().Lookup("seo-title"))
	assert.NotNil(t, cmd.Flags().Lookup("seo-description"))
}

func TestPagesGetCommand(t *testing.T) {
	cmd := newPagesGetCommand()
	assert.Equal(t, "get ID", cmd.Use)
	assert.Equal(t, "Show one page", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
}
