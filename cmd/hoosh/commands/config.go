package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrUnknownConfigKey rejects keys the CLI does not persist.
var ErrUnknownConfigKey = errors.New("unknown config key (known: api, output)")

// configKeys are the keys exposed through 'config get/set'. Session
// credentials are managed by login/logout, not edited by hand.
var configKeys = []string{"api", "output"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and edit the persisted hoosh CLI configuration",
	}

	cmd.AddCommand(newConfigViewCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Value")

			for _, key := range configKeys {
				_ = table.Append(key, viper.GetString(key))
			}

			if viper.GetString("session_token") != "" {
				_ = table.Append("session", "***")
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isKnownConfigKey(args[0]) {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, args[0])
			}

			fmt.Println(viper.GetString(args[0]))

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set and persist one configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isKnownConfigKey(args[0]) {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, args[0])
			}

			viper.Set(args[0], args[1])

			return saveConfig()
		},
	}
}

func isKnownConfigKey(key string) bool {
	for _, known := range configKeys {
		if key == known {
			return true
		}
	}

	return false
}
