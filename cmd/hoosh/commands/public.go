package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewPublicCommand creates the public command group. These commands hit the
// unauthenticated endpoints, so they work without a session.
func NewPublicCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "public",
		Short: "Read the public site surface",
		Long:  "Fetch published pages, site options, and the active theme without a session",
	}

	cmd.AddCommand(newPublicPageCommand())
	cmd.AddCommand(newPublicOptionsCommand())
	cmd.AddCommand(newPublicThemeCommand())

	return cmd
}

func newPublicPageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "page SLUG",
		Short: "Fetch a published page by slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			page, err := client.Public().GetPage(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get public page: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return encodeYAML(page)
			default:
				return encodeJSON(page)
			}
		},
	}
}

func newPublicOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Fetch the public site options",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			options, err := client.Public().GetOptions(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get site options: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return encodeYAML(options)
			default:
				return encodeJSON(options)
			}
		},
	}
}

func newPublicThemeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Fetch the active theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			theme, err := client.Public().GetActiveTheme(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get active theme: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return encodeYAML(theme)
			default:
				return encodeJSON(theme)
			}
		},
	}
}
