package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewComponentsCommand creates the components command group.
func NewComponentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "components",
		Aliases: []string{"component"},
		Short:   "Manage components",
		Long:    "List, create, and manage reusable content components",
	}

	cmd.AddCommand(newComponentsListCommand())
	cmd.AddCommand(newComponentsGetCommand())
	cmd.AddCommand(newComponentsCreateCommand())
	cmd.AddCommand(newComponentsUpdateCommand())
	cmd.AddCommand(newComponentsDeleteCommand())

	return cmd
}

func newComponentsListCommand() *cobra.Command {
	var (
		flags         listFlags
		componentType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Components().List(context.Background(), &hoosh.ComponentListParams{
				ListParams: flags.toParams(),
				Type:       componentType,
			})
			if err != nil {
				return fmt.Errorf("failed to list components: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				if len(result.Items) == 0 {
					fmt.Println("No components found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Slug", "Title", "Type", "Updated")

				for _, component := range result.Items {
					_ = table.Append(strconv.FormatInt(component.ID, 10), component.Slug, component.Title, component.Type, formatTimestamp(component.UpdatedAt))
				}

				_ = table.Render()
				fmt.Printf("Showing %d of %d components\n", len(result.Items), result.Total)
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&componentType, "type", "", "filter by component type")

	return cmd
}

func newComponentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid component id: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			component, err := client.Components().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get component: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return encodeYAML(component)
			default:
				return encodeJSON(component)
			}
		},
	}
}

func newComponentsCreateCommand() *cobra.Command {
	var (
		slug          string
		title         string
		componentType string
		description   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a component",
		RunE: func(cmd *cobra.Command, args []string) error {
			if slug == "" {
				return ErrSlugRequired
			}

			if title == "" {
				return ErrTitleRequired
			}

			if componentType == "" {
				return ErrTypeRequired
			}

			request := &hoosh.ComponentCreateRequest{
				Slug:  slug,
				Title: title,
				Type:  componentType,
			}
			if description != "" {
				request.Description = strPtr(description)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			component, err := client.Components().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create component: %w", err)
			}

			fmt.Printf("Created component %d (%s)\n", component.ID, component.Slug)

			return nil
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "component slug")
	cmd.Flags().StringVar(&title, "title", "", "component title")
	cmd.Flags().StringVar(&componentType, "type", "", "component type")
	cmd.Flags().StringVar(&description, "description", "", "component description")

	return cmd
}

func newComponentsUpdateCommand() *cobra.Command {
	var (
		slug          string
		title         string
		componentType string
		description   string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid component id: %w", err)
			}

			request := &hoosh.ComponentUpdateRequest{}
			changed := false

			if cmd.Flags().Changed("slug") {
				request.Slug = strPtr(slug)
				changed = true
			}

			if cmd.Flags().Changed("title") {
				request.Title = strPtr(title)
				changed = true
			}

			if cmd.Flags().Changed("type") {
				request.Type = strPtr(componentType)
				changed = true
			}

			if cmd.Flags().Changed("description") {
				request.Description = strPtr(description)
				changed = true
			}

			if !changed {
				return ErrNothingToUpdate
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			component, err := client.Components().Update(context.Background(), id, request)
			if err != nil {
				return fmt.Errorf("failed to update component: %w", err)
			}

			fmt.Printf("Updated component %d (%s)\n", component.ID, component.Slug)

			return nil
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "new slug")
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&componentType, "type", "", "new type")
	cmd.Flags().StringVar(&description, "description", "", "new description")

	return cmd
}

func newComponentsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid component id: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Components().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete component: %w", err)
			}

			if result.OK {
				fmt.Printf("Deleted component %d\n", id)
			}

			return nil
		},
	}
}
