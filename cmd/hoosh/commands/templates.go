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

// NewTemplatesCommand creates the templates command group.
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template"},
		Short:   "Manage page templates",
		Long:    "List, create, and manage reusable page templates",
	}

	cmd.AddCommand(newTemplatesListCommand())
	cmd.AddCommand(newTemplatesGetCommand())
	cmd.AddCommand(newTemplatesCreateCommand())
	cmd.AddCommand(newTemplatesUpdateCommand())
	cmd.AddCommand(newTemplatesDeleteCommand())

	return cmd
}

func newTemplatesListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Templates().List(context.Background(), &hoosh.TemplateListParams{
				ListParams: flags.toParams(),
			})
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				if len(result.Items) == 0 {
					fmt.Println("No templates found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Slug", "Title", "Description", "Updated")

				for _, template := range result.Items {
					_ = table.Append(strconv.FormatInt(template.ID, 10), template.Slug, template.Title, strValue(template.Description), formatTimestamp(template.UpdatedAt))
				}

				_ = table.Render()
				fmt.Printf("Showing %d of %d templates\n", len(result.Items), result.Total)
			}

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newTemplatesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid template id: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			template, err := client.Templates().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get template: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return encodeYAML(template)
			default:
				return encodeJSON(template)
			}
		},
	}
}

func newTemplatesCreateCommand() *cobra.Command {
	var (
		slug        string
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if slug == "" {
				return ErrSlugRequired
			}

			if title == "" {
				return ErrTitleRequired
			}

			request := &hoosh.TemplateCreateRequest{
				Slug:  slug,
				Title: title,
			}
			if description != "" {
				request.Description = strPtr(description)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			template, err := client.Templates().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create template: %w", err)
			}

			fmt.Printf("Created template %d (%s)\n", template.ID, template.Slug)

			return nil
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "template slug")
	cmd.Flags().StringVar(&title, "title", "", "template title")
	cmd.Flags().StringVar(&description, "description", "", "template description")

	return cmd
}

func newTemplatesUpdateCommand() *cobra.Command {
	var (
		slug        string
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid template id: %w", err)
			}

			request := &hoosh.TemplateUpdateRequest{}
			changed := false

			if cmd.Flags().Changed("slug") {
				request.Slug = strPtr(slug)
				changed = true
			}

			if cmd.Flags().Changed("title") {
				request.Title = strPtr(title)
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

			template, err := client.Templates().Update(context.Background(), id, request)
			if err != nil {
				return fmt.Errorf("failed to update template: %w", err)
			}

			fmt.Printf("Updated template %d (%s)\n", template.ID, template.Slug)

			return nil
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "new slug")
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")

	return cmd
}

func newTemplatesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid template id: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Templates().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete template: %w", err)
			}

			if result.OK {
				fmt.Printf("Deleted template %d\n", id)
			}

			return nil
		},
	}
}
