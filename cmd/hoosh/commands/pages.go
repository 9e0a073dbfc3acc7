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

// NewPagesCommand creates the pages command group.
func NewPagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pages",
		Aliases: []string{"page"},
		Short:   "Manage pages",
		Long:    "List, create, and manage CMS pages",
	}

	cmd.AddCommand(newPagesListCommand())
	cmd.AddCommand(newPagesGetCommand())
	cmd.AddCommand(newPagesCreateCommand())
	cmd.AddCommand(newPagesUpdateCommand())
	cmd.AddCommand(newPagesDeleteCommand())
	cmd.AddCommand(newPagesPublishCommand())
	cmd.AddCommand(newPagesUnpublishCommand())

	return cmd
}

// pageListFlags are the shared list options.
type listFlags struct {
	limit  int
	offset int
	search string
	sort   string
	dir    string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "records to skip")
	cmd.Flags().StringVarP(&f.search, "search", "q", "", "free-text search")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort field")
	cmd.Flags().StringVar(&f.dir, "dir", "", "sort direction (asc, desc)")
}

func (f *listFlags) toParams() hoosh.ListParams {
	return hoosh.ListParams{
		Limit:  f.limit,
		Offset: f.offset,
		Search: f.search,
		Sort:   f.sort,
		Dir:    hoosh.SortDirection(f.dir),
	}
}

func newPagesListCommand() *cobra.Command {
	var (
		flags  listFlags
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Pages().List(context.Background(), &hoosh.PageListParams{
				ListParams: flags.toParams(),
				Status:     status,
			})
			if err != nil {
				return fmt.Errorf("failed to list pages: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				if len(result.Items) == 0 {
					fmt.Println("No pages found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Slug", "Title", "Status", "Updated")

				for _, page := range result.Items {
					_ = table.Append(strconv.FormatInt(page.ID, 10), page.Slug, page.Title, page.Status, formatTimestamp(page.UpdatedAt))
				}

				_ = table.Render()
				fmt.Printf("Showing %d of %d pages\n", len(result.Items), result.Total)
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&status, "status", "", "filter by status (draft, published)")

	return cmd
}

func newPagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid page id: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			page, err := client.Pages().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get page: %w", err)
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

func newPagesCreateCommand() *cobra.Command {
	var (
		slug   string
		title  string
		status string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a page",
		RunE: func(cmd *cobra.Command, args []string) error {
			if slug == "" {
				return ErrSlugRequired
			}

			if title == "" {
				return ErrTitleRequired
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			page, err := client.Pages().Create(context.Background(), &hoosh.PageCreateRequest{
				Slug:   slug,
				Title:  title,
				Status: status,
			})
			if err != nil {
				return fmt.Errorf("failed to create page: %w", err)
			}

			fmt.Printf("Created page %d (%s)\n", page.ID, page.Slug)

			return nil
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "page slug")
	cmd.Flags().StringVar(&title, "title", "", "page title")
	cmd.Flags().StringVar(&status, "status", "", "initial status (default draft)")

	return cmd
}

//nolint:funlen // Update commands enumerate every editable field
func newPagesUpdateCommand() *cobra.Command {
	var (
		slug           string
		title          string
		status         string
		seoTitle       string
		seoDescription string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a page",
		Long:  "Update a page; only the flags you set are sent, the rest is left untouched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid page id: %w", err)
			}

			request := &hoosh.PageUpdateRequest{}
			changed := false

			if cmd.Flags().Changed("slug") {
				request.Slug = strPtr(slug)
				changed = true
			}

			if cmd.Flags().Changed("title") {
				request.Title = strPtr(title)
				changed = true
			}

			if cmd.Flags().Changed("status") {
				request.Status = strPtr(status)
				changed = true
			}

			if cmd.Flags().Changed("seo-title") {
				request.SEOTitle = strPtr(seoTitle)
				changed = true
			}

			if cmd.Flags().Changed("seo-description") {
				request.SEODescription = strPtr(seoDescription)
				changed = true
			}

			if !changed {
				return ErrNothingToUpdate
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			page, err := client.Pages().Update(context.Background(), id, request)
			if err != nil {
				return fmt.Errorf("failed to update page: %w", err)
			}

			fmt.Printf("Updated page %d (%s)\n", page.ID, page.Slug)

			return nil
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "new slug")
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&status, "status", "", "new status (draft, published)")
	cmd.Flags().StringVar(&seoTitle, "seo-title", "", "SEO title")
	cmd.Flags().StringVar(&seoDescription, "seo-description", "", "SEO description")

	return cmd
}

func newPagesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid page id: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Pages().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete page: %w", err)
			}

			if result.OK {
				fmt.Printf("Deleted page %d\n", id)
			}

			return nil
		},
	}
}

// setPageStatus is shared by publish/unpublish.
func setPageStatus(idArg, status string) error {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid page id: %w", err)
	}

	client, err := createAuthenticatedClient()
	if err != nil {
		return err
	}

	page, err := client.Pages().Update(context.Background(), id, &hoosh.PageUpdateRequest{
		Status: strPtr(status),
	})
	if err != nil {
		return fmt.Errorf("failed to update page status: %w", err)
	}

	fmt.Printf("Page %d is now %s\n", page.ID, page.Status)

	return nil
}

func newPagesPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish ID",
		Short: "Publish a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setPageStatus(args[0], hoosh.PageStatusPublished)
		},
	}
}

func newPagesUnpublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpublish ID",
		Short: "Revert a page to draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setPageStatus(args[0], hoosh.PageStatusDraft)
		},
	}
}
