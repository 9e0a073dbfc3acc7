package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewMediaCommand creates the media command group.
func NewMediaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage media assets",
		Long:  "List, upload, and organize media assets and folders",
	}

	cmd.AddCommand(newMediaListCommand())
	cmd.AddCommand(newMediaGetCommand())
	cmd.AddCommand(newMediaUploadCommand())
	cmd.AddCommand(newMediaMoveCommand())
	cmd.AddCommand(newMediaDeleteCommand())
	cmd.AddCommand(newMediaFoldersCommand())

	return cmd
}

func newMediaListCommand() *cobra.Command {
	var (
		flags  listFlags
		folder int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List media assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &hoosh.MediaListParams{ListParams: flags.toParams()}
			if cmd.Flags().Changed("folder") {
				params.FolderID = &folder
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Media().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list media: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				if len(result.Items) == 0 {
					fmt.Println("No media found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Type", "Size", "URL")

				for _, asset := range result.Items {
					_ = table.Append(strconv.FormatInt(asset.ID, 10), asset.OriginalName, asset.ContentType, strconv.FormatInt(asset.SizeBytes, 10), asset.URL)
				}

				_ = table.Render()
				fmt.Printf("Showing %d of %d assets\n", len(result.Items), result.Total)
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Int64Var(&folder, "folder", 0, "restrict to one folder id")

	return cmd
}

func newMediaGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one media asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid media id: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			asset, err := client.Media().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get media: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return encodeYAML(asset)
			default:
				return encodeJSON(asset)
			}
		},
	}
}

func newMediaUploadCommand() *cobra.Command {
	var (
		filePath string
		folder   int64
	)

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if filePath == "" {
				return ErrFileRequired
			}

			file, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer func() { _ = file.Close() }()

			request := &hoosh.MediaUploadRequest{
				FileName: filepath.Base(filePath),
				Content:  file,
			}
			if cmd.Flags().Changed("folder") {
				request.FolderID = &folder
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			asset, err := client.Media().Upload(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to upload media: %w", err)
			}

			fmt.Printf("Uploaded %s as asset %d (%s)\n", asset.OriginalName, asset.ID, asset.URL)

			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "path of the file to upload")
	cmd.Flags().Int64Var(&folder, "folder", 0, "target folder id (omit for root)")

	return cmd
}

func newMediaMoveCommand() *cobra.Command {
	var folder int64

	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Move an asset to another folder",
		Long:  "Move an asset into the folder given by --folder, or to the root when the flag is omitted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid media id: %w", err)
			}

			request := &hoosh.MediaMoveRequest{}
			if cmd.Flags().Changed("folder") {
				request.FolderID = &folder
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			asset, err := client.Media().Move(context.Background(), id, request)
			if err != nil {
				return fmt.Errorf("failed to move media: %w", err)
			}

			if asset.FolderID != nil {
				fmt.Printf("Moved asset %d to folder %d\n", asset.ID, *asset.FolderID)
			} else {
				fmt.Printf("Moved asset %d to the root folder\n", asset.ID)
			}

			return nil
		},
	}

	cmd.Flags().Int64Var(&folder, "folder", 0, "target folder id (omit for root)")

	return cmd
}

func newMediaDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a media asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid media id: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Media().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete media: %w", err)
			}

			if result.OK {
				fmt.Printf("Deleted asset %d\n", id)
			}

			return nil
		},
	}
}

func newMediaFoldersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "folders",
		Aliases: []string{"folder"},
		Short:   "Manage media folders",
	}

	cmd.AddCommand(newMediaFoldersListCommand())
	cmd.AddCommand(newMediaFoldersCreateCommand())
	cmd.AddCommand(newMediaFoldersUpdateCommand())
	cmd.AddCommand(newMediaFoldersDeleteCommand())

	return cmd
}

func newMediaFoldersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List media folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Media().ListFolders(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list folders: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				if len(result.Items) == 0 {
					fmt.Println("No folders found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Parent")

				for _, folder := range result.Items {
					parent := ""
					if folder.ParentID != nil {
						parent = strconv.FormatInt(*folder.ParentID, 10)
					}

					_ = table.Append(strconv.FormatInt(folder.ID, 10), folder.Name, parent)
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

func newMediaFoldersCreateCommand() *cobra.Command {
	var (
		name   string
		parent int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a media folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			request := &hoosh.MediaFolderCreateRequest{Name: name}
			if cmd.Flags().Changed("parent") {
				request.ParentID = &parent
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			folder, err := client.Media().CreateFolder(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create folder: %w", err)
			}

			fmt.Printf("Created folder %d (%s)\n", folder.ID, folder.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "folder name")
	cmd.Flags().Int64Var(&parent, "parent", 0, "parent folder id (omit for root)")

	return cmd
}

func newMediaFoldersUpdateCommand() *cobra.Command {
	var (
		name   string
		parent int64
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename or re-parent a media folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid folder id: %w", err)
			}

			request := &hoosh.MediaFolderUpdateRequest{}
			changed := false

			if cmd.Flags().Changed("name") {
				request.Name = strPtr(name)
				changed = true
			}

			if cmd.Flags().Changed("parent") {
				request.ParentID = &parent
				changed = true
			}

			if !changed {
				return ErrNothingToUpdate
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			folder, err := client.Media().UpdateFolder(context.Background(), id, request)
			if err != nil {
				return fmt.Errorf("failed to update folder: %w", err)
			}

			fmt.Printf("Updated folder %d (%s)\n", folder.ID, folder.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new folder name")
	cmd.Flags().Int64Var(&parent, "parent", 0, "new parent folder id")

	return cmd
}

func newMediaFoldersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a media folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid folder id: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Media().DeleteFolder(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete folder: %w", err)
			}

			if result.OK {
				fmt.Printf("Deleted folder %d\n", id)
			}

			return nil
		},
	}
}
