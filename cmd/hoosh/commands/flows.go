package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewFlowsCommand creates the flows command group.
func NewFlowsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "flows",
		Aliases: []string{"flow"},
		Short:   "Manage automation flows",
		Long:    "List, edit, and run automation flows",
	}

	cmd.AddCommand(newFlowsListCommand())
	cmd.AddCommand(newFlowsGetCommand())
	cmd.AddCommand(newFlowsCreateCommand())
	cmd.AddCommand(newFlowsUpdateCommand())
	cmd.AddCommand(newFlowsDeleteCommand())
	cmd.AddCommand(newFlowsActivateCommand())
	cmd.AddCommand(newFlowsDisableCommand())
	cmd.AddCommand(newFlowsRunTestCommand())
	cmd.AddCommand(newFlowsRunsCommand())
	cmd.AddCommand(newFlowsTriggerCommand())

	return cmd
}

// readDefinitionFile loads a flow definition from a JSON file.
func readDefinitionFile(path string) (*hoosh.FlowDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}

	definition := &hoosh.FlowDefinition{}
	if err := json.Unmarshal(data, definition); err != nil {
		return nil, fmt.Errorf("failed to parse definition file: %w", err)
	}

	return definition, nil
}

// parseInputJSON parses the --input flag of run-test and trigger.
func parseInputJSON(raw string) (hoosh.JSONMap, error) {
	if raw == "" {
		return nil, nil
	}

	input := hoosh.JSONMap{}
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}

	return input, nil
}

func newFlowsListCommand() *cobra.Command {
	var (
		flags  listFlags
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List flows",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Flows().List(context.Background(), &hoosh.FlowListParams{
				ListParams: flags.toParams(),
				Status:     status,
			})
			if err != nil {
				return fmt.Errorf("failed to list flows: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				if len(result.Items) == 0 {
					fmt.Println("No flows found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Slug", "Title", "Status", "Trigger", "Updated")

				for _, flow := range result.Items {
					_ = table.Append(strconv.FormatInt(flow.ID, 10), flow.Slug, flow.Title, flow.Status, flow.TriggerEvent, formatTimestamp(flow.UpdatedAt))
				}

				_ = table.Render()
				fmt.Printf("Showing %d of %d flows\n", len(result.Items), result.Total)
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&status, "status", "", "filter by status (draft, active, disabled)")

	return cmd
}

func newFlowsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one flow including its definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid flow id: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			flow, err := client.Flows().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get flow: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return encodeYAML(flow)
			default:
				return encodeJSON(flow)
			}
		},
	}
}

func newFlowsCreateCommand() *cobra.Command {
	var (
		slug           string
		title          string
		description    string
		triggerEvent   string
		definitionFile string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a flow",
		Long:  "Create a flow; new flows start as drafts unless activated later",
		RunE: func(cmd *cobra.Command, args []string) error {
			if slug == "" {
				return ErrSlugRequired
			}

			if title == "" {
				return ErrTitleRequired
			}

			request := &hoosh.FlowCreateRequest{
				Slug:         slug,
				Title:        title,
				TriggerEvent: triggerEvent,
			}
			if description != "" {
				request.Description = strPtr(description)
			}

			if definitionFile != "" {
				definition, err := readDefinitionFile(definitionFile)
				if err != nil {
					return err
				}

				request.Definition = definition
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			flow, err := client.Flows().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create flow: %w", err)
			}

			fmt.Printf("Created flow %d (%s), status %s\n", flow.ID, flow.Slug, flow.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "flow slug")
	cmd.Flags().StringVar(&title, "title", "", "flow title")
	cmd.Flags().StringVar(&description, "description", "", "flow description")
	cmd.Flags().StringVar(&triggerEvent, "trigger-event", "", "event name that triggers the flow")
	cmd.Flags().StringVar(&definitionFile, "definition", "", "path of a JSON definition file")

	return cmd
}

//nolint:funlen // Update commands enumerate every editable field
func newFlowsUpdateCommand() *cobra.Command {
	var (
		title          string
		description    string
		triggerEvent   string
		definitionFile string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a flow",
		Long:  "Update a flow; only the flags you set are sent, the rest is left untouched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid flow id: %w", err)
			}

			request := &hoosh.FlowUpdateRequest{}
			changed := false

			if cmd.Flags().Changed("title") {
				request.Title = strPtr(title)
				changed = true
			}

			if cmd.Flags().Changed("description") {
				request.Description = strPtr(description)
				changed = true
			}

			if cmd.Flags().Changed("trigger-event") {
				request.TriggerEvent = strPtr(triggerEvent)
				changed = true
			}

			if definitionFile != "" {
				definition, err := readDefinitionFile(definitionFile)
				if err != nil {
					return err
				}

				request.Definition = definition
				changed = true
			}

			if !changed {
				return ErrNothingToUpdate
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			flow, err := client.Flows().Update(context.Background(), id, request)
			if err != nil {
				return fmt.Errorf("failed to update flow: %w", err)
			}

			fmt.Printf("Updated flow %d (%s)\n", flow.ID, flow.Slug)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&triggerEvent, "trigger-event", "", "new trigger event name")
	cmd.Flags().StringVar(&definitionFile, "definition", "", "path of a JSON definition file")

	return cmd
}

func newFlowsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid flow id: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Flows().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete flow: %w", err)
			}

			if result.OK {
				fmt.Printf("Deleted flow %d\n", id)
			}

			return nil
		},
	}
}

// setFlowStatus is shared by activate/disable.
func setFlowStatus(idArg, status string) error {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid flow id: %w", err)
	}

	client, err := createAuthenticatedClient()
	if err != nil {
		return err
	}

	flow, err := client.Flows().Update(context.Background(), id, &hoosh.FlowUpdateRequest{
		Status: strPtr(status),
	})
	if err != nil {
		return fmt.Errorf("failed to update flow status: %w", err)
	}

	fmt.Printf("Flow %d (%s) is now %s\n", flow.ID, flow.Slug, flow.Status)

	return nil
}

func newFlowsActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate ID",
		Short: "Activate a flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setFlowStatus(args[0], hoosh.FlowStatusActive)
		},
	}
}

func newFlowsDisableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disable ID",
		Short: "Disable a flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setFlowStatus(args[0], hoosh.FlowStatusDisabled)
		},
	}
}

func newFlowsRunTestCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "run-test ID",
		Short: "Execute a flow synchronously as a dry run",
		Long:  "Execute a flow against a test payload without changing its status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid flow id: %w", err)
			}

			payload, err := parseInputJSON(input)
			if err != nil {
				return err
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Flows().RunTest(context.Background(), id, &hoosh.FlowTriggerRequest{
				Input: payload,
			})
			if err != nil {
				return fmt.Errorf("flow test run failed: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				return encodeJSON(result)
			}
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "event payload as a JSON object")

	return cmd
}

func newFlowsRunsCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "runs ID",
		Short: "List recorded executions of a flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid flow id: %w", err)
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Flows().ListRuns(context.Background(), id, limit, offset)
			if err != nil {
				return fmt.Errorf("failed to list flow runs: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return encodeJSON(result)
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				if len(result.Items) == 0 {
					fmt.Println("No runs found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Status", "Error", "Started")

				for _, run := range result.Items {
					_ = table.Append(strconv.FormatInt(run.ID, 10), run.Status, strValue(run.Error), formatTimestamp(run.CreatedAt))
				}

				_ = table.Render()
				fmt.Printf("Showing %d of %d runs\n", len(result.Items), result.Total)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "records to skip")

	return cmd
}

func newFlowsTriggerCommand() *cobra.Command {
	var (
		event string
		input string
	)

	cmd := &cobra.Command{
		Use:   "trigger SLUG",
		Short: "Trigger an active flow through the public endpoint",
		Long:  "Trigger an active flow by slug; works without a session, like any public caller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parseInputJSON(input)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Public().TriggerFlow(context.Background(), args[0], &hoosh.FlowTriggerRequest{
				Event: event,
				Input: payload,
			})
			if err != nil {
				return fmt.Errorf("flow trigger failed: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return encodeYAML(result)
			default:
				return encodeJSON(result)
			}
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "override the trigger event name")
	cmd.Flags().StringVar(&input, "input", "", "event payload as a JSON object")

	return cmd
}
