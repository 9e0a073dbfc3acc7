package hoosh

import (
	"context"
	"time"
)

// Flow statuses. All transitions between them are caller-initiated via
// Update; nothing on the client side is automatic or time-based.
const (
	FlowStatusDraft    = "draft"
	FlowStatusActive   = "active"
	FlowStatusDisabled = "disabled"
)

// Flow node kinds.
const (
	FlowNodeTrigger = "trigger"
	FlowNodeAction  = "action"
)

// FlowDefinitionVersion is the only definition schema version this client
// speaks. Forward-incompatible definitions are a backend concern.
const FlowDefinitionVersion = 1

// Flow is a stored automation: a trigger event name plus a node/edge graph
// the backend executes on matching events. TriggerEvent decouples the
// external event name from the flow's identity, so multiple flows can listen
// to distinct events while sharing the definition schema.
type Flow struct {
	ID           int64          `json:"id"                    yaml:"id"`
	Slug         string         `json:"slug"                  yaml:"slug"`
	Title        string         `json:"title"                 yaml:"title"`
	Description  *string        `json:"description,omitempty" yaml:"description,omitempty"`
	Status       string         `json:"status"                yaml:"status"`
	TriggerEvent string         `json:"trigger_event"         yaml:"trigger_event"`
	Definition   FlowDefinition `json:"definition"            yaml:"definition"`
	CreatedAt    time.Time      `json:"created_at"            yaml:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"            yaml:"updated_at"`
}

// FlowDefinition is the node/edge graph. The client's only obligation is to
// preserve the {version, nodes, edges} shape exactly on round-trip; edge
// references into the node set are validated by the backend, which answers
// with a 400 when they dangle.
type FlowDefinition struct {
	Version int        `json:"version" yaml:"version"`
	Nodes   []FlowNode `json:"nodes"   yaml:"nodes"`
	Edges   []FlowEdge `json:"edges"   yaml:"edges"`
}

// NewFlowDefinition returns an empty version-1 definition.
func NewFlowDefinition() FlowDefinition {
	return FlowDefinition{
		Version: FlowDefinitionVersion,
		Nodes:   []FlowNode{},
		Edges:   []FlowEdge{},
	}
}

// FlowNode is one step in a flow. Config is caller-defined and of unknown
// shape; it must never be dropped or rewritten on edit.
type FlowNode struct {
	ID     string  `json:"id"     yaml:"id"`
	Kind   string  `json:"kind"   yaml:"kind"`
	Label  string  `json:"label"  yaml:"label"`
	Config JSONMap `json:"config" yaml:"config"`
}

// FlowEdge connects two nodes by id.
type FlowEdge struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// FlowCreateRequest creates a flow.
type FlowCreateRequest struct {
	Slug         string          `json:"slug"`
	Title        string          `json:"title"`
	Description  *string         `json:"description,omitempty"`
	Status       string          `json:"status,omitempty"`
	TriggerEvent string          `json:"trigger_event,omitempty"`
	Definition   *FlowDefinition `json:"definition,omitempty"`
}

// FlowUpdateRequest updates a flow; omitted fields are left untouched by the
// backend. Status transitions (draft/active/disabled) go through here.
type FlowUpdateRequest struct {
	Title        *string         `json:"title,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Status       *string         `json:"status,omitempty"`
	TriggerEvent *string         `json:"trigger_event,omitempty"`
	Definition   *FlowDefinition `json:"definition,omitempty"`
}

// FlowTriggerRequest is the payload for test runs and public triggers.
type FlowTriggerRequest struct {
	// Event optionally overrides the flow's trigger event name.
	Event string `json:"event,omitempty"`
	// Input is the event payload handed to the flow.
	Input JSONMap `json:"input,omitempty"`
	// Context carries ambient data (requester info, etc.).
	Context JSONMap `json:"context,omitempty"`
}

// FlowTriggerResult is the backend's run outcome. Its exact shape is
// backend-defined; the client passes it through unchanged.
type FlowTriggerResult map[string]interface{}

// FlowRun is one recorded execution of a flow.
type FlowRun struct {
	ID        int64     `json:"id"               yaml:"id"`
	FlowID    int64     `json:"flow_id"          yaml:"flow_id"`
	Status    string    `json:"status"           yaml:"status"`
	Input     JSONMap   `json:"input,omitempty"  yaml:"input,omitempty"`
	Output    JSONMap   `json:"output,omitempty" yaml:"output,omitempty"`
	Error     *string   `json:"error,omitempty"  yaml:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"       yaml:"created_at"`
}

// FlowsClient provides access to admin flow operations.
type FlowsClient interface {
	List(ctx context.Context, params *FlowListParams) (*FlowList, error)
	Get(ctx context.Context, id int64) (*Flow, error)
	Create(ctx context.Context, request *FlowCreateRequest) (*Flow, error)
	Update(ctx context.Context, id int64, request *FlowUpdateRequest) (*Flow, error)
	Delete(ctx context.Context, id int64) (*DeleteResult, error)

	// RunTest executes a synchronous admin-only dry run; it does not
	// change the flow's status.
	RunTest(ctx context.Context, id int64, request *FlowTriggerRequest) (FlowTriggerResult, error)

	// ListRuns pages through the read-only audit trail of executions.
	ListRuns(ctx context.Context, id int64, limit, offset int) (*FlowRunList, error)
}
