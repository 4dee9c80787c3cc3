package mcp

import (
	"context"
	"time"

	"github.com/rpggio/rollcall/internal/domain/activity"
	"github.com/rpggio/rollcall/internal/domain/employee"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// AddEmployeeInput is the input of add_employee.
type AddEmployeeInput struct {
	ID        int    `json:"id" jsonschema:"employee identifier chosen by the caller"`
	Name      string `json:"name" jsonschema:"display name"`
	Kind      string `json:"kind" jsonschema:"either manager or engineer"`
	Attribute string `json:"attribute" jsonschema:"department for a manager or specialty for an engineer"`
}

// IDInput selects employees by identifier.
type IDInput struct {
	ID int `json:"id" jsonschema:"employee identifier"`
}

// RenameEmployeeInput is the input of rename_employee.
type RenameEmployeeInput struct {
	ID   int    `json:"id" jsonschema:"employee identifier"`
	Name string `json:"name" jsonschema:"new display name"`
}

// RecentActivityInput is the input of recent_activity.
type RecentActivityInput struct {
	EmployeeID *int `json:"employee_id,omitempty" jsonschema:"only entries for this employee"`
	Limit      int  `json:"limit,omitempty" jsonschema:"maximum number of entries"`
}

// EmptyInput is used by tools without arguments.
type EmptyInput struct{}

// EmployeeOutput describes a single employee.
type EmployeeOutput struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Attribute string `json:"attribute"`
	Rendered  string `json:"rendered"`
}

// ListEmployeesOutput holds rendered employees in insertion order.
type ListEmployeesOutput struct {
	Employees []string `json:"employees"`
}

// RemoveEmployeeOutput reports how many records a removal deleted.
type RemoveEmployeeOutput struct {
	ID      int `json:"id"`
	Removed int `json:"removed"`
}

// ActivityOutput is one journal entry.
type ActivityOutput struct {
	ID         int64  `json:"id"`
	SessionID  string `json:"session_id,omitempty"`
	EmployeeID int    `json:"employee_id"`
	Type       string `json:"type"`
	Summary    string `json:"summary"`
	CreatedAt  string `json:"created_at"`
}

// RecentActivityOutput lists journal entries, newest first.
type RecentActivityOutput struct {
	Entries []ActivityOutput `json:"entries"`
}

type tools struct {
	employees EmployeeService
	activity  ActivityService
}

func registerTools(server *sdkmcp.Server, employees EmployeeService, activitySvc ActivityService) {
	t := &tools{employees: employees, activity: activitySvc}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_employee",
		Description: "Add a manager or engineer to the end of the employee list",
	}, t.addEmployee)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_employees",
		Description: "List all employees in insertion order",
	}, t.listEmployees)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "find_employee",
		Description: "Find the first employee with the given id",
	}, t.findEmployee)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "rename_employee",
		Description: "Change the name of the first employee with the given id",
	}, t.renameEmployee)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_employee",
		Description: "Remove every employee with the given id; missing ids are ignored",
	}, t.removeEmployee)
	if activitySvc != nil {
		sdkmcp.AddTool(server, &sdkmcp.Tool{
			Name:        "recent_activity",
			Description: "List recent add, rename and remove events, newest first",
		}, t.recentActivity)
	}
}

func (t *tools) addEmployee(ctx context.Context, _ *sdkmcp.CallToolRequest, in AddEmployeeInput) (*sdkmcp.CallToolResult, EmployeeOutput, error) {
	e, ok := employee.New(employee.Kind(in.Kind), in.ID, in.Name, in.Attribute)
	if !ok {
		return nil, EmployeeOutput{}, MapError(errUnknownKind)
	}
	t.employees.Add(ctx, e)
	return nil, toEmployeeOutput(e), nil
}

func (t *tools) listEmployees(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, ListEmployeesOutput, error) {
	rendered := t.employees.List(ctx)
	if rendered == nil {
		rendered = []string{}
	}
	return nil, ListEmployeesOutput{Employees: rendered}, nil
}

func (t *tools) findEmployee(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDInput) (*sdkmcp.CallToolResult, EmployeeOutput, error) {
	e, err := t.employees.Find(ctx, in.ID)
	if err != nil {
		return nil, EmployeeOutput{}, MapError(err)
	}
	return nil, toEmployeeOutput(e), nil
}

func (t *tools) renameEmployee(ctx context.Context, _ *sdkmcp.CallToolRequest, in RenameEmployeeInput) (*sdkmcp.CallToolResult, EmployeeOutput, error) {
	if err := t.employees.Rename(ctx, in.ID, in.Name); err != nil {
		return nil, EmployeeOutput{}, MapError(err)
	}
	e, err := t.employees.Find(ctx, in.ID)
	if err != nil {
		return nil, EmployeeOutput{}, MapError(err)
	}
	return nil, toEmployeeOutput(e), nil
}

func (t *tools) removeEmployee(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDInput) (*sdkmcp.CallToolResult, RemoveEmployeeOutput, error) {
	removed := t.employees.Remove(ctx, in.ID)
	return nil, RemoveEmployeeOutput{ID: in.ID, Removed: removed}, nil
}

func (t *tools) recentActivity(ctx context.Context, _ *sdkmcp.CallToolRequest, in RecentActivityInput) (*sdkmcp.CallToolResult, RecentActivityOutput, error) {
	entries, err := t.activity.GetRecentActivity(ctx, activity.ListActivityOptions{
		EmployeeID: in.EmployeeID,
		Limit:      in.Limit,
	})
	if err != nil {
		return nil, RecentActivityOutput{}, err
	}
	out := RecentActivityOutput{Entries: make([]ActivityOutput, 0, len(entries))}
	for _, entry := range entries {
		out.Entries = append(out.Entries, ActivityOutput{
			ID:         entry.ID,
			SessionID:  entry.SessionID,
			EmployeeID: entry.EmployeeID,
			Type:       string(entry.ActivityType),
			Summary:    entry.Summary,
			CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return nil, out, nil
}

func toEmployeeOutput(e employee.Employee) EmployeeOutput {
	return EmployeeOutput{
		ID:        e.ID(),
		Name:      e.Name(),
		Kind:      string(e.Kind()),
		Attribute: employee.Attribute(e),
		Rendered:  e.Render(),
	}
}
