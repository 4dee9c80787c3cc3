package mcp

import (
	"context"
	"log/slog"

	"github.com/rpggio/rollcall/internal/domain/activity"
	"github.com/rpggio/rollcall/internal/domain/employee"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `rollcall keeps an in-memory list of employee records.

Each record is a manager (with a department) or an engineer (with a specialty),
identified by an integer id chosen by the caller. Ids are not checked for
uniqueness: find_employee and rename_employee act on the first match in
insertion order, remove_employee deletes every match.

Records are lost when the server stops.`

// EmployeeService defines employee operations needed by MCP.
type EmployeeService interface {
	Add(ctx context.Context, e employee.Employee)
	Remove(ctx context.Context, id int) int
	Find(ctx context.Context, id int) (employee.Employee, error)
	Rename(ctx context.Context, id int, name string) error
	List(ctx context.Context) []string
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Config contains server configuration.
type Config struct {
	Employees EmployeeService
	Activity  ActivityService
	Version   string
	Logger    *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "rollcall",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(sessionMiddleware(activity.NewSessionID()))
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Employees, cfg.Activity)

	return server
}
