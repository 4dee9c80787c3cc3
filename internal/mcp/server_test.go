package mcp_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rpggio/rollcall/internal/domain/activity"
	"github.com/rpggio/rollcall/internal/domain/employee"
	"github.com/rpggio/rollcall/internal/mcp"
	"github.com/rpggio/rollcall/internal/metrics"
	"github.com/rpggio/rollcall/internal/sqlite"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	session  *sdkmcp.ClientSession
	registry *prometheus.Registry
	server   *sdkmcp.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.New(sqlite.MemoryDSN)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	reg := prometheus.NewRegistry()
	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), nil)
	employeeSvc := employee.NewService(employee.NewStore(), activitySvc, metrics.New(reg), nil)

	server := mcp.NewServer(mcp.Config{
		Employees: employeeSvc,
		Activity:  activitySvc,
	})

	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = clientSession.Close()
		_ = serverSession.Wait()
	})

	return &fixture{session: clientSession, registry: reg, server: server}
}

func (f *fixture) call(t *testing.T, name string, args map[string]any) (*sdkmcp.CallToolResult, string) {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	res, err := f.session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "unexpected content type %T", res.Content[0])
	return res, text.Text
}

func (f *fixture) callOK(t *testing.T, name string, args map[string]any, out any) {
	t.Helper()
	res, text := f.call(t, name, args)
	require.False(t, res.IsError, "tool error: %s", text)
	require.NoError(t, json.Unmarshal([]byte(text), out))
}

func TestServer_ListsTools(t *testing.T) {
	f := newFixture(t)

	res, err := f.session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{
		"add_employee",
		"list_employees",
		"find_employee",
		"rename_employee",
		"remove_employee",
		"recent_activity",
	}, names)
}

func TestServer_EmployeeLifecycle(t *testing.T) {
	f := newFixture(t)

	var added mcp.EmployeeOutput
	f.callOK(t, "add_employee", map[string]any{"id": 1, "name": "Alice", "kind": "manager", "attribute": "Engineering"}, &added)
	require.Equal(t, "ID: 1, Name: Alice, Department: Engineering", added.Rendered)
	f.callOK(t, "add_employee", map[string]any{"id": 2, "name": "Bob", "kind": "engineer", "attribute": "Backend"}, &added)

	var list mcp.ListEmployeesOutput
	f.callOK(t, "list_employees", nil, &list)
	require.Equal(t, []string{
		"ID: 1, Name: Alice, Department: Engineering",
		"ID: 2, Name: Bob, Specialty: Backend",
	}, list.Employees)

	var renamed mcp.EmployeeOutput
	f.callOK(t, "rename_employee", map[string]any{"id": 1, "name": "Alicia"}, &renamed)
	require.Equal(t, "ID: 1, Name: Alicia, Department: Engineering", renamed.Rendered)
	require.Equal(t, "Engineering", renamed.Attribute)

	var found mcp.EmployeeOutput
	f.callOK(t, "find_employee", map[string]any{"id": 2}, &found)
	require.Equal(t, "engineer", found.Kind)
	require.Equal(t, "Backend", found.Attribute)

	var removed mcp.RemoveEmployeeOutput
	f.callOK(t, "remove_employee", map[string]any{"id": 2}, &removed)
	require.Equal(t, 1, removed.Removed)

	f.callOK(t, "remove_employee", map[string]any{"id": 99}, &removed)
	require.Equal(t, 0, removed.Removed)

	var recent mcp.RecentActivityOutput
	f.callOK(t, "recent_activity", nil, &recent)
	require.Len(t, recent.Entries, 4)
	require.Equal(t, string(activity.TypeEmployeeRemoved), recent.Entries[0].Type)
	require.NotEmpty(t, recent.Entries[0].SessionID)
}

func TestServer_NotFoundIsToolError(t *testing.T) {
	f := newFixture(t)

	res, text := f.call(t, "find_employee", map[string]any{"id": 42})
	require.True(t, res.IsError)
	require.Contains(t, text, "EMPLOYEE_NOT_FOUND")

	res, text = f.call(t, "rename_employee", map[string]any{"id": 42, "name": "Nobody"})
	require.True(t, res.IsError)
	require.Contains(t, text, "EMPLOYEE_NOT_FOUND")

	var list mcp.ListEmployeesOutput
	f.callOK(t, "list_employees", nil, &list)
	require.Empty(t, list.Employees)
}

func TestServer_UnknownKind(t *testing.T) {
	f := newFixture(t)

	res, text := f.call(t, "add_employee", map[string]any{"id": 1, "name": "Eve", "kind": "intern", "attribute": ""})
	require.True(t, res.IsError)
	require.Contains(t, text, "INVALID_KIND")
}

func TestHTTPHandler_HealthAndMetrics(t *testing.T) {
	f := newFixture(t)
	f.callOK(t, "add_employee", map[string]any{"id": 1, "name": "Alice", "kind": "manager", "attribute": "Engineering"}, &mcp.EmployeeOutput{})

	ts := httptest.NewServer(mcp.NewHTTPHandler(f.server, f.registry))
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Contains(t, string(body), `rollcall_operations_total{operation="add",outcome="ok"} 1`)
	require.Contains(t, string(body), "rollcall_employees 1")
}
