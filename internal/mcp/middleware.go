package mcp

import (
	"context"

	"github.com/rpggio/rollcall/internal/domain/activity"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// sessionMiddleware tags the context with the MCP session id so journal
// entries can be attributed. Transports without session ids (stdio, in-memory)
// fall back to fallbackID.
func sessionMiddleware(fallbackID string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			sessionID := safeSessionID(req)
			if sessionID == "" {
				sessionID = fallbackID
			}
			return next(activity.WithSession(ctx, sessionID), method, req)
		}
	}
}
