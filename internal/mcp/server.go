package mcp

import (
	"context"
	"os"

	"mavita-score/internal/service"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server instance.
type Server struct {
	mcpServer *server.MCPServer
	handlers  *handlers
}

// NewServer creates an MCP server exposing the scoring tools.
func NewServer(version string, scores service.ScoreService) *Server {
	s := server.NewMCPServer("mavita-score", version, server.WithLogging())
	h := &handlers{scores: scores}
	registerTools(s, h)
	return &Server{mcpServer: s, handlers: h}
}

// Start runs the server in stdio mode (blocking).
func (s *Server) Start(ctx context.Context) error {
	stdioServer := server.NewStdioServer(s.mcpServer)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}

func registerTools(s *server.MCPServer, h *handlers) {
	evaluateTool := mcp.NewTool("evaluate_health_score",
		mcp.WithDescription("Score a health self-assessment. Returns the 19 factor scores and the 7 risk indicators (0 is best). Input is the JSON body of POST /api/health-score."),
		mcp.WithString("request",
			mcp.Required(),
			mcp.Description(`JSON object {"userProfile": {...}, "healthData": {...}}`),
		),
	)
	s.AddTool(evaluateTool, h.handleEvaluate)

	listTool := mcp.NewTool("list_indicators",
		mcp.WithDescription("List the risk indicators with their factors, maximum score and bands."),
	)
	s.AddTool(listTool, h.handleListIndicators)
}
