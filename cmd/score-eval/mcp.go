package main

import (
	"context"
	"os/signal"
	"syscall"

	"mavita-score/internal/mcp"
	"mavita-score/internal/service"

	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start Model Context Protocol (MCP) server",
		Long: `Starts a JSON-RPC server implementing the Model Context Protocol (MCP)
with the evaluate_health_score and list_indicators tools.

Communication happens over standard input/output (stdio).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := mcp.NewServer(version, service.NewScoreService(service.ScoreServiceDeps{}))
			return srv.Start(ctx)
		},
	}
}
