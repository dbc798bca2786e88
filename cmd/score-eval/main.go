// score-eval 评分流水线命令行工具
// 本地评分、调用远端服务、提供 MCP 工具、订阅评分事件流。
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"mavita-score/internal/client"
	httpapi "mavita-score/internal/http"
	"mavita-score/internal/models"
	"mavita-score/internal/service"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "score-eval",
		Short: "Evaluate health self-assessments",
		Long: `score-eval runs the factor scorers and indicator aggregators on an
assessment file ({"userProfile": {...}, "healthData": {...}}), either locally
or against a running mavita-score service.`,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newEvalCmd(), newRemoteCmd(), newMCPCmd(), newEventsCmd())
	return rootCmd
}

// --- eval command ---

func newEvalCmd() *cobra.Command {
	var (
		xlsxOutput string
		compact    bool
	)
	cmd := &cobra.Command{
		Use:   "eval <file.json|->",
		Short: "Score an assessment file locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			scores := service.NewScoreService(service.ScoreServiceDeps{})
			assessment, err := scores.Assess(cmd.Context(), req)
			if err != nil {
				return err
			}
			if xlsxOutput != "" {
				data, err := httpapi.GenerateScoresExport(assessment.Indicators)
				if err != nil {
					return err
				}
				if err := os.WriteFile(xlsxOutput, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", xlsxOutput, err)
				}
			}
			return writeJSON(cmd.OutOrStdout(), assessment, compact)
		},
	}
	cmd.Flags().StringVar(&xlsxOutput, "xlsx", "", "Also write the indicators to this .xlsx file")
	cmd.Flags().BoolVar(&compact, "compact", false, "Single-line JSON output")
	return cmd
}

// --- remote command ---

func newRemoteCmd() *cobra.Command {
	var (
		baseURL string
		token   string
		timeout time.Duration
		current bool
	)
	cmd := &cobra.Command{
		Use:   "remote [file.json|-]",
		Short: "Score an assessment through a running service",
		Long: `Posts the assessment to POST /api/health-score. With --current, fetches the
stored indicators of the token's subject from GET /api/scores instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.NewScoreClient(baseURL, client.Options{Token: token, Timeout: timeout, RetryCount: 2}, nil)
			if current {
				results, err := c.CurrentScores(cmd.Context())
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), results, false)
			}
			if len(args) == 0 {
				return fmt.Errorf("an assessment file is required unless --current is set")
			}
			req, err := readRequest(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			assessment, err := c.Assess(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), assessment, false)
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", envOr("SCORE_API_URL", "http://localhost:8080"), "Service base URL")
	cmd.Flags().StringVar(&token, "token", os.Getenv("SCORE_API_TOKEN"), "Bearer token")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	cmd.Flags().BoolVar(&current, "current", false, "Fetch the stored indicators for the token subject")
	return cmd
}

func readRequest(stdin io.Reader, path string) (models.AssessmentRequest, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return models.AssessmentRequest{}, fmt.Errorf("failed to read assessment: %w", err)
	}
	var req models.AssessmentRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return models.AssessmentRequest{}, fmt.Errorf("invalid assessment JSON: %w", err)
	}
	return req, nil
}

func writeJSON(w io.Writer, v any, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
