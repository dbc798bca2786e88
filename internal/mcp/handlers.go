package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mavita-score/internal/aggregator"
	"mavita-score/internal/models"
	"mavita-score/internal/service"

	"github.com/mark3labs/mcp-go/mcp"
)

const evaluateTimeout = 5 * time.Second

type handlers struct {
	scores service.ScoreService
}

// handleEvaluate decodes an assessment request and scores it.
func (h *handlers) handleEvaluate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, cancel := context.WithTimeout(ctx, evaluateTimeout)
	defer cancel()

	raw := stringArg(getArgs(request), "request", "")
	if raw == "" {
		return errResult("request is required"), nil
	}
	var req models.AssessmentRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return errResult(fmt.Sprintf("invalid request JSON: %v", err)), nil
	}

	assessment, err := h.scores.Assess(ctx, req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			lines := make([]string, 0, len(verr.Errors))
			for _, fe := range verr.Errors {
				lines = append(lines, fe.Field+": "+fe.Message)
			}
			return errResult("validation failed:\n" + strings.Join(lines, "\n")), nil
		}
		return errResult(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(assessment, "", "  ")
	if err != nil {
		return errResult(fmt.Sprintf("json marshal failed: %v", err)), nil
	}
	return newTextResult(string(jsonData)), nil
}

type indicatorInfo struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Primary  bool            `json:"primary"`
	Factors  []models.Factor `json:"factors"`
	MaxScore int             `json:"maxScore"`
	Ranges   []models.Range  `json:"ranges"`
}

// handleListIndicators returns the indicator catalog in display order.
func (h *handlers) handleListIndicators(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog := aggregator.Catalog()
	out := make([]indicatorInfo, 0, len(catalog))
	for _, def := range catalog {
		out = append(out, indicatorInfo{
			ID:       def.ID,
			Title:    def.Title,
			Primary:  def.Primary,
			Factors:  def.Factors,
			MaxScore: def.MaxScore,
			Ranges:   def.Ranges,
		})
	}
	jsonData, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errResult(fmt.Sprintf("json marshal failed: %v", err)), nil
	}
	return newTextResult(string(jsonData)), nil
}

// getArgs extracts the arguments map, tolerating nil or wrong types.
func getArgs(request mcp.CallToolRequest) map[string]interface{} {
	if request.Params.Arguments == nil {
		return map[string]interface{}{}
	}
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return args
}

// stringArg extracts a string argument with a default value.
func stringArg(args map[string]interface{}, key, defaultVal string) string {
	val, ok := args[key]
	if !ok || val == nil {
		return defaultVal
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return defaultVal
	}
	return s
}

func newTextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

// errResult is a tool-level error (IsError=true), not a JSON-RPC error.
func errResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: msg,
			},
		},
	}
}
