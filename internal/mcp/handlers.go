package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ewinters/slate/internal/errors"
	"github.com/ewinters/slate/internal/ops"
	"github.com/ewinters/slate/internal/render"
)

// Handlers holds dependencies for MCP tool handlers. The tools are pure
// text transforms: they take the screenplay in the request and perform no
// file I/O.
type Handlers struct{}

// NewHandlers creates a new Handlers instance.
func NewHandlers() *Handlers {
	return &Handlers{}
}

// Request types for each tool

// RenderRequest represents the arguments for the schedule and screenplay
// tools.
type RenderRequest struct {
	FountainText string `json:"fountain_text"`
}

// InspectRequest represents the arguments for the setups and check tools.
type InspectRequest struct {
	FountainText string `json:"fountain_text"`
}

// Response types

// ScheduleResult is the fountain_schedule tool response.
type ScheduleResult struct {
	ScheduleText string    `json:"schedule_text"`
	Stats        ops.Stats `json:"stats"`
}

// ScreenplayResult is the fountain_screenplay tool response.
type ScreenplayResult struct {
	ScreenplayText string    `json:"screenplay_text"`
	Stats          ops.Stats `json:"stats"`
}

// Handler implementations

// HandleSchedule handles the fountain_schedule tool call.
func (h *Handlers) HandleSchedule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RenderRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.FountainText == "" {
		return errorResult(errors.NewInvalidRequest("fountain_text is required")), nil
	}

	segments, err := ops.ScanText(input.FountainText)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(ScheduleResult{
		ScheduleText: render.Schedule(segments),
		Stats:        ops.Summarize(segments),
	})
}

// HandleScreenplay handles the fountain_screenplay tool call.
func (h *Handlers) HandleScreenplay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RenderRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.FountainText == "" {
		return errorResult(errors.NewInvalidRequest("fountain_text is required")), nil
	}

	segments, err := ops.ScanText(input.FountainText)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(ScreenplayResult{
		ScreenplayText: render.Screenplay(segments),
		Stats:          ops.Summarize(segments),
	})
}

// HandleSetups handles the fountain_setups tool call.
func (h *Handlers) HandleSetups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[InspectRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.FountainText == "" {
		return errorResult(errors.NewInvalidRequest("fountain_text is required")), nil
	}

	segments, err := ops.ScanText(input.FountainText)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(ops.InventorySetups(segments))
}

// HandleCheck handles the fountain_check tool call.
func (h *Handlers) HandleCheck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[InspectRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.FountainText == "" {
		return errorResult(errors.NewInvalidRequest("fountain_text is required")), nil
	}

	result, err := ops.Inspect(ops.SplitLines(input.FountainText))
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if sErr, ok := err.(*errors.SlateError); ok {
		errorObj := map[string]any{
			"code":    sErr.Code,
			"message": sErr.Message,
			"status":  sErr.Status,
		}
		if sErr.Code != errors.ErrInternal && sErr.Details != nil {
			errorObj["details"] = sErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
