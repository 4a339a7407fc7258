package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ewinters/slate/internal/config"
)

// Tool definitions

var scheduleToolDef = mcp.NewTool("fountain_schedule",
	mcp.WithDescription("Regroup a setup-annotated Fountain screenplay into a shooting schedule: all segments sharing a camera setup grouped consecutively. Returns the rendered schedule text."),
	mcp.WithString("fountain_text",
		mcp.Required(),
		mcp.Description("The Fountain screenplay text, annotated with [[SETUP X: description]] markers."),
	),
)

var screenplayToolDef = mcp.NewTool("fountain_screenplay",
	mcp.WithDescription("Render a setup-annotated Fountain screenplay in chronological order with a setup header at every transition. Content before the first setup marker is dropped from this view."),
	mcp.WithString("fountain_text",
		mcp.Required(),
		mcp.Description("The Fountain screenplay text, annotated with [[SETUP X: description]] markers."),
	),
)

var setupsToolDef = mcp.NewTool("fountain_setups",
	mcp.WithDescription("List the camera setups found in a Fountain screenplay: letters, description variants, segment counts and scenes, in first-appearance order."),
	mcp.WithString("fountain_text",
		mcp.Required(),
		mcp.Description("The Fountain screenplay text to inspect."),
	),
)

var checkToolDef = mcp.NewTool("fountain_check",
	mcp.WithDescription("Check a Fountain screenplay for content the reorganize tools would silently tolerate: unattributed lines that will be dropped from the screenplay view, and malformed setup markers treated as ordinary content."),
	mcp.WithString("fountain_text",
		mcp.Required(),
		mcp.Description("The Fountain screenplay text to inspect."),
	),
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"fountain_schedule": {
		def:     scheduleToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSchedule },
	},
	"fountain_screenplay": {
		def:     screenplayToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleScreenplay },
	},
	"fountain_setups": {
		def:     setupsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSetups },
	},
	"fountain_check": {
		def:     checkToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCheck },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with slate tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"slate",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers()

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(cfg *config.Config, version string) error {
	s := NewServer(cfg, version)
	return server.ServeStdio(s)
}
