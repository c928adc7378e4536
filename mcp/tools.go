package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers pscan's MCP tools with the server, binding
// each handler to deps so loaded configuration and shared services
// reach the handlers instead of being rebuilt per call.
func RegisterTools(s *server.MCPServer, deps *Dependencies) {
	// cluster_graph - run the pSCAN structural clustering engine over a
	// CSR dataset file.
	s.AddTool(mcp.NewTool("cluster_graph",
		mcp.WithDescription("Run pSCAN structural graph clustering over a CSR dataset file"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to a CSR dataset file (.csr, .graph or .pscan)")),
		mcp.WithString("eps",
			mcp.Required(),
			mcp.Description("Similarity threshold as an exact fraction \"a/b\", 0 < a <= b")),
		mcp.WithNumber("mu",
			mcp.Required(),
			mcp.Description("Minimum epsilon-similar neighbor count for core status, not counting the vertex itself, >= 2")),
		mcp.WithNumber("workers",
			mcp.Description("Worker goroutine count, 0 = runtime.NumCPU() (default: 0)")),
		mcp.WithString("format",
			mcp.Description("Format of the report the run renders: text, json or yaml (default: the config file's format, else json); the tool result itself is always the ClusterResponse as JSON")),
	), deps.HandleClusterGraph)
}
