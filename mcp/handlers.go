package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ludo-technologies/pscan/app"
	"github.com/ludo-technologies/pscan/domain"
	"github.com/ludo-technologies/pscan/internal/csrio"
	mcpsdk "github.com/mark3labs/mcp-go/mcp"
)

// HandleClusterGraph handles the cluster_graph tool: it reads a CSR
// dataset file, runs the pSCAN engine with the requested (epsilon, mu),
// and returns the resulting ClusterResponse as JSON text - the MCP-layer
// analog of the CLI's "pscan cluster" subcommand. It is a method on
// Dependencies, rather than a free function building its own services
// per call, so the loaded .pscan.toml's format default applies to the
// rendered report. That report is discarded: the tool result is always
// the ClusterResponse marshaled as JSON, whatever format is chosen.
func (d *Dependencies) HandleClusterGraph(ctx context.Context, request mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcpsdk.NewToolResultError("invalid arguments format"), nil
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return mcpsdk.NewToolResultError("path parameter is required and must be a string"), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return mcpsdk.NewToolResultError(fmt.Sprintf("path does not exist: %s", path)), nil
	}

	epsStr, ok := args["eps"].(string)
	if !ok || epsStr == "" {
		return mcpsdk.NewToolResultError("eps parameter is required and must be a fraction string \"a/b\""), nil
	}
	eps, err := csrio.ParseEpsilon(epsStr)
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("invalid eps: %v", err)), nil
	}

	muFloat, ok := args["mu"].(float64)
	if !ok {
		return mcpsdk.NewToolResultError("mu parameter is required and must be a number"), nil
	}
	mu := int(muFloat)

	workers := 0
	if w, ok := args["workers"].(float64); ok {
		workers = int(w)
	}

	format := domain.OutputFormatJSON
	if d.config != nil && d.config.Format != "" {
		format = domain.OutputFormat(d.config.Format)
	}
	if f, ok := args["format"].(string); ok && f != "" {
		switch domain.OutputFormat(f) {
		case domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML:
			format = domain.OutputFormat(f)
		default:
			return mcpsdk.NewToolResultError(fmt.Sprintf("unsupported format: %s", f)), nil
		}
	}

	useCase := d.BuildClusterUseCase()

	cfg := app.ClusterUseCaseConfig{
		Epsilon:     eps,
		Mu:          mu,
		WorkerCount: workers,
		Format:      format,
	}

	resp, err := useCase.Execute(ctx, []string{path}, false, nil, nil, cfg, io.Discard)
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("clustering failed: %v", err)), nil
	}

	jsonData, err := json.Marshal(resp)
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcpsdk.NewToolResultText(string(jsonData)), nil
}
