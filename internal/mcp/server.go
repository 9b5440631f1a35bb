package mcp

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jcdickinson/quarry/internal/mine"
	"github.com/jcdickinson/quarry/internal/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

//go:embed instructions.md
var instructions string

type Server struct {
	mcpServer *server.MCPServer
	cache     *registry.Cache
}

func NewServer(cache *registry.Cache) *Server {
	s := &Server{cache: cache}

	mcpServer := server.NewMCPServer(
		"quarry",
		"0.1.0",
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools(mcpServer)
	s.registerResources(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("lookup_struct",
			mcp.WithDescription("Look up the field layout of a Rust standard library struct by full module path (e.g. \"alloc::string::String\"). Well-known std re-export paths like \"std::vec::Vec\" resolve too. The first call after startup mines rustdoc JSON and can take a while."),
			mcp.WithString("path",
				mcp.Description("Full module path of the struct"),
				mcp.Required(),
			),
		),
		s.handleLookupStruct,
	)

	mcpServer.AddTool(
		mcp.NewTool("list_structs",
			mcp.WithDescription("List every struct path in the registry, sorted. Use `prefix` to narrow to one module subtree."),
			mcp.WithString("prefix",
				mcp.Description("Optional path prefix filter (e.g. \"std::collections\")"),
			),
		),
		s.handleListStructs,
	)

	mcpServer.AddTool(
		mcp.NewTool("cache_stats",
			mcp.WithDescription("Report the registry size and whether it has been built. Never triggers a build."),
		),
		s.handleCacheStats,
	)

	mcpServer.AddTool(
		mcp.NewTool("clear_cache",
			mcp.WithDescription("Discard the in-memory registry. The next lookup rebuilds it from rustdoc JSON."),
		),
		s.handleClearCache,
	)
}

func (s *Server) registerResources(mcpServer *server.MCPServer) {
	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"rust-struct://{path}",
			"Rust struct layout",
			mcp.WithTemplateDescription("Read one struct's layout as markdown. The path is a full module path such as alloc::vec::Vec."),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		s.handleReadResource,
	)
}

func (s *Server) handleLookupStruct(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	path, _ := args["path"].(string)
	if path == "" {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	st, err := s.cache.Lookup(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resultJSON, _ := json.MarshalIndent(st, "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) handleListStructs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	prefix, _ := args["prefix"].(string)

	paths, err := s.cache.ListAll()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing structs: %v", err)), nil
	}

	if prefix != "" {
		filtered := paths[:0]
		for _, p := range paths {
			if strings.HasPrefix(p, prefix) {
				filtered = append(filtered, p)
			}
		}
		paths = filtered
	}

	resultJSON, _ := json.MarshalIndent(paths, "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) handleCacheStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count, ready := s.cache.Stats()
	resultJSON, _ := json.MarshalIndent(map[string]any{
		"struct_count": count,
		"ready":        ready,
	}, "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) handleClearCache(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.cache.Invalidate()
	return mcp.NewToolResultText("registry cleared"), nil
}

func (s *Server) handleReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	path := strings.TrimPrefix(uri, "rust-struct://")
	if path == "" || path == uri {
		return nil, fmt.Errorf("invalid resource URI: %s", uri)
	}

	st, err := s.cache.Lookup(path)
	if err != nil {
		return nil, fmt.Errorf("getting struct: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     RenderMarkdown(st),
		},
	}, nil
}

// RenderMarkdown formats one struct layout as a markdown document.
func RenderMarkdown(s *mine.Struct) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Path)
	fmt.Fprintf(&b, "- Module: `%s`\n", s.ModulePath)
	fmt.Fprintf(&b, "- Kind: %s struct\n\n", s.Shape)

	if len(s.Fields) == 0 {
		b.WriteString("No fields.\n")
		return b.String()
	}

	b.WriteString("| Field | Type | Visibility |\n")
	b.WriteString("|-------|------|------------|\n")
	for _, f := range s.Fields {
		vis := "private"
		if f.IsPublic {
			vis = "public"
		}
		fmt.Fprintf(&b, "| `%s` | `%s` | %s |\n", f.Name, f.TypeName, vis)
	}
	return b.String()
}

func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) Shutdown(_ context.Context) error {
	return nil
}
