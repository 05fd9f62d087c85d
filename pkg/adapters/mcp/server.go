// Package mcp exposes the kolam engine to MCP clients (LLM assistants and
// editor integrations) over stdio or SSE.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/kolamkit/kolam"
	"github.com/kolamkit/kolam/internal/logging"
	"github.com/kolamkit/kolam/pkg/domain"
	"github.com/kolamkit/kolam/pkg/palette"
	"github.com/kolamkit/kolam/pkg/ports"
	"github.com/kolamkit/kolam/pkg/tiles"
)

// Server wraps the kolam engine and exposes it as an MCP server.
type Server struct {
	gen       ports.Generator
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(gen ports.Generator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		gen:       gen,
		logger:    logger,
		mcpServer: server.NewMCPServer("kolam-mcp", strings.TrimSpace(kolam.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("mcp server listening (sse)", "addr", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: generate_kolam
	generateTool := mcp.NewTool("generate_kolam",
		mcp.WithDescription("Generate a kolam pattern with a size x size dot grid. Returns the full pattern geometry (dots, curves, tile matrix)."),
		mcp.WithNumber("size", mcp.Required(), mcp.Description("Grid size, between 3 and 15")),
		mcp.WithNumber("seed", mcp.Description("Seed for reproducible output (optional)")),
		mcp.WithString("mutation", mcp.Description("Defect mode: broken_loops, asymmetry or displaced_dots (optional)")),
		mcp.WithOutputSchema[domain.Pattern](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleGenerate))

	// TOOL: list_palettes
	s.mcpServer.AddTool(mcp.NewTool("list_palettes",
		mcp.WithDescription("List the builtin color palettes available for rendering."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		schemes := make(map[string]palette.Scheme, len(palette.Names()))
		for _, name := range palette.Names() {
			scheme, err := palette.Get(name)
			if err != nil {
				continue
			}
			schemes[name] = scheme
		}
		jsonBytes, _ := json.Marshal(schemes)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

type generateArgs struct {
	Size     int    `mapstructure:"size"`
	Seed     *int64 `mapstructure:"seed"`
	Mutation string `mapstructure:"mutation"`
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Pattern, error) {
	var in generateArgs
	if err := decodeArgs(args, &in); err != nil {
		return domain.Pattern{}, fmt.Errorf("invalid arguments: %w", err)
	}

	var mode domain.Mutation
	if in.Mutation != "" {
		var err error
		mode, err = domain.ParseMutation(in.Mutation)
		if err != nil {
			return domain.Pattern{}, err
		}
	}

	var (
		p   *domain.Pattern
		err error
	)
	switch {
	case in.Seed != nil:
		p, err = s.gen.GenerateSeeded(ctx, in.Size, *in.Seed, mode)
	case mode != "":
		p, err = s.gen.GenerateMutated(ctx, in.Size, mode)
	default:
		p, err = s.gen.Generate(ctx, in.Size)
	}
	if err != nil {
		return domain.Pattern{}, fmt.Errorf("generate failed: %w", err)
	}

	s.logger.Debug("mcp generate_kolam", "size", in.Size, "curves", len(p.Curves))
	return *p, nil
}

// decodeArgs binds the loosely typed tool arguments onto a struct. JSON
// numbers arrive as float64, so decoding is weakly typed.
func decodeArgs(args map[string]interface{}, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(args)
}

func (s *Server) registerResources() {
	// EXPOSE: kolam://tiles
	s.mcpServer.AddResource(mcp.NewResource("kolam://tiles", "Kolam Tile Library",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "kolam://tiles",
				MIMEType: "application/json",
				Text:     string(tiles.RawDefault()),
			},
		}, nil
	})
}
