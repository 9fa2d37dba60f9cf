package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/adrianliechti/wincher-mcp/pkg/tool"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/cors"

	"github.com/adrianliechti/go-cli"
)

func New(ctx context.Context, provider tool.Provider, version string) (*server.MCPServer, error) {
	tools, err := provider.Tools(ctx)

	if err != nil {
		return nil, err
	}

	s := server.NewMCPServer(
		"Wincher MCP Server",
		version,
		server.WithToolCapabilities(false),
	)

	for _, t := range tools {
		schema, err := json.Marshal(t.Schema)

		if err != nil {
			return nil, err
		}

		tool := mcp.Tool{
			Name:           t.Name,
			Description:    t.Description,
			RawInputSchema: schema,
		}

		s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, err := convertArgs(request.Params.Arguments)

			if err != nil {
				return nil, err
			}

			result, err := t.Execute(ctx, args)

			if err != nil {
				return nil, err
			}

			var content string

			switch v := result.(type) {
			case string:
				content = v
			default:
				data, _ := json.Marshal(v)
				content = string(data)
			}

			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(content),
				},
			}, nil
		})
	}

	return s, nil
}

func ServeStdio(ctx context.Context, s *server.MCPServer) error {
	return server.NewStdioServer(s).Listen(ctx, os.Stdin, os.Stdout)
}

func ServeSSE(ctx context.Context, s *server.MCPServer, addr string) error {
	sse := server.NewSSEServer(s,
		server.WithBaseURL("http://"+addr),
	)

	cli.Info()
	cli.Info("🖥️ Wincher MCP Server")
	cli.Infof("🔗 http://%s/sse", addr)
	cli.Info()

	srv := &http.Server{
		Addr:    addr,
		Handler: cors.AllowAll().Handler(Handler(sse)),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Handler routes the SSE endpoints and a small discovery document.
func Handler(sse http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /.well-known/wincher", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{
			"name": "wincher",
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(data)
	})

	mux.Handle("/sse", sse)
	mux.Handle("/message", sse)

	return mux
}

func convertArgs(val any) (map[string]any, error) {
	if val == nil {
		return map[string]any{}, nil
	}

	data, err := json.Marshal(val)

	if err != nil {
		return nil, err
	}

	var args map[string]any

	if err := json.Unmarshal(data, &args); err == nil {
		return args, nil
	}

	return map[string]any{
		"input": val,
	}, nil
}
