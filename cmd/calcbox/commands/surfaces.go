package commands

import (
	"net"
	"path/filepath"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"calcbox/internal/repl"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive prompt: <tool> key=value ...",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Start(cmd.Context(), &repl.Session{
				Calculator: wire.Calculator,
				Catalog:    wire.Catalog,
				History:    wire.History,
				Out:        cmd.OutOrStdout(),
			}, filepath.Join(wire.Config.Home, "repl_history"))
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog, calculators and MCP over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				host, port, err := net.SplitHostPort(addr)
				if err != nil {
					return err
				}
				p, err := strconv.Atoi(port)
				if err != nil {
					return err
				}
				wire.Config.Server.Host, wire.Config.Server.Port = host, p
			}
			return wire.Serve(cmd.Context(), version)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")
	return cmd
}

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Logger.Println("MCP server starting (stdio)")
			return wire.MCP(version).Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
