package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func versionString() string {
	return fmt.Sprintf("color-tools-mcp %s\n  Build time: %s\n  Git commit: %s\n  Go version: %s",
		Version, BuildTime, GitCommit, runtime.Version())
}

func newRootCmd() *cobra.Command {
	cfg, envErr := server.ParseEnv()

	cmd := &cobra.Command{
		Use:   "color-tools-mcp",
		Short: "MCP server for color conversion, palettes and accessibility",
		Long: `color-tools-mcp serves color tools over the Model Context Protocol.

It parses and converts colors between hex, RGB, HSL, HSB, CMYK, Lab and XYZ,
generates harmonies, mixes and blends colors, checks WCAG contrast, finds
accessible alternatives and simulates color-vision deficiencies.

The server communicates via MCP over stdin/stdout. Configure it in your MCP
client (e.g., Claude Desktop).

Environment variables (overridden by flags):
  COLOR_MCP_LOG_LEVEL      trace, debug, info, warn, error or off (default info)
  COLOR_MCP_LOG_JSON       write logs as JSON
  COLOR_MCP_MIN_CONTRAST   default ratio for color_accessible (default 4.5)
  COLOR_MCP_MIX_MODE       default color_mix mode (default normal)`,
		Version:      Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// Logs go to stderr; stdout is for MCP protocol
			logger := cfg.NewLogger(cmd.ErrOrStderr())
			logger.Debug("starting", "version", Version, "built", BuildTime, "commit", GitCommit)

			srv := server.New(cfg, logger, server.WithVersion(Version))
			return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cfg.BindFlags(cmd.Flags())
	cmd.SetVersionTemplate(versionString() + "\n")
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	})
	return cmd
}
