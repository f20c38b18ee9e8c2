package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixel-search-mcp/internal/server"
)

// logLevelEnv overrides the default of --log-level.
const logLevelEnv = "PIXEL_MCP_LOG_LEVEL"

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "pixel-search-mcp",
		Short: "MCP server for directed pixel color search",
		Long: `pixel-search-mcp finds the first pixel of a given color in an image,
scanning in one of eight orders with an optional per-channel tolerance.

Run without a subcommand to serve MCP over stdin/stdout. Configure it in
your MCP client; logs go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// stdout carries the MCP protocol, so logs always go to stderr.
			handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: parseLevel(logLevel)})
			slog.SetDefault(slog.New(handler))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("starting server", "version", Version, "built", BuildTime, "commit", GitCommit)
			srv := server.New(server.WithLogger(slog.Default()), server.WithVersion(Version))
			return srv.Serve(cmd.Context(), stdin, stdout)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	defaultLevel := os.Getenv(logLevelEnv)
	if defaultLevel == "" {
		defaultLevel = "info"
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", defaultLevel,
		"Log level (debug, info, warn, error); default from "+logLevelEnv)

	root.AddCommand(newSearchCmd(), newVersionCmd())
	return root
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
