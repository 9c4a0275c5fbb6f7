// clippick: clipboard history with a fuzzy terminal picker.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.klb.dev/clippick/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "clippick",
		Short: "Clipboard history with a fuzzy picker",
		Long: `clippick watches the system clipboard and keeps a bounded,
deduplicated history of copied text. The picker re-copies any prior
entry and can auto-paste it into the focused application.

Run "clippick watch" as the background daemon. Every other sub-command
talks to it over a local socket, and falls back to operating on the
state file directly when no daemon is running.

Config file search order (first found wins):
  /etc/clippick/clippick.toml
  $HOME/.config/clippick/clippick.toml
  path supplied via --config

All flags can be set via CLIPPICK_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newWatchCmd(),
		newPickCmd(),
		newListCmd(),
		newCopyCmd(),
		newLatestCmd(),
		newRemoveCmd(),
		newClearCmd(),
		newResizeCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("clippick %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	logging.Setup(format, level)
}
