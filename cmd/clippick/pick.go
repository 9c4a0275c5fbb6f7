package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clippick/internal/ipc"
	"go.klb.dev/clippick/internal/picker"
)

func newPickCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the history picker",
		Long: `Opens the terminal picker over the clipboard history, most recent
first. Type to fuzzy-search, ↑/↓ to move, Enter to re-copy the selected
entry (auto-pasting when enabled), Del to remove it, Esc to quit.

Uses the running watch daemon when there is one; otherwise operates on
the state file directly.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runPick(v) },
	}

	addStateFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runPick(v *viper.Viper) error {
	var client picker.Client
	if ipc.IsRunning() {
		client = ipcClient{}
	} else {
		direct, err := newDirectClient(v)
		if err != nil {
			return err
		}
		defer direct.backend.Close()
		client = direct
	}

	_, err := picker.Run(client)
	return err
}
