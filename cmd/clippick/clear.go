package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clippick/internal/ipc"
	"go.klb.dev/clippick/internal/message"
)

func newClearCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   "Empty the clipboard history",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runClear(v) },
	}

	addStateFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runClear(v *viper.Viper) error {
	if ipc.IsRunning() {
		_, err := roundTrip(&message.Message{Type: message.TypeClear})
		return err
	}

	store, _, err := openStore(v)
	if err != nil {
		return err
	}
	store.Clear()
	return nil
}
