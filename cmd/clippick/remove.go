package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clippick/internal/ipc"
	"go.klb.dev/clippick/internal/message"
)

func newRemoveCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "remove TEXT",
		Short:   "Remove the history entry exactly matching TEXT",
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			return runRemove(v, args[0])
		},
	}

	addStateFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runRemove(v *viper.Viper, text string) error {
	if ipc.IsRunning() {
		resp, err := roundTrip(&message.Message{Type: message.TypeRemove, Text: text})
		if err != nil {
			return err
		}
		if !resp.Changed {
			fmt.Println("no such entry")
		}
		return nil
	}

	store, _, err := openStore(v)
	if err != nil {
		return err
	}
	if !store.Remove(text) {
		fmt.Println("no such entry")
	}
	return nil
}
