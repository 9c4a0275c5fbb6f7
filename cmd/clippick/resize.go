package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clippick/internal/ipc"
	"go.klb.dev/clippick/internal/message"
)

func newResizeCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "resize N",
		Short: "Set the history capacity",
		Long: `Sets the maximum number of entries the history retains. Shrinking
below the current length discards the oldest entries.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("capacity %q: %w", args[0], err)
			}
			return runResize(v, n)
		},
	}

	addStateFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runResize(v *viper.Viper, n int) error {
	if ipc.IsRunning() {
		_, err := roundTrip(&message.Message{Type: message.TypeResize, Capacity: n})
		return err
	}

	store, _, err := openStore(v)
	if err != nil {
		return err
	}
	return store.Resize(n)
}
