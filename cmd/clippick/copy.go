package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clippick/internal/clip"
	"go.klb.dev/clippick/internal/ipc"
	"go.klb.dev/clippick/internal/message"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy stdin to the clipboard and record it (like pbcopy)",
		Long: `Reads stdin, sets the system clipboard, and records the text as a
history entry. Text already present in the history is not duplicated.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runCopy(v) },
	}

	addStateFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runCopy(v *viper.Viper) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	text := string(data)

	if ipc.IsRunning() {
		_, err := roundTrip(&message.Message{Type: message.TypeOffer, Text: text})
		return err
	}

	store, _, err := openStore(v)
	if err != nil {
		return err
	}
	store.Offer(text)

	backend := clip.New()
	defer backend.Close()
	if err := backend.Write(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}
