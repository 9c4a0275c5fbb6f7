package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clippick/internal/ipc"
	"go.klb.dev/clippick/internal/message"
)

func newLatestCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Print the most recent history entry (like pbpaste)",
		Long: `Writes the most recently recorded entry to stdout. With --select it
is instead copied back to the system clipboard — and auto-pasted when
enabled — without opening the picker.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runLatest(v) },
	}

	cmd.Flags().Bool("select", false, "re-copy the entry instead of printing it")
	addStateFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runLatest(v *viper.Viper) error {
	var (
		text string
		ok   bool
	)
	if ipc.IsRunning() {
		resp, err := roundTrip(&message.Message{Type: message.TypeLatest})
		if err != nil {
			return err
		}
		if len(resp.Entries) > 0 {
			text, ok = resp.Entries[0], true
		}
	} else {
		direct, err := newDirectClient(v)
		if err != nil {
			return err
		}
		defer direct.backend.Close()
		if text, ok = direct.store.Latest(); ok && v.GetBool("select") {
			return direct.Select(text)
		}
	}

	if !ok {
		// Empty history prints nothing, exit 0 (pbpaste behaviour).
		return nil
	}
	if v.GetBool("select") {
		_, err := roundTrip(&message.Message{Type: message.TypeSelect, Text: text})
		return err
	}
	_, err := fmt.Fprintln(os.Stdout, text)
	return err
}
