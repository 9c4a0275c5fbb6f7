package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clippick/internal/ipc"
	"go.klb.dev/clippick/internal/message"
)

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show daemon and history state",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runStatus(v) },
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addStateFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runStatus(v *viper.Viper) error {
	if !ipc.IsRunning() {
		store, sink, err := openStore(v)
		if err != nil {
			return err
		}
		fmt.Printf("daemon: not running (socket %s)\n", ipc.SocketPath())
		fmt.Printf("state:  %s — %d/%d entries\n", sink.Path(), store.Len(), store.Capacity())
		return nil
	}

	resp, err := roundTrip(&message.Message{Type: message.TypeStatus})
	if err != nil {
		return err
	}
	st := resp.Status
	if st == nil {
		return fmt.Errorf("malformed status reply")
	}

	if v.GetBool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "version\t%s\n", st.Version)
	fmt.Fprintf(tw, "uptime\t%s\n", time.Since(st.StartedAt).Round(time.Second))
	fmt.Fprintf(tw, "backend\t%s\n", st.Backend)
	fmt.Fprintf(tw, "paster\t%s\n", st.Paster)
	fmt.Fprintf(tw, "entries\t%d / %d\n", st.Entries, st.Capacity)
	fmt.Fprintf(tw, "auto-paste\t%t\n", st.AutoPaste)
	fmt.Fprintf(tw, "interval\t%s\n", st.Interval)
	fmt.Fprintf(tw, "state file\t%s\n", st.StatePath)
	fmt.Fprintf(tw, "socket\t%s\n", ipc.SocketPath())
	return tw.Flush()
}
