package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clippick/internal/clip"
	"go.klb.dev/clippick/internal/ipc"
	"go.klb.dev/clippick/internal/pasteexec"
	"go.klb.dev/clippick/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the clipboard watcher daemon",
		Long: `Monitors the system clipboard and records every new text snapshot in
the history. Also serves the local socket that the pick/list/copy/...
sub-commands talk to.

The pre-existing clipboard content at startup is never recorded; only
changes observed after the daemon starts are.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runWatch(v) },
	}

	f := cmd.Flags()
	f.Duration("interval", watcher.DefaultInterval, "clipboard poll interval")
	f.Int("max-size", 0, "history capacity (0 = keep the value from the state file)")
	f.String("auto-paste", "", "override the persisted auto-paste preference: on|off")
	addStateFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runWatch(v *viper.Viper) error {
	setupLogging(v)

	store, sink, err := openStore(v)
	if err != nil {
		return err
	}
	if n := v.GetInt("max-size"); n > 0 {
		if err := store.Resize(n); err != nil {
			return err
		}
	}
	switch v.GetString("auto-paste") {
	case "":
	case "on", "true", "yes":
		store.SetAutoPaste(true)
	case "off", "false", "no":
		store.SetAutoPaste(false)
	default:
		return fmt.Errorf("auto-paste: want on or off, got %q", v.GetString("auto-paste"))
	}

	backend := clip.New()
	defer backend.Close()
	paster := pasteexec.New()
	interval := v.GetDuration("interval")

	slog.Info("clippick watch starting",
		"version", Version,
		"state", sink.Path(),
		"backend", backend.Name(),
		"paster", paster.Name(),
		"capacity", store.Capacity(),
		"entries", store.Len(),
		"interval", interval,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w := watcher.New(store, backend, interval)
	go w.Run(ctx)

	ln, err := ipc.Listen()
	if err != nil {
		slog.Warn("IPC socket unavailable, running watch-only", "err", err)
	} else {
		slog.Info("IPC socket listening", "path", ipc.SocketPath())
		d := &daemon{
			store:     store,
			backend:   backend,
			paster:    paster,
			statePath: sink.Path(),
			interval:  interval,
			startedAt: time.Now(),
		}
		go d.serve(ln)
		defer func() {
			ln.Close()
			os.Remove(ipc.SocketPath())
		}()
	}

	<-ctx.Done()
	slog.Info("shutting down")
	return nil
}
