package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var watchLog = commonlog.GetLogger("sequent.watch")

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Check a file every time it changes",
		Long: `Check a file once, then again every time it is written, until
interrupted.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runWatch(ctx, rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runWatch(ctx context.Context, opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	abs, err := filepath.Abs(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve path", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to start watcher", err)
	}
	defer watcher.Close()

	// Watch the directory so that editors that replace the file on save
	// are still followed.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to watch %s", path), err)
	}
	watchLog.Infof("watching %s", abs)

	check := func() {
		results, err := checkFiles(formatter, []string{path})
		if err != nil {
			color.New(color.FgRed).Fprintf(formatter.GetErrWriter(), "%s\n", err)
			return
		}
		if _, err := reportCheck(formatter, results); err != nil {
			watchLog.Errorf("failed to write results: %s", err)
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			watchLog.Info("watch stopped")
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				watchLog.Debugf("%s: %s", ev.Op, ev.Name)
				check()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			watchLog.Errorf("watch error: %s", err)
		}
	}
}
