package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yildizm/casechart/internal/config"
	"github.com/yildizm/casechart/internal/fileio"
	"github.com/yildizm/casechart/internal/logger"
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Replay the chart whenever the data file changes",
		Long: `Play the data file once in plain mode, then replay it from the start every
time the file is written. Useful while a feed appends new dates.

A replay that hits a bad line is reported and the watch continues, since the
file may be caught mid-write. Press Ctrl+C to stop watching.

Examples:
  casechart watch data4.txt
  casechart watch --verbose us-states.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger("watch")
	filename := inputPath(args, cfg)

	if err := validateWatchFilePath(filename); err != nil {
		return err
	}

	watcher, err := createWatcher(filename)
	if err != nil {
		return err
	}
	defer cleanupWatcher(watcher, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	replay := func() error {
		return replayFile(ctx, out, filename, cfg, log)
	}

	log.InfoWithFields("watching file", []logger.Field{logger.F("path", filename)})
	return runWatchLoop(ctx, watcher.Events, watcher.Errors, replay, log)
}

// replayFile plays filename from the start in plain mode
func replayFile(ctx context.Context, out io.Writer, filename string, cfg *config.Config, log *logger.Logger) error {
	in, err := fileio.OpenToRead(filename)
	if err != nil {
		return err
	}
	defer closeQuietly(in, log)

	_, err = playPlainText(ctx, out, in, cfg, useColor(cfg, out), log)
	return err
}

// createWatcher creates and configures a new file system watcher
func createWatcher(filename string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filename); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	return watcher, nil
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher, log *logger.Logger) {
	if err := watcher.Close(); err != nil {
		log.Debug("failed to close watcher: %v", err)
	}
}

// runWatchLoop plays once, then replays on every write until ctx is done.
// Writes that arrive while a replay runs are folded into one more replay.
func runWatchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, replay func() error, log *logger.Logger) error {
	runReplay := func() {
		if err := replay(); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("replay failed: %v", err)
		}
	}

	runReplay()

	for {
		select {
		case <-ctx.Done():
			log.Info("stopping watch")
			return nil

		case event, ok := <-events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !isWriteEvent(event) {
				continue
			}
			drainEvents(events)
			log.DebugWithFields("file changed", []logger.Field{logger.F("event", event.Op.String())})
			runReplay()

		case err, ok := <-errs:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Warn("watcher error: %v", err)
		}
	}
}

func isWriteEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// drainEvents discards events already queued
func drainEvents(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", fileio.ErrInputNotFound, path)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
