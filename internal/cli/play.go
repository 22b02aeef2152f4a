package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yildizm/casechart/internal/canvas"
	"github.com/yildizm/casechart/internal/config"
	"github.com/yildizm/casechart/internal/fileio"
	"github.com/yildizm/casechart/internal/logger"
	"github.com/yildizm/casechart/internal/player"
	"github.com/yildizm/casechart/internal/render"
	"github.com/yildizm/casechart/internal/ui"
)

var (
	playPlain   bool
	playDelay   time.Duration
	playColumns int
	playRows    int
	playNoHold  bool
	playTheme   string
)

// sleep paces plain playback
var sleep = time.Sleep

func newPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Animate case counts as a bar chart",
		Long: `Play the case data as an animated bar chart, one frame per date.

By default the chart runs in an interactive terminal UI (space pauses, q quits).
With --plain each frame is redrawn in place on stdout with no interaction.
Without a file argument input.path from the configuration is used.

Examples:
  casechart play data4.txt
  casechart play --plain --delay 50ms us-states.csv
  casechart play --theme high-contrast`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPlay,
	}

	cmd.Flags().BoolVar(&playPlain, "plain", false, "redraw frames on stdout instead of the terminal UI")
	cmd.Flags().DurationVar(&playDelay, "delay", 100*time.Millisecond, "time each frame stays up")
	cmd.Flags().IntVar(&playColumns, "columns", 140, "chart width in terminal cells")
	cmd.Flags().IntVar(&playRows, "rows", 45, "chart height in terminal cells")
	cmd.Flags().BoolVar(&playNoHold, "no-hold", false, "exit as soon as the last frame has been shown")
	cmd.Flags().StringVar(&playTheme, "theme", "default", "terminal UI theme (default, high-contrast, minimal)")

	return cmd
}

// applyPlaybackFlags lets explicitly set flags win over the configuration
func applyPlaybackFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("delay") {
		cfg.Playback.FrameDelay = playDelay
	}
	if cmd.Flags().Changed("columns") {
		cfg.Playback.Columns = playColumns
	}
	if cmd.Flags().Changed("rows") {
		cfg.Playback.Rows = playRows
	}
	if playPlain {
		cfg.Playback.Mode = "plain"
	}
	if playNoHold {
		cfg.Playback.HoldLastFrame = false
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyPlaybackFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !ui.SetThemeByName(playTheme) {
		return fmt.Errorf("unknown theme: %s (available: %v)", playTheme, ui.GetAvailableThemes())
	}

	log := newLogger("play")
	path := inputPath(args, cfg)

	in, err := fileio.OpenToRead(path)
	if err != nil {
		return err
	}
	defer closeQuietly(in, log)

	log.InfoWithFields("opened input", []logger.Field{logger.F("path", path), logger.F("bytes", in.Size())})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Playback.Mode == "plain" {
		out := cmd.OutOrStdout()
		_, err := playPlainText(ctx, out, in, cfg, useColor(cfg, out), log)
		return err
	}
	return playTUI(ctx, in, path, cfg, log)
}

// playPlainText draws every frame on a terminal grid written to out
func playPlainText(ctx context.Context, out io.Writer, r io.Reader, cfg *config.Config, color bool, log *logger.Logger) (*player.Stats, error) {
	grid := canvas.NewGrid(cfg.Playback.Columns, cfg.Playback.Rows,
		canvas.WithOutput(out),
		canvas.WithSleeper(sleep),
		canvas.WithColor(color),
	)

	p := player.New(render.New(grid, cfg.Playback.FrameDelay), log)
	p.SetMaxLineLength(cfg.Input.MaxLineLength)

	stats, err := p.Play(ctx, r)
	if errors.Is(err, context.Canceled) {
		log.Info("playback interrupted")
		return stats, nil
	}
	if err != nil {
		return stats, err
	}

	log.InfoWithFields("playback finished", []logger.Field{
		logger.Frames(stats.Frames),
		logger.Line(stats.Lines),
		logger.Duration(stats.Duration),
	})
	return stats, nil
}

// playTUI runs the interactive bubbletea player
func playTUI(ctx context.Context, in *fileio.Reader, source string, cfg *config.Config, log *logger.Logger) error {
	stepper := player.NewStepper(in, log, cfg.Input.MaxLineLength)
	model := ui.NewPlaybackModel(stepper, ui.PlaybackOptions{
		Source:        source,
		Size:          in.Size(),
		Delay:         cfg.Playback.FrameDelay,
		Columns:       cfg.Playback.Columns,
		Rows:          cfg.Playback.Rows,
		HoldLastFrame: cfg.Playback.HoldLastFrame,
		Color:         useColor(cfg, os.Stdout),
		Context:       ctx,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	if err := model.Err(); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("playback interrupted")
			return nil
		}
		return err
	}
	msg := "playback finished"
	if !model.Done() {
		msg = "playback stopped"
	}
	log.InfoWithFields(msg, []logger.Field{logger.Frames(model.Frames())})
	return nil
}
