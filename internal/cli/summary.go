package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yildizm/casechart/internal/fileio"
	"github.com/yildizm/casechart/internal/formatter"
	"github.com/yildizm/casechart/internal/logger"
	"github.com/yildizm/casechart/internal/player"
)

var summaryOutputFile string

func newSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Print the per-date frames as a report",
		Long: `Run the input through the same single pass as play and print every
completed frame: the tracked state counts and the US total for each date.

The format comes from --output or output.default_format.

Examples:
  casechart summary data4.txt
  casechart summary -o csv --output-file frames.csv data4.txt
  casechart summary -o json | jq '.summary'`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSummary,
	}

	cmd.Flags().StringVar(&summaryOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger("summary")
	path := inputPath(args, cfg)

	color := summaryOutputFile == "" && useColor(cfg, cmd.OutOrStdout())
	f, err := formatter.New(cfg.Output.DefaultFormat, color)
	if err != nil {
		return err
	}

	in, err := fileio.OpenToRead(path)
	if err != nil {
		return err
	}
	defer closeQuietly(in, log)

	collector := &player.Collector{}
	p := player.New(collector, log)
	p.SetMaxLineLength(cfg.Input.MaxLineLength)

	stats, err := p.Play(cmd.Context(), in)
	if err != nil {
		return err
	}

	data, err := f.Format(collector.Frames)
	if err != nil {
		return fmt.Errorf("format summary: %w", err)
	}

	if summaryOutputFile == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	w, err := fileio.OpenToWrite(summaryOutputFile)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write %s: %w", summaryOutputFile, err)
	}
	if err := w.Close(); err != nil {
		return err
	}

	log.InfoWithFields("summary written", []logger.Field{
		logger.F("path", summaryOutputFile),
		logger.Frames(stats.Frames),
	})
	return nil
}
