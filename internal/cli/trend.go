package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/yildizm/casechart/internal/emoji"
	"github.com/yildizm/casechart/internal/fileio"
	"github.com/yildizm/casechart/internal/logger"
	"github.com/yildizm/casechart/internal/player"
	"github.com/yildizm/casechart/internal/trend"
)

var (
	trendOut     string
	trendNoTotal bool
	trendWidth   float64
	trendHeight  float64
)

func newTrendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trend [file]",
		Short: "Plot every tracked state over time as one line chart",
		Long: `Run the input through a single pass and plot the tracked states and the
US total against the day index as a single image.

The image format follows the file extension: .png, .svg, .pdf, .jpg or .tif.

Examples:
  casechart trend data4.txt
  casechart trend --out report/trend.svg --no-total us-states.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTrend,
	}

	cmd.Flags().StringVar(&trendOut, "out", "trend.png", "image file to write")
	cmd.Flags().BoolVar(&trendNoTotal, "no-total", false, "leave the US total off the chart")
	cmd.Flags().Float64Var(&trendWidth, "width", 10, "image width in inches")
	cmd.Flags().Float64Var(&trendHeight, "height", 6, "image height in inches")

	return cmd
}

func runTrend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger("trend")
	path := inputPath(args, cfg)

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(trendOut)), ".")
	if format == "" {
		return fmt.Errorf("cannot tell the image format of %s", trendOut)
	}

	in, err := fileio.OpenToRead(path)
	if err != nil {
		return err
	}
	defer closeQuietly(in, log)

	collector := &player.Collector{}
	p := player.New(collector, log)
	p.SetMaxLineLength(cfg.Input.MaxLineLength)
	if _, err := p.Play(cmd.Context(), in); err != nil {
		return err
	}

	if len(collector.Frames) == 0 {
		return trend.ErrNoFrames
	}

	w, err := fileio.OpenToWrite(trendOut)
	if err != nil {
		return err
	}
	err = trend.Write(w, collector.Frames, trend.Options{
		Width:     vg.Length(trendWidth) * vg.Inch,
		Height:    vg.Length(trendHeight) * vg.Inch,
		WithTotal: !trendNoTotal,
		Format:    format,
	})
	if err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	log.InfoWithFields("trend written", []logger.Field{logger.F("path", trendOut), logger.Frames(len(collector.Frames))})
	fmt.Fprintf(cmd.OutOrStdout(), "%s Plotted %d days to %s\n", emoji.GetEmoji("chart"), len(collector.Frames), trendOut)
	return nil
}
