package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yildizm/casechart/internal/canvas"
	"github.com/yildizm/casechart/internal/config"
	"github.com/yildizm/casechart/internal/emoji"
	"github.com/yildizm/casechart/internal/fileio"
	"github.com/yildizm/casechart/internal/logger"
	"github.com/yildizm/casechart/internal/player"
	"github.com/yildizm/casechart/internal/render"
)

var (
	exportDir    string
	exportPrefix string
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Render every frame to a PNG image",
		Long: `Render each date's bar chart to a numbered 1400x900 PNG image.

Images are written as <dir>/<prefix>-0001.png, <dir>/<prefix>-0002.png, ...
The directory is created when missing.

Examples:
  casechart export data4.txt
  casechart export --dir out --prefix day us-states.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringVar(&exportDir, "dir", "frames", "directory for the images")
	cmd.Flags().StringVar(&exportPrefix, "prefix", "frame", "image file name prefix")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dir") {
		cfg.Export.Directory = exportDir
	}
	if cmd.Flags().Changed("prefix") {
		cfg.Export.Prefix = exportPrefix
	}

	log := newLogger("export")
	path := inputPath(args, cfg)

	in, err := fileio.OpenToRead(path)
	if err != nil {
		return err
	}
	defer closeQuietly(in, log)

	written, err := exportFrames(cmd.Context(), in, cfg, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d frames to %s\n", emoji.GetEmoji("frames"), len(written), cfg.Export.Directory)
	return nil
}

// exportFrames renders every frame in r to PNG files and returns their names
func exportFrames(ctx context.Context, r io.Reader, cfg *config.Config, log *logger.Logger) ([]string, error) {
	surface := canvas.NewPNG(cfg.Export.Directory, cfg.Export.Prefix, openFrameFile)

	p := player.New(render.New(surface, 0), log)
	p.SetMaxLineLength(cfg.Input.MaxLineLength)

	stats, err := p.Play(ctx, r)
	if err != nil {
		return surface.Written(), err
	}

	log.InfoWithFields("export finished", []logger.Field{
		logger.Frames(stats.Frames),
		logger.F("dir", cfg.Export.Directory),
		logger.Duration(stats.Duration),
	})
	return surface.Written(), nil
}

func openFrameFile(name string) (io.WriteCloser, error) {
	w, err := fileio.OpenToWrite(name)
	if err != nil {
		return nil, err
	}
	return w, nil
}
