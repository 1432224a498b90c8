package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/No8Dev/No8.Ascii-sub002/internal/errors"
	"github.com/No8Dev/No8.Ascii-sub002/internal/render"
)

func newPNGCmd() *cobra.Command {
	var flags sceneFlags
	var out string
	var opts render.Options

	cmd := &cobra.Command{
		Use:   "png <scene.toml>",
		Short: "Render a scene to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--out is required")
			}

			scenes, err := flags.loadScenes(cmd, args, nil)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", out)
			}
			if err := render.PNG(f, scenes[0].Root, opts); err != nil {
				f.Close()
				return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", out)
			}
			if err := f.Close(); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write %s", out)
			}

			loggerFromContext(cmd.Context()).Info("wrote image", "path", out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	cmd.Flags().IntVar(&opts.CellWidth, "cell", 8, "pixels per column")
	cmd.Flags().IntVar(&opts.CellHeight, "cell-height", 0, "pixels per row (default twice --cell)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", true, "draw node names")
	return cmd
}
