package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	ascii "github.com/No8Dev/No8.Ascii-sub002"
	"github.com/No8Dev/No8.Ascii-sub002/internal/errors"
	"github.com/No8Dev/No8.Ascii-sub002/internal/scene"
)

func newPaintCmd() *cobra.Command {
	var flags sceneFlags
	var border string
	var titles bool

	cmd := &cobra.Command{
		Use:   "paint <scene.toml>...",
		Short: "Draw a scene as text",
		Long: `Arrange one or more scenes and draw each as box-drawing text. A scene
whose container width is "auto" is arranged against the terminal width.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override, ok := ascii.ParseBorderStyle(border)
			if !ok {
				return errors.New(errors.ErrCodeInvalidInput, "unknown --border %q", border)
			}

			scenes, err := flags.loadScenes(cmd, args, func(s *scene.Scene) {
				if ascii.IsUndefined(s.Width) {
					w, _ := stdoutSize()
					s.Width = float64(w)
				}
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range scenes {
				style := s.Border
				if cmd.Flags().Changed("border") {
					style = override
				}
				paint := ascii.Outline(style)
				if titles {
					paint = ascii.Titled(style)
				}
				fmt.Fprintln(out, paintScene(s.Root, paint))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&border, "border", "", "border style: none, ascii, single, double, rounded, thick (default from scene)")
	cmd.Flags().BoolVar(&titles, "titles", false, "write node names into their top border")
	return cmd
}

// paintScene draws an arranged tree onto a canvas just large enough to hold it.
func paintScene(root *ascii.Node, paint ascii.PaintFunc) string {
	r := ascii.Bounds(root)
	c := ascii.NewCanvas(r.Right(), r.Bottom())
	c.Paint(root, paint)
	return c.StringTrimmed()
}
