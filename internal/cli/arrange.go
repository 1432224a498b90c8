package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	ascii "github.com/No8Dev/No8.Ascii-sub002"
)

func newArrangeCmd() *cobra.Command {
	var flags sceneFlags
	var dump bool

	cmd := &cobra.Command{
		Use:   "arrange <scene.toml>...",
		Short: "Print the geometry of every node in a scene",
		Long: `Arrange one or more scenes and print, for every node, its position
relative to the root, its size, its wrap line and whether its children
overflowed. Scenes are arranged concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenes, err := flags.loadScenes(cmd, args, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, s := range scenes {
				if len(scenes) > 1 {
					fmt.Fprintln(out, styleTitle.Render(args[i]))
				}
				if dump {
					fmt.Fprint(out, ascii.Dump(s.Root))
					continue
				}
				writeGeometryTable(out, s.Root)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&dump, "dump", false, "print an indented listing instead of a table")
	return cmd
}

// writeGeometryTable prints one row per node in document order, indenting
// names by depth.
func writeGeometryTable(w io.Writer, root *ascii.Node) {
	var rows [][]string
	var walk func(n *ascii.Node, depth int)
	walk = func(n *ascii.Node, depth int) {
		l := n.Layout()
		r := l.AbsoluteRect()
		name := n.Name
		if name == "" {
			name = "-"
		}
		overflow := ""
		if l.HadOverflow {
			overflow = "yes"
		}
		rows = append(rows, []string{
			strings.Repeat("  ", depth) + name,
			strconv.Itoa(r.X), strconv.Itoa(r.Y), strconv.Itoa(r.Width), strconv.Itoa(r.Height),
			strconv.Itoa(l.LineIndex), overflow,
		})
		for _, child := range n.Children() {
			walk(child, depth+1)
		}
	}
	walk(root, 0)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		Headers("NODE", "X", "Y", "W", "H", "LINE", "OVERFLOW").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 6:
				return styleOverflow
			case col > 0:
				return styleNumber
			}
			return styleCell
		})

	fmt.Fprintln(w, t.Render())
}
