package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/muesli/termenv"
	"github.com/myrjola/detectivequest/internal/content"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/spf13/cobra"
)

var Map = &cobra.Command{
	Use:     "map",
	GroupID: "game",
	Short:   "Print the mansion map",
	Long:    "Prints every room of the mansion and marks the rooms that hold a clue.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := setup(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		root, err := mansion.Build(content.Mansion())
		if err != nil {
			return errors.Wrap(err, "build mansion")
		}
		return Render(cmd.OutOrStdout(), root, cfg.NoColor)
	},
}

type mapStyles struct {
	room lipgloss.Style
	clue lipgloss.Style
	side lipgloss.Style
}

// Render draws the mansion below root as a tree followed by a summary line.
func Render(w io.Writer, root *mansion.Room, noColor bool) error {
	renderer := lipgloss.NewRenderer(w)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	styles := mapStyles{
		room: renderer.NewStyle().Bold(true),
		clue: renderer.NewStyle().Foreground(lipgloss.Color("222")),
		side: renderer.NewStyle().Faint(true),
	}

	t := tree.Root(label(root, "", styles))
	addChildren(t, root, styles)
	t.Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(renderer.NewStyle().Foreground(lipgloss.Color("240")).PaddingRight(1))

	var rooms, withClue, deadEnds int
	mansion.Walk(root, func(_ int, room *mansion.Room) bool {
		rooms++
		if room.HasClue() {
			withClue++
		}
		if mansion.Children(room).None() {
			deadEnds++
		}
		return true
	})

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return errors.Wrap(err, "write map")
	}
	if _, err := fmt.Fprintf(w, "%d comodos, %d com pista, %d sem saida\n", rooms, withClue, deadEnds); err != nil {
		return errors.Wrap(err, "write summary")
	}
	return nil
}

func addChildren(t *tree.Tree, room *mansion.Room, styles mapStyles) {
	for _, d := range []mansion.Direction{mansion.Left, mansion.Right} {
		child := room.Child(d)
		if child == nil {
			continue
		}
		side := "esquerda"
		if d == mansion.Right {
			side = "direita"
		}
		name := label(child, side, styles)
		if child.IsLeaf() {
			t.Child(name)
			continue
		}
		sub := tree.Root(name)
		addChildren(sub, child, styles)
		t.Child(sub)
	}
}

func label(room *mansion.Room, side string, styles mapStyles) string {
	s := styles.room.Render(room.Name())
	if side != "" {
		s = styles.side.Render(side+": ") + s
	}
	if room.HasClue() {
		s += " " + styles.clue.Render("[pista]")
	}
	return s
}
