package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the piece catalog",
	Long: `List the seven tetrominoes with their colour and spawn column on the
configured board, followed by each piece's four clockwise rotations.

Examples:
  tetris pieces
  tetris pieces --config ./wide-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runPieces,
}

func runPieces(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	writePieces(os.Stdout, cfg.Board.Width)
}

// writePieces prints the catalog table and the rotation sheet.
func writePieces(w io.Writer, boardWidth int) {
	fmt.Fprintln(w, catalogTable(boardWidth).View())
	fmt.Fprintln(w)

	cell := lipgloss.NewStyle().PaddingRight(3)
	label := lipgloss.NewStyle().Bold(true).Width(3)

	for _, k := range tetris.Kinds() {
		blocks := []string{label.Render(k.String())}
		s := k.Shape()
		for range 4 {
			blocks = append(blocks, cell.Render(s.String()))
			s = s.Rotate()
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
		fmt.Fprintln(w)
	}
}

// catalogTable builds a static table with one row per kind.
func catalogTable(boardWidth int) table.Model {
	columns := []table.Column{
		{Title: "Kind", Width: 6},
		{Title: "Colour", Width: 10},
		{Title: "Size", Width: 6},
		{Title: "Spawn", Width: 6},
	}

	rows := make([]table.Row, 0, tetris.KindCount)
	for _, k := range tetris.Kinds() {
		s := k.Shape()
		rows = append(rows, table.Row{
			k.String(),
			k.Color().String(),
			fmt.Sprintf("%dx%d", s.Cols(), s.Rows()),
			fmt.Sprintf("x=%d", tetris.SpawnX(boardWidth, s)),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selected in a printed table
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}
