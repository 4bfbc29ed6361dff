package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelterm/internal/palette"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the color palette",
	Long: `Lists the 16 palette colors with their names, hex values and a swatch
drawn with the same truecolor escapes the renderer emits. Names are what
scene configs and sprite sheets accept.`,
	Run: runPalette,
}

func runPalette(cmd *cobra.Command, args []string) {
	if err := printPalette(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printPalette(w io.Writer) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	nameStyle := lipgloss.NewStyle().Width(12)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if _, err := fmt.Fprintln(w, headerStyle.Render("Palette")); err != nil {
		return err
	}
	for i, c := range palette.Opaque() {
		r, g, b := palette.RGB(c)
		swatch := palette.Bg(c) + "    " + palette.Reset
		row := fmt.Sprintf("%2d %s %s %s %s",
			i, swatch, nameStyle.Render(c.String()), palette.Hex(c),
			dimStyle.Render(fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)))
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
