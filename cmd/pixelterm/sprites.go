package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelterm/internal/canvas"
	"github.com/vovakirdan/pixelterm/internal/glyph"
	"github.com/vovakirdan/pixelterm/internal/palette"
	"github.com/vovakirdan/pixelterm/internal/sprite"
)

var flagPreview bool

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the sprite sheet",
	Long: `Shows every animation in the sprite sheet with its frame count, size
and frame duration. With --preview each frame is drawn with half-blocks.

Examples:
  pixelterm sprites
  pixelterm sprites --preview
  pixelterm sprites --sprites ./my-sprites.yaml --preview`,
	Run: runSprites,
}

func init() {
	spritesCmd.Flags().BoolVar(&flagPreview, "preview", false, "Draw every frame")
}

func runSprites(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sheet, err := loadSheet(logger)
	if err == nil {
		err = printSheet(os.Stdout, sheet, flagPreview)
	}
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printSheet writes one row per animation and, if preview is set, each
// frame rendered side by side.
func printSheet(w io.Writer, sheet *sprite.Sheet, preview bool) error {
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	for _, name := range sheet.Names() {
		anim, err := sheet.Animation(name)
		if err != nil {
			return err
		}
		first := anim.Current()
		info := fmt.Sprintf("%d frames, %dx%d px, %v/frame",
			anim.FrameCount(), first.Width(), first.Height(), anim.FrameDuration())
		fmt.Fprintf(w, "%s  %s\n", nameStyle.Render(anim.Name()), infoStyle.Render(info))

		if !preview {
			continue
		}
		frames := make([]string, 0, anim.FrameCount())
		for i := 0; i < anim.FrameCount(); i++ {
			frame, err := previewFrame(anim.Current())
			if err != nil {
				return err
			}
			frames = append(frames, frame, " ")
			anim.Update(anim.FrameDuration())
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, frames...))
		fmt.Fprintln(w)
	}
	return nil
}

// previewFrame draws one sprite in a dark-gray half-block frame. Odd
// heights get a blank bottom row.
func previewFrame(s *sprite.Sprite) (string, error) {
	strategy := glyph.NewHalfBlock(palette.DarkGray)
	c, err := canvas.New(s.Width(), s.Height()+s.Height()%2, strategy.Empty())
	if err != nil {
		return "", err
	}
	c.DrawSprite(0, 0, s)
	return glyph.Text(strategy.Render(c)), nil
}
