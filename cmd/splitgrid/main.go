package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/splitgrid/splitgrid/internal/config"
	"github.com/splitgrid/splitgrid/internal/ui/splitview"
)

func main() {
	if os.Getenv("SPLITGRID_DEBUG") != "" {
		f, err := tea.LogToFile("splitgrid.log", "debug")
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	cfg := config.Load()
	model, err := splitview.New(splitview.Options{
		Sizes:           cfg.Layout.Sizes,
		Bounds:          cfg.Bounds(),
		SnapThresholdPx: cfg.Layout.SnapThresholdPx,
		Vertical:        cfg.Layout.Vertical,
		GutterThickness: cfg.Gutter.Thickness,
		GutterGlyph:     cfg.Gutter.Glyph,
		Titles:          cfg.Layout.Titles,
		Presets:         cfg.Presets,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "splitgrid: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "splitgrid: %v\n", err)
		os.Exit(1)
	}
}
