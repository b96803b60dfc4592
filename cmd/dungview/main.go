// dungview is an interactive terminal viewer for Digimon World 2 dungeon
// files. Arrow keys move the tile cursor, n/p switch floors, Tab cycles
// layout slots, q quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/hollowbyte/dw2tool/internal/config"
	"github.com/hollowbyte/dw2tool/internal/logger"
	"github.com/hollowbyte/dw2tool/internal/ui"
	"github.com/hollowbyte/dw2tool/pkg/dungeon"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal is taken over by tcell, so console logging stays off.
	logger.Init(logger.Options{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.LogFile,
	})
	defer logger.Sync()

	path := ""
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	} else if len(cfg.Data.DungeonPaths) > 0 {
		path = cfg.Data.DungeonPaths[0]
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Usage: dungview [flags] <file.bin>")
		os.Exit(1)
	}

	d, err := dungeon.ParseDungeonFile(path)
	if err != nil {
		logger.Log.Error("decode failed", zap.String("path", path), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(d.Floors) == 0 {
		fmt.Fprintf(os.Stderr, "%s contains no floors\n", path)
		os.Exit(1)
	}
	logger.Log.Info("dungeon decoded",
		zap.String("path", path), zap.Int("floors", len(d.Floors)))

	screen, err := ui.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen)
	renderer.ColorScheme = cfg.Viewer.ColorScheme
	renderer.ShowGrid = cfg.Viewer.ShowGrid

	run(screen, renderer, d)
}

// run drives the event loop over the decoded dungeon.
func run(screen *ui.Screen, renderer *ui.Renderer, d *dungeon.Dungeon) {
	floor, slot := 0, 0
	cursorX, cursorY := 0, 0

	for {
		renderer.Render(d.Floors[floor], floor, len(d.Floors), slot, cursorX, cursorY)

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyUp:
				cursorY = clamp(cursorY-1, dungeon.FloorPlanRows)
			case ev.Key() == tcell.KeyDown:
				cursorY = clamp(cursorY+1, dungeon.FloorPlanRows)
			case ev.Key() == tcell.KeyLeft:
				cursorX = clamp(cursorX-1, dungeon.FloorPlanCols)
			case ev.Key() == tcell.KeyRight:
				cursorX = clamp(cursorX+1, dungeon.FloorPlanCols)
			case ev.Rune() == 'n' || ev.Key() == tcell.KeyPgDn:
				floor = (floor + 1) % len(d.Floors)
				slot = 0
			case ev.Rune() == 'p' || ev.Key() == tcell.KeyPgUp:
				floor = (floor + len(d.Floors) - 1) % len(d.Floors)
				slot = 0
			case ev.Key() == tcell.KeyTab:
				slot = (slot + 1) % dungeon.LayoutSlots
			}
		}
	}
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}
	return v
}
