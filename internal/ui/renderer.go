package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/hollowbyte/dw2tool/pkg/dungeon"
)

// Renderer draws decoded floor plans to the screen.
type Renderer struct {
	screen *Screen

	// ColorScheme selects tile coloring: "value" or "mono".
	ColorScheme string
	// ShowGrid draws each tile as its hex byte instead of a solid cell.
	ShowGrid bool
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen, ColorScheme: "value"}
}

const (
	headerRows = 1
	statusRows = 1
)

// tileWidth returns how many terminal columns one tile occupies.
func (r *Renderer) tileWidth() int {
	if r.ShowGrid {
		return 3
	}
	return 2
}

// Render draws one floor's layout plus a header and status line. cursorX
// and cursorY select the inspected tile.
func (r *Renderer) Render(floor *dungeon.Floor, floorIdx, floorCount, slot, cursorX, cursorY int) {
	r.screen.Clear()

	layout := floor.Slots[slot]
	plan := layout.Plan

	header := fmt.Sprintf("%s  [floor %d/%d, slot %d/%d]",
		floor.Title, floorIdx+1, floorCount, slot+1, dungeon.LayoutSlots)
	r.screen.Print(0, 0, header, tcell.StyleDefault.Bold(true))

	for y := 0; y < dungeon.FloorPlanRows; y++ {
		for x := 0; x < dungeon.FloorPlanCols; x++ {
			r.drawTile(x, y, plan.Tiles[y][x], x == cursorX && y == cursorY)
		}
	}

	tile, _ := plan.Tile(cursorX, cursorY)
	status := fmt.Sprintf("(%2d,%2d) tile 0x%02X  plan@0x%X  warps@0x%X chests@0x%X traps@0x%X spawns@0x%X",
		cursorX, cursorY, tile, layout.PlanOffset,
		layout.WarpsOffset, layout.ChestsOffset, layout.TrapsOffset, layout.SpawnsOffset)
	_, h := r.screen.Size()
	r.screen.Print(0, h-statusRows, status, tcell.StyleDefault)

	r.screen.Show()
}

func (r *Renderer) drawTile(x, y int, tile byte, cursor bool) {
	style := tcell.StyleDefault.Foreground(r.tileColor(tile))
	if cursor {
		style = style.Reverse(true)
	}

	sx := x * r.tileWidth()
	sy := y + headerRows
	if r.ShowGrid {
		hex := fmt.Sprintf("%02X", tile)
		r.screen.SetContent(sx, sy, rune(hex[0]), style)
		r.screen.SetContent(sx+1, sy, rune(hex[1]), style)
		r.screen.SetContent(sx+2, sy, ' ', style)
		return
	}
	r.screen.SetContent(sx, sy, '█', style)
	r.screen.SetContent(sx+1, sy, '█', style)
}

// tileColor maps a tile byte to a terminal color. Tile semantics are not
// decoded, so the mapping is purely value-derived.
func (r *Renderer) tileColor(tile byte) tcell.Color {
	if tile == 0 {
		return tcell.ColorDarkSlateGray
	}
	if r.ColorScheme == "mono" {
		return tcell.PaletteColor(232 + int(tile)%24)
	}
	return tcell.PaletteColor(int(tile) % 256)
}
