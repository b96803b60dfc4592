package dungeon

import (
	"fmt"
	"strings"
)

// Floor plan dimensions. Every layout carries exactly one uncompressed
// grid of this size.
const (
	FloorPlanRows = 48
	FloorPlanCols = 32

	floorPlanSize = FloorPlanRows * FloorPlanCols
)

// FloorPlan is the tile grid of one layout: raw tile identifier bytes,
// row-major. Tile semantics are not interpreted here.
type FloorPlan struct {
	Tiles [FloorPlanRows][FloorPlanCols]byte
}

// Tile returns the tile byte at (x, y). The second return value is false
// when the coordinates are out of bounds.
func (p *FloorPlan) Tile(x, y int) (byte, bool) {
	if x < 0 || y < 0 || x >= FloorPlanCols || y >= FloorPlanRows {
		return 0, false
	}
	return p.Tiles[y][x], true
}

// CountTiles returns the number of occurrences of each tile value.
func (p *FloorPlan) CountTiles() map[byte]int {
	counts := make(map[byte]int)
	for y := 0; y < FloorPlanRows; y++ {
		for x := 0; x < FloorPlanCols; x++ {
			counts[p.Tiles[y][x]]++
		}
	}
	return counts
}

// String renders the grid as rows of space-separated hex tile bytes.
func (p *FloorPlan) String() string {
	var sb strings.Builder
	for y := 0; y < FloorPlanRows; y++ {
		for x := 0; x < FloorPlanCols; x++ {
			if x != 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%02X", p.Tiles[y][x])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// parseFloorPlan reads a full grid starting at off, copying the bytes out
// of data row by row.
func parseFloorPlan(data []byte, off int) (*FloorPlan, error) {
	if off < 0 || off+floorPlanSize > len(data) {
		return nil, fmt.Errorf("%w: floor plan at 0x%X needs %d bytes", ErrTruncatedData, off, floorPlanSize)
	}
	plan := &FloorPlan{}
	for y := 0; y < FloorPlanRows; y++ {
		copy(plan.Tiles[y][:], data[off+y*FloorPlanCols:])
	}
	return plan, nil
}
