package dungeon

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFloorPlan_RowMajor(t *testing.T) {
	data := make([]byte, floorPlanSize)
	for i := range data {
		data[i] = byte(i)
	}

	plan, err := parseFloorPlan(data, 0)
	if err != nil {
		t.Fatalf("parseFloorPlan failed: %v", err)
	}

	for y := 0; y < FloorPlanRows; y++ {
		for x := 0; x < FloorPlanCols; x++ {
			expected := byte(y*FloorPlanCols + x)
			if plan.Tiles[y][x] != expected {
				t.Fatalf("tile (%d,%d): expected %d, got %d", x, y, expected, plan.Tiles[y][x])
			}
		}
	}
}

func TestParseFloorPlan_Offset(t *testing.T) {
	data := make([]byte, 10+floorPlanSize)
	data[10] = 0x7F

	plan, err := parseFloorPlan(data, 10)
	if err != nil {
		t.Fatalf("parseFloorPlan failed: %v", err)
	}
	if plan.Tiles[0][0] != 0x7F {
		t.Errorf("expected first tile 0x7F, got 0x%02X", plan.Tiles[0][0])
	}
}

func TestParseFloorPlan_Truncated(t *testing.T) {
	_, err := parseFloorPlan(make([]byte, floorPlanSize-1), 0)
	if !errors.Is(err, ErrTruncatedData) {
		t.Errorf("expected ErrTruncatedData for short buffer, got %v", err)
	}

	_, err = parseFloorPlan(make([]byte, floorPlanSize), 1)
	if !errors.Is(err, ErrTruncatedData) {
		t.Errorf("expected ErrTruncatedData for offset past capacity, got %v", err)
	}
}

func TestFloorPlan_Tile(t *testing.T) {
	plan := &FloorPlan{}
	plan.Tiles[47][31] = 0x99

	if tile, ok := plan.Tile(31, 47); !ok || tile != 0x99 {
		t.Errorf("Tile(31, 47) = 0x%02X, %v; expected 0x99, true", tile, ok)
	}

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {FloorPlanCols, 0}, {0, FloorPlanRows}} {
		if _, ok := plan.Tile(c[0], c[1]); ok {
			t.Errorf("Tile(%d, %d) should be out of bounds", c[0], c[1])
		}
	}
}

func TestFloorPlan_CountTiles(t *testing.T) {
	plan := &FloorPlan{}
	plan.Tiles[0][0] = 1
	plan.Tiles[0][1] = 1
	plan.Tiles[1][0] = 2

	counts := plan.CountTiles()
	if counts[1] != 2 {
		t.Errorf("expected 2 tiles of value 1, got %d", counts[1])
	}
	if counts[2] != 1 {
		t.Errorf("expected 1 tile of value 2, got %d", counts[2])
	}
	if counts[0] != floorPlanSize-3 {
		t.Errorf("expected %d zero tiles, got %d", floorPlanSize-3, counts[0])
	}
}

func TestFloorPlan_String(t *testing.T) {
	plan := &FloorPlan{}
	plan.Tiles[0][0] = 0xAB
	plan.Tiles[0][1] = 0x01

	lines := strings.Split(strings.TrimRight(plan.String(), "\n"), "\n")
	if len(lines) != FloorPlanRows {
		t.Fatalf("expected %d lines, got %d", FloorPlanRows, len(lines))
	}
	if !strings.HasPrefix(lines[0], "AB 01 00") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
}
