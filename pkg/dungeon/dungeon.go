// Package dungeon decodes Digimon World 2 dungeon files (DUNG*.BIN).
// A file is a flat buffer holding a zero-terminated list of floor table
// pointers; every pointer in the format is a 4-byte little-endian absolute
// offset into that same buffer. Decoding is fail-fast: a malformed file is
// rejected with a breadcrumb of context, never a partial result.
package dungeon

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/hollowbyte/dw2tool/pkg/text"
)

// ErrTruncatedData reports that a decode step ran past the end of the
// buffer, including resolved pointers whose target is out of range.
var ErrTruncatedData = errors.New("truncated dungeon data")

const (
	pointerSize     = 4
	layoutTableSize = 20

	// LayoutSlots is the number of layout slots in every floor table.
	LayoutSlots = 8

	// The eight layout pointers start 8 bytes into the floor table: name
	// pointer, then 4 reserved bytes the format never reads.
	layoutPtrsOffset = 8
	floorTableSize   = layoutPtrsOffset + LayoutSlots*pointerSize
)

// Dungeon is a fully decoded dungeon file: its floors in file order.
// The tree owns all of its data; the source buffer may be discarded.
type Dungeon struct {
	Floors []*Floor
}

// Floor is one dungeon level: a display title and eight layout slots.
// Slots whose source pointers are equal share a single *Layout.
type Floor struct {
	Title string
	Slots [LayoutSlots]*Layout
}

// Layouts returns the floor's distinct layouts in decode order.
func (f *Floor) Layouts() []*Layout {
	out := make([]*Layout, 0, LayoutSlots)
	for _, l := range f.Slots {
		shared := false
		for _, prev := range out {
			if prev == l {
				shared = true
				break
			}
		}
		if !shared {
			out = append(out, l)
		}
	}
	return out
}

// Layout is one variant of a floor's physical arrangement. Only the floor
// plan is decoded; the four auxiliary tables are recorded as opaque
// absolute offsets for downstream decoders.
type Layout struct {
	Plan       *FloorPlan
	PlanOffset uint32

	WarpsOffset  uint32
	ChestsOffset uint32
	TrapsOffset  uint32
	SpawnsOffset uint32
}

// readPointer reads a 4-byte little-endian absolute offset at off.
func readPointer(data []byte, off int) (uint32, error) {
	if off < 0 || off+pointerSize > len(data) {
		return 0, fmt.Errorf("%w: pointer at 0x%X", ErrTruncatedData, off)
	}
	return binary.LittleEndian.Uint32(data[off:]), nil
}

// ParseDungeon decodes a complete dungeon file from raw bytes. The floor
// pointer list starts at offset 0 and ends at the first zero pointer; a
// file whose first pointer is zero decodes to a dungeon with no floors.
func ParseDungeon(data []byte) (*Dungeon, error) {
	d := &Dungeon{}
	for off := 0; ; off += pointerSize {
		ptr, err := readPointer(data, off)
		if err != nil {
			return nil, fmt.Errorf("reading floor pointer %d: %w", len(d.Floors)+1, err)
		}
		if ptr == 0 {
			break
		}
		floor, err := parseFloor(data, ptr)
		if err != nil {
			return nil, fmt.Errorf("parsing floor %d: %w", len(d.Floors)+1, err)
		}
		d.Floors = append(d.Floors, floor)
	}
	return d, nil
}

// ParseDungeonFile decodes a dungeon file from disk.
func ParseDungeonFile(path string) (*Dungeon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dungeon file: %w", err)
	}
	return ParseDungeon(data)
}

// parseFloor decodes the floor table at tableOff: a name pointer followed,
// 8 bytes in, by eight layout pointers. Repeated layout pointers alias the
// layout decoded at their first occurrence.
func parseFloor(data []byte, tableOff uint32) (*Floor, error) {
	off := int(tableOff)

	namePtr, err := readPointer(data, off)
	if err != nil {
		return nil, fmt.Errorf("reading name pointer: %w", err)
	}
	nameOff := int(namePtr)
	if nameOff > len(data) {
		return nil, fmt.Errorf("%w: name at 0x%X", ErrTruncatedData, nameOff)
	}
	title, err := text.DecodeString(data[nameOff:])
	if err != nil {
		return nil, fmt.Errorf("parsing name: %w", err)
	}

	if off+floorTableSize > len(data) {
		return nil, fmt.Errorf("%w: floor table at 0x%X", ErrTruncatedData, off)
	}

	floor := &Floor{Title: title}
	seen := make(map[uint32]*Layout, LayoutSlots)
	for i := 0; i < LayoutSlots; i++ {
		ptr, err := readPointer(data, off+layoutPtrsOffset+i*pointerSize)
		if err != nil {
			return nil, fmt.Errorf("reading layout pointer %d: %w", i+1, err)
		}
		if layout, ok := seen[ptr]; ok {
			floor.Slots[i] = layout
			continue
		}
		layout, err := parseLayout(data, ptr)
		if err != nil {
			return nil, fmt.Errorf("parsing layout %d: %w", i+1, err)
		}
		seen[ptr] = layout
		floor.Slots[i] = layout
	}
	return floor, nil
}

// parseLayout decodes the 20-byte layout pointer table at tableOff: five
// pointers to the floor plan, warps, chests, traps and spawn tables. Only
// the floor plan is resolved here.
func parseLayout(data []byte, tableOff uint32) (*Layout, error) {
	off := int(tableOff)
	if off+layoutTableSize > len(data) {
		return nil, fmt.Errorf("%w: layout table at 0x%X", ErrTruncatedData, off)
	}

	layout := &Layout{}
	ptrs := [5]*uint32{
		&layout.PlanOffset,
		&layout.WarpsOffset,
		&layout.ChestsOffset,
		&layout.TrapsOffset,
		&layout.SpawnsOffset,
	}
	names := [5]string{"floor plan", "warps", "chests", "traps", "spawns"}
	for i, dst := range ptrs {
		ptr, err := readPointer(data, off+i*pointerSize)
		if err != nil {
			return nil, fmt.Errorf("reading %s pointer: %w", names[i], err)
		}
		*dst = ptr
	}

	plan, err := parseFloorPlan(data, int(layout.PlanOffset))
	if err != nil {
		return nil, fmt.Errorf("parsing floor plan: %w", err)
	}
	layout.Plan = plan
	return layout, nil
}
