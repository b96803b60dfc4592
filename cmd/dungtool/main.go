// dungtool is a CLI utility for inspecting Digimon World 2 dungeon files.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/hollowbyte/dw2tool/pkg/dungeon"
	"github.com/hollowbyte/dw2tool/pkg/text"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "floors", "ls":
		cmdFloors(args)
	case "map":
		cmdMap(args)
	case "glyphs":
		cmdGlyphs(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`dungtool - Digimon World 2 dungeon file utility

Usage:
  dungtool <command> [options]

Commands:
  info <file.bin>                Show dungeon summary
  floors <file.bin>              List floors with layout offsets
  map <file.bin> <floor> [slot]  Hex-dump a floor plan (1-indexed)
  glyphs                         Dump the character code table

Examples:
  dungtool info DUNG4000.BIN
  dungtool floors DUNG4000.BIN
  dungtool map DUNG4000.BIN 3
  dungtool map DUNG4000.BIN 3 2`)
}

func openDungeon(path string) *dungeon.Dungeon {
	d, err := dungeon.ParseDungeonFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return d
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dungtool info <file.bin>")
		os.Exit(1)
	}

	d := openDungeon(args[0])

	layouts := 0
	for _, floor := range d.Floors {
		layouts += len(floor.Layouts())
	}

	fmt.Printf("File:    %s\n", args[0])
	fmt.Printf("Floors:  %d\n", len(d.Floors))
	fmt.Printf("Layouts: %d distinct\n", layouts)
	fmt.Println()
	for i, floor := range d.Floors {
		fmt.Printf("  %2d  %-24s %d layout(s)\n", i+1, floor.Title, len(floor.Layouts()))
	}
}

func cmdFloors(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dungtool floors <file.bin>")
		os.Exit(1)
	}

	d := openDungeon(args[0])

	for i, floor := range d.Floors {
		fmt.Printf("Floor %d: %q\n", i+1, floor.Title)
		for slot, layout := range floor.Slots {
			alias := ""
			for prev := 0; prev < slot; prev++ {
				if floor.Slots[prev] == layout {
					alias = fmt.Sprintf(" (same as slot %d)", prev+1)
					break
				}
			}
			fmt.Printf("  slot %d: plan@0x%X warps@0x%X chests@0x%X traps@0x%X spawns@0x%X%s\n",
				slot+1, layout.PlanOffset, layout.WarpsOffset, layout.ChestsOffset,
				layout.TrapsOffset, layout.SpawnsOffset, alias)
		}
	}
}

func cmdMap(args []string) {
	fs := flag.NewFlagSet("map", flag.ExitOnError)
	counts := fs.Bool("counts", false, "Also print tile value counts")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: dungtool map <file.bin> <floor> [slot]")
		os.Exit(1)
	}

	d := openDungeon(fs.Arg(0))

	floorNum, err := strconv.Atoi(fs.Arg(1))
	if err != nil || floorNum < 1 || floorNum > len(d.Floors) {
		fmt.Fprintf(os.Stderr, "Invalid floor %q (file has %d floors)\n", fs.Arg(1), len(d.Floors))
		os.Exit(1)
	}
	floor := d.Floors[floorNum-1]

	slot := 1
	if fs.NArg() > 2 {
		slot, err = strconv.Atoi(fs.Arg(2))
		if err != nil || slot < 1 || slot > dungeon.LayoutSlots {
			fmt.Fprintf(os.Stderr, "Invalid slot %q (1-%d)\n", fs.Arg(2), dungeon.LayoutSlots)
			os.Exit(1)
		}
	}
	layout := floor.Slots[slot-1]

	fmt.Printf("Floor %d %q, slot %d, plan at 0x%X:\n", floorNum, floor.Title, slot, layout.PlanOffset)
	fmt.Print(layout.Plan)

	if *counts {
		tileCounts := layout.Plan.CountTiles()
		values := make([]int, 0, len(tileCounts))
		for v := range tileCounts {
			values = append(values, int(v))
		}
		sort.Ints(values)
		fmt.Println()
		for _, v := range values {
			fmt.Printf("  %02X x%d\n", v, tileCounts[byte(v)])
		}
	}
}

func cmdGlyphs(args []string) {
	glyphs := text.Glyphs()
	codes := make([]int, 0, len(glyphs))
	for code := range glyphs {
		codes = append(codes, int(code))
	}
	sort.Ints(codes)

	for _, code := range codes {
		fmt.Printf("0x%04X  %q\n", code, glyphs[uint16(code)])
	}
}
