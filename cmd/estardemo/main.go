// Command estardemo is a thin CLI wrapping facade.Facade for manual
// smoke-testing. CLI parsing, rendering and mouse handling are not
// part of the core package's contract; this exists only so a human
// can drive a small grid from a terminal without writing Go.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gowavefront/estar/facade"
	"github.com/gowavefront/estar/grid"
)

func main() {
	var (
		kernelName = flag.String("kernel", "lsm", `interpolation kernel: "nf1", "alpha" or "lsm"`)
		conn       = flag.String("conn", "four", `neighborhood: "four", "eight" or "six"`)
		width      = flag.Int("width", 5, "grid width in cells")
		height     = flag.Int("height", 3, "grid height in cells")
		scale      = flag.Float64("scale", 1.0, "kernel grid spacing / world<->index conversion factor")
		goalStr    = flag.String("goal", "0,0", "goal cell as ix,iy")
		obstacles  = flag.String("obstacles", "", "semicolon-separated ix,iy obstacle cells, e.g. \"1,1;2,1\"")
		dumpQueue  = flag.Bool("dump-queue", false, "print the priority queue after each ComputeOne step")
	)
	flag.Parse()

	connectivity, err := parseConnectivity(*conn)
	if err != nil {
		log.Fatal(err)
	}

	f, err := facade.New(*kernelName, connectivity, *scale, 0)
	if err != nil {
		log.Fatalf("facade.New: %v", err)
	}

	f.AddRange(0, *width, 0, *height, f.GetFreespaceMeta())

	for _, cell := range strings.Split(*obstacles, ";") {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		ix, iy, err := parseCell(cell)
		if err != nil {
			log.Fatalf("obstacle %q: %v", cell, err)
		}
		if !f.SetMeta(ix, iy, f.GetObstacleMeta()) {
			log.Fatalf("obstacle (%d,%d) outside grid", ix, iy)
		}
	}

	gx, gy, err := parseCell(*goalStr)
	if err != nil {
		log.Fatalf("goal: %v", err)
	}
	if !f.AddGoal(gx, gy, 0) {
		log.Fatalf("goal (%d,%d) outside grid", gx, gy)
	}

	for f.HaveWork() {
		f.ComputeOne()
		if *dumpQueue {
			f.DumpQueue(os.Stdout)
		}
	}

	fmt.Printf("# kernel=%s conn=%s scale=%g goal=(%d,%d)\n", *kernelName, connectivity, *scale, gx, gy)
	f.DumpGrid(os.Stdout)
}

func parseConnectivity(s string) (grid.Connectivity, error) {
	switch strings.ToLower(s) {
	case "four", "4":
		return grid.FourConnected, nil
	case "eight", "8":
		return grid.EightConnected, nil
	case "six", "6", "hex":
		return grid.SixConnected, nil
	default:
		return 0, fmt.Errorf("unknown connectivity %q", s)
	}
}

func parseCell(s string) (ix, iy int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want \"ix,iy\", got %q", s)
	}
	ix, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	iy, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return ix, iy, nil
}
