// Command knotsim loads a grid diagram, builds its embedded 3D curve and
// relaxes it live in the terminal.
//
// Usage:
//
//	knotsim -grid diagram.csv [-lift 0.1] [-minseg 0.25] [-steps 5]
//	knotsim -grid diagram.csv -headless 1000
//
// The interactive mode steps the relaxation once per frame and charts the
// curve length as it settles; the headless mode runs a fixed number of
// steps and prints a summary.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/gridknot/circuit"
	"github.com/katalvlaran/gridknot/curve"
	"github.com/katalvlaran/gridknot/griddiagram"
	"github.com/katalvlaran/gridknot/knot"
)

func main() {
	var (
		gridPath = flag.String("grid", "", "path to a .csv grid diagram (required)")
		lift     = flag.Float64("lift", 0.1, "z offset for over-strand vertices")
		minSeg   = flag.Float64("minseg", 0.25, "refinement segment length; 0 disables refinement")
		steps    = flag.Int("steps", 5, "relaxation steps per frame")
		headless = flag.Int("headless", 0, "run N steps without a UI and print a summary")
	)
	flag.Parse()
	if *gridPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	d, err := griddiagram.FromCSVFile(*gridPath)
	if err != nil {
		log.Fatalf("loading diagram: %v", err)
	}

	c := circuit.Trace(d)
	path := curve.FromCircuit(c, curve.BuildOptions{LiftHeight: *lift, MinSegment: *minSeg})
	k, err := knot.New(path, knot.DefaultOptions())
	if err != nil {
		log.Fatalf("building knot: %v", err)
	}

	if *headless > 0 {
		runHeadless(c, k, *headless)
		return
	}

	// The TUI owns the terminal; keep the standard logger out of its way.
	if f, err := tea.LogToFile("knotsim.log", "knotsim"); err == nil {
		defer f.Close()
	}
	if _, err := tea.NewProgram(newModel(d, c, k, *steps), tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("ui: %v", err)
	}
}

// runHeadless relaxes for a fixed number of steps and prints the outcome.
func runHeadless(c *circuit.Circuit, k *knot.Knot, steps int) {
	before := k.Path().Length()
	for i := 0; i < steps; i++ {
		k.Relax()
	}

	fmt.Printf("resolution:    %d\n", c.Resolution())
	fmt.Printf("crossings:     %d\n", c.Crossings())
	fmt.Printf("vertices:      %d\n", k.Len())
	fmt.Printf("steps:         %d\n", steps)
	fmt.Printf("curve length:  %.4f -> %.4f\n", before, k.Path().Length())
	fmt.Printf("min clearance: %.4f\n", k.MinClearance())
}
