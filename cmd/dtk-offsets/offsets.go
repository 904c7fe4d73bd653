package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/vram-io/dtk/pkg/circle"
	"github.com/vram-io/dtk/pkg/cmd"
)

// printOffsets writes one "index x y dist" line per offset within radius,
// or just their number when count is set.
func printOffsets(w io.Writer, radius int, count bool) {
	within := circle.Within(radius)
	if count {
		fmt.Fprintf(w, "%d\n", len(within))
		return
	}
	for i, o := range within {
		fmt.Fprintf(w, "%d %d %d %d\n", i, o.X, o.Y, o.Dist)
	}
}

func main() {
	var radius int
	var count bool
	var index int

	flag.IntVar(&radius, "radius", 4, "print offsets up to this distance")
	flag.BoolVar(&count, "count", false, "only print the number of offsets")
	flag.IntVar(&index, "index", -1, "print the single offset at this table index")

	flag.Parse()

	if index >= 0 {
		o, err := circle.OffsetAt(index)
		if err != nil {
			log.Fatalf("error: %s\n", err)
		}
		fmt.Printf("%d %d %d %d\n", index, o.X, o.Y, o.Dist)
		return
	}

	if radius < 0 || radius > circle.MaxRadius {
		fmt.Fprintf(os.Stderr, "Invalid radius %d, must be in [0, %d]\n", radius, circle.MaxRadius)
		cmd.DieWithUsage()
	}

	printOffsets(os.Stdout, radius, count)
}
