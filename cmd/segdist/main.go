package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"kantarion/src/geometry"
)

func main() {
	first := flag.String("a", "", `first segment as six scalars: "x y z x y z"`)
	second := flag.String("b", "", `second segment as six scalars: "x y z x y z"`)
	flag.Parse()

	segA, err := parseSegment(*first)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: segment -a: %v\n", err)
		os.Exit(1)
	}
	segB, err := parseSegment(*second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: segment -b: %v\n", err)
		os.Exit(1)
	}

	p1, p2 := geometry.ClosestPoints(segA, segB)
	fmt.Printf("closest distance: %g\n", p1.Distance(p2))
	fmt.Printf("on a: %v\n", p1)
	fmt.Printf("on b: %v\n", p2)
}

func parseSegment(s string) (geometry.Segment, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return geometry.Segment{}, fmt.Errorf("want 6 scalars, have %d", len(fields))
	}
	start, err := geometry.ParseVector3(strings.Join(fields[:3], " "))
	if err != nil {
		return geometry.Segment{}, err
	}
	end, err := geometry.ParseVector3(strings.Join(fields[3:], " "))
	if err != nil {
		return geometry.Segment{}, err
	}
	return geometry.NewSegment(start, end), nil
}
