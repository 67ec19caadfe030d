// Command routebench times Optimize over synthetic maps of increasing
// size, the route-optimizer counterpart to fbenz-osmrouting's
// graphbench: a flag-driven harness that runs the algorithm under test
// many times and reports average/min/max latency, optionally capturing a
// CPU profile.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"hexroute/conflict"
	"hexroute/connectivity"
	"hexroute/optimize"
	"hexroute/pathfind"
	"hexroute/train"
)

func main() {
	var (
		sizes      sizeList
		runs       int
		cpuProfile string
		express    bool
	)
	flag.Var(&sizes, "size", "chain size to benchmark (repeatable), default 8,16,32")
	flag.IntVar(&runs, "runs", 20, "number of iterations per size")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to file")
	flag.BoolVar(&express, "express", true, "include a skip-capable express train in the fleet")
	flag.Parse()

	if len(sizes) == 0 {
		sizes = sizeList{8, 16, 32}
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatalf("routebench: create cpu profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("routebench: start cpu profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	criteria, err := pathfind.NewCriteria(nil, nil, conflict.RuleFacesAndCenters, nil, true)
	if err != nil {
		log.Fatal(err)
	}

	trains := []train.TrainType{{Name: "2-train", Capacity: 2}}
	if express {
		trains = append(trains, train.TrainType{Name: "4-train", Capacity: 4, SkipCapable: true, Class: "express"})
	}

	fmt.Printf("routebench: %d runs per size, trains=%d express=%v\n", runs, len(trains), express)

	for _, n := range sizes {
		view := newSynthMap(n)
		benchmarkSize(n, runs, view, trains, criteria)
	}
}

func benchmarkSize(n, runs int, view connectivity.View, trains []train.TrainType, criteria pathfind.Criteria) {
	ctx := context.Background()

	var total, min, max time.Duration
	min = time.Hour

	for i := 0; i < runs; i++ {
		start := time.Now()
		if _, err := optimize.Optimize(ctx, view, "X", trains, nil, criteria, "phase1", nil, nil); err != nil {
			log.Fatalf("routebench: size=%d run=%d: %v", n, i, err)
		}
		diff := time.Since(start)
		total += diff
		if diff < min {
			min = diff
		}
		if diff > max {
			max = diff
		}
	}

	avg := total / time.Duration(runs)
	fmt.Printf("size=%3d  avg=%v  min=%v  max=%v\n", n, avg, min, max)
}

// sizeList collects repeated -size flags into a slice.
type sizeList []int

func (s sizeList) String() string {
	return fmt.Sprint([]int(s))
}

func (s *sizeList) Set(v string) error {
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return fmt.Errorf("routebench: invalid -size %q: %w", v, err)
	}
	*s = append(*s, n)
	return nil
}
