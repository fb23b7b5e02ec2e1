package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"coursegraph/internal/coloring"
	"coursegraph/internal/model"
	"coursegraph/internal/solver"
	"coursegraph/internal/timetabler"
)

type scenario struct {
	courses   uint64
	curricula uint64
	rooms     uint64
	teachers  uint64
	periods   uint64
}

var scenarios = []scenario{
	{courses: 4, curricula: 2, rooms: 3, teachers: 4, periods: 5},
	{courses: 8, curricula: 3, rooms: 4, teachers: 6, periods: 6},
	{courses: 12, curricula: 4, rooms: 5, teachers: 8, periods: 8},
	{courses: 16, curricula: 5, rooms: 6, teachers: 10, periods: 10},
	{courses: 24, curricula: 6, rooms: 8, teachers: 14, periods: 12},
}

func main() {
	timeoutPtr := flag.Duration("timeout", 10*time.Second, "Time budget per exhaustive solve")
	seedPtr := flag.Int64("seed", 1, "Base seed for instance generation")
	runsPtr := flag.Int("runs", 5, "Instances generated per scenario")
	outPtr := flag.String("out", "", "Path to the CSV output file; if empty, it'll be written into the Standard Output")
	flag.Parse()

	out := os.Stdout
	if *outPtr != "" {
		file, err := os.Create(*outPtr)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		out = file
	}

	writer := csv.NewWriter(out)
	defer writer.Flush()
	writer.Write([]string{
		"instance", "sections", "candidates",
		"exhaustive_outcome", "exhaustive_ms",
		"dsatur_ok", "dsatur_ms",
		"rlf_ok", "rlf_ms",
	})

	for _, scenario := range scenarios {
		for run := 0; run < *runsPtr; run++ {
			seed := *seedPtr + int64(run)
			instance, err := model.RandomInstance(model.GeneratorConfig{
				Courses:   scenario.courses,
				Curricula: scenario.curricula,
				Rooms:     scenario.rooms,
				Teachers:  scenario.teachers,
				Periods:   scenario.periods,
				Seed:      seed,
			})
			if err != nil {
				log.Fatalf("cannot generate instance: %v", err)
			}

			candidates, err := solver.Candidates(instance)
			if err != nil {
				log.Fatalf("cannot generate candidates: %v", err)
			}

			exhaustive := solver.Solve(candidates, *timeoutPtr)
			dsaturOk, dsaturElapsed := runHeuristic(instance, coloring.DSatur(seed))
			rlfOk, rlfElapsed := runHeuristic(instance, coloring.RLF())

			writer.Write([]string{
				instance.Name,
				fmt.Sprint(len(instance.Sections)),
				fmt.Sprint(candidates.Len()),
				exhaustive.Outcome.String(),
				fmt.Sprint(exhaustive.Elapsed.Milliseconds()),
				fmt.Sprint(dsaturOk),
				fmt.Sprint(dsaturElapsed.Milliseconds()),
				fmt.Sprint(rlfOk),
				fmt.Sprint(rlfElapsed.Milliseconds()),
			})
		}
	}
}

func runHeuristic(instance model.Instance, strategy coloring.Strategy) (bool, time.Duration) {
	start := time.Now()
	engine := timetabler.NewHeuristicTimetabler(strategy)
	result, err := engine.Build(instance)
	if errors.Is(err, timetabler.ErrUnassignable) {
		return false, time.Since(start)
	} else if err != nil {
		log.Fatalf("heuristic %v failed: %v", strategy, err)
	}
	return engine.Verify(instance, result.Assignment), time.Since(start)
}
