package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"coursegraph/internal/coloring"
	"coursegraph/internal/model"
	"coursegraph/internal/solver"
	"coursegraph/internal/timetabler"

	"github.com/samber/lo"
)

var (
	validSolvers = []string{"exhaustive", "dsatur", "rlf"}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "exhaustive", `Solver to build the timetable. Allowed values are:
- "exhaustive" (time-bounded backtracking search; finds a solution whenever one exists within the budget),
- "dsatur" (graph-coloring heuristic; fast, may fail on feasible instances),
- "rlf" (graph-coloring heuristic; fast, may fail on feasible instances), where "exhaustive" is the default`)
	filePathPtr := flag.String("file", "", "Path to the input file")
	timeoutPtr := flag.Duration("timeout", 30*time.Second, "Time budget for the exhaustive solver; 0 means unbounded")
	seedPtr := flag.Int64("seed", 0, "Seed for dsatur tie-breaking")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	// Extract input
	instance, err := model.InstanceFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Initialize engine
	var engine timetabler.Timetabler
	switch solverStr {
	case "exhaustive":
		engine = timetabler.NewExhaustiveTimetabler(*timeoutPtr)
	case "dsatur":
		engine = timetabler.NewHeuristicTimetabler(coloring.DSatur(*seedPtr))
	case "rlf":
		engine = timetabler.NewHeuristicTimetabler(coloring.RLF())
	}

	// Build timetable
	result, err := engine.Build(instance)
	if err != nil {
		log.Fatalf("an error occurred during timetable construction: %v", err)
	}
	if result.Outcome != solver.Feasible {
		fmt.Printf("Outcome: %v\n", result.Outcome)
		fmt.Printf("Elapsed: %v\n", result.Elapsed)
		os.Exit(20)
	}

	// Verify timetable correctness
	if !engine.Verify(instance, result.Assignment) {
		log.Fatal("built timetable violates hard constraints")
	}

	printTimetable(instance, result)
}

func printTimetable(instance model.Instance, result solver.Result) {
	assignments := lo.Values(result.Assignment)
	slices.SortFunc(assignments, func(a, b solver.Candidate) int {
		if a.Period != b.Period {
			return int(a.Period) - int(b.Period)
		}
		return int(a.Section) - int(b.Section)
	})

	fmt.Printf("Instance: %v\n", instance.Name)
	fmt.Printf("Elapsed: %v\n\n", result.Elapsed)
	for _, assignment := range assignments {
		section := instance.Sections[assignment.Section]
		name := section.Course
		if section.Index > 0 {
			name = fmt.Sprintf("%v (section %v)", section.Course, section.Index)
		}
		fmt.Printf(
			"period %v | %v | room %v | teacher %v\n",
			assignment.Period,
			name,
			instance.Rooms[assignment.Room].Name,
			instance.Teachers[assignment.Teacher].Name,
		)
	}
}
