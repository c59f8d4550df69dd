// Package main provides a benchmark runner for the coverage planner.
// Runs the planner over scenario files and collects per-partition
// metrics into a CSV plus an aggregate summary.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/algo"
	"github.com/Prajitkk1/Swarm-Area-Coverage/internal/scenario"
)

// BenchmarkResult stores results from a single scenario run.
type BenchmarkResult struct {
	Timestamp  string
	GoVersion  string
	OS         string
	Arch       string
	Scenario   string
	GridSize   string
	ValidCells int
	Partitions int
	Failed     int
	RuntimeMs  float64
	Distance   float64
	MaxTime    float64
}

// runScenario plans one scenario file and aggregates its rows.
func runScenario(path string) (*BenchmarkResult, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := algo.Plan(sc.Config())
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	result := &BenchmarkResult{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		Scenario:   sc.Name,
		GridSize:   fmt.Sprintf("%dx%d", out.Grid.Rows, out.Grid.Cols),
		ValidCells: len(out.ValidCells),
		Partitions: len(out.Results),
		RuntimeMs:  float64(elapsed.Microseconds()) / 1000,
	}
	for _, r := range out.Results {
		if r.Err != nil {
			result.Failed++
			continue
		}
		result.Distance += r.Metrics.Distance
		if r.Metrics.Time > result.MaxTime {
			result.MaxTime = r.Metrics.Time
		}
	}
	return result, nil
}

func writeCSV(path string, results []*BenchmarkResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"timestamp", "go_version", "os", "arch", "scenario",
		"grid", "valid_cells", "partitions", "failed", "runtime_ms", "distance", "max_time_s"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Timestamp, r.GoVersion, r.OS, r.Arch, r.Scenario,
			r.GridSize,
			fmt.Sprintf("%d", r.ValidCells),
			fmt.Sprintf("%d", r.Partitions),
			fmt.Sprintf("%d", r.Failed),
			fmt.Sprintf("%.3f", r.RuntimeMs),
			fmt.Sprintf("%.2f", r.Distance),
			fmt.Sprintf("%.2f", r.MaxTime),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// printSummary reports aggregate statistics across all runs.
func printSummary(results []*BenchmarkResult) {
	var runtimes, distances []float64
	for _, r := range results {
		runtimes = append(runtimes, r.RuntimeMs)
		distances = append(distances, r.Distance)
	}

	fmt.Printf("\n=== Summary (%d scenarios) ===\n", len(results))
	meanRt, stdRt := stat.MeanStdDev(runtimes, nil)
	meanD, stdD := stat.MeanStdDev(distances, nil)
	fmt.Printf("Runtime:  mean %.3fms, stddev %.3fms\n", meanRt, stdRt)
	fmt.Printf("Distance: mean %.2f units, stddev %.2f units\n", meanD, stdD)
}

func main() {
	inputDir := flag.String("input", "testdata", "Directory with scenario YAML files")
	outputFile := flag.String("output", "benchmark_results.csv", "CSV output file")
	repeat := flag.Int("repeat", 1, "Runs per scenario (timings averaged by rows)")

	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*inputDir, "*.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding scenario files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No scenario files found in %s\n", *inputDir)
		fmt.Fprintf(os.Stderr, "Run gen_scenarios first: go run ./tools/gen_scenarios -scaling -output %s\n", *inputDir)
		os.Exit(1)
	}
	sort.Strings(files)

	var results []*BenchmarkResult
	for _, file := range files {
		for i := 0; i < *repeat; i++ {
			r, err := runScenario(file)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running %s: %v\n", file, err)
				continue
			}
			results = append(results, r)
			fmt.Printf("%s: grid %s, %d valid cells, %d partitions, %.3fms, distance %.2f\n",
				r.Scenario, r.GridSize, r.ValidCells, r.Partitions, r.RuntimeMs, r.Distance)
		}
	}

	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "No successful runs")
		os.Exit(1)
	}
	if err := writeCSV(*outputFile, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	printSummary(results)
}
