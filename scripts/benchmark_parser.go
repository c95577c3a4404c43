// Command benchmark_parser turns `go test -bench` output for the rotate
// package into a markdown report comparing each strategy mode with the
// adaptive baseline.
//
//	go test ./rotate -run '^$' -bench . -benchmem | go run ./scripts/benchmark_parser.go
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joshuapare/rotkit/rotate"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	Size        string
	Mode        string
	Iterations  int
	NsPerOp     float64
	MBPerSec    float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ComparisonResult compares one mode with the adaptive baseline for the
// same operation and size.
type ComparisonResult struct {
	Operation    string
	Size         string
	Mode         string
	BaselineNs   float64
	ModeNs       float64
	Speedup      float64
	ModeAllocs   int64
	BaselineOnly bool
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

var baseline = rotate.ModeAdaptive.String()

func main() {
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results := parseBenchmarks(bufio.NewScanner(in))
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	comparisons := generateComparisons(results)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated %d comparisons\n", len(comparisons))
	}

	report := generateMarkdownReport(comparisons, time.Now())

	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(report), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

// BenchmarkRotateBytes/n=4096/cycle-8   100000   1234 ns/op   3318.52 MB/s   0 B/op   0 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+MB/s)?(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`,
)

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	for scanner.Scan() {
		line := scanner.Text()

		// Lines from `go test -json`
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		r := BenchmarkResult{Name: matches[1]}
		r.Iterations, _ = strconv.Atoi(matches[2])
		r.NsPerOp, _ = strconv.ParseFloat(matches[3], 64)
		if matches[4] != "" {
			r.MBPerSec, _ = strconv.ParseFloat(matches[4], 64)
		}
		if matches[5] != "" {
			r.BytesPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}
		if matches[6] != "" {
			r.AllocsPerOp, _ = strconv.ParseInt(matches[6], 10, 64)
		}

		r.Operation, r.Size, r.Mode = splitName(r.Name)
		results = append(results, r)
	}

	return results
}

// splitName breaks Benchmark<Operation>/<size>/<mode>-<procs> into parts.
// Names without a mode are reported under the baseline.
func splitName(name string) (operation, size, mode string) {
	parts := strings.Split(name, "/")

	last := parts[len(parts)-1]
	if dashIdx := strings.LastIndex(last, "-"); dashIdx > 0 {
		if _, err := strconv.Atoi(last[dashIdx+1:]); err == nil {
			parts[len(parts)-1] = last[:dashIdx]
		}
	}

	operation = strings.TrimPrefix(parts[0], "Benchmark")
	mode = baseline
	rest := parts[1:]
	if len(rest) > 0 {
		if m, err := rotate.ParseMode(rest[len(rest)-1]); err == nil {
			mode = m.String()
			rest = rest[:len(rest)-1]
		}
	}
	size = strings.Join(rest, "/")
	return operation, size, mode
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	type key struct {
		operation string
		size      string
	}

	grouped := make(map[key]map[string]BenchmarkResult)
	for _, result := range results {
		k := key{result.Operation, result.Size}
		if grouped[k] == nil {
			grouped[k] = make(map[string]BenchmarkResult)
		}
		grouped[k][result.Mode] = result
	}

	var comparisons []ComparisonResult
	for k, modes := range grouped {
		base, hasBase := modes[baseline]
		if !hasBase {
			continue
		}
		if len(modes) == 1 {
			comparisons = append(comparisons, ComparisonResult{
				Operation:    k.operation,
				Size:         k.size,
				Mode:         baseline,
				BaselineNs:   base.NsPerOp,
				ModeNs:       base.NsPerOp,
				Speedup:      1,
				ModeAllocs:   base.AllocsPerOp,
				BaselineOnly: true,
			})
			continue
		}
		for mode, res := range modes {
			if mode == baseline || res.NsPerOp == 0 {
				continue
			}
			comparisons = append(comparisons, ComparisonResult{
				Operation:  k.operation,
				Size:       k.size,
				Mode:       mode,
				BaselineNs: base.NsPerOp,
				ModeNs:     res.NsPerOp,
				Speedup:    res.NsPerOp / base.NsPerOp,
				ModeAllocs: res.AllocsPerOp,
			})
		}
	}

	sort.Slice(comparisons, func(i, j int) bool {
		a, b := comparisons[i], comparisons[j]
		if a.Operation != b.Operation {
			return a.Operation < b.Operation
		}
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		return a.Mode < b.Mode
	})

	return comparisons
}

func generateMarkdownReport(comparisons []ComparisonResult, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Rotation Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format("2006-01-02 15:04:05")))

	// Summary statistics
	adaptiveFaster := 0
	modeFaster := 0
	comparable := 0
	totalSpeedup := 0.0
	for _, comp := range comparisons {
		if comp.BaselineOnly {
			continue
		}
		comparable++
		totalSpeedup += comp.Speedup
		if comp.Speedup > 1.0 {
			adaptiveFaster++
		} else if comp.Speedup < 1.0 {
			modeFaster++
		}
	}
	avgSpeedup := 0.0
	if comparable > 0 {
		avgSpeedup = totalSpeedup / float64(comparable)
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Comparisons against %s**: %d\n", baseline, comparable))
	sb.WriteString(fmt.Sprintf("  - %s faster: %d\n", baseline, adaptiveFaster))
	sb.WriteString(fmt.Sprintf("  - forced mode faster: %d\n", modeFaster))
	sb.WriteString(fmt.Sprintf("  - Average speedup of %s: **%.2fx**\n", baseline, avgSpeedup))
	sb.WriteString("\n")

	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString("| Operation | Size | Mode | adaptive (ns/op) | mode (ns/op) | Speedup | Allocs |\n")
	sb.WriteString("|-----------|------|------|------------------|--------------|---------|--------|\n")

	for _, comp := range comparisons {
		if comp.BaselineOnly {
			sb.WriteString(fmt.Sprintf("| %s | %s | *%s only* | %s | *N/A* | *N/A* | %s |\n",
				comp.Operation,
				comp.Size,
				baseline,
				formatNumber(comp.BaselineNs),
				formatNumber(float64(comp.ModeAllocs)),
			))
			continue
		}
		indicator := "✓"
		speedupStyle := "**"
		if comp.Speedup < 1.0 {
			indicator = "✗"
			speedupStyle = ""
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s%.2fx%s %s | %s |\n",
			comp.Operation,
			comp.Size,
			comp.Mode,
			formatNumber(comp.BaselineNs),
			formatNumber(comp.ModeNs),
			speedupStyle,
			comp.Speedup,
			speedupStyle,
			indicator,
			formatNumber(float64(comp.ModeAllocs)),
		))
	}

	sb.WriteString("\n")
	sb.WriteString("## Notes\n\n")
	sb.WriteString(fmt.Sprintf("- **Speedup > 1.0**: %s is faster than the forced mode ✓\n", baseline))
	sb.WriteString(fmt.Sprintf("- **Speedup < 1.0**: the forced mode beats %s ✗\n", baseline))
	sb.WriteString("- **Allocations**: rotation never allocates, so anything but 0 is a regression\n")

	return sb.String()
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}
