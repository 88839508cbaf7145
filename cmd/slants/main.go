package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/slants/generator"
	"github.com/katalvlaran/slants/sat"
	"github.com/katalvlaran/slants/solver"
	"github.com/katalvlaran/slants/suite"
)

var log = logrus.StandardLogger()

// solveFunc is the shared shape of Deduce, Search and sat.Solve.
type solveFunc func(givens string, width, height int, opts solver.Options) solver.Result

func main() {
	verbose := flag.Bool("v", false, "output testsuite-compatible lines with work scores")
	debug := flag.Bool("d", false, "debug logging (rule and search traces)")
	filter := flag.String("f", "", "filter puzzles by partial name match")
	numPuzzles := flag.Int("n", 0, "maximum number of puzzles to test (0 = all)")
	offset := flag.Int("ofst", 1, "puzzle number to start at (1-based)")
	solverName := flag.String("s", "BF", "solver to use: PR, BF or SAT")
	maxTier := flag.Int("mt", 10, "maximum rule tier (1, 2 or 3); 10 uses all rules")
	outputUnsolved := flag.Bool("ou", false, "list unsolved puzzles sorted by size")
	prof := flag.Bool("p", false, "write a CPU profile for this run")

	genMode := flag.Bool("gen", false, "generate puzzles instead of solving")
	width := flag.Int("w", 6, "generated puzzle width")
	height := flag.Int("ht", 5, "generated puzzle height")
	count := flag.Int("count", 1, "number of puzzles to generate")
	seed := flag.Int64("seed", 0, "random seed for generation")
	passes := flag.Int("rp", 3, "clue reduction passes per puzzle")
	symmetry := flag.Bool("sym", false, "remove clues in 180-degree pairs")
	output := flag.String("o", "", "output file for generated puzzles (default stdout)")

	flag.Parse()

	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if *prof {
		defer profile.Start().Stop()
	}

	solve, err := selectSolver(*solverName)
	if err == nil {
		if *genMode {
			err = runGenerate(genConfig{
				solve:    solve,
				width:    *width,
				height:   *height,
				count:    *count,
				seed:     *seed,
				passes:   *passes,
				symmetry: *symmetry,
				output:   *output,
			})
		} else {
			err = runSolve(solveConfig{
				files:          flag.Args(),
				solve:          solve,
				solverName:     *solverName,
				maxTier:        *maxTier,
				filter:         *filter,
				limit:          *numPuzzles,
				offset:         *offset,
				verbose:        *verbose,
				outputUnsolved: *outputUnsolved,
			})
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func selectSolver(name string) (solveFunc, error) {
	switch name {
	case "PR":
		return solver.Deduce, nil
	case "BF":
		return solver.Search, nil
	case "SAT":
		return sat.Solve, nil
	}
	return nil, fmt.Errorf("unknown solver %q (want PR, BF or SAT)", name)
}

// loadRecords reads every suite file in order, or stdin when none are
// named.
func loadRecords(files []string) ([]suite.Record, error) {
	if len(files) == 0 {
		return suite.ReadAll(os.Stdin)
	}

	var records []suite.Record
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		recs, err := suite.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		records = append(records, recs...)
	}
	return records, nil
}

type solveConfig struct {
	files          []string
	solve          solveFunc
	solverName     string
	maxTier        int
	filter         string
	limit          int
	offset         int
	verbose        bool
	outputUnsolved bool
}

// outcome pairs a suite record with its solve result.
type outcome struct {
	rec suite.Record
	res solver.Result
}

func runSolve(cfg solveConfig) error {
	records, err := loadRecords(cfg.files)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no puzzles found")
	}

	if cfg.filter != "" {
		records = lo.Filter(records, func(r suite.Record, _ int) bool {
			return strings.Contains(r.Name, cfg.filter)
		})
		if len(records) == 0 {
			return fmt.Errorf("no puzzles matching filter %q", cfg.filter)
		}
	}

	startIdx := cfg.offset - 1
	if startIdx < 0 {
		startIdx = 0
	}
	if startIdx >= len(records) {
		return fmt.Errorf("offset %d is beyond the number of puzzles (%d)", cfg.offset, len(records))
	}
	records = records[startIdx:]
	if cfg.limit > 0 && cfg.limit < len(records) {
		records = records[:cfg.limit]
	}

	opts := solver.Options{MaxTier: cfg.maxTier}
	outcomes := make([]outcome, 0, len(records))
	start := time.Now()

	for i, rec := range records {
		log.WithFields(logrus.Fields{
			"puzzle": startIdx + i + 1,
			"name":   rec.Name,
			"size":   fmt.Sprintf("%dx%d", rec.Width, rec.Height),
		}).Debug("solving")

		res := cfg.solve(rec.Givens, rec.Width, rec.Height, opts)
		outcomes = append(outcomes, outcome{rec: rec, res: res})

		log.WithFields(logrus.Fields{
			"name":   rec.Name,
			"status": res.Status,
			"work":   res.WorkScore,
			"tier":   res.MaxTierUsed,
		}).Debug("result")

		if cfg.verbose {
			fmt.Println(resultLine(rec, res))
		}
	}
	elapsed := time.Since(start)

	printSummary(cfg, outcomes, elapsed)
	return nil
}

// resultLine re-emits a record with the solve outcome folded into the
// answer and comment columns.
func resultLine(rec suite.Record, res solver.Result) string {
	out := suite.Record{
		Name:   rec.Name,
		Width:  rec.Width,
		Height: rec.Height,
		Givens: rec.Givens,
	}
	if res.Status == solver.StatusSolved {
		out.Answer = res.Solution
	}

	parts := []string{}
	if rec.Comment != "" {
		parts = append(parts, rec.Comment)
	}
	parts = append(parts, fmt.Sprintf("work_score=%d", res.WorkScore))
	if res.Status != solver.StatusSolved {
		parts = append(parts, fmt.Sprintf("status=%s", res.Status))
		if n := strings.Count(res.Solution, "."); n > 0 {
			parts = append(parts, fmt.Sprintf("unsolved=%d", n))
		}
	}
	out.Comment = strings.Join(parts, " ")
	return out.String()
}

func printSummary(cfg solveConfig, outcomes []outcome, elapsed time.Duration) {
	total := len(outcomes)
	solved := lo.Filter(outcomes, func(o outcome, _ int) bool {
		return o.res.Status == solver.StatusSolved
	})
	multCount := lo.CountBy(outcomes, func(o outcome) bool {
		return o.res.Status == solver.StatusMult
	})
	unsolvedCount := total - len(solved) - multCount
	totalWork := lo.SumBy(solved, func(o outcome) int { return o.res.WorkScore })
	tierCounts := lo.CountValuesBy(solved, func(o outcome) int { return o.res.MaxTierUsed })
	mismatches := lo.CountBy(solved, func(o outcome) bool {
		return o.rec.Answer != "" && o.res.Solution != o.rec.Answer
	})

	solvedPct := 0.0
	unsolvedPct := 0.0
	if total > 0 {
		solvedPct = float64(len(solved)) / float64(total) * 100
		unsolvedPct = float64(unsolvedCount+multCount) / float64(total) * 100
	}

	if cfg.verbose {
		fmt.Printf("# Summary: %d/%d (%.1f%%) solved, time=%.3fs, total_work_score=%d\n",
			len(solved), total, solvedPct, elapsed.Seconds(), totalWork)
		return
	}

	source := "stdin"
	if len(cfg.files) > 0 {
		source = strings.Join(cfg.files, ", ")
	}
	fmt.Printf("\nInput: %s\n", source)
	fmt.Printf("Solver: %s\n", cfg.solverName)
	if cfg.maxTier < 10 {
		fmt.Printf("Max tier: %d\n", cfg.maxTier)
	}
	fmt.Printf("Puzzles tested: %d\n", total)
	fmt.Printf("Solved: %d (%.1f%%)\n", len(solved), solvedPct)
	if multCount > 0 {
		fmt.Printf("Multiple solutions: %d\n", multCount)
	}
	fmt.Printf("Unsolved: %d (%.1f%%)\n", unsolvedCount, unsolvedPct)
	if len(solved) > 0 {
		var tierParts []string
		for tier := 1; tier <= 3; tier++ {
			pct := float64(tierCounts[tier]) / float64(len(solved)) * 100
			tierParts = append(tierParts, fmt.Sprintf("%d=%d (%.0f%%)", tier, tierCounts[tier], pct))
		}
		fmt.Printf("Tiers: %s\n", strings.Join(tierParts, " "))
	}
	if mismatches > 0 {
		fmt.Printf("Mismatches: %d\n", mismatches)
	}
	fmt.Printf("Elapsed time: %.3fs\n", elapsed.Seconds())
	fmt.Printf("Total work score: %d\n", totalWork)
	if len(solved) > 0 {
		fmt.Printf("Average work score per solved puzzle: %.1f\n",
			float64(totalWork)/float64(len(solved)))
	}

	if cfg.outputUnsolved && unsolvedCount+multCount > 0 {
		unsolved := lo.Filter(outcomes, func(o outcome, _ int) bool {
			return o.res.Status != solver.StatusSolved
		})
		sort.Slice(unsolved, func(i, j int) bool {
			ai := unsolved[i].rec.Width * unsolved[i].rec.Height
			aj := unsolved[j].rec.Width * unsolved[j].rec.Height
			if ai != aj {
				return ai < aj
			}
			return unsolved[i].rec.Name < unsolved[j].rec.Name
		})
		fmt.Println()
		fmt.Println("Unsolved puzzles (sorted by size):")
		for _, o := range unsolved {
			fmt.Printf("  %s: %dx%d (area=%d)\n",
				o.rec.Name, o.rec.Width, o.rec.Height, o.rec.Width*o.rec.Height)
		}
	}
}

type genConfig struct {
	solve    solveFunc
	width    int
	height   int
	count    int
	seed     int64
	passes   int
	symmetry bool
	output   string
}

func runGenerate(cfg genConfig) error {
	opts := generator.DefaultOptions()
	opts.Seed = cfg.seed
	opts.ReductionPasses = cfg.passes
	opts.Symmetry = cfg.symmetry

	gen := generator.New(func(givens string, w, h, maxTier int) solver.Result {
		return cfg.solve(givens, w, h, solver.Options{MaxTier: maxTier})
	}, opts)

	log.WithFields(logrus.Fields{
		"count":  cfg.count,
		"size":   fmt.Sprintf("%dx%d", cfg.width, cfg.height),
		"seed":   cfg.seed,
		"passes": cfg.passes,
	}).Info("generating puzzles")

	start := time.Now()
	var puzzles []generator.Puzzle
	retries := 0

	for i := 0; i < cfg.count; i++ {
		var p generator.Puzzle
		var err error
		for attempt := 1; ; attempt++ {
			p, err = gen.Generate(cfg.width, cfg.height)
			if err == nil {
				break
			}
			retries++
			if attempt >= 100 {
				return fmt.Errorf("puzzle %d: %w", i+1, err)
			}
		}
		puzzles = append(puzzles, p)

		if cfg.output == "" {
			fmt.Println(puzzleLine(p, cfg.width, cfg.height, i+1))
		}
		log.WithFields(logrus.Fields{
			"clues": p.Clues,
			"work":  p.WorkScore,
			"tier":  p.MaxTierUsed,
		}).Debug("generated")
	}
	elapsed := time.Since(start)

	if cfg.output != "" {
		if err := writePuzzleFile(cfg, puzzles, elapsed, retries); err != nil {
			return err
		}
	}

	avgClues := 0.0
	if len(puzzles) > 0 {
		avgClues = float64(lo.SumBy(puzzles, func(p generator.Puzzle) int { return p.Clues })) /
			float64(len(puzzles))
	}
	log.WithFields(logrus.Fields{
		"generated": len(puzzles),
		"retries":   retries,
		"elapsed":   elapsed.Round(time.Millisecond).String(),
		"avg_clues": fmt.Sprintf("%.1f", avgClues),
	}).Info("generation done")
	return nil
}

// puzzleLine renders one generated puzzle as a suite line with its
// grading comment.
func puzzleLine(p generator.Puzzle, width, height, n int) string {
	rec := suite.Record{
		Name:    fmt.Sprintf("gen_%dx%d_%d", width, height, n),
		Width:   width,
		Height:  height,
		Givens:  p.Givens,
		Answer:  p.Solution,
		Comment: fmt.Sprintf("givens=%d work_score=%d tier=%d", p.Clues, p.WorkScore, p.MaxTierUsed),
	}
	return rec.String()
}

// writePuzzleFile emits the batch sorted by work score, easiest first,
// renumbering names by their sorted position.
func writePuzzleFile(cfg genConfig, puzzles []generator.Puzzle, elapsed time.Duration, retries int) error {
	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].WorkScore < puzzles[j].WorkScore
	})

	f, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# Generated Slants puzzles\n")
	fmt.Fprintf(f, "# Size: %dx%d, Count: %d\n", cfg.width, cfg.height, len(puzzles))
	fmt.Fprintf(f, "# Seed: %d, Reduction passes: %d, Symmetry: %v\n", cfg.seed, cfg.passes, cfg.symmetry)
	fmt.Fprintf(f, "# Elapsed: %.2fs, Retries: %d\n", elapsed.Seconds(), retries)
	if len(puzzles) > 0 {
		avg := float64(lo.SumBy(puzzles, func(p generator.Puzzle) int { return p.Clues })) /
			float64(len(puzzles))
		fmt.Fprintf(f, "# Average clues: %.1f\n", avg)
	}
	fmt.Fprintln(f)

	for i, p := range puzzles {
		fmt.Fprintln(f, puzzleLine(p, cfg.width, cfg.height, i+1))
	}

	log.WithFields(logrus.Fields{
		"file":  cfg.output,
		"count": len(puzzles),
	}).Info("wrote generated puzzles")
	return nil
}
