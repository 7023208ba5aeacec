// Command sumsearch runs the subset-sum engines from the command line.
//
// Usage:
//
//	sumsearch [-config file.yaml] [-algo hc|fc|sa|ga] [-target N] [-iterations N]
//	          [-values 1,2,3] [-seed N] [-compare all|sa,ga] [-repeat N]
//	          [-trace] [-log-level info] [-log-format text|json]
//
// Without -values (or values in the config file) the input is 1000 random
// integers in [-1000, 1000]. Results go to stdout; logs go to stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sumsearch/solver"
	"github.com/katalvlaran/sumsearch/subset"
	"github.com/katalvlaran/sumsearch/trace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// flags mirrors the command-line surface. Only flags the user actually set
// override the configuration file.
type flags struct {
	config     string
	algo       string
	target     int
	iterations int
	values     string
	seed       int64
	compare    string
	repeat     int
	trace      bool
	logLevel   string
	logFormat  string
}

func parseFlags(args []string, stderr io.Writer) (flags, map[string]bool, error) {
	var f flags
	fs := flag.NewFlagSet("sumsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "YAML configuration file")
	fs.StringVar(&f.algo, "algo", "", "algorithm: deterministic|first-choice|annealing|genetic (hc|fc|sa|ga)")
	fs.IntVar(&f.target, "target", 0, "target sum")
	fs.IntVar(&f.iterations, "iterations", 0, "iteration budget (generations for genetic)")
	fs.StringVar(&f.values, "values", "", "comma-separated input values")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 = default seed)")
	fs.StringVar(&f.compare, "compare", "", "run several algorithms side by side: all or a comma list")
	fs.IntVar(&f.repeat, "repeat", 0, "restart the algorithm N times and summarize")
	fs.BoolVar(&f.trace, "trace", false, "log every search step at debug level")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: panic|fatal|error|warn|info|debug|trace")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text|json")
	if err := fs.Parse(args); err != nil {
		return f, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set, nil
}

// resolveConfig loads the file (if any) and applies explicitly set flags.
func resolveConfig(f flags, set map[string]bool) (Config, error) {
	c := DefaultConfig()
	if f.config != "" {
		var err error
		if c, err = LoadConfig(f.config); err != nil {
			return c, err
		}
	}
	if set["algo"] {
		c.Algorithm = f.algo
	}
	if set["target"] {
		c.Target = f.target
	}
	if set["iterations"] {
		c.Iterations = f.iterations
	}
	if set["values"] {
		c.Values = ParseValueList(f.values)
	}
	if set["seed"] {
		c.Seed = f.seed
	}
	if set["log-level"] {
		c.Log.Level = f.logLevel
	}
	if set["log-format"] {
		c.Log.Format = f.logFormat
	}
	if f.trace && !strings.EqualFold(c.Log.Level, "trace") {
		c.Log.Level = "debug"
	}
	return c, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, set, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	cfg, err := resolveConfig(f, set)
	if err != nil {
		fmt.Fprintln(stderr, "sumsearch:", err)
		return 1
	}
	logger, err := cfg.Log.NewLogger()
	if err != nil {
		fmt.Fprintln(stderr, "sumsearch:", err)
		return 1
	}
	logger.SetOutput(stderr)

	runID := uuid.New()
	log := logger.WithField("run_id", runID.String())

	opts, err := cfg.SolverOptions()
	if err != nil {
		log.WithError(err).Error("invalid options")
		return 1
	}
	input, err := cfg.InputSet(subset.DeriveRand(subset.NewRand(cfg.Seed), 0))
	if err != nil {
		log.WithError(err).Error("invalid input values")
		return 1
	}
	values := input.Values()
	if f.trace {
		opts.Trace = trace.NewLogrus(log, logrus.DebugLevel)
	}

	log.WithFields(logrus.Fields{
		"algorithm":  opts.Algo.String(),
		"target":     cfg.Target,
		"iterations": opts.Iterations,
		"values":     len(values),
		"seed":       cfg.Seed,
	}).Info("starting search")

	switch {
	case set["compare"]:
		algos := solver.Algorithms()
		if !strings.EqualFold(strings.TrimSpace(f.compare), "all") {
			if algos, err = solver.ParseAlgorithms(f.compare); err != nil {
				log.WithError(err).Error("invalid -compare list")
				return 1
			}
		}
		results, err := solver.Compare(ctx, values, cfg.Target, opts, algos...)
		if err != nil {
			log.WithError(err).Error("compare failed")
			return 1
		}
		writeResults(stdout, results)

	case f.repeat > 0:
		sum, err := solver.Repeat(ctx, values, cfg.Target, opts, f.repeat)
		if err != nil {
			log.WithError(err).Error("repeat failed")
			return 1
		}
		writeSummary(stdout, sum)

	case set["repeat"]:
		log.WithError(fmt.Errorf("repeat=%d: %w", f.repeat, solver.ErrBadRuns)).Error("invalid -repeat")
		return 1

	default:
		opts.RunID = runID
		res, err := solver.Solve(ctx, values, cfg.Target, opts)
		if err != nil {
			log.WithError(err).Error("search failed")
			return 1
		}
		writeResults(stdout, []solver.Result{res})
		fmt.Fprintln(stdout, "subset:", res.Subset)
	}

	log.Info("done")
	return 0
}

func writeResults(w io.Writer, results []solver.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tFITNESS\tSUM\tSIZE\tELAPSED\tRUN ID")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\n",
			r.Algorithm, r.Fitness, r.Sum, len(r.Subset), r.Elapsed.Round(time.Microsecond), r.RunID)
	}
	tw.Flush()
}

func writeSummary(w io.Writer, s solver.Summary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tRUNS\tMEAN\tSTDDEV\tMIN\tMAX\tHIT RATE\tMEAN ELAPSED")
	fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%d\t%d\t%.2f\t%s\n",
		s.Algorithm, s.Runs, s.MeanFitness, s.StdDevFitness, s.MinFitness, s.MaxFitness,
		s.HitRate, s.MeanElapsed.Round(time.Microsecond))
	tw.Flush()
	fmt.Fprintln(w, "best subset:", s.Best.Subset)
}
