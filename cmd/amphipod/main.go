// Command amphipod reads a burrow layout and prints the least energy needed
// to organize it, for the layout as given and for its unfolded variant.
//
//	amphipod -input burrow.txt
//	amphipod -config amphipod.yaml -parts 2 -log-level debug
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pdrpinto/amphipod/astar"
	"github.com/pdrpinto/amphipod/burrow"
	"github.com/sirupsen/logrus"
)

const noSolutionHint = `No solution found.

[HINT] Did you set up the input correctly?`

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logrus.WithError(err).Error("amphipod failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := configure(args, stderr)
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)
	log := logger.WithField("run_id", uuid.NewString())

	data, err := readInput(cfg.Input, stdin)
	if err != nil {
		return err
	}
	start, err := burrow.Parse(string(data))
	if err != nil {
		return err
	}
	log.WithField("depth", start.Depth()).Debug("layout parsed")

	for _, part := range cfg.Parts {
		partLog := log.WithField("part", part)
		b := start
		if part == 2 {
			if b, err = start.Unfold(); err != nil {
				partLog.WithError(err).Warn("skipping part")
				continue
			}
		}
		if err := solvePart(partLog, cfg, part, b, stdout); err != nil {
			return err
		}
	}
	return nil
}

// configure layers flags over the config file over the defaults.
func configure(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("amphipod", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	input := fs.String("input", "", "layout file, - for stdin")
	parts := fs.String("parts", "", "comma separated parts to solve: 1 as given, 2 unfolded")
	workers := fs.Int("workers", 0, "goroutines evaluating the heuristic")
	logLevel := fs.String("log-level", "", "log level")
	timeout := fs.Duration("timeout", 0, "bound on each search, 0 for none")
	trace := fs.Bool("trace", false, "print every state of the solution")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return Config{}, err
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "parts":
			cfg.Parts, flagErr = parseParts(*parts)
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			cfg.LogLevel = *logLevel
		case "timeout":
			cfg.Timeout = *timeout
		case "trace":
			cfg.Trace = *trace
		}
	})
	if flagErr != nil {
		return Config{}, flagErr
	}
	return cfg, cfg.Validate()
}

func parseParts(s string) ([]int, error) {
	var parts []int
	for _, field := range strings.Split(s, ",") {
		part, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("%w: parts %q", ErrInvalidConfig, s)
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func solvePart(log logrus.FieldLogger, cfg Config, part int, start burrow.Burrow, stdout io.Writer) error {
	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	began := time.Now()
	solution, err := burrow.Solve(ctx, start,
		astar.WithWorkers(cfg.Workers),
		astar.WithLogger(log),
		astar.WithProgressInterval(cfg.ProgressInterval),
	)
	log = log.WithFields(logrus.Fields{
		"expanded": solution.Expanded,
		"elapsed":  time.Since(began).Round(time.Millisecond),
	})
	if errors.Is(err, burrow.ErrNoSolution) {
		log.Warn("search exhausted")
		fmt.Fprintf(stdout, "Part %d: %s\n", part, noSolutionHint)
		return nil
	}
	if err != nil {
		return fmt.Errorf("part %d: %w", part, err)
	}
	log.WithField("cost", solution.Cost).Info("solved")

	fmt.Fprintf(stdout, "Part %d: completed in %d moves with cost %d\n", part, solution.Moves, solution.Cost)
	if cfg.Trace {
		return printTrace(stdout, solution.Path)
	}
	return nil
}

func printTrace(w io.Writer, path []burrow.Burrow) error {
	costs, err := burrow.MoveCosts(path)
	if err != nil {
		return err
	}
	total := 0
	for i, b := range path {
		if i > 0 {
			total += costs[i-1]
			fmt.Fprintf(w, "move %d: +%d (%d)\n", i, costs[i-1], total)
		}
		fmt.Fprintln(w, b)
	}
	return nil
}
