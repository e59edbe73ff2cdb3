package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/andybalaam/graft/ast"
	"github.com/andybalaam/graft/eval"
	"github.com/andybalaam/graft/parse"
	"github.com/andybalaam/graft/rng"
	"github.com/andybalaam/graft/scheduler"
	"github.com/andybalaam/graft/stroke"
	"github.com/andybalaam/graft/value"
)

// Defaults grounded in original_source/graftlib/main.py's module-level
// constants.
const (
	defaultMaxForks = 64
)

var runFlags = struct {
	dialect  *string
	frames   *int
	maxForks *int
	seed     *int64
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "run <program|path>",
		Short:   "Run a graft program and print its stroke stream",
		Example: `  graft run '+d:S'`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRun,
	}
	runFlags.dialect = cmd.Flags().StringP("dialect", "d", "v1", "dialect to parse as: v1|cell")
	runFlags.frames = cmd.Flags().IntP("frames", "n", -1, "how many frames to draw, or -1 to play forever")
	runFlags.maxForks = cmd.Flags().Int("max-forks", defaultMaxForks, "maximum number of concurrent forks kept active")
	runFlags.seed = cmd.Flags().Int64("seed", time.Now().UnixNano(), "seed for the random number generator")
	rootCmd.AddCommand(cmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	src, err := programSource(args[0])
	if err != nil {
		return err
	}

	var nodes []ast.Node
	var statementFn scheduler.StatementFn
	var rootEnv = func() *value.Env { return nil }

	switch *runFlags.dialect {
	case "v1":
		nodes, err = parse.ParseV1(src)
		statementFn = scheduler.V1Statement
		rootEnv = eval.NewGraftEnv
	case "cell":
		nodes, err = parse.ParseCell(src)
		statementFn = scheduler.CellStatement
		rootEnv = eval.NewCellEnv
	default:
		return fmt.Errorf("unknown dialect %q: must be v1 or cell", *runFlags.dialect)
	}
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	sched := scheduler.NewScheduler(nodes, rootEnv(), rng.NewDefault(*runFlags.seed), *runFlags.maxForks, statementFn)

	var fc *scheduler.FramesCounter
	if *runFlags.frames >= 0 {
		n := *runFlags.frames
		fc = scheduler.NewFramesCounter(&n)
	}

	opt := stroke.NewOptimiser()

	for {
		tick, err := sched.Next()
		if err != nil {
			return fmt.Errorf("eval error: %w", err)
		}
		for _, entry := range tick {
			s := opt.Process(entry.Stroke)
			if s == nil {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fork=%d %s\n", entry.ForkID, describeStroke(s))
		}
		if fc != nil {
			if err := fc.NextFrame(tick); err != nil {
				break
			}
		}
	}
	return nil
}

func describeStroke(s stroke.Stroke) string {
	switch v := s.(type) {
	case *stroke.Line:
		return fmt.Sprintf("line %s -> %s", v.Start, v.End)
	case *stroke.Dot:
		return fmt.Sprintf("dot %s", v.Pos)
	case *stroke.Elided:
		return "elided " + describeStroke(v.Inner)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// programSource treats arg as a file path if it names an existing
// file, and as literal graft source text otherwise — main.py's
// `program` argument took a literal string directly, but the teacher's
// dev tooling reads source from a file, so this supports both.
func programSource(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return arg, nil
}
