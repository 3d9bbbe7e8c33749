package cmd

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"linked_lists/deque"
	"linked_lists/persistent"
	"linked_lists/stack"
)

const (
	lengthFlag  = "length"
	variantFlag = "variant"
)

// variants maps each container to a function that builds a chain of n nodes
// and returns a function tearing it down.
var variants = map[string]func(n int) (release func()){
	"stack": func(n int) func() {
		s := stack.New[int]()
		for i := 0; i < n; i++ {
			s.Push(i)
		}
		return s.Clear
	},
	"persistent": func(n int) func() {
		s := persistent.New[int]()
		for i := 0; i < n; i++ {
			next := s.Prepend(i)
			s.Release()
			s = next
		}
		return s.Release
	},
	"deque": func(n int) func() {
		d := deque.New[int]()
		for i := 0; i < n; i++ {
			if i%2 == 0 {
				d.PushBack(i)
			} else {
				d.PushFront(i)
			}
		}
		return d.Clear
	},
}

var variantOrder = []string{"stack", "persistent", "deque"}

// NewTeardownCommand returns the command that builds long chains and tears
// them down.
func NewTeardownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Build long chains in each container and release them",
		Long: `Build a chain of --length nodes in each selected container and release it.

Release works one node at a time, so it succeeds for chains far longer than
the call stack could follow recursively.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, err := loggerFromConfig(viper.GetString)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runTeardown(logger, viper.GetString(variantFlag), viper.GetInt(lengthFlag))
		},
	}

	flags := cmd.Flags()
	flags.Int(lengthFlag, 1_000_000, "number of nodes to build")
	flags.String(variantFlag, "all", "container to exercise: stack, persistent, deque or all")
	mustBindPFlag(lengthFlag, flags.Lookup(lengthFlag))
	mustBindPFlag(variantFlag, flags.Lookup(variantFlag))

	return cmd
}

func runTeardown(logger *zap.Logger, variant string, length int) error {
	if length < 0 {
		return errors.Errorf("invalid length %d", length)
	}
	var names = variantOrder
	if variant != "all" {
		if _, ok := variants[variant]; !ok {
			return errors.Errorf("unknown variant %q", variant)
		}
		names = []string{variant}
	}

	for _, name := range names {
		start := time.Now()
		release := variants[name](length)
		built := time.Since(start)

		start = time.Now()
		release()
		logger.Info("released chain",
			zap.String("variant", name),
			zap.Int("length", length),
			zap.Duration("build", built),
			zap.Duration("release", time.Since(start)))
	}
	return nil
}
