package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"linked_lists/deque"
	"linked_lists/persistent"
	"linked_lists/stack"
)

// NewScenarioCommand returns the command that replays the reference
// scenarios for every container.
func NewScenarioCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Replay the reference scenarios and check every observed value",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, err := loggerFromConfig(viper.GetString)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runScenarios(logger)
		},
	}
}

// show renders a comma-ok result the way the scenarios spell them.
func show(x int, ok bool) string {
	if !ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", x)
}

type recorder struct {
	logger   *zap.Logger
	mismatch int
}

func (r *recorder) expect(step, got, want string) {
	if got != want {
		r.mismatch++
		r.logger.Error("unexpected value",
			zap.String("step", step), zap.String("got", got), zap.String("want", want))
		return
	}
	r.logger.Debug("observed", zap.String("step", step), zap.String("value", got))
}

type scenario struct {
	name string
	run  func(r *recorder)
}

var scenarios = []scenario{
	{"stack", stackScenario},
	{"stack-peek-mut", stackPeekMutScenario},
	{"persistent-branching", persistentScenario},
	{"deque-front", dequeFrontScenario},
	{"deque-symmetry", dequeSymmetryScenario},
}

func runScenarios(logger *zap.Logger) error {
	var failed []string
	for _, s := range scenarios {
		r := &recorder{logger: logger.With(zap.String("scenario", s.name))}
		s.run(r)
		if r.mismatch > 0 {
			failed = append(failed, s.name)
			continue
		}
		r.logger.Info("scenario passed")
	}
	if len(failed) > 0 {
		return errors.Errorf("scenarios failed: %v", failed)
	}
	return nil
}

func stackScenario(r *recorder) {
	s := stack.New[int]()
	defer s.Clear()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	r.expect("pop", show(s.Pop()), "Some(3)")
	r.expect("pop", show(s.Pop()), "Some(2)")
	s.Push(4)
	s.Push(5)
	r.expect("pop", show(s.Pop()), "Some(5)")
	r.expect("pop", show(s.Pop()), "Some(4)")
	r.expect("pop", show(s.Pop()), "Some(1)")
	r.expect("pop", show(s.Pop()), "None")
}

func stackPeekMutScenario(r *recorder) {
	s := stack.New[int]()
	defer s.Clear()
	r.expect("peek empty", show(s.Peek()), "None")
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if p, ok := s.PeekMut(); ok {
		*p = 42
	}
	r.expect("peek", show(s.Peek()), "Some(42)")
	r.expect("pop", show(s.Pop()), "Some(42)")
}

func persistentScenario(r *recorder) {
	base := persistent.New[int]().Prepend(1)
	a := base.PrependAll(2, 3)
	b := base.Prepend(9)
	defer func() {
		a.Release()
		b.Release()
		base.Release()
	}()

	r.expect("base head", show(base.Head()), "Some(1)")

	aTail := a.Skip(2)
	r.expect("a tail tail head", show(aTail.Head()), "Some(1)")
	aTail.Release()

	bTail := b.Tail()
	r.expect("b tail head", show(bTail.Head()), "Some(1)")
	bTail.Release()

	r.expect("base head after branching", show(base.Head()), "Some(1)")
}

func dequeFrontScenario(r *recorder) {
	d := deque.New[int]()
	defer d.Clear()
	d.PushFront(1)
	d.PushFront(2)
	d.PushFront(3)
	r.expect("pop_front", show(d.PopFront()), "Some(3)")
	r.expect("pop_front", show(d.PopFront()), "Some(2)")
	d.PushFront(4)
	d.PushFront(5)
	r.expect("pop_front", show(d.PopFront()), "Some(5)")
	r.expect("pop_front", show(d.PopFront()), "Some(4)")
	r.expect("pop_front", show(d.PopFront()), "Some(1)")
	r.expect("pop_front", show(d.PopFront()), "None")
}

func dequeSymmetryScenario(r *recorder) {
	d := deque.New[int]()
	defer d.Clear()
	d.PushFront(1)
	d.PushFront(2)
	d.PushFront(3)
	r.expect("pop_back", show(d.PopBack()), "Some(1)")
	r.expect("pop_back", show(d.PopBack()), "Some(2)")
	r.expect("pop_back", show(d.PopBack()), "Some(3)")
	r.expect("pop_back", show(d.PopBack()), "None")
}
