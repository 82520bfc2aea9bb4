// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qsim/gates"
	"github.com/katalvlaran/qsim/tensor"
)

const (
	opNew            = "circuit.New"
	opH              = "Circuit.H"
	opGroverOperator = "Circuit.GroverOperator"
	opGrover         = "Circuit.Grover"
	opMeasure        = "Circuit.Measure"
)

// iterationSlack absorbs rounding in π/(4θ) when the exact value is an integer
// (one qubit: θ = π/4 gives 0.9999999999999999 in float64).
const iterationSlack = 1e-9

// Stage is the position of a Circuit in its forward-only lifecycle.
type Stage uint8

const (
	// StageConstructed: state is |0…0⟩.
	StageConstructed Stage = iota
	// StageHadamard: state is the uniform superposition.
	StageHadamard
	// StageIterated: the Grover operator has been applied.
	StageIterated
	// StageMeasured: at least one measurement was taken.
	StageMeasured
)

// String returns the lowercase stage name.
func (s Stage) String() string {
	switch s {
	case StageConstructed:
		return "constructed"
	case StageHadamard:
		return "hadamard"
	case StageIterated:
		return "iterated"
	case StageMeasured:
		return "measured"
	default:
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
}

// Step is one traced Grover iteration.
type Step struct {
	Iteration   int     // 1-based
	Probability float64 // |⟨target|state⟩|² after the iteration
}

// Result summarises one Run.
type Result struct {
	Qubits      int
	States      int
	Target      int
	Iterations  int
	Probability float64
	Trace       []Step
}

// Circuit runs Grover's search on a register of fixed size.
// A Circuit is single-owner; it is not safe for concurrent use.
type Circuit struct {
	register *Register
	opts     Options
	log      *Logger
	gates    *gates.Library
	state    *tensor.Vector
	stage    Stage
	grover   map[int]*tensor.Operator // Grover operator per target, built lazily
	trace    []Step
}

// New returns a Circuit on size qubits in state |0…0⟩.
// Errors: tensor.ErrInvalidArgument for size outside [1, tensor.MaxOperatorQubits].
func New(size int, opts ...Option) (*Circuit, error) {
	o := newOptions(opts...)
	reg, err := NewRegister(size)
	if err != nil {
		return nil, circuitErrorf(opNew, err)
	}
	mopts := o.matrixOptions()
	lib, err := gates.New(size, mopts...)
	if err != nil {
		return nil, circuitErrorf(opNew, err)
	}
	state, err := tensor.MakeStateVector(0, size, mopts...)
	if err != nil {
		return nil, circuitErrorf(opNew, err)
	}

	return &Circuit{
		register: reg,
		opts:     o,
		log:      o.logger.WithQubits(size),
		gates:    lib,
		state:    state,
		stage:    StageConstructed,
		grover:   make(map[int]*tensor.Operator),
	}, nil
}

// OptimalIterations returns floor(π/(4θ)) with θ = arcsin(√(1/N)), N = 2^qubits:
// the iteration count that maximises the target probability.
// It returns 0 for qubits < 1; qubits above tensor.MaxQubits count as tensor.MaxQubits.
func OptimalIterations(qubits int) int {
	if qubits < 1 {
		return 0
	}
	qubits = min(qubits, tensor.MaxQubits)
	n := float64(uint64(1) << uint(qubits))
	theta := math.Asin(math.Sqrt(1 / n))

	return int(math.Floor(math.Pi/(4*theta) + iterationSlack))
}

// Register returns the circuit's register.
func (c *Circuit) Register() *Register { return c.register }

// Size returns the number of qubits.
func (c *Circuit) Size() int { return c.register.Size() }

// Iterations returns OptimalIterations(Size()).
func (c *Circuit) Iterations() int { return OptimalIterations(c.register.Size()) }

// Stage returns the current lifecycle stage.
func (c *Circuit) Stage() Stage { return c.stage }

// State returns the current state. Vectors are immutable, so the result
// never observes later steps.
func (c *Circuit) State() *tensor.Vector { return c.state }

// Trace returns a copy of the per-iteration record (empty unless WithTrace).
func (c *Circuit) Trace() []Step {
	out := make([]Step, len(c.trace))
	copy(out, c.trace)

	return out
}

// H puts the register into the uniform superposition: state ← H^⊗k · state.
// Errors: ErrInvalidStage unless the circuit is freshly constructed.
func (c *Circuit) H() error {
	if c.stage != StageConstructed {
		return circuitErrorf(opH, fmt.Errorf("from %s: %w", c.stage, ErrInvalidStage))
	}
	next, err := c.state.Apply(c.gates.HN())
	if err != nil {
		return circuitErrorf(opH, err)
	}
	c.state = next
	c.stage = StageHadamard
	c.log.LogHadamard(c.register.States())

	return nil
}

// GroverOperator returns H^k·R·H^k·O for target: the oracle is applied first,
// then H^k, then the reflection R, then H^k. The result is cached per target.
// Errors: tensor.ErrInvalidArgument for a target outside the register.
func (c *Circuit) GroverOperator(target int) (*tensor.Operator, error) {
	if op, ok := c.grover[target]; ok {
		return op, nil
	}
	oracle, err := c.gates.Oracle(target)
	if err != nil {
		return nil, circuitErrorf(opGroverOperator, err)
	}
	hn := c.gates.HN()
	op, err := hn.Mul(c.gates.Reflection())
	if err == nil {
		op, err = op.Mul(hn)
	}
	if err == nil {
		op, err = op.Mul(oracle)
	}
	if err != nil {
		return nil, circuitErrorf(opGroverOperator, err)
	}
	c.grover[target] = op
	c.log.LogOperatorBuilt(target, op.Kind().String(), op.Matrix().NNZ())

	return op, nil
}

// Grover applies the Grover operator Iterations() times and returns that count.
// With WithTrace the target probability is recorded after each iteration.
// Errors: ErrInvalidStage unless H was applied; tensor.ErrInvalidArgument for a bad target.
func (c *Circuit) Grover(target int) (int, error) {
	if c.stage != StageHadamard {
		return 0, circuitErrorf(opGrover, fmt.Errorf("from %s: %w", c.stage, ErrInvalidStage))
	}
	op, err := c.GroverOperator(target)
	if err != nil {
		return 0, circuitErrorf(opGrover, err)
	}
	var basis *tensor.Vector
	if c.opts.tracing {
		if basis, err = tensor.MakeStateVector(target, c.register.Size(), c.opts.matrixOptions()...); err != nil {
			return 0, circuitErrorf(opGrover, err)
		}
	}

	n := c.Iterations()
	state := c.state
	for i := 1; i <= n; i++ {
		if state, err = state.Apply(op); err != nil {
			return 0, circuitErrorf(opGrover, err)
		}
		p := -1.0
		if basis != nil {
			if p, err = state.Probability(basis); err != nil {
				return 0, circuitErrorf(opGrover, err)
			}
			c.trace = append(c.trace, Step{Iteration: i, Probability: p})
		}
		c.log.LogIteration(i, n, p)
	}
	c.state = state
	c.stage = StageIterated

	return n, nil
}

// Measure returns |⟨target|state⟩|². Allowed from any stage; moves the
// circuit to StageMeasured and may be repeated.
// Errors: tensor.ErrInvalidArgument for a target outside the register.
func (c *Circuit) Measure(target int) (float64, error) {
	basis, err := tensor.MakeStateVector(target, c.register.Size(), c.opts.matrixOptions()...)
	if err != nil {
		err = circuitErrorf(opMeasure, err)
		c.log.LogMeasure(target, 0, err)
		return 0, err
	}
	p, err := c.state.Probability(basis)
	if err != nil {
		err = circuitErrorf(opMeasure, err)
		c.log.LogMeasure(target, 0, err)
		return 0, err
	}
	c.stage = StageMeasured
	c.log.LogMeasure(target, p, nil)

	return p, nil
}

// Distribution returns the probability of every basis state, in basis order.
func (c *Circuit) Distribution() []float64 {
	amps := c.state.Amplitudes()
	out := make([]float64, len(amps))
	for i, a := range amps {
		m := cmplx.Abs(a)
		out[i] = m * m
	}

	return out
}

// Run performs H, Grover(target) and Measure(target) on a fresh circuit.
func (c *Circuit) Run(target int) (Result, error) {
	if err := c.H(); err != nil {
		return Result{}, err
	}
	n, err := c.Grover(target)
	if err != nil {
		return Result{}, err
	}
	p, err := c.Measure(target)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Qubits:      c.register.Size(),
		States:      c.register.States(),
		Target:      target,
		Iterations:  n,
		Probability: p,
		Trace:       c.Trace(),
	}, nil
}
