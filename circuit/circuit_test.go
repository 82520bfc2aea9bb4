// SPDX-License-Identifier: MIT
package circuit_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/matrix"
	"github.com/katalvlaran/qsim/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kinds = []matrix.Kind{matrix.KindDense, matrix.KindSparse}

func TestOptimalIterations(t *testing.T) {
	tests := []struct{ qubits, want int }{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 3},
		{5, 4},
		{6, 6},
		{10, 25},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, circuit.OptimalIterations(tc.qubits), "qubits=%d", tc.qubits)
	}
}

func TestOptimalIterations_OutOfRange(t *testing.T) {
	assert.Equal(t, 0, circuit.OptimalIterations(0))
	assert.Equal(t, 0, circuit.OptimalIterations(-3))

	capped := circuit.OptimalIterations(tensor.MaxQubits)
	assert.Positive(t, capped)
	assert.Equal(t, capped, circuit.OptimalIterations(tensor.MaxQubits+1))
	assert.Equal(t, capped, circuit.OptimalIterations(64))
	assert.Equal(t, capped, circuit.OptimalIterations(200))
}

func TestGrover_ThreeQubitsTargetFive(t *testing.T) {
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			c, err := circuit.New(3, circuit.WithKind(k))
			require.NoError(t, err)
			require.Equal(t, circuit.StageConstructed, c.Stage())

			require.NoError(t, c.H())
			require.Equal(t, circuit.StageHadamard, c.Stage())

			n, err := c.Grover(5)
			require.NoError(t, err)
			require.Equal(t, 2, n)
			require.Equal(t, circuit.StageIterated, c.Stage())

			p, err := c.Measure(5)
			require.NoError(t, err)
			require.InDelta(t, 0.9453125, p, 1e-9)
			require.Greater(t, p, 1.0/8)
			require.Equal(t, circuit.StageMeasured, c.Stage())
			require.Equal(t, k, c.State().Kind())
		})
	}
}

func TestRun_AllTargetsAndTrace(t *testing.T) {
	for _, k := range kinds {
		for target := 0; target < 8; target++ {
			t.Run(fmt.Sprintf("%s/target=%d", k, target), func(t *testing.T) {
				c, err := circuit.New(3, circuit.WithKind(k), circuit.WithTrace())
				require.NoError(t, err)
				res, err := c.Run(target)
				require.NoError(t, err)

				require.Equal(t, 3, res.Qubits)
				require.Equal(t, 8, res.States)
				require.Equal(t, target, res.Target)
				require.Equal(t, 2, res.Iterations)
				require.InDelta(t, 0.9453125, res.Probability, 1e-9)
				require.Len(t, res.Trace, 2)
				require.InDelta(t, 0.78125, res.Trace[0].Probability, 1e-9)
				require.Equal(t, 2, res.Trace[1].Iteration)
				require.InDelta(t, res.Probability, res.Trace[1].Probability, 1e-12)
			})
		}
	}
}

func TestDistribution_SumsToOne(t *testing.T) {
	c, err := circuit.New(4)
	require.NoError(t, err)
	require.NoError(t, c.H())
	for _, p := range c.Distribution() {
		require.InDelta(t, 1.0/16, p, 1e-12)
	}
	_, err = c.Grover(9)
	require.NoError(t, err)

	dist := c.Distribution()
	sum := 0.0
	best := 0
	for i, p := range dist {
		sum += p
		if p > dist[best] {
			best = i
		}
	}
	require.InDelta(t, 1, sum, 1e-9)
	require.Equal(t, 9, best)
}

func TestStageOrder(t *testing.T) {
	c, err := circuit.New(2)
	require.NoError(t, err)

	_, err = c.Grover(1)
	require.ErrorIs(t, err, circuit.ErrInvalidStage)

	// Measure is allowed before anything else and repeatable.
	p, err := c.Measure(0)
	require.NoError(t, err)
	require.InDelta(t, 1, p, 1e-12)
	require.Equal(t, circuit.StageMeasured, c.Stage())

	require.ErrorIs(t, c.H(), circuit.ErrInvalidStage)

	c, err = circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, c.H())
	require.ErrorIs(t, c.H(), circuit.ErrInvalidStage)
	_, err = c.Grover(3)
	require.NoError(t, err)
	_, err = c.Grover(3)
	require.ErrorIs(t, err, circuit.ErrInvalidStage)

	_, err = c.Run(3)
	require.ErrorIs(t, err, circuit.ErrInvalidStage)
}

func TestNew_RejectsUnbuildableRegisters(t *testing.T) {
	for _, size := range []int{tensor.MaxOperatorQubits + 1, 16, tensor.MaxQubits} {
		_, err := circuit.New(size)
		require.ErrorIsf(t, err, tensor.ErrInvalidArgument, "size=%d", size)
		_, err = circuit.NewRegister(size)
		require.ErrorIsf(t, err, tensor.ErrInvalidArgument, "size=%d", size)
	}

	c, err := circuit.New(tensor.MaxOperatorQubits, circuit.WithKind(matrix.KindSparse))
	require.NoError(t, err)
	require.Equal(t, tensor.MaxOperatorQubits, c.Size())
}

func TestInvalidTargets(t *testing.T) {
	_, err := circuit.New(0)
	require.ErrorIs(t, err, tensor.ErrInvalidArgument)

	c, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, c.H())
	_, err = c.Grover(4)
	require.ErrorIs(t, err, tensor.ErrInvalidArgument)
	require.Equal(t, circuit.StageHadamard, c.Stage()) // unchanged on error
	_, err = c.Measure(-1)
	require.ErrorIs(t, err, tensor.ErrInvalidArgument)
}

func TestGroverOperator_CachedAndUnitary(t *testing.T) {
	for _, k := range kinds {
		c, err := circuit.New(3, circuit.WithKind(k))
		require.NoError(t, err)
		g1, err := c.GroverOperator(5)
		require.NoError(t, err)
		g2, err := c.GroverOperator(5)
		require.NoError(t, err)
		require.Same(t, g1, g2)
		require.True(t, g1.IsUnitary())
		require.Equal(t, 8, g1.Dimension())
	}
}

// TestGroverOperator_OracleFirst compares the cached operator with the four
// gates applied one at a time in the order oracle, H^k, reflection, H^k.
func TestGroverOperator_OracleFirst(t *testing.T) {
	c, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, c.H())
	start := c.State()

	g, err := c.GroverOperator(2)
	require.NoError(t, err)
	want, err := start.Apply(g)
	require.NoError(t, err)

	hn, err := tensor.NewOperator(2, []complex128{1, 1, 1, -1})
	require.NoError(t, err)
	hn, err = hn.Scale(complex(1/1.4142135623730951, 0))
	require.NoError(t, err)
	hn, err = hn.Power(2)
	require.NoError(t, err)
	oracle, err := tensor.NewOperator(4, []complex128{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, -1, 0, 0, 0, 0, 1})
	require.NoError(t, err)
	refl, err := tensor.NewOperator(4, []complex128{1, 0, 0, 0, 0, -1, 0, 0, 0, 0, -1, 0, 0, 0, 0, -1})
	require.NoError(t, err)

	got := start
	for _, op := range []*tensor.Operator{oracle, hn, refl, hn} {
		got, err = got.Apply(op)
		require.NoError(t, err)
	}
	ok, err := want.Equal(got)
	require.NoError(t, err)
	require.True(t, ok)

	// Two qubits: one iteration finds the target exactly.
	p, err := got.Probability(mustBasis(t, 2, 2))
	require.NoError(t, err)
	require.InDelta(t, 1, p, 1e-12)
}

func mustBasis(t *testing.T, value, size int) *tensor.Vector {
	t.Helper()
	v, err := tensor.MakeStateVector(value, size)
	require.NoError(t, err)

	return v
}

func TestRegister(t *testing.T) {
	r, err := circuit.NewRegister(4)
	require.NoError(t, err)
	require.Equal(t, 4, r.Size())
	require.Equal(t, 16, r.States())
	require.Len(t, r.Qubits(), 4)
	require.Equal(t, "Register(4)", r.String())

	q, err := r.Qubit(-1)
	require.NoError(t, err)
	require.Equal(t, 3, q.Index)
	require.Same(t, r, q.Register)

	_, err = r.Qubit(4)
	require.ErrorIs(t, err, circuit.ErrQubitIndex)
	_, err = r.Qubit(-5)
	require.ErrorIs(t, err, circuit.ErrQubitIndex)

	_, err = circuit.NewRegister(0)
	require.ErrorIs(t, err, tensor.ErrInvalidArgument)
}

func TestLogger_RecordsSteps(t *testing.T) {
	var buf bytes.Buffer
	l := circuit.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c, err := circuit.New(2, circuit.WithLogger(l), circuit.WithTrace())
	require.NoError(t, err)
	_, err = c.Run(1)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "hadamard applied")
	assert.Contains(t, out, "grover operator built")
	assert.Contains(t, out, "grover iteration")
	assert.Contains(t, out, "measured")
	assert.Contains(t, out, "qubits=2")
}

func TestLogger_Constructors(t *testing.T) {
	var text, js bytes.Buffer
	circuit.NewTextLogger(&text, slog.LevelDebug).WithQubits(3).LogHadamard(8)
	assert.Contains(t, text.String(), "hadamard applied")
	assert.Contains(t, text.String(), "qubits=3")

	circuit.NewJSONLogger(&js, slog.LevelDebug).WithQubits(3).LogHadamard(8)
	assert.Contains(t, js.String(), `"msg":"hadamard applied"`)
	assert.Contains(t, js.String(), `"qubits":3`)

	var quiet bytes.Buffer
	circuit.NewTextLogger(&quiet, slog.LevelInfo).LogHadamard(8)
	assert.Empty(t, quiet.String())
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { circuit.WithKind(matrix.Kind(7)) })
	require.Panics(t, func() { circuit.WithEpsilon(-1) })
	require.NotPanics(t, func() { circuit.WithLogger(nil) })
}
