// SPDX-License-Identifier: MIT

package circuit

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with circuit-specific helpers.
// This keeps field names consistent across the driver.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// WithQubits adds a qubits field to the logger.
func (l *Logger) WithQubits(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("qubits", k),
	}
}

// LogHadamard logs the initial superposition step.
func (l *Logger) LogHadamard(states int) {
	l.Debug("hadamard applied", "states", states)
}

// LogOperatorBuilt logs construction of a Grover operator.
func (l *Logger) LogOperatorBuilt(target int, kind string, nnz int) {
	l.Debug("grover operator built",
		"target", target,
		"backend", kind,
		"nnz", nnz,
	)
}

// LogIteration logs one Grover iteration. probability is negative when
// tracing is off and the projection was not computed.
func (l *Logger) LogIteration(iteration, total int, probability float64) {
	if probability < 0 {
		l.Debug("grover iteration", "iteration", iteration, "of", total)
		return
	}
	l.Debug("grover iteration",
		"iteration", iteration,
		"of", total,
		"probability", probability,
	)
}

// LogMeasure logs a measurement.
func (l *Logger) LogMeasure(target int, probability float64, err error) {
	if err != nil {
		l.Error("measure failed",
			"target", target,
			"error", err,
		)
		return
	}
	l.Info("measured",
		"target", target,
		"probability", probability,
	)
}
