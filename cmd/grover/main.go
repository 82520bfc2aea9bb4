// Package main is the grover command: it runs Grover's search for one basis
// state of a register and prints a short report.
//
//	grover [-backend dense|sparse] [-trace] [-v] [-log-format text|json] <register-size> <target-state>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/matrix"
	"github.com/katalvlaran/qsim/tensor"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Log formats accepted by -log-format.
const (
	logText = "text"
	logJSON = "json"
)

// barWidth is the width of a full-probability bar in the trace table.
const barWidth = 30

type config struct {
	size    int
	target  int
	kind    matrix.Kind
	trace     bool
	verbose   bool
	logFormat string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, runs the search and writes the report; it returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, errorStyle.Render("usage error:"), err)
		}
		return exitUsage
	}

	logger := circuit.NoopLogger()
	if cfg.verbose {
		logger = newLogger(cfg.logFormat, stderr)
	}
	opts := []circuit.Option{circuit.WithKind(cfg.kind), circuit.WithLogger(logger)}
	if cfg.trace {
		opts = append(opts, circuit.WithTrace())
	}

	c, err := circuit.New(cfg.size, opts...)
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render("error:"), err)
		return exitError
	}
	fmt.Fprintln(stdout, titleStyle.Render(fmt.Sprintf(
		"I'm looking for the %d state (needle) in the %d possible [0 - %d] states (haystack)",
		cfg.target, c.Register().States(), c.Register().States()-1)))

	res, err := c.Run(cfg.target)
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render("error:"), err)
		return exitError
	}
	fmt.Fprintln(stdout, render(res, cfg))

	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("grover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	backend := fs.String("backend", matrix.DefaultKind.String(), "storage backend: dense or sparse")
	trace := fs.Bool("trace", false, "print the target probability after every iteration")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	logFormat := fs.String("log-format", logText, "debug log format with -v: text or json")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: grover [flags] <register-size> <target-state>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return config{}, fmt.Errorf("want 2 positional arguments, got %d", fs.NArg())
	}

	kind, err := matrix.ParseKind(*backend)
	if err != nil {
		return config{}, err
	}
	if *logFormat != logText && *logFormat != logJSON {
		return config{}, fmt.Errorf("log format %q: want %s or %s", *logFormat, logText, logJSON)
	}
	size, err := strconv.Atoi(fs.Arg(0))
	if err != nil || size < 1 || size > tensor.MaxOperatorQubits {
		return config{}, fmt.Errorf("register size %q: want an integer in [1, %d]", fs.Arg(0), tensor.MaxOperatorQubits)
	}
	target, err := strconv.Atoi(fs.Arg(1))
	if err != nil || target < 0 || target >= 1<<size {
		return config{}, fmt.Errorf("target state %q: want an integer in [0, %d]", fs.Arg(1), 1<<size-1)
	}

	return config{size: size, target: target, kind: kind, trace: *trace, verbose: *verbose, logFormat: *logFormat}, nil
}

// newLogger returns a debug-level logger writing to w in the given format.
func newLogger(format string, w io.Writer) *circuit.Logger {
	if format == logJSON {
		return circuit.NewJSONLogger(w, slog.LevelDebug)
	}

	return circuit.NewTextLogger(w, slog.LevelDebug)
}

// render formats the result box and, when tracing, the iteration table.
func render(res circuit.Result, cfg config) string {
	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-12s", label)) + valueStyle.Render(value)
	}
	lines := []string{
		row("register", fmt.Sprintf("%d qubits, %d states", res.Qubits, res.States)),
		row("backend", cfg.kind.String()),
		row("target", fmt.Sprintf("%d |%s⟩", res.Target, tensor.BasisString(res.Target, res.Qubits))),
		row("iterations", strconv.Itoa(res.Iterations)),
		row("probability", fmt.Sprintf("%.4f", res.Probability)),
	}
	if len(res.Trace) > 0 {
		lines = append(lines, "", dimStyle.Render("iteration  probability"))
		for _, s := range res.Trace {
			n := int(s.Probability*barWidth + 0.5)
			lines = append(lines, fmt.Sprintf("%9d  %.4f %s",
				s.Iteration, s.Probability, barStyle.Render(strings.Repeat("█", n))))
		}
	}

	return reportStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
