package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/katalvlaran/fcnn/matrix"
)

// timing collects run durations of one operation.
type timing struct {
	name string
	runs []time.Duration
}

// measure runs fn n times and records each duration.
func measure(name string, n int, fn func() error) (timing, error) {
	t := timing{name: name, runs: make([]time.Duration, 0, n)}
	for i := 0; i < n; i++ {
		start := time.Now()
		if err := fn(); err != nil {
			return t, fmt.Errorf("%s: %w", name, err)
		}
		t.runs = append(t.runs, time.Since(start))
	}

	return t, nil
}

// stats returns min, max and mean in microseconds.
func (t timing) stats() (lo, hi, avg float64) {
	if len(t.runs) == 0 {
		return 0, 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	var sum float64
	for _, d := range t.runs {
		us := float64(d) / float64(time.Microsecond)
		lo, hi = math.Min(lo, us), math.Max(hi, us)
		sum += us
	}

	return lo, hi, sum / float64(len(t.runs))
}

func runMatrix(w io.Writer, rows, cols, runs int) error {
	if runs <= 0 {
		return fmt.Errorf("runs must be > 0, got %d", runs)
	}
	a, err := matrix.NewDense(rows, cols)
	if err != nil {
		return err
	}
	b, err := matrix.NewDense(cols, rows)
	if err != nil {
		return err
	}
	a.Randomize()
	b.Randomize()
	x := make([]float64, cols)
	for i := range x {
		x[i] = 1
	}

	ops := []struct {
		name string
		fn   func() error
	}{
		{"NewDense", func() error { _, err := matrix.NewDense(rows, cols); return err }},
		{"Randomize", func() error { a.Randomize(); return nil }},
		{"Mul", func() error { _, err := matrix.Mul(a, b); return err }},
		{"MatVec", func() error { _, err := matrix.MatVec(a, x); return err }},
		{"Hadamard", func() error { _, err := matrix.Hadamard(a, a); return err }},
	}

	fmt.Fprintf(w, "matrix %dx%d, %d runs (µs)\n", rows, cols, runs)
	fmt.Fprintf(w, "%-10s %12s %12s %12s\n", "op", "min", "max", "avg")
	for _, op := range ops {
		t, err := measure(op.name, runs, op.fn)
		if err != nil {
			return err
		}
		lo, hi, avg := t.stats()
		fmt.Fprintf(w, "%-10s %12.1f %12.1f %12.1f\n", t.name, lo, hi, avg)
	}

	return nil
}
