package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/utkarsh5026/membw/bandwidth"
)

func smallFlags(t *testing.T, extra ...string) *Flags {
	t.Helper()
	args := append([]string{
		"-threads=2", "-buffer-elems=64", "-iterations=3", "-skip-mem-check",
	}, extra...)
	return parseFlags(t, args...)
}

func TestSuite_RunsAndWarmups(t *testing.T) {
	obs := &countingObserver{}
	suite := Suite{
		Config: bandwidth.NewConfig(
			bandwidth.WithThreads(2),
			bandwidth.WithBufferElems(16),
			bandwidth.WithIterations(1),
			bandwidth.WithObserver(obs),
		),
		Runs:   3,
		Warmup: 2,
	}

	var starts []int
	suite.OnRunStart = func(run, total int) {
		if total != 3 {
			t.Errorf("expected total 3, got %d", total)
		}
		starts = append(starts, run)
	}

	results, err := suite.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if len(starts) != 3 || starts[0] != 1 || starts[2] != 3 {
		t.Errorf("unexpected run starts %v", starts)
	}
	if obs.finished != 3 {
		t.Errorf("warmups should be silent: expected 3 reported runs, got %d", obs.finished)
	}
}

func TestSuite_StopsOnError(t *testing.T) {
	suite := Suite{
		Config: bandwidth.NewConfig(bandwidth.WithThreads(0), bandwidth.WithObserver(nil)),
		Runs:   2,
	}

	_, err := suite.Run(context.Background())
	if !errors.Is(err, bandwidth.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestExecute_TextFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if err := Execute(context.Background(), smallFlags(t), &stdout, &stderr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{
		"Generating random data...",
		"Generated 0.00 GB of random data.",
		"• Thread 0 dummy: ",
		"• Thread 1 dummy: ",
		"Elapsed time: ",
		"Memory bandwidth: ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	if strings.Index(out, "Generating") > strings.Index(out, "Memory bandwidth") {
		t.Error("generation notice should come before the bandwidth line")
	}
}

func TestExecute_JSONFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer

	f := smallFlags(t, "-output-format=json", "-runs=2")
	if err := Execute(context.Background(), f, &stdout, &stderr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc JSONBenchmarkOutput
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout.String())
	}

	if len(doc.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(doc.Runs))
	}
	if doc.Stats.Runs != 2 {
		t.Errorf("expected stats over 2 runs, got %d", doc.Stats.Runs)
	}
	for _, r := range doc.Runs {
		if r.Threads != 2 || r.BufferElems != 64 || r.Iterations != 3 {
			t.Errorf("unexpected run config %+v", r)
		}
		if len(r.Workers) != 2 {
			t.Errorf("expected 2 workers, got %d", len(r.Workers))
		}
	}
	if doc.Runs[0].Workers[0].Dummy != doc.Runs[1].Workers[0].Dummy {
		t.Error("expected identical dummy values across runs with the same seed")
	}
}

func TestExecute_TableFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer

	f := smallFlags(t, "-output-format=table", "-runs=2", "-progress")
	if err := Execute(context.Background(), f, &stdout, &stderr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{
		"Memory Read Bandwidth Benchmark",
		"Configuration:",
		"PER-THREAD RESULTS",
		"BANDWIDTH ACROSS RUNS",
		"Median:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestExecute_InvalidFlags(t *testing.T) {
	f := smallFlags(t, "-threads=0")

	err := Execute(context.Background(), f, io.Discard, io.Discard)
	if !errors.Is(err, bandwidth.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

type countingObserver struct {
	finished int
}

func (c *countingObserver) GenerationStarted(bandwidth.Config) {}

func (c *countingObserver) GenerationFinished(int64) {}

func (c *countingObserver) PassCompleted(int, int) {}

func (c *countingObserver) WorkerFinished(bandwidth.WorkerResult) {}

func (c *countingObserver) RunFinished(bandwidth.Result) {
	c.finished++
}
