// Package ffmpeg executes external encoder invocations and translates
// their structured progress emission into human-readable status lines.
//
// One blocking call per unit of work: the call returns when the
// subprocess exits, with a structured result carrying the exit error, the
// captured stderr text, and the final progress snapshot. There is no
// retry, no timeout, and no cancellation beyond the caller's context: a
// failed subprocess is terminal for the run.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Result is the outcome of a single subprocess invocation.
type Result struct {
	Stderr   string
	Progress Progress
	Err      error
}

// Failed reports whether the invocation ended in error.
func (r Result) Failed() bool { return r.Err != nil }

// ProgressFunc receives each completed progress batch as it is parsed.
type ProgressFunc func(Progress)

// Run executes bin with args, streaming progress batches from stdout to
// onProgress (which may be nil) and capturing stderr for error reporting.
func Run(ctx context.Context, bin string, args []string, onProgress ProgressFunc) Result {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{Err: fmt.Errorf("%s: %w", bin, err)}
	}
	if err := cmd.Start(); err != nil {
		return Result{Err: fmt.Errorf("%s: %w", bin, err)}
	}

	final := parseProgress(stdout, onProgress)

	err = cmd.Wait()
	if err != nil {
		err = fmt.Errorf("%s: %w", bin, err)
	}
	return Result{
		Stderr:   stderrBuf.String(),
		Progress: final,
		Err:      err,
	}
}

// RunSilent executes bin with args, discarding output. Used for
// invocations that manage their own files and logging (the OCR tool).
func RunSilent(ctx context.Context, bin string, args []string) Result {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	if err != nil {
		err = fmt.Errorf("%s: %w", bin, err)
	}
	return Result{Stderr: stderrBuf.String(), Err: err}
}
