// Package probe runs external information-source commands and captures
// their text output. A probe either yields text or it is absent; callers
// degrade to placeholder report lines instead of failing.
package probe

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Result is the outcome of one probe. OK is true only when the command
// yielded non-empty text: trimmed stdout when the process exited zero,
// trimmed stderr when it did not. A missing binary, an empty stdout on
// success, and a failure with empty stderr all collapse to the zero Result.
type Result struct {
	OK   bool
	Text string
}

// Runner executes a command and waits for it to finish. Implementations
// apply no retries and no timeout of their own.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// ExecRunner runs commands as child processes with any console window
// suppressed.
type ExecRunner struct{}

func NewExecRunner() *ExecRunner { return &ExecRunner{} }

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) Result {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = hiddenWindowAttr()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	var res Result
	switch {
	case err == nil:
		if s := strings.TrimSpace(stdout.String()); s != "" {
			res = Result{OK: true, Text: s}
		}
	case isExit(err):
		if s := strings.TrimSpace(stderr.String()); s != "" {
			res = Result{OK: true, Text: s}
		}
	}

	hclog.L().Debug("probe", "cmd", name, "args", args, "ok", res.OK)
	return res
}

// isExit distinguishes a process that ran and exited nonzero from one that
// never started (binary not on PATH, spawn failure).
func isExit(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
