// Package bindexec runs the nameserver's own tooling: the config and
// zone checkers after a write, and the control client to pick changes
// up. Command failures carry the tool's exit code and output verbatim
// so callers can surface them unmodified.
package bindexec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Result captures one tool invocation.
type Result struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Output returns stderr, falling back to stdout, trimmed. Matches what
// the checker tools actually print their diagnostics to.
func (r Result) Output() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}

// ValidationError reports a failed named-checkconf or named-checkzone
// run. The artifact that failed validation stays on disk.
type ValidationError struct {
	Tool   string
	Result Result
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Tool, e.Result.Output())
}

// ReloadError reports a failed rndc invocation: the artifact validated
// but the running nameserver did not pick it up.
type ReloadError struct {
	Command string
	Result  Result
}

func (e *ReloadError) Error() string {
	return fmt.Sprintf("rndc %s failed: %s", e.Command, e.Result.Output())
}

// Runner shells out to the configured tool binaries.
type Runner struct {
	// CheckConfPath, CheckZonePath and RndcPath are the tool binaries,
	// normally /usr/bin/named-checkconf, /usr/bin/named-checkzone and
	// /usr/sbin/rndc.
	CheckConfPath string
	CheckZonePath string
	RndcPath      string

	// NamedConfPath is the root config handed to named-checkconf.
	NamedConfPath string

	Logger *slog.Logger
}

func (r *Runner) run(ctx context.Context, bin string, args ...string) (Result, error) {
	var stdout, stderr strings.Builder
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The binary could not be started at all.
			return res, fmt.Errorf("run %s: %w", bin, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}

	if r.Logger != nil {
		r.Logger.DebugContext(ctx, "ran nameserver tool",
			"bin", bin, "args", args, "exit_code", res.ExitCode)
	}
	return res, nil
}

// CheckConf validates the full nameserver configuration.
func (r *Runner) CheckConf(ctx context.Context) error {
	res, err := r.run(ctx, r.CheckConfPath, r.NamedConfPath)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &ValidationError{Tool: "named-checkconf", Result: res}
	}
	return nil
}

// CheckZone validates a single zone record file.
func (r *Runner) CheckZone(ctx context.Context, zone, path string) error {
	res, err := r.run(ctx, r.CheckZonePath, strings.TrimSuffix(zone, "."), path)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &ValidationError{Tool: "named-checkzone", Result: res}
	}
	return nil
}

// ReloadZone asks the running nameserver to reload one zone.
func (r *Runner) ReloadZone(ctx context.Context, zone string) error {
	res, err := r.run(ctx, r.RndcPath, "reload", strings.TrimSuffix(zone, "."))
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &ReloadError{Command: "reload", Result: res}
	}
	return nil
}

// Reconfig asks the running nameserver to re-read its configuration
// and pick up new or removed zones.
func (r *Runner) Reconfig(ctx context.Context) error {
	res, err := r.run(ctx, r.RndcPath, "reconfig")
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &ReloadError{Command: "reconfig", Result: res}
	}
	return nil
}
