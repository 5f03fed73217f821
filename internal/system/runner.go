package system

import (
	"os"
	"os/exec"
	"strings"

	"bootstrap-machine/internal/logger"
)

// Runner is the single seam between the provisioning actions and the host.
// Actions probe through LookPath and act through Run/Sudo; tests substitute
// a recording fake so no command ever reaches a real machine.
type Runner interface {
	// LookPath reports the absolute path of an executable on the search
	// path, or an error when the tool is not installed.
	LookPath(name string) (string, error)

	// Run executes a command and returns its combined stdout/stderr.
	// It blocks until the underlying tool returns; there is deliberately
	// no timeout, matching the rest of the sequential design.
	Run(name string, args ...string) ([]byte, error)

	// Sudo executes a command with elevated privileges.
	Sudo(name string, args ...string) ([]byte, error)
}

// ExecRunner is the real Runner backed by os/exec. Every spawned command
// receives the run's configuration as an environment overlay on top of the
// parent environment; the tool's own process environment is never mutated.
type ExecRunner struct {
	// Env is the complete child environment. When nil the child inherits
	// the parent environment unchanged.
	Env []string
}

// NewExecRunner builds an ExecRunner whose children see the parent
// environment plus the given overlay pairs (KEY=value).
func NewExecRunner(overlay []string) *ExecRunner {
	if len(overlay) == 0 {
		return &ExecRunner{}
	}
	return &ExecRunner{Env: append(os.Environ(), overlay...)}
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *ExecRunner) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = r.Env
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	return cmd.CombinedOutput()
}

func (r *ExecRunner) Sudo(name string, args ...string) ([]byte, error) {
	return r.Run("sudo", append([]string{name}, args...)...)
}
