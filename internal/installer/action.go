package installer

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/system"
)

// Action is one idempotent provisioning step. Implementations probe the host
// first and only act when something is absent or mismatched, so any action
// can be re-run safely. Actions carry no dependency edges; their relative
// order in Catalogue is the only ordering contract.
type Action interface {
	// Name is the action's unique, stable identifier, used in logs and reports.
	Name() string

	// Run performs the action against the host described by ctx. A nil
	// return means success. A Warning-wrapped error is logged and the
	// catalogue continues; any other error is fatal and aborts the run.
	Run(ctx *Context) error
}

// Context carries the collaborators an action needs: the loaded settings,
// the command runner, the filesystem, and the user's home directory. Passing
// it explicitly (rather than reading globals or the process environment)
// keeps every action testable against fakes.
type Context struct {
	Config *config.Config
	Run    system.Runner
	Fs     afero.Fs
	Home   string
}

// NewContext wires a Context against the real host: os/exec commands carry
// the configuration as an environment overlay, and file operations hit the
// real filesystem.
func NewContext(cfg *config.Config) (*Context, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return &Context{
		Config: cfg,
		Run:    system.NewExecRunner(cfg.Environ(nil)),
		Fs:     afero.NewOsFs(),
		Home:   home,
	}, nil
}

// warningError marks an action failure as non-fatal. The step runner logs
// it and moves on to the next action.
type warningError struct {
	err error
}

func (w *warningError) Error() string { return w.err.Error() }

func (w *warningError) Unwrap() error { return w.err }

// Warning wraps an error as a non-fatal action failure.
func Warning(err error) error {
	if err == nil {
		return nil
	}
	return &warningError{err: err}
}

// Warningf builds a non-fatal action failure from a format string.
func Warningf(format string, a ...any) error {
	return &warningError{err: fmt.Errorf(format, a...)}
}

// IsWarning reports whether an action error was classified non-fatal.
func IsWarning(err error) bool {
	var w *warningError
	return errors.As(err, &w)
}

// Catalogue returns the fixed, ordered provisioning catalogue. Order
// matters: later actions assume the tools earlier ones installed (the diff
// tool is installed through the package manager, the compose binary check
// needs docker, and so on).
func Catalogue() []Action {
	return []Action{
		&EnsurePackageManager{},
		&EnsureDiffTool{},
		&ConfigureVersionControl{},
		&EnsureContainerRuntime{},
		&EnsureRepoCli{},
		&InstallAliases{},
		&EnsureInteractiveShell{},
		&EnsurePatchedFonts{},
		&CopyLocalConfigurations{},
	}
}
