package installer

import (
	"errors"
	"strings"

	"github.com/spf13/afero"

	"bootstrap-machine/internal/config"
)

// fakeRunner records every command and serves canned answers. Commands with
// no canned output or error succeed with empty output, which matches how
// most of the probed tools behave on the happy path.
type fakeRunner struct {
	paths   map[string]string // tool name -> resolved path for LookPath
	outputs map[string]string // "name args..." -> combined output
	errs    map[string]error  // "name args..." -> forced failure
	calls   []string          // every executed command, in order
}

func commandKey(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if path, ok := f.paths[name]; ok {
		return path, nil
	}
	return "", errors.New(name + " not found")
}

func (f *fakeRunner) Run(name string, args ...string) ([]byte, error) {
	key := commandKey(name, args...)
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return []byte(f.outputs[key]), err
	}
	return []byte(f.outputs[key]), nil
}

func (f *fakeRunner) Sudo(name string, args ...string) ([]byte, error) {
	return f.Run("sudo", append([]string{name}, args...)...)
}

// testContext wires a Context against fakes: literal settings, the given
// runner, an in-memory filesystem, and a fixed home directory.
func testContext(values map[string]string, run *fakeRunner) *Context {
	if run.paths == nil {
		run.paths = map[string]string{}
	}
	if run.outputs == nil {
		run.outputs = map[string]string{}
	}
	if run.errs == nil {
		run.errs = map[string]error{}
	}
	return &Context{
		Config: config.New(values),
		Run:    run,
		Fs:     afero.NewMemMapFs(),
		Home:   "/home/dev",
	}
}
