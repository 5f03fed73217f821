package installer

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZshrc(t *testing.T, ctx *Context, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(ctx.Fs, "/home/dev/.zshrc", []byte(content), 0644))
}

func readZshrc(t *testing.T, ctx *Context) string {
	t.Helper()
	raw, err := afero.ReadFile(ctx.Fs, "/home/dev/.zshrc")
	require.NoError(t, err)
	return string(raw)
}

func shellContext(theme string) (*Context, *fakeRunner) {
	run := &fakeRunner{paths: map[string]string{"zsh": "/usr/bin/zsh"}}
	values := map[string]string{}
	if theme != "" {
		values["zsh_theme"] = theme
	}
	ctx := testContext(values, run)
	return ctx, run
}

func TestEnsureInteractiveShellReplacesTheme(t *testing.T) {
	ctx, run := shellContext("powerlevel10k/powerlevel10k")
	require.NoError(t, ctx.Fs.MkdirAll("/home/dev/.oh-my-zsh", 0755))
	writeZshrc(t, ctx, "export ZSH=$HOME/.oh-my-zsh\nZSH_THEME=\"robbyrussell\"\nplugins=(git)\n")

	require.NoError(t, (&EnsureInteractiveShell{}).Run(ctx))

	content := readZshrc(t, ctx)
	assert.Contains(t, content, "ZSH_THEME=\"powerlevel10k/powerlevel10k\"")
	assert.NotContains(t, content, "robbyrussell")
	assert.Contains(t, content, "plugins=(git)", "unrelated lines untouched")
	assert.Empty(t, run.calls, "nothing to install, nothing executed")
}

func TestEnsureInteractiveShellKeepsMatchingTheme(t *testing.T) {
	ctx, _ := shellContext("agnoster")
	require.NoError(t, ctx.Fs.MkdirAll("/home/dev/.oh-my-zsh", 0755))
	original := "ZSH_THEME=\"agnoster\"\n"
	writeZshrc(t, ctx, original)

	require.NoError(t, (&EnsureInteractiveShell{}).Run(ctx))

	assert.Equal(t, original, readZshrc(t, ctx))
}

func TestEnsureInteractiveShellThemeFailureIsWarning(t *testing.T) {
	// No .zshrc at all: the theme edit cannot apply, but that must not
	// abort the remaining catalogue.
	ctx, _ := shellContext("agnoster")
	require.NoError(t, ctx.Fs.MkdirAll("/home/dev/.oh-my-zsh", 0755))

	err := (&EnsureInteractiveShell{}).Run(ctx)
	require.Error(t, err)
	assert.True(t, IsWarning(err))
}

func TestEnsureInteractiveShellInstallsFramework(t *testing.T) {
	ctx, run := shellContext("")
	writeZshrc(t, ctx, "ZSH_THEME=\"agnoster\"\n")

	require.NoError(t, (&EnsureInteractiveShell{}).Run(ctx))

	require.Len(t, run.calls, 1)
	assert.Contains(t, run.calls[0], "install.sh")
}
