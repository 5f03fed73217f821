package installer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"bootstrap-machine/internal/logger"
)

// omzInstaller fetches and runs the oh-my-zsh installer script.
const omzInstaller = `sh -c "$(curl -fsSL https://raw.githubusercontent.com/ohmyzsh/ohmyzsh/master/tools/install.sh)" "" --unattended`

// EnsureInteractiveShell installs zsh and oh-my-zsh when missing, then
// switches the configured theme in the user's zshrc. The theme edit only
// rewrites the file when the configured theme differs from the current one.
type EnsureInteractiveShell struct{}

func (*EnsureInteractiveShell) Name() string { return "interactive-shell" }

func (*EnsureInteractiveShell) Run(ctx *Context) error {
	if path, err := ctx.Run.LookPath("zsh"); err == nil {
		logger.Info("[INFO] zsh already installed at %s. Skipping install.\n", path)
	} else {
		logger.Info("[INFO] Installing zsh...\n")
		out, err := ctx.Run.Sudo("pacman", "-S", "--noconfirm", "--needed", "zsh")
		if err != nil {
			return fmt.Errorf("zsh install failed: %v\nOutput: %s", err, out)
		}
		logger.Info("[INFO] Installed zsh\n")
	}

	omzDir := filepath.Join(ctx.Home, ".oh-my-zsh")
	if _, err := ctx.Fs.Stat(omzDir); err == nil {
		logger.Info("[INFO] oh-my-zsh already present at %s. Skipping install.\n", omzDir)
	} else {
		logger.Info("[INFO] Installing oh-my-zsh...\n")
		out, err := ctx.Run.Run("sh", "-c", omzInstaller)
		if err != nil {
			return fmt.Errorf("oh-my-zsh install failed: %v\nOutput: %s", err, out)
		}
		logger.Info("[INFO] Installed oh-my-zsh\n")
	}

	theme := ctx.Config.GetDefault("ZSH_THEME", "agnoster")
	if err := setTheme(ctx, theme); err != nil {
		return Warning(err)
	}
	return nil
}

// setTheme rewrites the ZSH_THEME assignment in the user's zshrc, appending
// one when the file has none. Writing is skipped entirely when the theme is
// already the configured one.
func setTheme(ctx *Context, theme string) error {
	rcPath := filepath.Join(ctx.Home, ".zshrc")
	desired := fmt.Sprintf("ZSH_THEME=%q", theme)

	raw, err := afero.ReadFile(ctx.Fs, rcPath)
	if err != nil {
		return fmt.Errorf("cannot read %s to set theme: %w", rcPath, err)
	}

	lines := strings.Split(string(raw), "\n")
	replaced := false
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "ZSH_THEME=") {
			continue
		}
		if strings.TrimSpace(line) == desired {
			logger.Debug("[DEBUG] Theme already %s. Skipping.\n", theme)
			return nil
		}
		lines[i] = desired
		replaced = true
		break
	}
	if !replaced {
		lines = append(lines, desired)
	}

	if err := afero.WriteFile(ctx.Fs, rcPath, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", rcPath, err)
	}
	logger.Info("[INFO] Set shell theme to %s\n", theme)
	return nil
}
