package installer

import (
	"fmt"
	"strings"

	"bootstrap-machine/internal/logger"
)

// diffPager is the pager command wired into git when the user has none
// configured yet.
const diffPager = "diff-so-fancy | less --tabs=4 -RFX"

// EnsureDiffTool installs diff-so-fancy and wires it as git's pager, but
// only when no pager is configured yet: an existing user preference is
// never overwritten.
type EnsureDiffTool struct{}

func (*EnsureDiffTool) Name() string { return "diff-tool" }

func (*EnsureDiffTool) Run(ctx *Context) error {
	if path, err := ctx.Run.LookPath("diff-so-fancy"); err == nil {
		logger.Info("[INFO] diff-so-fancy already installed at %s. Skipping install.\n", path)
	} else {
		logger.Info("[INFO] Installing diff-so-fancy...\n")
		out, err := ctx.Run.Run("yarn", "global", "add", "diff-so-fancy")
		if err != nil {
			return fmt.Errorf("diff-so-fancy install failed: %v\nOutput: %s", err, out)
		}
		logger.Info("[INFO] Installed diff-so-fancy\n")
	}

	// git config exits non-zero when the key is unset; an empty value means
	// the same thing, so either way the pager slot is free.
	out, err := ctx.Run.Run("git", "config", "--global", "core.pager")
	if pager := strings.TrimSpace(string(out)); err == nil && pager != "" {
		logger.Debug("[DEBUG] Existing pager %q preserved\n", pager)
		return nil
	}

	if out, err := ctx.Run.Run("git", "config", "--global", "core.pager", diffPager); err != nil {
		return Warningf("could not set git pager: %v\nOutput: %s", err, out)
	}
	logger.Info("[INFO] Set git pager to diff-so-fancy\n")
	return nil
}
