package installer

import (
	"fmt"

	"bootstrap-machine/internal/logger"
)

// EnsurePackageManager installs yarn, the base dependency every npm-hosted
// helper later in the catalogue is installed through.
type EnsurePackageManager struct{}

func (*EnsurePackageManager) Name() string { return "package-manager" }

func (*EnsurePackageManager) Run(ctx *Context) error {
	if path, err := ctx.Run.LookPath("yarn"); err == nil {
		logger.Info("[INFO] yarn already installed at %s. Skipping.\n", path)
		return nil
	}

	logger.Info("[INFO] Installing yarn...\n")
	out, err := ctx.Run.Sudo("pacman", "-S", "--noconfirm", "--needed", "yarn")
	if err != nil {
		return fmt.Errorf("yarn install failed: %v\nOutput: %s", err, out)
	}

	logger.Info("[INFO] Installed yarn\n")
	return nil
}
