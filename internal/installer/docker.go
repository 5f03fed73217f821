package installer

import (
	"fmt"
	"strings"

	"bootstrap-machine/internal/logger"
)

// composePath is the fixed install location of the docker-compose binary.
const composePath = "/usr/local/bin/docker-compose"

// EnsureContainerRuntime installs docker, reconciles the docker-compose
// binary against the pinned version, and makes sure the daemon is enabled
// and running. Compose is only reinstalled on a version mismatch; removing
// the outdated binary is best-effort since the download overwrites it anyway.
type EnsureContainerRuntime struct{}

func (*EnsureContainerRuntime) Name() string { return "container-runtime" }

func (*EnsureContainerRuntime) Run(ctx *Context) error {
	pinned := ctx.Config.Get("COMPOSE_VERSION")
	if pinned == "" {
		return fmt.Errorf("COMPOSE_VERSION is not pinned in the versions file")
	}

	if path, err := ctx.Run.LookPath("docker"); err == nil {
		logger.Info("[INFO] docker already installed at %s. Skipping install.\n", path)
	} else {
		logger.Info("[INFO] Installing docker...\n")
		out, err := ctx.Run.Sudo("pacman", "-S", "--noconfirm", "--needed", "docker")
		if err != nil {
			return fmt.Errorf("docker install failed: %v\nOutput: %s", err, out)
		}
		logger.Info("[INFO] Installed docker\n")
	}

	if err := ensureCompose(ctx, pinned); err != nil {
		return err
	}

	return ensureDaemon(ctx)
}

// ensureCompose installs the pinned docker-compose release binary, replacing
// an installed binary only when its reported version differs from the pin.
func ensureCompose(ctx *Context, pinned string) error {
	if path, err := ctx.Run.LookPath("docker-compose"); err == nil {
		out, verr := ctx.Run.Run("docker-compose", "version", "--short")
		installed := strings.TrimSpace(string(out))
		if verr == nil && installed == pinned {
			logger.Info("[INFO] docker-compose %s is current. Skipping.\n", installed)
			return nil
		}

		logger.Info("[INFO] docker-compose %q does not match pin %s. Upgrading...\n", installed, pinned)
		if err := ctx.Fs.Remove(path); err != nil {
			// The download below overwrites the binary regardless.
			logger.Warn("[WARN] Could not remove outdated docker-compose at %s: %v\n", path, err)
		}
	} else {
		logger.Info("[INFO] Installing docker-compose %s...\n", pinned)
	}

	url := fmt.Sprintf("https://github.com/docker/compose/releases/download/%s/docker-compose-Linux-x86_64", pinned)
	if err := download(ctx.Fs, url, composePath); err != nil {
		return fmt.Errorf("docker-compose download failed: %w", err)
	}
	if err := ctx.Fs.Chmod(composePath, 0755); err != nil {
		return fmt.Errorf("could not mark %s executable: %w", composePath, err)
	}

	logger.Info("[INFO] Installed docker-compose %s\n", pinned)
	return nil
}

// ensureDaemon enables and starts the docker service when it is not already.
func ensureDaemon(ctx *Context) error {
	// systemctl exits non-zero for "disabled"/"inactive"; the output is the
	// answer either way.
	out, _ := ctx.Run.Run("systemctl", "is-enabled", "docker")
	if strings.TrimSpace(string(out)) != "enabled" {
		logger.Info("[INFO] Enabling docker service...\n")
		if out, err := ctx.Run.Sudo("systemctl", "enable", "docker"); err != nil {
			return fmt.Errorf("could not enable docker service: %v\nOutput: %s", err, out)
		}
	}

	out, _ = ctx.Run.Run("systemctl", "is-active", "docker")
	if strings.TrimSpace(string(out)) != "active" {
		logger.Info("[INFO] Starting docker service...\n")
		if out, err := ctx.Run.Sudo("systemctl", "start", "docker"); err != nil {
			return fmt.Errorf("could not start docker service: %v\nOutput: %s", err, out)
		}
	}

	logger.Info("[INFO] docker service is enabled and running\n")
	return nil
}
