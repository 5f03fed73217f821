package platform

import (
	"fmt"
	"strings"

	"bootstrap-machine/internal/logger"
	"bootstrap-machine/internal/system"
)

// The one platform this tool provisions: a systemd-based Manjaro install.
// Anything else aborts the run before the first action executes.
const (
	serviceControl = "systemctl"
	distroTool     = "lsb_release"
	distroID       = "ManjaroLinux"
)

// UnsupportedPlatformError reports a host that is not the supported target.
type UnsupportedPlatformError struct {
	Reason string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.Reason)
}

// Check verifies the host before any provisioning side effect happens:
// the init system's control tool must be installed, and the distribution
// identification tool must be installed and report the supported target.
// There are no retries; a failed check terminates the whole run.
func Check(run system.Runner) error {
	if _, err := run.LookPath(serviceControl); err != nil {
		return &UnsupportedPlatformError{
			Reason: fmt.Sprintf("%s not found, systemd is required", serviceControl),
		}
	}

	if _, err := run.LookPath(distroTool); err != nil {
		return &UnsupportedPlatformError{
			Reason: fmt.Sprintf("%s not found, cannot identify the distribution", distroTool),
		}
	}

	out, err := run.Run(distroTool, "-si")
	if err != nil {
		return &UnsupportedPlatformError{
			Reason: fmt.Sprintf("%s -si failed: %v", distroTool, err),
		}
	}

	id := strings.TrimSpace(string(out))
	logger.Debug("[DEBUG] Host reports distribution %q\n", id)
	if id != distroID {
		return &UnsupportedPlatformError{
			Reason: fmt.Sprintf("distribution %q is not %s", id, distroID),
		}
	}

	logger.Info("[INFO] Platform check passed: %s on systemd\n", distroID)
	return nil
}
