package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"bootstrap-machine/internal/logger"
)

// repoCliPath is the fixed install location of the GitHub CLI binary.
const repoCliPath = "/usr/local/bin/gh"

// EnsureRepoCli installs the pinned GitHub CLI release: download the
// tarball, extract it, and place the binary at its fixed path. Presence of
// the binary at that path is the whole probe; version drift is handled by
// bumping the pin and removing the binary, not by this tool.
type EnsureRepoCli struct{}

func (*EnsureRepoCli) Name() string { return "repo-cli" }

func (*EnsureRepoCli) Run(ctx *Context) error {
	if _, err := ctx.Fs.Stat(repoCliPath); err == nil {
		logger.Info("[INFO] gh already installed at %s. Skipping.\n", repoCliPath)
		return nil
	}

	version := ctx.Config.Get("GH_VERSION")
	if version == "" {
		return fmt.Errorf("GH_VERSION is not pinned in the versions file")
	}

	archive := fmt.Sprintf("gh_%s_linux_amd64.tar.gz", version)
	url := fmt.Sprintf("https://github.com/cli/cli/releases/download/v%s/%s", version, archive)
	tmpDir := afero.GetTempDir(ctx.Fs, "bootstrap-machine")
	tmpArchive := filepath.Join(tmpDir, archive)

	logger.Info("[INFO] Downloading gh %s...\n", version)
	if err := download(ctx.Fs, url, tmpArchive); err != nil {
		return fmt.Errorf("gh download failed: %w", err)
	}

	extracted, err := ExtractArchive(ctx.Fs, tmpArchive, tmpDir)
	if err != nil {
		return fmt.Errorf("gh archive extraction failed: %w", err)
	}

	// Release tarballs place the binary under <top>/bin/gh.
	binary := filepath.Join(extracted, "bin", "gh")
	if err := installBinary(ctx, binary, repoCliPath); err != nil {
		return fmt.Errorf("gh install failed: %w", err)
	}

	logger.Info("[INFO] Installed gh %s at %s\n", version, repoCliPath)
	return nil
}

// installBinary places src at dst with executable permissions. Elevated
// privileges are used only when the destination is not writable directly.
func installBinary(ctx *Context, src, dst string) error {
	err := copyFile(ctx.Fs, src, dst, 0755)
	if err == nil {
		return nil
	}
	if !os.IsPermission(err) {
		return err
	}

	logger.Debug("[DEBUG] %s not writable, installing with sudo\n", filepath.Dir(dst))
	if out, serr := ctx.Run.Sudo("install", "-m", "0755", src, dst); serr != nil {
		return fmt.Errorf("%v\nOutput: %s", serr, out)
	}
	return nil
}
