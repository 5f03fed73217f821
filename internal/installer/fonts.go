package installer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"bootstrap-machine/internal/logger"
)

// EnsurePatchedFonts installs the configured nerd-font family into the
// user's font directory. Any existing font file matching the family name
// counts as installed; the action never re-downloads over it.
type EnsurePatchedFonts struct{}

func (*EnsurePatchedFonts) Name() string { return "patched-fonts" }

func (*EnsurePatchedFonts) Run(ctx *Context) error {
	family := ctx.Config.GetDefault("FONT_FAMILY", "JetBrainsMono")
	fontsDir := filepath.Join(ctx.Home, ".local", "share", "fonts")

	if fontInstalled(ctx.Fs, fontsDir, family) {
		logger.Info("[INFO] %s fonts already present in %s. Skipping.\n", family, fontsDir)
		return nil
	}

	if err := ctx.Fs.MkdirAll(fontsDir, 0755); err != nil {
		return fmt.Errorf("cannot create font directory %s: %w", fontsDir, err)
	}

	version := ctx.Config.GetDefault("FONT_VERSION", "3.2.1")
	archive := family + ".tar.xz"
	url := fmt.Sprintf("https://github.com/ryanoasis/nerd-fonts/releases/download/v%s/%s", version, archive)
	tmpArchive := filepath.Join(afero.GetTempDir(ctx.Fs, "bootstrap-machine"), archive)

	logger.Info("[INFO] Downloading %s nerd font v%s...\n", family, version)
	if err := download(ctx.Fs, url, tmpArchive); err != nil {
		return fmt.Errorf("font download failed: %w", err)
	}

	// Font archives extract flat: the font files land directly in the
	// destination directory.
	if _, err := ExtractArchive(ctx.Fs, tmpArchive, fontsDir); err != nil {
		return fmt.Errorf("font extraction failed: %w", err)
	}
	logger.Info("[INFO] Installed %s fonts into %s\n", family, fontsDir)

	if out, err := ctx.Run.Run("fc-cache", "-f"); err != nil {
		return Warningf("font cache refresh failed: %v\nOutput: %s", err, out)
	}
	return nil
}

// fontInstalled reports whether any file under dir matches the font family.
func fontInstalled(fs afero.Fs, dir, family string) bool {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), family) {
			return true
		}
	}
	return false
}
