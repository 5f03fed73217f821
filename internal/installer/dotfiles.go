package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"bootstrap-machine/internal/logger"
)

// CopyLocalConfigurations copies the bundled configuration tree into the
// user's config directory, overwriting destination files unconditionally.
// Unlike the rest of the catalogue this action does work on every run; it is
// convergent rather than no-op, always reproducing the same destination.
type CopyLocalConfigurations struct{}

func (*CopyLocalConfigurations) Name() string { return "local-configs" }

func (*CopyLocalConfigurations) Run(ctx *Context) error {
	src := ctx.Config.GetDefault("CONFIGS_DIR", "config")
	dest := filepath.Join(ctx.Home, ".config")

	if info, err := ctx.Fs.Stat(src); err != nil || !info.IsDir() {
		return Warningf("bundled configuration tree %s not found, nothing copied", src)
	}

	copied := 0
	err := afero.Walk(ctx.Fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if info.IsDir() {
			return ctx.Fs.MkdirAll(target, 0755)
		}
		if err := copyFile(ctx.Fs, path, target, info.Mode().Perm()); err != nil {
			return err
		}
		logger.Debug("[DEBUG] Copied %s to %s\n", path, target)
		copied++
		return nil
	})
	if err != nil {
		return fmt.Errorf("copying %s into %s failed: %w", src, dest, err)
	}

	logger.Info("[INFO] Copied %d configuration files into %s\n", copied, dest)
	return nil
}
