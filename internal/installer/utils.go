package installer

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// flagOverwrite creates or truncates the destination unconditionally.
const flagOverwrite = os.O_WRONLY | os.O_CREATE | os.O_TRUNC

// copyFile copies a single file to dst with the given mode, overwriting any
// existing destination content.
func copyFile(fs afero.Fs, src, dst string, mode os.FileMode) error {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, flagOverwrite, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
