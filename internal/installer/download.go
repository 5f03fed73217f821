package installer

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/afero"

	"bootstrap-machine/internal/logger"
)

// download is the seam the actions fetch release artifacts through. It is a
// variable so tests can substitute a canned fetch instead of the network.
var download = downloadFile

// downloadFile downloads the content located at the specified URL and saves it
// to the destination path. It returns an error if the download or file write
// fails. A transient network failure is not retried; download steps are part
// of actions whose failure policy decides what happens next.
func downloadFile(fs afero.Fs, url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := fs.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close destination file: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}

	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, destPath)
	return nil
}
