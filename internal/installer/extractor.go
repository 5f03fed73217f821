package installer

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/spf13/afero"
	"github.com/xi2/xz" // For reading .xz compressed data

	"bootstrap-machine/internal/logger"
)

// ExtractArchive routes to the appropriate extraction function based on the
// archive type and unpacks it under dest. It returns the path of the
// archive's top-level entry (release tarballs wrap their content in a
// versioned directory; font archives extract flat, in which case the first
// entry is returned).
func ExtractArchive(fs afero.Fs, src, dest string) (string, error) {
	switch {
	case strings.HasSuffix(src, ".zip"):
		logger.Debug("[DEBUG] compression type is zip\n")
		return extractZip(fs, src, dest)
	case strings.HasSuffix(src, ".7z"):
		logger.Debug("[DEBUG] compression type is .7z\n")
		return extract7z(fs, src, dest)
	case strings.HasSuffix(src, ".tar"), strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"),
		strings.HasSuffix(src, ".tar.bz2"), strings.HasSuffix(src, ".tar.xz"):
		logger.Debug("[DEBUG] compression type is .tar.*\n")
		return extractTarArchive(fs, src, dest)
	default:
		return "", fmt.Errorf("unsupported archive format: %s", src)
	}
}

// escapesDest rejects archive member names that would resolve outside the
// extraction directory.
func escapesDest(name string) bool {
	return strings.Contains(name, "..")
}

// extractTarArchive handles tar and compressed tar variants.
func extractTarArchive(fs afero.Fs, src, dest string) (string, error) {
	logger.Debug("[DEBUG] uncompressing %s to %s\n", src, dest)
	f, err := fs.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return "", err
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	var topLevel string

	// Iterate over each entry in the archive.
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break // End of archive
		}
		if err != nil {
			return "", err
		}
		if escapesDest(hdr.Name) {
			return "", fmt.Errorf("archive entry %q escapes the destination", hdr.Name)
		}

		// Capture the top-level entry name. Archive member names always
		// use forward slashes.
		if topLevel == "" {
			topLevel = strings.Split(hdr.Name, "/")[0]
		}

		target := filepath.Join(dest, filepath.FromSlash(hdr.Name))
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := fs.MkdirAll(target, 0755); err != nil {
				return "", err
			}
		case tar.TypeReg:
			if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return "", err
			}
			outFile, err := fs.OpenFile(target, flagOverwrite, hdr.FileInfo().Mode())
			if err != nil {
				return "", err
			}
			if _, err := io.Copy(outFile, tr); err != nil {
				outFile.Close()
				return "", err
			}
			outFile.Close()
		}
	}
	return filepath.Join(dest, topLevel), nil
}

// extractZip extracts a .zip archive.
func extractZip(fs afero.Fs, src, dest string) (string, error) {
	f, err := fs.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := fs.Stat(src)
	if err != nil {
		return "", err
	}
	r, err := zip.NewReader(f, info.Size())
	if err != nil {
		return "", err
	}

	var topLevel string
	for _, zf := range r.File {
		if escapesDest(zf.Name) {
			return "", fmt.Errorf("archive entry %q escapes the destination", zf.Name)
		}
		if topLevel == "" {
			topLevel = strings.Split(zf.Name, "/")[0]
		}
		path := filepath.Join(dest, filepath.FromSlash(zf.Name))
		if zf.FileInfo().IsDir() {
			if err := fs.MkdirAll(path, 0755); err != nil {
				return "", err
			}
			continue
		}
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", err
		}
		outFile, err := fs.OpenFile(path, flagOverwrite, zf.Mode())
		if err != nil {
			return "", err
		}
		rc, err := zf.Open()
		if err != nil {
			outFile.Close()
			return "", err
		}
		_, err = io.Copy(outFile, rc)
		rc.Close()
		outFile.Close()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dest, topLevel), nil
}

// extract7z handles .7z extraction using the sevenzip library.
func extract7z(fs afero.Fs, src, dest string) (string, error) {
	f, err := fs.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := fs.Stat(src)
	if err != nil {
		return "", err
	}
	r, err := sevenzip.NewReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("failed to open 7z archive: %w", err)
	}

	var topLevel string
	for _, zf := range r.File {
		if escapesDest(zf.Name) {
			return "", fmt.Errorf("archive entry %q escapes the destination", zf.Name)
		}
		if topLevel == "" {
			topLevel = strings.Split(zf.Name, "/")[0]
		}
		path := filepath.Join(dest, filepath.FromSlash(zf.Name))
		if zf.FileInfo().IsDir() {
			if err := fs.MkdirAll(path, zf.Mode()); err != nil {
				return "", err
			}
			continue
		}
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", err
		}
		rc, err := zf.Open()
		if err != nil {
			return "", err
		}
		outFile, err := fs.Create(path)
		if err != nil {
			rc.Close()
			return "", err
		}
		_, err = io.Copy(outFile, rc)
		rc.Close()
		outFile.Close()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dest, topLevel), nil
}
