package installer

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractZip(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("JetBrainsMonoNerdFont-Regular.ttf")
	require.NoError(t, err)
	_, err = w.Write([]byte("font bytes"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/fonts.zip", buf.Bytes(), 0644))

	_, err = ExtractArchive(fs, "/tmp/fonts.zip", "/fonts")
	require.NoError(t, err)

	raw, err := afero.ReadFile(fs, "/fonts/JetBrainsMonoNerdFont-Regular.ttf")
	require.NoError(t, err)
	assert.Equal(t, "font bytes", string(raw))
}

func TestExtractTarGzReturnsTopLevel(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "gh_2.40.0_linux_amd64/bin/",
		Typeflag: tar.TypeDir,
		Mode:     0755,
	}))
	content := []byte("#!/bin/gh")
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "gh_2.40.0_linux_amd64/bin/gh",
		Typeflag: tar.TypeReg,
		Mode:     0755,
		Size:     int64(len(content)),
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/gh.tar.gz", buf.Bytes(), 0644))

	top, err := ExtractArchive(fs, "/tmp/gh.tar.gz", "/tmp")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/gh_2.40.0_linux_amd64", top)

	raw, err := afero.ReadFile(fs, "/tmp/gh_2.40.0_linux_amd64/bin/gh")
	require.NoError(t, err)
	assert.Equal(t, content, raw)
}

func TestExtractZipRejectsTraversalEntry(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("../outside.sh")
	require.NoError(t, err)
	_, err = w.Write([]byte("echo pwned"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/evil.zip", buf.Bytes(), 0644))

	_, err = ExtractArchive(fs, "/tmp/evil.zip", "/fonts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes the destination")

	exists, err := afero.Exists(fs, "/outside.sh")
	require.NoError(t, err)
	assert.False(t, exists, "nothing may be written outside the destination")
}

func TestExtractTarRejectsTraversalEntry(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	content := []byte("echo pwned")
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "../outside.sh",
		Typeflag: tar.TypeReg,
		Mode:     0755,
		Size:     int64(len(content)),
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/evil.tar.gz", buf.Bytes(), 0644))

	_, err = ExtractArchive(fs, "/tmp/evil.tar.gz", "/fonts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes the destination")
}

func TestExtractArchiveRejectsUnknownFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/blob.rar", []byte("?"), 0644))

	_, err := ExtractArchive(fs, "/tmp/blob.rar", "/tmp")
	assert.Error(t, err)
}
