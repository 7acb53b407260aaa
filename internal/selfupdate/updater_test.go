package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		latestTag     string
		wantAvailable bool
	}{
		{"newer available", "v1.0.0", "v2.0.0", true},
		{"already latest", "v2.0.0", "v2.0.0", false},
		{"running ahead of release", "v2.1.0", "v2.0.0", false},
		{"dev build", "(devel)", "v2.0.0", false},
		{"tag without v prefix", "1.0.0", "1.1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/repos/rchau/learnloop/releases/latest", r.URL.Path)
				fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tt.latestTag, tt.latestTag)
			}))
			defer server.Close()

			checker := NewChecker(WithBaseURL(server.URL))
			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.latestTag, result.LatestVersion)
			assert.Equal(t, tt.wantAvailable, result.UpdateAvailable)
		})
	}
}

func TestCheckServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestAssetFor(t *testing.T) {
	tests := []struct {
		name        string
		goos        string
		goarch      string
		wantArchive string
		wantBinary  string
		wantErr     bool
	}{
		{"darwin amd64", "darwin", "amd64", "learnloop_Darwin_all.tar.gz", "learnloop", false},
		{"darwin arm64", "darwin", "arm64", "learnloop_Darwin_all.tar.gz", "learnloop", false},
		{"linux amd64", "linux", "amd64", "learnloop_Linux_x86_64.tar.gz", "learnloop", false},
		{"linux arm64", "linux", "arm64", "learnloop_Linux_arm64.tar.gz", "learnloop", false},
		{"linux 386", "linux", "386", "learnloop_Linux_i386.tar.gz", "learnloop", false},
		{"windows amd64", "windows", "amd64", "learnloop_Windows_x86_64.zip", "learnloop.exe", false},
		{"windows arm64", "windows", "arm64", "learnloop_Windows_arm64.zip", "learnloop.exe", false},
		{"unsupported os", "freebsd", "amd64", "", "", true},
		{"unsupported arch", "linux", "mips", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantArchive, got.archive)
			assert.Equal(t, tt.wantBinary, got.binary)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	sums := []byte("abc123  learnloop_Darwin_all.tar.gz\n" +
		"badline\n" +
		"  \n" +
		"foo  bar  baz\n" +
		"def456  learnloop_Linux_x86_64.tar.gz\n")

	got, ok := checksumFor(sums, "learnloop_Linux_x86_64.tar.gz")
	require.True(t, ok)
	assert.Equal(t, "def456", got)

	_, ok = checksumFor(sums, "learnloop_Windows_x86_64.zip")
	assert.False(t, ok, "missing asset must not match")

	_, ok = checksumFor(nil, "anything")
	assert.False(t, ok)
}

func TestCheckSHA256(t *testing.T) {
	data := []byte("hello world")
	h := sha256.Sum256(data)
	correctHex := hex.EncodeToString(h[:])

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, checkSHA256(data, correctHex))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := checkSHA256(data, "0000000000000000000000000000000000000000000000000000000000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestReleaseAssetExtract(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho learnloop")
	asset, err := assetFor("darwin", "amd64")
	require.NoError(t, err)

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "learnloop", binaryContent)
		got, err := asset.extract(archive)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := asset.extract(archive)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "learnloop")

	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	require.NoError(t, swapBinary(target, newData))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	// Permissions preserved.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	binaryContent := []byte("new-learnloop-binary")
	archive := buildTarGz(t, "learnloop", binaryContent)
	archiveHash := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(archiveHash[:])

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "learnloop")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		platformAsset, err := assetFor(runtime.GOOS, runtime.GOARCH)
		require.NoError(t, err)
		asset := platformAsset.archive
		checksums := fmt.Sprintf("%s  %s\n", archiveHex, asset)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/repos/rchau/learnloop/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case r.URL.Path == fmt.Sprintf("/rchau/learnloop/releases/download/v2.0.0/%s", asset):
				_, _ = w.Write(archive)
			case r.URL.Path == "/rchau/learnloop/releases/download/v2.0.0/checksums.txt":
				_, _ = w.Write([]byte(checksums))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err = checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)

		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		platformAsset, err := assetFor(runtime.GOOS, runtime.GOARCH)
		require.NoError(t, err)
		asset := platformAsset.archive
		checksums := fmt.Sprintf("%s  %s\n", "0000000000000000000000000000000000000000000000000000000000000000", asset)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/repos/rchau/learnloop/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case r.URL.Path == fmt.Sprintf("/rchau/learnloop/releases/download/v2.0.0/%s", asset):
				_, _ = w.Write(archive)
			case r.URL.Path == "/rchau/learnloop/releases/download/v2.0.0/checksums.txt":
				_, _ = w.Write([]byte(checksums))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err = checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.URL.Path == "/repos/rchau/learnloop/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
