package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// UpdateInput selects what to update to. An empty TargetVersion means
// "whatever the latest release is".
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is one step of the update flow, for display.
type UpdateProgress struct {
	Stage   string
	Message string
}

// releaseAsset names the published archive for one platform and the
// binary inside it.
type releaseAsset struct {
	archive string
	binary  string
}

// assetFor maps GOOS/GOARCH onto the release artifact naming scheme.
func assetFor(goos, goarch string) (releaseAsset, error) {
	arch := map[string]string{
		"amd64": "x86_64",
		"arm64": "arm64",
		"386":   "i386",
	}[goarch]

	switch goos {
	case "darwin":
		// Universal binary, one archive for both architectures.
		return releaseAsset{archive: "learnloop_Darwin_all.tar.gz", binary: "learnloop"}, nil
	case "linux":
		if arch == "" {
			return releaseAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return releaseAsset{archive: "learnloop_Linux_" + arch + ".tar.gz", binary: "learnloop"}, nil
	case "windows":
		if arch == "" {
			return releaseAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return releaseAsset{archive: "learnloop_Windows_" + arch + ".zip", binary: "learnloop.exe"}, nil
	default:
		return releaseAsset{}, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// Update downloads the release archive for this platform, verifies its
// checksum against the published checksums.txt, and swaps the running
// binary in place.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		progress(UpdateProgress{Stage: "check", Message: "Checking for latest version..."})
		result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !result.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = result.LatestVersion
	}

	asset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "download", Message: fmt.Sprintf("Downloading %s...", tag)})
	archive, err := c.fetchReleaseFile(ctx, tag, asset.archive)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{Stage: "verify", Message: "Verifying checksum..."})
	sums, err := c.fetchReleaseFile(ctx, tag, "checksums.txt")
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := checksumFor(sums, asset.archive)
	if !ok {
		return fmt.Errorf("no checksum found for %s in checksums.txt", asset.archive)
	}
	if err := checkSHA256(archive, want); err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "extract", Message: "Extracting binary..."})
	binary, err := asset.extract(archive)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{Stage: "apply", Message: "Applying update..."})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := swapBinary(target, binary); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{Stage: "done", Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

// fetchReleaseFile downloads one file attached to a release tag.
func (c *Checker) fetchReleaseFile(ctx context.Context, tag, name string) ([]byte, error) {
	base := strings.TrimRight(c.downloadBaseURL, "/")
	url := fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", base, c.owner, c.repo, tag, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor scans a checksums.txt body ("<hex>  <filename>" lines)
// for the named asset. Malformed lines are skipped.
func checksumFor(sums []byte, asset string) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(sums))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == asset {
			return fields[0], true
		}
	}
	return "", false
}

func checkSHA256(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != wantHex {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
}

// extract pulls the binary out of the archive, dispatching on the
// archive format.
func (a releaseAsset) extract(archive []byte) ([]byte, error) {
	if strings.HasSuffix(a.archive, ".zip") {
		return a.extractZip(archive)
	}
	return a.extractTarGz(archive)
}

func (a releaseAsset) extractTarGz(archive []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == a.binary {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", a.binary)
}

func (a releaseAsset) extractZip(archive []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range r.File {
		if filepath.Base(f.Name) == a.binary {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer func() { _ = rc.Close() }()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", a.binary)
}

// swapBinary stages the new binary next to the target, re-verifies the
// staged copy, then renames it over the target. Staging in the same
// directory keeps the rename atomic; the original file mode survives.
func swapBinary(targetPath string, binary []byte) error {
	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	staging, err := os.MkdirTemp(filepath.Dir(targetPath), ".learnloop-update-*")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(staging) }()

	staged := filepath.Join(staging, "learnloop.next")
	if err := os.WriteFile(staged, binary, 0600); err != nil {
		return fmt.Errorf("write staged binary: %w", err)
	}

	// Re-read and compare before the rename.
	written, err := os.ReadFile(staged)
	if err != nil {
		return fmt.Errorf("re-read staged binary: %w", err)
	}
	want := sha256.Sum256(binary)
	got := sha256.Sum256(written)
	if !bytes.Equal(got[:], want[:]) {
		return fmt.Errorf("%w: staged binary changed after write", ErrChecksum)
	}

	if err := os.Rename(staged, targetPath); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if err := os.Chmod(targetPath, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}
