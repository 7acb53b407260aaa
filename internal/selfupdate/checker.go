// Package selfupdate checks GitHub releases for a newer build and can
// replace the running binary in place.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner           = "rchau"
	defaultRepo            = "learnloop"
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
)

// Checker queries GitHub for the latest release.
type Checker struct {
	owner           string
	repo            string
	baseURL         string
	downloadBaseURL string
	client          *http.Client
	execPath        func() (string, error)
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(u string) CheckerOption {
	return func(c *Checker) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithDownloadBaseURL overrides the release download base URL.
func WithDownloadBaseURL(u string) CheckerOption {
	return func(c *Checker) { c.downloadBaseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) CheckerOption {
	return func(c *Checker) { c.client = h }
}

// withExecPath overrides executable path resolution, for tests.
func withExecPath(f func() (string, error)) CheckerOption {
	return func(c *Checker) { c.execPath = f }
}

// NewChecker creates a Checker for the project's GitHub releases.
func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{
		owner:           defaultOwner,
		repo:            defaultRepo,
		baseURL:         defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		client:          &http.Client{Timeout: 30 * time.Second},
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput carries the currently running version.
type CheckInput struct {
	Version string
}

// CheckResult reports the latest release and whether it is newer.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

// Check fetches the latest release tag and compares it against the
// running version with semver ordering. A development build never
// reports an available update.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch latest release: HTTP %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	result := &CheckResult{
		CurrentVersion: input.Version,
		LatestVersion:  release.TagName,
		ReleaseURL:     release.HTMLURL,
	}

	current := normalizeVersion(input.Version)
	latest := normalizeVersion(release.TagName)
	if current != "" && latest != "" {
		result.UpdateAvailable = semver.Compare(latest, current) > 0
	}

	return result, nil
}

// normalizeVersion coerces a tag into canonical semver form, or ""
// for dev builds and unparseable tags.
func normalizeVersion(v string) string {
	if v == "" || v == "(devel)" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}
