// Package update wraps go-selfupdate for the upgrade command shared by the
// calculator binaries.
package update

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/creativeprojects/go-selfupdate"
)

const repoSlug = "jmagnuss/calcsuite"

// InstallMethod describes how the running binary was installed.
type InstallMethod int

const (
	// InstallBinary is a directly downloaded or built binary.
	InstallBinary InstallMethod = iota
	// InstallHomebrew is a Homebrew-managed install.
	InstallHomebrew
)

// Release describes an available update.
type Release struct {
	Version string
	URL     string
}

// DetectInstallMethod inspects the executable path to decide whether the
// binary is managed by Homebrew. Homebrew installs must be upgraded through
// brew, not by overwriting the Cellar.
func DetectInstallMethod() InstallMethod {
	exe, err := os.Executable()
	if err != nil {
		return InstallBinary
	}
	return installMethodForPath(exe)
}

func installMethodForPath(path string) InstallMethod {
	for _, marker := range []string{"/Cellar/", "/homebrew/", "/linuxbrew/"} {
		if strings.Contains(path, marker) {
			return InstallHomebrew
		}
	}
	return InstallBinary
}

// CheckForUpdate reports whether a release newer than current exists.
// Development builds ("dev") never see updates.
func CheckForUpdate(current string) (*Release, bool, error) {
	if current == "dev" {
		return nil, false, nil
	}

	latest, found, err := selfupdate.DetectLatest(context.Background(), selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return nil, false, fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found || latest.LessOrEqual(current) {
		return nil, false, nil
	}

	return &Release{Version: latest.Version(), URL: latest.URL}, true, nil
}

// Update replaces the running binary with the latest release.
func Update(current string) error {
	if _, err := selfupdate.UpdateSelf(context.Background(), current, selfupdate.ParseSlug(repoSlug)); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}
	return nil
}
