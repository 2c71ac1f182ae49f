package packager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/notes-release/internal/domain/release"
)

// enumerateArtifacts lists what the generator produced in cfg.OutputDirectory.
//
// RELEASES, the setup executable and the full package are always listed:
// the generator guarantees them, so their presence is not checked. The delta
// package is listed when deltas were requested or the file exists anyway; the
// MSI only when it was requested and actually written.
func enumerateArtifacts(cfg *release.InstallerConfig, nupkgVersion string) ([]string, error) {
	out := cfg.OutputDirectory

	artifacts := []string{
		filepath.Join(out, release.ReleasesFilename),
		filepath.Join(out, cfg.SetupExe),
		filepath.Join(out, release.FullPackageName(cfg.Name, nupkgVersion)),
	}

	deltaPath := filepath.Join(out, release.DeltaPackageName(cfg.Name, nupkgVersion))

	deltaExists, err := fileExists(deltaPath)
	if err != nil {
		return nil, err
	}

	if cfg.WantsDelta() || deltaExists {
		artifacts = append(artifacts, deltaPath)
	}

	if !cfg.NoMsi {
		msiPath := filepath.Join(out, release.MsiName(cfg.Name))

		msiExists, err := fileExists(msiPath)
		if err != nil {
			return nil, err
		}

		if msiExists {
			artifacts = append(artifacts, msiPath)
		}
	}

	return artifacts, nil
}

// fileExists reports whether path exists. Errors other than "not found" are returned.
func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}
