package packager

import (
	"bytes"
	"context"
	"crypto"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	goupdate "github.com/doitdistributed/go-update"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/notes-release/internal/logger"

	// Register SHA-512 for checksum calculation.
	_ "crypto/sha512"
)

const (
	// ManifestFilename is written next to the artifacts after a successful run.
	ManifestFilename = "artifacts.yaml"

	// manifestFileMode is the mode of the manifest and its signature.
	manifestFileMode os.FileMode = 0o644

	// checksumFunction hashes artifacts and the manifest itself.
	checksumFunction crypto.Hash = crypto.SHA512
)

var errHashUnavailable = errors.New("hash function unavailable")

// Manifest records what a packaging run produced.
type Manifest struct {
	// RunID identifies the packaging run in logs.
	RunID string `yaml:"run_id"`
	// Version is the application semantic version.
	Version string `yaml:"version"`
	// NupkgVersion is the version used in package file names.
	NupkgVersion string `yaml:"nupkg_version"`
	// Variant is the build variant.
	Variant string `yaml:"variant"`
	// Arch is the target architecture.
	Arch string `yaml:"arch"`
	// Artifacts lists artifact file names in enumeration order.
	Artifacts []string `yaml:"artifacts"`
	// Files maps artifact file names to base64 SHA-512 checksums of the files that exist.
	Files map[string]string `yaml:"files"`
}

// newManifest builds the manifest for result, hashing every artifact present on disk.
func newManifest(ctx context.Context, runID string, result *Result) (*Manifest, error) {
	manifest := &Manifest{
		RunID:        runID,
		Version:      result.Descriptor.Version,
		NupkgVersion: result.NupkgVersion,
		Variant:      string(result.Descriptor.Variant),
		Arch:         result.Descriptor.Arch,
		Artifacts:    make([]string, 0, len(result.Artifacts)),
		Files:        make(map[string]string, len(result.Artifacts)),
	}

	for _, path := range result.Artifacts {
		name := filepath.Base(path)
		manifest.Artifacts = append(manifest.Artifacts, name)

		exists, err := fileExists(path)
		if err != nil {
			return nil, err
		}

		if !exists {
			logger.WarnKV(ctx, "Artifact not written by the generator, skipping checksum", "path", path)
			continue
		}

		checksum, err := fileChecksum(path)
		if err != nil {
			return nil, err
		}

		manifest.Files[name] = base64.StdEncoding.EncodeToString(checksum)
	}

	return manifest, nil
}

// save writes the manifest into dir and returns its path.
func (m *Manifest) save(dir string) (string, error) {
	contents, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFilename)
	if err = writeFileAtomically(path, contents, manifestFileMode); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}

	return path, nil
}

// fileChecksum hashes the file at path with checksumFunction.
func fileChecksum(path string) ([]byte, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	return checksum(contents)
}

func checksum(contents []byte) ([]byte, error) {
	if !checksumFunction.Available() {
		return nil, fmt.Errorf("checksum calculation not possible: %w", errHashUnavailable)
	}

	hasher := checksumFunction.New()
	if _, err := hasher.Write(contents); err != nil {
		return nil, fmt.Errorf("calculate checksum: %w", err)
	}

	return hasher.Sum(nil), nil
}

// writeFileAtomically swaps contents into path, verifying the checksum of what was written.
func writeFileAtomically(path string, contents []byte, mode os.FileMode) error {
	sum, err := checksum(contents)
	if err != nil {
		return err
	}

	// The swap renames the current file aside, so one has to exist.
	if _, err = os.Stat(path); errors.Is(err, os.ErrNotExist) {
		var placeholder *os.File

		placeholder, err = os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY, mode)
		if err != nil {
			return err
		}

		if err = placeholder.Close(); err != nil {
			return err
		}
	}

	options := goupdate.Options{
		TargetPath: path,
		TargetMode: mode,
		Checksum:   sum,
		Hash:       checksumFunction,
	}

	return goupdate.Apply(bytes.NewReader(contents), options)
}
