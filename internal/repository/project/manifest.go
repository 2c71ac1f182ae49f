package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ManifestFilename is the project manifest at the source root.
const ManifestFilename = "package.json"

// ErrVersionMissing is returned when the manifest has no usable version field.
var ErrVersionMissing = errors.New("manifest has no version")

// Manifest holds the package.json fields the tooling cares about.
type Manifest struct {
	Name        string `json:"name"`
	ProductName string `json:"productName"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// ReadManifest parses {root}/package.json.
func ReadManifest(root string) (*Manifest, error) {
	path := filepath.Join(root, ManifestFilename)

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	manifest := new(Manifest)
	if err = json.Unmarshal(contents, manifest); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return manifest, nil
}

// ReadVersion returns the version field of {root}/package.json.
func ReadVersion(root string) (string, error) {
	manifest, err := ReadManifest(root)
	if err != nil {
		return "", err
	}

	version := strings.TrimSpace(manifest.Version)
	if version == "" {
		return "", fmt.Errorf("%s: %w", filepath.Join(root, ManifestFilename), ErrVersionMissing)
	}

	return version, nil
}
