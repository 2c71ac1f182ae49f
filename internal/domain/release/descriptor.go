package release

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Platform is the target operating system of a packaged build.
type Platform string

// PlatformWindows is the only platform the Squirrel maker produces installers for.
const PlatformWindows Platform = "win32"

// Variant is a named build configuration affecting output paths.
type Variant string

// Known build variants.
const (
	VariantStable   Variant = "stable"
	VariantBeta     Variant = "beta"
	VariantCanary   Variant = "canary"
	VariantInternal Variant = "internal"
)

// ErrUnknownVariant is returned by ParseVariant for unsupported names.
var ErrUnknownVariant = errors.New("unknown build variant")

// ParseVariant converts a configured name into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantStable, VariantBeta, VariantCanary, VariantInternal:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// BuildDescriptor holds the inputs of one packaging run.
// It is built once at process start and never mutated afterwards,
// except for Version which is filled from the project manifest.
type BuildDescriptor struct {
	// AppName is the internal application name.
	AppName string
	// DisplayName is the product title shown to users.
	DisplayName string
	// Platform is the target operating system.
	Platform Platform
	// Arch is the target architecture, e.g. x64.
	Arch string
	// Variant is the build variant.
	Variant Variant
	// RootDir is the project root directory.
	RootDir string
	// IconURL is the icon resource URL.
	IconURL string
	// LoadingGIF is the setup loading animation path.
	LoadingGIF string
	// RemoteReleases is where previous releases are published, used for delta packages.
	RemoteReleases string
	// Deltas explicitly enables delta package generation.
	Deltas bool
	// Version is the application semantic version.
	Version string
}

// AppDirectory returns the prebuilt, unpacked application directory:
// {root}/out/{variant}/{appName}-{platform}-{arch}.
func (d *BuildDescriptor) AppDirectory() string {
	return filepath.Join(
		d.RootDir,
		"out",
		string(d.Variant),
		fmt.Sprintf("%s-%s-%s", d.AppName, d.Platform, d.Arch),
	)
}

// OutputDirectory returns where the installer bundle is written:
// {root}/out/{variant}/make/squirrel.windows/{arch}.
func (d *BuildDescriptor) OutputDirectory() string {
	return filepath.Join(d.RootDir, "out", string(d.Variant), "make", "squirrel.windows", d.Arch)
}

// ExecutableName returns the name of the packaged application executable.
func (d *BuildDescriptor) ExecutableName() string {
	return d.AppName + ".exe"
}

// SetupExecutableName returns the name of the setup executable.
func (d *BuildDescriptor) SetupExecutableName() string {
	return fmt.Sprintf("%s-%s Setup.exe", d.AppName, d.Version)
}
