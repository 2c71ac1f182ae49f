package release

import "strings"

// VersionNormalizer converts a semantic version into the nupkg file naming scheme.
type VersionNormalizer func(semver string) string

// NupkgVersion drops build metadata and strips dots from the prerelease part:
// "1.2.3" stays "1.2.3", "1.2.3-beta.1+abc" becomes "1.2.3-beta1".
func NupkgVersion(semver string) string {
	withoutMeta, _, _ := strings.Cut(semver, "+")

	main, prerelease, found := strings.Cut(withoutMeta, "-")
	if !found {
		return main
	}

	return main + "-" + strings.ReplaceAll(prerelease, ".", "")
}

// ReleasesFilename is the release manifest written next to the packages.
const ReleasesFilename = "RELEASES"

// FullPackageName returns "{name}-{nupkgVersion}-full.nupkg".
func FullPackageName(name, nupkgVersion string) string {
	return name + "-" + nupkgVersion + "-full.nupkg"
}

// DeltaPackageName returns "{name}-{nupkgVersion}-delta.nupkg".
func DeltaPackageName(name, nupkgVersion string) string {
	return name + "-" + nupkgVersion + "-delta.nupkg"
}

// MsiName returns the legacy installer name "{name}Setup.msi".
func MsiName(name string) string {
	return name + "Setup.msi"
}
