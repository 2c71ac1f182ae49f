// Package release contains the domain types of a Windows installer build:
// the build descriptor, the installer configuration handed to the generator,
// the output layout under out/ and the nupkg version convention.
package release
