package packager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/oshokin/notes-release/internal/domain/release"
	"github.com/oshokin/notes-release/internal/generator"
	"github.com/oshokin/notes-release/internal/logger"
	"github.com/oshokin/notes-release/internal/repository/project"
)

// outputDirectoryMode is applied to the recreated output directory.
const outputDirectoryMode os.FileMode = 0o755

var (
	errDescriptorRequired = errors.New("build descriptor is required")
	errGeneratorRequired  = errors.New("installer generator is required")
	errNotADirectory      = errors.New("not a directory")
)

// Result is the outcome of a successful packaging run.
type Result struct {
	// Descriptor is the build descriptor with the version filled in.
	Descriptor release.BuildDescriptor
	// Config is the configuration that was handed to the generator.
	Config *release.InstallerConfig
	// NupkgVersion is the version as it appears in package file names.
	NupkgVersion string
	// Artifacts lists the produced files in a fixed order.
	Artifacts []string
}

// PackageOption customises a packaging run.
type PackageOption func(*pipeline)

// WithVersionNormalizer replaces the semver to nupkg version conversion.
func WithVersionNormalizer(normalize release.VersionNormalizer) PackageOption {
	return func(p *pipeline) {
		if normalize != nil {
			p.normalize = normalize
		}
	}
}

// WithProcessLister replaces the process table source of the running-app check.
func WithProcessLister(list processLister) PackageOption {
	return func(p *pipeline) {
		if list != nil {
			p.listProcesses = list
		}
	}
}

// pipeline carries the collaborators of a single run.
type pipeline struct {
	generator     generator.Generator
	normalize     release.VersionNormalizer
	listProcesses processLister
}

// Package produces the installer bundle described by desc and returns its artifacts.
// Every failure aborts the run; nothing is retried and no partial list is returned.
func Package(
	ctx context.Context,
	desc *release.BuildDescriptor,
	gen generator.Generator,
	opts ...PackageOption,
) (*Result, error) {
	if desc == nil {
		return nil, errDescriptorRequired
	}

	if gen == nil {
		return nil, errGeneratorRequired
	}

	p := &pipeline{
		generator:     gen,
		normalize:     release.NupkgVersion,
		listProcesses: systemProcesses,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p.run(ctx, *desc)
}

func (p *pipeline) run(ctx context.Context, desc release.BuildDescriptor) (*Result, error) {
	appDirectory := desc.AppDirectory()
	if err := requireDirectory(appDirectory); err != nil {
		return nil, fmt.Errorf("prebuilt application: %w", err)
	}

	outputDirectory := desc.OutputDirectory()

	logger.InfoKV(ctx, "Resetting output directory", "path", outputDirectory)

	if err := resetDirectory(outputDirectory); err != nil {
		return nil, err
	}

	version, err := project.ReadVersion(desc.RootDir)
	if err != nil {
		return nil, fmt.Errorf("read application version: %w", err)
	}

	desc.Version = version
	cfg := release.NewInstallerConfig(&desc)

	p.warnIfRunning(ctx, cfg.Exe)

	logger.InfoKV(ctx, "Building installer",
		"app", cfg.Name,
		"version", cfg.Version,
		"app_directory", cfg.AppDirectory,
		"output_directory", cfg.OutputDirectory,
	)

	if err = p.generator.Generate(ctx, cfg); err != nil {
		return nil, fmt.Errorf("generate installer: %w", err)
	}

	nupkgVersion := p.normalize(version)

	artifacts, err := enumerateArtifacts(cfg, nupkgVersion)
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Installer artifacts:\n%s", strings.Join(artifacts, "\n"))

	return &Result{
		Descriptor:   desc,
		Config:       cfg,
		NupkgVersion: nupkgVersion,
		Artifacts:    artifacts,
	}, nil
}

// requireDirectory fails unless path exists and is a directory.
func requireDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, errNotADirectory)
	}

	return nil
}

// resetDirectory removes path recursively and recreates it empty,
// so files from an earlier run never leak into the artifact list.
func resetDirectory(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}

	if err := os.MkdirAll(path, outputDirectoryMode); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	return nil
}
