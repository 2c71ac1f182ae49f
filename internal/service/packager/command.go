package packager

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oshokin/notes-release/internal/config"
	"github.com/oshokin/notes-release/internal/domain/release"
	"github.com/oshokin/notes-release/internal/generator"
	"github.com/oshokin/notes-release/internal/logger"
)

// Options contains inputs for the packager entry point.
// Non-empty fields override the values of the settings file.
type Options struct {
	// ConfigPath is the settings YAML file; a missing file is allowed.
	ConfigPath string
	// RootDir overrides release.root_dir.
	RootDir string
	// AppName overrides release.app_name.
	AppName string
	// Variant overrides release.variant.
	Variant string
	// Arch overrides release.arch.
	Arch string
	// GeneratorCommand overrides release.generator.
	GeneratorCommand []string
	// SigningKey overrides release.signing_key.
	SigningKey string
	// Generator replaces the external command entirely when set.
	Generator generator.Generator
}

// Run packages the application described by the settings and flags,
// then writes the artifact manifest (and its signature when a key is configured).
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "squirrel-packager")

	runID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate run id: %w", err)
	}

	ctx = logger.WithKV(ctx, "run_id", runID.String())

	settings, err := loadReleaseSettings(opts)
	if err != nil {
		return err
	}

	desc, err := newDescriptor(settings)
	if err != nil {
		return err
	}

	gen := opts.Generator
	if gen == nil {
		command := settings.Generator
		if len(command) == 0 {
			command = generator.DefaultCommand
		}

		if gen, err = generator.NewExec(command, settings.RootDir); err != nil {
			return fmt.Errorf("initialize generator: %w", err)
		}
	}

	result, err := Package(ctx, desc, gen)
	if err != nil {
		return fmt.Errorf("packager failed: %w", err)
	}

	if err = recordArtifacts(ctx, runID.String(), settings.SigningKey, result); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Packager completed successfully", "artifacts", len(result.Artifacts))

	return nil
}

// loadReleaseSettings merges the settings file with command-line overrides.
func loadReleaseSettings(opts *Options) (*config.ReleaseConfig, error) {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	settings := &cfg.Release

	overrides := []struct {
		value  string
		target *string
	}{
		{opts.RootDir, &settings.RootDir},
		{opts.AppName, &settings.AppName},
		{opts.Variant, &settings.Variant},
		{opts.Arch, &settings.Arch},
		{opts.SigningKey, &settings.SigningKey},
	}

	for _, override := range overrides {
		if override.value != "" {
			*override.target = override.value
		}
	}

	if len(opts.GeneratorCommand) > 0 {
		settings.Generator = opts.GeneratorCommand
	}

	if err = config.ValidateRelease(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// newDescriptor converts validated settings into the build descriptor.
func newDescriptor(settings *config.ReleaseConfig) (*release.BuildDescriptor, error) {
	variant, err := release.ParseVariant(settings.Variant)
	if err != nil {
		return nil, err
	}

	return &release.BuildDescriptor{
		AppName:        settings.AppName,
		DisplayName:    settings.DisplayName,
		Platform:       release.PlatformWindows,
		Arch:           settings.Arch,
		Variant:        variant,
		RootDir:        settings.RootDir,
		IconURL:        settings.IconURL,
		LoadingGIF:     settings.LoadingGIF,
		RemoteReleases: settings.RemoteReleases,
		Deltas:         settings.Deltas,
	}, nil
}

// recordArtifacts writes the manifest and signs it when a key is configured.
func recordArtifacts(ctx context.Context, runID, signingKey string, result *Result) error {
	manifest, err := newManifest(ctx, runID, result)
	if err != nil {
		return fmt.Errorf("build manifest: %w", err)
	}

	manifestPath, err := manifest.save(result.Config.OutputDirectory)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Artifact manifest written", "path", manifestPath)

	if signingKey == "" {
		return nil
	}

	signer, err := loadSigningKey(signingKey)
	if err != nil {
		return err
	}

	signaturePath, err := signFile(manifestPath, signer)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Artifact manifest signed", "path", signaturePath)

	return nil
}
