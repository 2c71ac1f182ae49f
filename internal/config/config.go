package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root of the settings file.
type Config struct {
	// Release holds the build descriptor inputs for the installer packager.
	Release ReleaseConfig `yaml:"release"`
	// Layout holds connection parameters of the layout-state service.
	Layout LayoutConfig `yaml:"layout"`
}

// ReleaseConfig describes what to package and how to call the installer generator.
type ReleaseConfig struct {
	// AppName is the internal application name, used in every artifact file name.
	AppName string `yaml:"app_name"`
	// DisplayName is the human-readable product title; defaults to AppName.
	DisplayName string `yaml:"display_name,omitempty"`
	// Variant is the build variant (stable, beta, canary, internal).
	Variant string `yaml:"variant,omitempty"`
	// Arch is the target architecture, e.g. x64 or arm64.
	Arch string `yaml:"arch,omitempty"`
	// RootDir is the project root containing package.json and out/.
	RootDir string `yaml:"root_dir,omitempty"`
	// IconURL is the icon shown in Programs and Features.
	IconURL string `yaml:"icon_url,omitempty"`
	// LoadingGIF is the animation displayed while the setup runs.
	LoadingGIF string `yaml:"loading_gif,omitempty"`
	// RemoteReleases is the URL of previously published releases used for deltas.
	RemoteReleases string `yaml:"remote_releases,omitempty"`
	// Deltas enables delta package generation when RemoteReleases is set.
	Deltas bool `yaml:"deltas,omitempty"`
	// Generator is the external installer generator command followed by its arguments.
	Generator []string `yaml:"generator,omitempty"`
	// SigningKey is an optional armored OpenPGP private key used to sign the artifact manifest.
	SigningKey string `yaml:"signing_key,omitempty"`
}

// LayoutConfig holds the layout-state service settings.
type LayoutConfig struct {
	// ServerAddress is the gRPC address of the layout-state server.
	ServerAddress string `yaml:"server_addr"`
	// StateFile is the JSON file where the layout state is persisted.
	StateFile string `yaml:"state_file,omitempty"`
	// Timeout bounds every RPC call.
	Timeout time.Duration `yaml:"timeout,omitempty"`
	// Language selects the tooltip catalogue, e.g. en or ru.
	Language string `yaml:"language,omitempty"`
}

const (
	// DefaultConfigFilename is the default settings file name.
	DefaultConfigFilename = "release-settings.yaml"

	// DefaultStateFilename is the default layout state file name.
	DefaultStateFilename = "layout-state.json"

	// DefaultVariant is used when no build variant is configured.
	DefaultVariant = "stable"

	// DefaultArch is used when no target architecture is configured.
	DefaultArch = "x64"

	// DefaultLanguage is used for tooltips when no language is configured.
	DefaultLanguage = "en"

	// DefaultTimeout bounds network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultFilePermissions is applied to files written by the tooling.
	DefaultFilePermissions = 0o600
)

var (
	errConfigIsNotSet        = errors.New("configuration is not set")
	errAppNameRequired       = errors.New("application name must be provided")
	errServerSocketRequired  = errors.New("server address must be provided")
	errGeneratorCommandEmpty = errors.New("generator command must not be empty")
)

// Load reads the settings file. A missing file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := new(Config)
	if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but returns an empty Config when the file does not exist,
// so every value can come from command-line flags instead.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return new(Config), nil
	}

	return cfg, err
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err = os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// ValidateRelease checks required release fields and fills defaults.
func ValidateRelease(settings *ReleaseConfig) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	settings.AppName = strings.TrimSpace(settings.AppName)
	if settings.AppName == "" {
		return errAppNameRequired
	}

	if settings.DisplayName == "" {
		settings.DisplayName = settings.AppName
	}

	if settings.Variant == "" {
		settings.Variant = DefaultVariant
	}

	if settings.Arch == "" {
		settings.Arch = DefaultArch
	}

	if settings.RootDir == "" {
		settings.RootDir = "."
	}

	if settings.Generator != nil && strings.TrimSpace(strings.Join(settings.Generator, "")) == "" {
		return errGeneratorCommandEmpty
	}

	for name, raw := range map[string]string{
		"icon URL":        settings.IconURL,
		"remote releases": settings.RemoteReleases,
	} {
		if raw == "" {
			continue
		}

		if _, err := url.ParseRequestURI(raw); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	return nil
}

// ValidateLayout checks the layout-state connection settings and fills defaults.
func ValidateLayout(settings *LayoutConfig) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.StateFile == "" {
		settings.StateFile = DefaultStateFilename
	}

	if settings.Language == "" {
		settings.Language = DefaultLanguage
	}

	return nil
}
