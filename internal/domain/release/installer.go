package release

// InstallerConfig is the value handed to the installer generator.
// JSON names follow the generator's option names.
type InstallerConfig struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	NoMsi           bool   `json:"noMsi"`
	Exe             string `json:"exe"`
	SetupExe        string `json:"setupExe"`
	Version         string `json:"version"`
	AppDirectory    string `json:"appDirectory"`
	OutputDirectory string `json:"outputDirectory"`
	IconURL         string `json:"iconUrl,omitempty"`
	LoadingGIF      string `json:"loadingGif,omitempty"`
	RemoteReleases  string `json:"remoteReleases,omitempty"`
	NoDelta         bool   `json:"noDelta"`
}

// NewInstallerConfig combines the descriptor with the fixed packaging policy:
// the legacy MSI installer is never requested and deltas stay off unless enabled.
func NewInstallerConfig(d *BuildDescriptor) *InstallerConfig {
	return &InstallerConfig{
		Name:            d.AppName,
		Title:           d.DisplayName,
		NoMsi:           true,
		Exe:             d.ExecutableName(),
		SetupExe:        d.SetupExecutableName(),
		Version:         d.Version,
		AppDirectory:    d.AppDirectory(),
		OutputDirectory: d.OutputDirectory(),
		IconURL:         d.IconURL,
		LoadingGIF:      d.LoadingGIF,
		RemoteReleases:  d.RemoteReleases,
		NoDelta:         !d.Deltas,
	}
}

// WantsDelta reports whether the generator was told about prior releases
// and delta generation was left enabled.
func (c *InstallerConfig) WantsDelta() bool {
	return c.RemoteReleases != "" && !c.NoDelta
}
