package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// HTTP settings
	UserAgent              string `json:"user_agent"`
	HeadTimeoutSeconds     int    `json:"head_timeout_seconds"`
	DownloadTimeoutSeconds int    `json:"download_timeout_seconds"`

	// Download settings
	TempDir  string `json:"temp_dir"`
	KeepFile bool   `json:"keep_file"`

	// Artwork settings. ArtworkPath empty means embedded artwork is
	// not extracted.
	ArtworkPath         string `json:"artwork_path"`
	ArtworkResize       bool   `json:"artwork_resize"`
	ArtworkMaxSize      int    `json:"artwork_max_size"`
	ConvertArtworkToJPG bool   `json:"convert_artwork_to_jpg"`

	// Output settings
	Verbose bool `json:"verbose"`
}

// DefaultSettings returns settings with default values.
//
// The two timeouts mirror the behavior of probing tools in the wild:
// a short HEAD to learn the size, a long GET for the transfer itself.
func DefaultSettings() *Settings {
	return &Settings{
		UserAgent:              "audioprobe",
		HeadTimeoutSeconds:     10,
		DownloadTimeoutSeconds: 60,

		TempDir:  "", // os.TempDir()
		KeepFile: false,

		ArtworkPath:         "",
		ArtworkResize:       true,
		ArtworkMaxSize:      1000,
		ConvertArtworkToJPG: true,

		Verbose: false,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
