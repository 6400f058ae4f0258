// Package config provides configuration management for audioprobe.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// 10 second HEAD timeout, 60 second download timeout
//	// Temp files cleaned up after the probe
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.KeepFile = true
//	err := settings.Save("/path/to/config.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - HTTP timeouts and User-Agent
//   - Temp file location and retention
//   - Artwork extraction (resize, JPEG conversion)
//   - Verbose output
package config
