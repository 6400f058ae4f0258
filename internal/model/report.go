package model

import (
	"fmt"
	"math"
	"time"
)

// Report holds the extracted audio properties for one probed file.
//
// A Report is transient: it is built after the download completes and
// only lives until the process prints it. Fields that the metadata
// library could not determine are left at their zero value and render
// as "Unknown".
//
// Example:
//
//	rep := &model.Report{
//	    FileSize:   5242880,
//	    Duration:   3*time.Minute + 45*time.Second,
//	    Channels:   2,
//	    SampleRate: 44100,
//	    Bitrate:    192,
//	}
//	fmt.Println(model.FormatDuration(rep.Duration)) // "3:45"
type Report struct {
	// URL is the source the file was fetched from.
	URL string `json:"url"`

	// Path is the local temp file the bytes were materialized to.
	// Empty once the file has been cleaned up.
	Path string `json:"path,omitempty"`

	// Format is the detected container format name (MP3, FLAC, ...).
	// Empty if detection failed before a format was identified.
	Format string `json:"format,omitempty"`

	// FileSize is the downloaded payload size in bytes.
	FileSize int64 `json:"file_size"`

	// Duration is the decoded audio length. Zero if unknown.
	Duration time.Duration `json:"duration"`

	// Channels is the channel count. Zero if unknown.
	Channels int `json:"channels"`

	// SampleRate is the sample rate in Hz. Zero if unknown.
	SampleRate int `json:"sample_rate"`

	// Bitrate is the average encoded rate in kbps, either reported by
	// the metadata library or estimated from size and duration.
	Bitrate int `json:"bitrate"`

	// BitrateEstimated is true when Bitrate was computed from
	// FileSize and Duration rather than read from the container.
	BitrateEstimated bool `json:"bitrate_estimated,omitempty"`

	// Artist, Title and Album are descriptive tags, when present.
	Artist string `json:"artist,omitempty"`
	Title  string `json:"title,omitempty"`
	Album  string `json:"album,omitempty"`

	// Genre and Year come from the ID3 detail pass on MP3 files.
	Genre string `json:"genre,omitempty"`
	Year  string `json:"year,omitempty"`

	// Warnings lists non-fatal issues the parser reported.
	Warnings []string `json:"warnings,omitempty"`

	// Elapsed is the wall time for the whole probe (fetch + parse).
	Elapsed time.Duration `json:"elapsed"`
}

// HasAudioInfo returns true if at least one technical property was
// extracted. A recognized container with unreadable frame headers can
// yield a Report where everything renders as "Unknown".
func (r *Report) HasAudioInfo() bool {
	return r.Duration > 0 || r.Channels > 0 || r.SampleRate > 0 || r.Bitrate > 0
}

// HasTags returns true if any descriptive tag was extracted.
func (r *Report) HasTags() bool {
	return r.Artist != "" || r.Title != "" || r.Album != "" || r.Genre != "" || r.Year != ""
}

// FormatDuration renders a duration as M:SS, e.g. "3:45" or "12:07".
//
// Minutes are not zero-padded, seconds always are, matching the usual
// display on players. Durations under a second render as "0:00".
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	minutes, seconds := total/60, total%60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// ChannelLabel renders a channel count as a human-readable label.
//
// Returns:
//   - "Mono" for 1
//   - "Stereo" for 2
//   - "N channels" for anything above 2
//   - "Unknown" for 0 or negative counts
func ChannelLabel(channels int) string {
	switch {
	case channels == 1:
		return "Mono"
	case channels == 2:
		return "Stereo"
	case channels > 2:
		return fmt.Sprintf("%d channels", channels)
	default:
		return "Unknown"
	}
}

// SizeMB converts a byte count to megabytes (1 MB = 1024*1024 bytes).
//
// Callers format the result with two decimals for display.
func SizeMB(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024)
}

// EstimateBitrate derives an average bitrate in kbps from the file size
// and duration: round(bytes * 8 / seconds / 1000).
//
// Returns 0 when the duration is zero or negative, since the formula
// is undefined without a length.
func EstimateBitrate(sizeBytes int64, duration time.Duration) int {
	seconds := duration.Seconds()
	if seconds <= 0 {
		return 0
	}
	return int(math.Round(float64(sizeBytes) * 8 / seconds / 1000))
}
