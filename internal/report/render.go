package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/audioprobe/audioprobe/internal/model"
)

const separator = "----------------------------------------"

// Render writes the fixed-format metadata report.
//
// Field order matches the classic probe output: file size, duration,
// channels, sample rate, bitrate, then any descriptive tags. Fields
// the extraction could not determine render as "Unknown".
//
// Example output:
//
//	Audio Metadata:
//	----------------------------------------
//	File Size: 5.00 MB
//	Duration: 3:45
//	Channels: Stereo
//	Sample Rate: 44100 Hz
//	Bitrate: 192 kbps
func Render(w io.Writer, rep *model.Report) {
	fmt.Fprintln(w, "Audio Metadata:")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "File Size: %.2f MB\n", model.SizeMB(rep.FileSize))

	if rep.Duration > 0 {
		fmt.Fprintf(w, "Duration: %s\n", model.FormatDuration(rep.Duration))
	} else {
		fmt.Fprintln(w, "Duration: Unknown")
	}

	fmt.Fprintf(w, "Channels: %s\n", model.ChannelLabel(rep.Channels))

	if rep.SampleRate > 0 {
		fmt.Fprintf(w, "Sample Rate: %d Hz\n", rep.SampleRate)
	} else {
		fmt.Fprintln(w, "Sample Rate: Unknown")
	}

	switch {
	case rep.Bitrate > 0 && rep.BitrateEstimated:
		fmt.Fprintf(w, "Bitrate: %d kbps (estimated)\n", rep.Bitrate)
	case rep.Bitrate > 0:
		fmt.Fprintf(w, "Bitrate: %d kbps\n", rep.Bitrate)
	default:
		fmt.Fprintln(w, "Bitrate: Unknown")
	}

	if rep.Format != "" {
		fmt.Fprintf(w, "Format: %s\n", rep.Format)
	}

	if rep.HasTags() {
		fmt.Fprintln(w)
		writeTag(w, "Artist", rep.Artist)
		writeTag(w, "Title", rep.Title)
		writeTag(w, "Album", rep.Album)
		writeTag(w, "Genre", rep.Genre)
		writeTag(w, "Year", rep.Year)
	}

	if len(rep.Warnings) > 0 {
		fmt.Fprintln(w)
		for _, warning := range rep.Warnings {
			fmt.Fprintf(w, "Warning: %s\n", warning)
		}
	}
}

// RenderError writes the error block used when a probe fails.
//
// Example output:
//
//	Error:
//	----------------------------------------
//	download failed: HTTP 404: Not Found
func RenderError(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:")
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, strings.TrimSpace(err.Error()))
}

func writeTag(w io.Writer, label, value string) {
	if value != "" {
		fmt.Fprintf(w, "%s: %s\n", label, value)
	}
}
