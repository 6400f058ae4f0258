package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/audioprobe/audioprobe/internal/model"
)

func TestRender_FullReport(t *testing.T) {
	rep := &model.Report{
		URL:        "https://example.com/song.mp3",
		Format:     "MP3",
		FileSize:   5 * 1024 * 1024,
		Duration:   3*time.Minute + 45*time.Second,
		Channels:   2,
		SampleRate: 44100,
		Bitrate:    192,
	}

	var b strings.Builder
	Render(&b, rep)
	out := b.String()

	for _, want := range []string{
		"Audio Metadata:",
		"File Size: 5.00 MB",
		"Duration: 3:45",
		"Channels: Stereo",
		"Sample Rate: 44100 Hz",
		"Bitrate: 192 kbps",
		"Format: MP3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report should contain %q, got:\n%s", want, out)
		}
	}

	if strings.Contains(out, "(estimated)") {
		t.Error("reported bitrate should not be marked as estimated")
	}
}

func TestRender_EstimatedBitrate(t *testing.T) {
	rep := &model.Report{
		FileSize:         2880000,
		Duration:         3 * time.Minute,
		Channels:         1,
		Bitrate:          128,
		BitrateEstimated: true,
	}

	var b strings.Builder
	Render(&b, rep)
	out := b.String()

	if !strings.Contains(out, "Bitrate: 128 kbps (estimated)") {
		t.Errorf("estimated bitrate should be marked, got:\n%s", out)
	}
	if !strings.Contains(out, "Channels: Mono") {
		t.Errorf("single channel should render as Mono, got:\n%s", out)
	}
}

func TestRender_UnknownFields(t *testing.T) {
	rep := &model.Report{FileSize: 1024 * 1024}

	var b strings.Builder
	Render(&b, rep)
	out := b.String()

	for _, want := range []string{
		"Duration: Unknown",
		"Channels: Unknown",
		"Sample Rate: Unknown",
		"Bitrate: Unknown",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report should contain %q, got:\n%s", want, out)
		}
	}
}

func TestRender_Tags(t *testing.T) {
	rep := &model.Report{
		FileSize: 1024,
		Artist:   "Some Artist",
		Title:    "Some Title",
		Year:     "1997",
	}

	var b strings.Builder
	Render(&b, rep)
	out := b.String()

	for _, want := range []string{"Artist: Some Artist", "Title: Some Title", "Year: 1997"} {
		if !strings.Contains(out, want) {
			t.Errorf("report should contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Album:") {
		t.Error("empty tags should not render")
	}
}

func TestRender_Warnings(t *testing.T) {
	rep := &model.Report{
		FileSize: 1024,
		Warnings: []string{"frame headers not found"},
	}

	var b strings.Builder
	Render(&b, rep)

	if !strings.Contains(b.String(), "Warning: frame headers not found") {
		t.Errorf("warnings should render, got:\n%s", b.String())
	}
}

func TestRenderError(t *testing.T) {
	var b strings.Builder
	RenderError(&b, errors.New("download failed: HTTP 404: Not Found"))
	out := b.String()

	if !strings.HasPrefix(out, "Error:\n") {
		t.Errorf("error block should start with Error:, got:\n%s", out)
	}
	if !strings.Contains(out, "download failed: HTTP 404: Not Found") {
		t.Errorf("error block should contain the message, got:\n%s", out)
	}
	if strings.Contains(out, "Audio Metadata") {
		t.Error("error block should not contain metadata")
	}
}
