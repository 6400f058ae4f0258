package probe

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/simonhull/audiometa"

	"github.com/audioprobe/audioprobe/internal/config"
)

func testSettings(tempDir string) *config.Settings {
	s := config.DefaultSettings()
	s.TempDir = tempDir
	s.HeadTimeoutSeconds = 5
	s.DownloadTimeoutSeconds = 5
	return s
}

// wavFixture renders one second of 16-bit PCM silence.
func wavFixture(t *testing.T, sampleRate, channels int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, sampleRate*channels),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

// mp3Fixture builds about one second of constant-rate MPEG-1 Layer III
// frames: 128 kbps, 44.1 kHz, stereo. The frame bodies are silence;
// only the headers matter for metadata extraction.
func mp3Fixture() []byte {
	const frameSize = 417 // 144 * 128000 / 44100
	frame := make([]byte, frameSize)
	frame[0] = 0xFF // frame sync
	frame[1] = 0xFB // MPEG-1 Layer III, no CRC
	frame[2] = 0x90 // 128 kbps, 44.1 kHz
	frame[3] = 0x00 // stereo

	return bytes.Repeat(frame, 39)
}

func serveBytes(t *testing.T, payload []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProbe_WAV(t *testing.T) {
	payload := wavFixture(t, 8000, 1)
	srv := serveBytes(t, payload)

	prober := NewProber(testSettings(t.TempDir()), nil, nil)
	rep, err := prober.Probe(context.Background(), srv.URL+"/tone.wav")
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}

	if rep.Format != "WAV" {
		t.Errorf("Format = %q, want WAV", rep.Format)
	}
	if sec := rep.Duration.Seconds(); sec < 0.9 || sec > 1.1 {
		t.Errorf("Duration = %.3fs, want about 1s", sec)
	}
	if rep.Channels != 1 {
		t.Errorf("Channels = %d, want 1", rep.Channels)
	}
	if rep.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", rep.SampleRate)
	}
	// 8000 Hz * 16 bit mono = 128 kbps, straight from the fmt chunk.
	if rep.Bitrate != 128 {
		t.Errorf("Bitrate = %d kbps, want 128", rep.Bitrate)
	}
	if rep.BitrateEstimated {
		t.Error("bitrate comes from the container, it should not be marked estimated")
	}
	if rep.FileSize != int64(len(payload)) {
		t.Errorf("FileSize = %d, want %d", rep.FileSize, len(payload))
	}
}

func TestProbe_MP3(t *testing.T) {
	payload := mp3Fixture()
	srv := serveBytes(t, payload)

	prober := NewProber(testSettings(t.TempDir()), nil, nil)
	rep, err := prober.Probe(context.Background(), srv.URL+"/track.mp3")
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}

	if rep.Format != "MP3" {
		t.Errorf("Format = %q, want MP3", rep.Format)
	}
	// 39 frames of 417 bytes at 128 kbps is 1.016s of audio.
	if sec := rep.Duration.Seconds(); sec < 0.9 || sec > 1.1 {
		t.Errorf("Duration = %.3fs, want about 1s", sec)
	}
	if rep.Channels != 2 {
		t.Errorf("Channels = %d, want 2", rep.Channels)
	}
	if rep.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", rep.SampleRate)
	}
	if rep.Bitrate != 128 {
		t.Errorf("Bitrate = %d kbps, want 128", rep.Bitrate)
	}
	if rep.BitrateEstimated {
		t.Error("bitrate comes from the frame header, it should not be marked estimated")
	}
	if rep.FileSize != int64(len(payload)) {
		t.Errorf("FileSize = %d, want %d", rep.FileSize, len(payload))
	}
}

func TestWriteArtwork_SanitizesAndCreatesDirs(t *testing.T) {
	prober := NewProber(testSettings(t.TempDir()), nil, nil)

	dest := filepath.Join(t.TempDir(), "covers", "nested", `A: Cover?.jpg`)
	saved, err := prober.writeArtwork(context.Background(), dest, []byte("image bytes"))
	if err != nil {
		t.Fatalf("writeArtwork() error: %v", err)
	}

	if got, want := filepath.Base(saved), "A_ Cover_.jpg"; got != want {
		t.Errorf("artwork name = %q, want %q", got, want)
	}
	if _, err := os.Stat(saved); err != nil {
		t.Errorf("artwork file should exist: %v", err)
	}
}

func TestProbe_UnreachableHost(t *testing.T) {
	prober := NewProber(testSettings(t.TempDir()), nil, nil)

	// Reserved TEST-NET-1 address, nothing listens there
	rep, err := prober.Probe(context.Background(), "http://192.0.2.1:9/x.mp3")
	if err == nil {
		t.Fatal("Probe() should fail for an unreachable host")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error should be ErrNetwork, got: %v", err)
	}
	if rep != nil {
		t.Error("no report should be returned on network failure")
	}
}

func TestProbe_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	prober := NewProber(testSettings(t.TempDir()), nil, nil)

	_, err := prober.Probe(context.Background(), srv.URL+"/missing.mp3")
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("404 should map to ErrNetwork, got: %v", err)
	}
}

func TestProbe_NonAudioPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>definitely not audio</body></html>"))
	}))
	defer srv.Close()

	prober := NewProber(testSettings(t.TempDir()), nil, nil)

	rep, err := prober.Probe(context.Background(), srv.URL+"/page.mp3")
	if err == nil {
		t.Fatal("Probe() should fail on a non-audio payload")
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("error should be ErrUnsupported, got: %v", err)
	}
	if rep != nil {
		t.Error("no report should be returned for unsupported payloads")
	}
}

func TestProbe_CleansUpTempFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("junk payload"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	prober := NewProber(testSettings(dir), nil, nil)

	if _, err := prober.Probe(context.Background(), srv.URL+"/x.ogg"); err == nil {
		t.Fatal("expected probe failure for junk payload")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("temp dir should be empty after probe, found %d entries", len(entries))
	}
}

func TestProbe_AnnouncesSize(t *testing.T) {
	payload := strings.Repeat("x", 1024*1024)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		if r.Method == http.MethodHead {
			return
		}
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	var messages []string
	prober := NewProber(testSettings(t.TempDir()), func(event ProgressEvent) {
		messages = append(messages, event.Message)
	}, nil)

	// The payload is junk, so the probe fails after the download; the
	// size announcement must still have happened first.
	prober.Probe(context.Background(), srv.URL+"/big.wav")

	found := false
	for _, m := range messages {
		if strings.Contains(m, "1.00 MB") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a size announcement mentioning 1.00 MB, got %v", messages)
	}
}

func TestProbe_ReportsDownloadBytes(t *testing.T) {
	payload := strings.Repeat("y", 8192)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	var last int64
	prober := NewProber(testSettings(t.TempDir()), nil, func(written, total int64) {
		last = written
	})

	prober.Probe(context.Background(), srv.URL+"/x.mp3")

	if last != int64(len(payload)) {
		t.Errorf("byte progress should reach %d, got %d", len(payload), last)
	}
}

func TestClassifyParseError(t *testing.T) {
	prober := NewProber(testSettings(t.TempDir()), nil, nil)

	unsupported := &audiometa.UnsupportedFormatError{Path: "x", Reason: "no parser"}
	if err := prober.classifyParseError(unsupported); !errors.Is(err, ErrUnsupported) {
		t.Errorf("UnsupportedFormatError should map to ErrUnsupported, got %v", err)
	}

	corrupted := &audiometa.CorruptedFileError{Path: "x", Reason: "bad header"}
	if err := prober.classifyParseError(corrupted); !errors.Is(err, ErrUnsupported) {
		t.Errorf("CorruptedFileError should map to ErrUnsupported, got %v", err)
	}

	if err := prober.classifyParseError(errors.New("mystery")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("unknown parse errors should map to ErrUnsupported, got %v", err)
	}
}

func TestProbe_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prober := NewProber(testSettings(t.TempDir()), nil, nil)
	_, err := prober.Probe(ctx, srv.URL+"/x.mp3")
	if err == nil {
		t.Fatal("Probe() should fail when the context is already cancelled")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error should be context.Canceled, got: %v", err)
	}
}
