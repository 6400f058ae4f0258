package probe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/simonhull/audiometa"

	"github.com/audioprobe/audioprobe/internal/config"
	"github.com/audioprobe/audioprobe/internal/http"
	"github.com/audioprobe/audioprobe/internal/ioutils"
	"github.com/audioprobe/audioprobe/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a probe progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Prober coordinates a single probe: fetch the file, hand it to the
// metadata library, assemble the Report.
type Prober struct {
	settings     *config.Settings
	httpClient   *http.Client
	imageService *ioutils.ImageService

	onProgress func(ProgressEvent)
	onBytes    func(written, total int64)
}

// NewProber creates a new Prober.
//
// onProgress receives human-readable status messages; onBytes receives
// byte-level download progress for UIs that render a progress bar.
// Either callback may be nil.
func NewProber(settings *config.Settings, onProgress func(ProgressEvent), onBytes func(written, total int64)) *Prober {
	return &Prober{
		settings: settings,
		httpClient: http.NewClient(
			settings.UserAgent,
			time.Duration(settings.HeadTimeoutSeconds)*time.Second,
			time.Duration(settings.DownloadTimeoutSeconds)*time.Second,
		),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
		onBytes:      onBytes,
	}
}

// Probe downloads the audio file at url in full and extracts its
// metadata.
//
// The sequence is strictly sequential: a HEAD request announces the
// expected size, the whole body is materialized into a temp file, the
// metadata library inspects it, and the Report is assembled. The temp
// file is removed before returning unless Settings.KeepFile is set, in
// which case Report.Path points at it.
//
// Errors are classified into two kinds:
//   - ErrNetwork: the fetch failed (check with errors.Is)
//   - ErrUnsupported: the library could not recognize or parse the file
//
// A recognized container with unreadable frame headers is not an error;
// the Report is returned with the unknown fields left at zero.
func (p *Prober) Probe(ctx context.Context, url string) (*model.Report, error) {
	start := time.Now()

	// Announce the size before committing to the full download.
	// Best-effort: a missing Content-Length is not fatal.
	if expected, err := p.httpClient.GetFileSize(ctx, url); err == nil {
		p.progress(ProgressEvent{
			Message: fmt.Sprintf("Downloading the entire file (%.2f MB)...", model.SizeMB(expected)),
			Level:   LevelInfo,
		})
	} else {
		p.progress(ProgressEvent{
			Message: "Downloading the entire file (size unknown)...",
			Level:   LevelInfo,
		})
	}

	path, size, err := p.httpClient.DownloadTemp(ctx, url, p.settings.TempDir, p.onBytes)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	keep := p.settings.KeepFile
	defer func() {
		if !keep {
			os.Remove(path)
		}
	}()

	p.progress(ProgressEvent{
		Message: fmt.Sprintf("Downloaded %.2f MB, reading metadata", model.SizeMB(size)),
		Level:   LevelVerbose,
	})

	rep := &model.Report{
		URL:      url,
		FileSize: size,
	}
	if keep {
		rep.Path = path
	}

	if err := p.extract(ctx, path, rep); err != nil {
		return nil, err
	}

	rep.Elapsed = time.Since(start)
	p.progress(ProgressEvent{
		Message: fmt.Sprintf("Probe completed in %.2f seconds", rep.Elapsed.Seconds()),
		Level:   LevelSuccess,
	})

	return rep, nil
}

// extract runs the metadata library over the downloaded file and fills
// in the report.
func (p *Prober) extract(ctx context.Context, path string, rep *model.Report) error {
	file, err := audiometa.OpenContext(ctx, path)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return p.classifyParseError(err)
	}
	defer file.Close()

	rep.Format = file.Format.String()
	rep.Duration = file.Audio.Duration
	rep.Channels = file.Audio.Channels
	rep.SampleRate = file.Audio.SampleRate

	// The library reports bits per second; the report uses kbps.
	if file.Audio.Bitrate > 0 {
		rep.Bitrate = file.Audio.Bitrate / 1000
	} else if rep.Duration > 0 {
		rep.Bitrate = model.EstimateBitrate(rep.FileSize, rep.Duration)
		rep.BitrateEstimated = rep.Bitrate > 0
	}

	rep.Artist = file.Tags.Artist
	rep.Title = file.Tags.Title
	rep.Album = file.Tags.Album

	for _, w := range file.Warnings {
		rep.Warnings = append(rep.Warnings, w.Message)
		p.progress(ProgressEvent{Message: w.Message, Level: LevelWarning})
	}

	// Second pass over MP3s with the ID3 reader: picks up genre, year
	// and any text frames the container pass left empty.
	if file.Format == audiometa.FormatMP3 {
		if err := readID3Detail(path, rep); err != nil {
			p.progress(ProgressEvent{
				Message: fmt.Sprintf("ID3 detail pass failed: %v", err),
				Level:   LevelVerbose,
			})
		}
	}

	if p.settings.ArtworkPath != "" {
		if saved, err := p.saveArtwork(ctx, file, p.settings.ArtworkPath); err != nil {
			p.progress(ProgressEvent{
				Message: fmt.Sprintf("Error saving artwork: %v", err),
				Level:   LevelWarning,
			})
		} else {
			p.progress(ProgressEvent{
				Message: fmt.Sprintf("Saved artwork to %s", saved),
				Level:   LevelSuccess,
			})
		}
	}

	return nil
}

// classifyParseError maps metadata-library failures onto ErrUnsupported.
func (p *Prober) classifyParseError(err error) error {
	var unsupported *audiometa.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return fmt.Errorf("%w: %s", ErrUnsupported, unsupported.Reason)
	}

	var corrupted *audiometa.CorruptedFileError
	if errors.As(err, &corrupted) {
		return fmt.Errorf("%w: %s", ErrUnsupported, corrupted.Reason)
	}

	// Anything else from the parser means the payload was not a
	// readable audio file either.
	return fmt.Errorf("%w: %v", ErrUnsupported, err)
}

// saveArtwork extracts the first embedded picture and writes it to dest,
// optionally resized and converted to JPEG. Returns the written path,
// which can differ from dest after sanitization.
func (p *Prober) saveArtwork(ctx context.Context, file *audiometa.File, dest string) (string, error) {
	artwork, err := file.ExtractArtwork()
	if err != nil {
		return "", err
	}
	if len(artwork) == 0 {
		return "", fmt.Errorf("no embedded artwork")
	}

	data := artwork[0].Data

	if p.settings.ArtworkResize {
		if resized, err := p.imageService.ResizeImage(ctx, data, p.settings.ArtworkMaxSize, p.settings.ArtworkMaxSize); err == nil {
			data = resized
		}
	}
	if p.settings.ConvertArtworkToJPG {
		if converted, err := p.imageService.ConvertToJPEG(ctx, data); err == nil {
			data = converted
		}
	}

	return p.writeArtwork(ctx, dest, data)
}

// writeArtwork materializes artwork bytes at dest. The base name is
// sanitized and missing parent directories are created.
func (p *Prober) writeArtwork(ctx context.Context, dest string, data []byte) (string, error) {
	dir := filepath.Dir(dest)
	if err := ioutils.EnsureDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, ioutils.SanitizeFileName(filepath.Base(dest)))
	if err := ioutils.WriteFile(ctx, path, data); err != nil {
		return "", err
	}

	return path, nil
}

func (p *Prober) progress(event ProgressEvent) {
	if p.onProgress != nil {
		p.onProgress(event)
	}
}
