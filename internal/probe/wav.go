package probe

import (
	"io"

	"github.com/go-audio/wav"
	"github.com/simonhull/audiometa"
)

// wavParser plugs WAV support into the metadata library's parser
// registry, which detects RIFF/WAVE containers but ships no parser for
// them. Decoding is delegated to the go-audio WAV decoder.
type wavParser struct{}

// Parse reads the RIFF headers and fills in the technical info. WAV
// carries no tag metadata here, so Tags stays empty.
func (wavParser) Parse(r io.ReaderAt, size int64, path string) (*audiometa.File, error) {
	d := wav.NewDecoder(io.NewSectionReader(r, 0, size))
	if !d.IsValidFile() {
		return nil, &audiometa.CorruptedFileError{
			Path:   path,
			Reason: "invalid WAV file",
		}
	}

	duration, err := d.Duration()
	if err != nil {
		return nil, &audiometa.CorruptedFileError{
			Path:   path,
			Reason: "WAV duration: " + err.Error(),
		}
	}

	file := &audiometa.File{
		Path:   path,
		Format: audiometa.FormatWAV,
		Size:   size,
		Tags:   audiometa.Tags{},
		Audio: audiometa.AudioInfo{
			Duration:   duration,
			SampleRate: int(d.SampleRate),
			BitDepth:   int(d.BitDepth),
			Channels:   int(d.NumChans),
			// Byte rate from the fmt chunk, in bits per second like
			// the other parsers report it.
			Bitrate: int(d.AvgBytesPerSec) * 8,
		},
	}

	if d.WavAudioFormat == 1 {
		file.Audio.Codec = "PCM"
		file.Audio.Lossless = true
	}

	return file, nil
}

func init() {
	audiometa.RegisterParser(audiometa.FormatWAV, wavParser{})
}
