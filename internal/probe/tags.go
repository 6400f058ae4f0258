package probe

import (
	"github.com/bogem/id3v2"

	"github.com/audioprobe/audioprobe/internal/model"
)

// readID3Detail opens an MP3 with the ID3 reader and fills report
// fields the container pass did not provide.
//
// This is a best-effort supplement: MP3s in the wild frequently carry
// ID3v2.3 frames (TYER, TCON) that a format-agnostic pass maps
// incompletely. Existing report values are never overwritten.
func readID3Detail(path string, rep *model.Report) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	if rep.Artist == "" {
		rep.Artist = tag.Artist()
	}
	if rep.Title == "" {
		rep.Title = tag.Title()
	}
	if rep.Album == "" {
		rep.Album = tag.Album()
	}
	if rep.Genre == "" {
		rep.Genre = tag.Genre()
	}

	if rep.Year == "" {
		// TYER (ID3v2.3) first, then TDRC (ID3v2.4)
		if f := tag.GetTextFrame("TYER"); f.Text != "" {
			rep.Year = f.Text
		} else if f := tag.GetTextFrame("TDRC"); f.Text != "" {
			rep.Year = f.Text
		}
	}

	return nil
}
