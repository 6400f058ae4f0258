// Package model defines the core data structures used throughout
// audioprobe.
//
// # Report
//
// Report holds everything extracted from one probed file:
//
//	rep := &model.Report{
//	    FileSize:   5242880,
//	    Duration:   225 * time.Second,
//	    Channels:   2,
//	    SampleRate: 44100,
//	    Bitrate:    192,
//	}
//
// # Derived fields
//
// The package also provides the pure helpers that turn raw values into
// the labels the report prints:
//
//	model.FormatDuration(rep.Duration) // "3:45"
//	model.ChannelLabel(rep.Channels)   // "Stereo"
//	model.SizeMB(rep.FileSize)         // 5.0
//
// When the metadata library reports no bitrate, EstimateBitrate computes
// one from size and duration.
package model
