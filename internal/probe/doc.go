// Package probe provides the orchestration logic for fetching a remote
// audio file and extracting its metadata.
//
// # Prober
//
// The Prober runs the whole pipeline for one URL:
//
//  1. HEAD request to announce the expected size
//  2. Blocking full-file download into a temp file
//  3. Metadata extraction via the audiometa library
//  4. ID3 detail pass for MP3s
//  5. Optional embedded-artwork extraction
//
// # Basic Usage
//
//	prober := probe.NewProber(settings, func(event probe.ProgressEvent) {
//	    fmt.Println(event.Message)
//	}, nil)
//
//	rep, err := prober.Probe(ctx, "https://example.com/song.mp3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Kinds
//
// Probe failures fall into exactly two kinds, distinguished with
// errors.Is:
//
//	if errors.Is(err, probe.ErrNetwork) { ... }     // fetch failed
//	if errors.Is(err, probe.ErrUnsupported) { ... } // not a readable audio file
//
// Neither kind is retried; both are surfaced to the user.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// A second optional callback receives raw byte counts during the
// download for progress-bar rendering.
package probe
