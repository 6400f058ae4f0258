// Package http provides the HTTP client audioprobe uses to fetch
// remote audio files.
//
// The Client in this package handles:
//   - User-Agent headers
//   - File size retrieval via HEAD requests
//   - Blocking full-file downloads with progress tracking
//   - Separate timeout handling for the size probe and the transfer
//
// # Basic Usage
//
//	client := http.NewClient("audioprobe", 10*time.Second, 60*time.Second)
//
//	// Announce the size before the download
//	size, _ := client.GetFileSize(ctx, audioURL)
//
//	// Fetch the whole file into a temp file
//	path, n, err := client.DownloadTemp(ctx, audioURL, "", func(written, total int64) {
//	    fmt.Printf("%.1f%%\r", float64(written)/float64(total)*100)
//	})
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
