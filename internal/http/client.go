package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/audioprobe/audioprobe/internal/ioutils"
)

// Client wraps the HTTP operations audioprobe needs.
//
// Client provides:
//   - Configured User-Agent header
//   - Separate timeouts for the size probe and the transfer
//   - Full-file download to a temp file with progress tracking
//   - File size retrieval via HEAD requests
//
// Example usage:
//
//	client := NewClient("audioprobe", 10*time.Second, 60*time.Second)
//
//	// Learn the payload size before committing to the download
//	size, err := client.GetFileSize(ctx, audioURL)
//
//	// Download with progress
//	path, n, err := client.DownloadTemp(ctx, audioURL, "", func(written, total int64) {
//	    fmt.Printf("%d / %d bytes\n", written, total)
//	})
type Client struct {
	headClient     *http.Client
	downloadClient *http.Client
	userAgent      string
}

// NewClient creates a new HTTP client.
//
// headTimeout bounds the HEAD size probe; downloadTimeout bounds the
// full transfer and should be generous for large files.
func NewClient(userAgent string, headTimeout, downloadTimeout time.Duration) *Client {
	return &Client{
		headClient:     &http.Client{Timeout: headTimeout},
		downloadClient: &http.Client{Timeout: downloadTimeout},
		userAgent:      userAgent,
	}
}

// ProgressWriter wraps a writer to track download progress.
//
// Use this to monitor large downloads by providing an OnUpdate callback
// that receives the current bytes written and total expected bytes.
//
// Example:
//
//	pw := &ProgressWriter{
//	    Writer: file,
//	    Total:  contentLength,
//	    OnUpdate: func(written, total int64) {
//	        fmt.Printf("%d / %d bytes\n", written, total)
//	    },
//	}
//	io.Copy(pw, response.Body)
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (from Content-Length header).
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with current progress.
	// Parameters are (bytesWritten, totalExpected).
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// GetFileSize returns the size of a file at the given URL via HEAD request.
//
// The original size announcement happens before the download starts, so
// this is best-effort: callers should treat an error as "size unknown"
// rather than a fatal condition.
//
// Returns an error if:
//   - The request fails
//   - The server responds with a non-success status
//   - The server doesn't return a Content-Length header
//
// Example:
//
//	size, err := client.GetFileSize(ctx, audioURL)
//	fmt.Printf("File is %d bytes\n", size)
func (c *Client) GetFileSize(ctx context.Context, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.headClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Error responses can carry a Content-Length of their own; that is
	// the size of the error page, not the file.
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	if resp.ContentLength < 0 {
		return 0, fmt.Errorf("no Content-Length header for %s", url)
	}

	return resp.ContentLength, nil
}

// DownloadFile downloads a file to the specified path with optional progress callback.
//
// The file is created (or truncated if it exists) and the content is
// streamed directly to disk. The call blocks until the whole body has
// been transferred.
//
// Parameters:
//   - ctx: Context for cancellation
//   - url: URL to download from
//   - destPath: Local file path to save to
//   - onProgress: Optional callback called with (bytesWritten, totalBytes)
//     Pass nil to disable progress tracking
//
// Returns the number of bytes written.
//
// Example:
//
//	n, err := client.DownloadFile(ctx, audioURL, "/tmp/probe.mp3", func(written, total int64) {
//	    if total > 0 {
//	        fmt.Printf("%.1f%%\r", float64(written)/float64(total)*100)
//	    }
//	})
func (c *Client) DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var writer io.Writer = file
	if onProgress != nil {
		writer = &ProgressWriter{
			Writer:   file,
			Total:    resp.ContentLength,
			OnUpdate: onProgress,
		}
	}

	return io.Copy(writer, resp.Body)
}

// DownloadTemp downloads a URL into a temporary file.
//
// The temp file keeps the extension of the URL path so that tag-reading
// libraries can use it as a format hint. The caller is responsible for
// removing the file when done.
//
// Parameters:
//   - ctx: Context for cancellation
//   - url: URL to download from
//   - dir: Directory for the temp file (empty uses the system default)
//   - onProgress: Optional progress callback, as for DownloadFile
//
// Returns the temp file path and the number of bytes written.
//
// Example:
//
//	path, n, err := client.DownloadTemp(ctx, audioURL, "", nil)
//	if err != nil {
//	    return err
//	}
//	defer os.Remove(path)
func (c *Client) DownloadTemp(ctx context.Context, url, dir string, onProgress func(written, total int64)) (string, int64, error) {
	tmp, err := ioutils.TempFile(dir, ioutils.ExtFromURL(url))
	if err != nil {
		return "", 0, err
	}
	path := tmp.Name()
	// DownloadFile reopens the path itself
	tmp.Close()

	n, err := c.DownloadFile(ctx, url, path, onProgress)
	if err != nil {
		os.Remove(path)
		return "", 0, err
	}

	return path, n, nil
}
