package probe

import "errors"

// The two failure kinds a probe surfaces. Neither is retried.
var (
	// ErrNetwork marks failures while fetching the file: unreachable
	// host, non-success status, or an interrupted transfer.
	ErrNetwork = errors.New("download failed")

	// ErrUnsupported marks files the metadata library could not
	// recognize or parse.
	ErrUnsupported = errors.New("unsupported or unreadable audio format")
)
