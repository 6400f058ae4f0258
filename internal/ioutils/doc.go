// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Temp file creation and writing
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation
//   - Artwork resizing and format conversion
//
// # File Operations
//
//	// Temp file keeping the source extension
//	f, err := ioutils.TempFile("", ".mp3")
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "/path/to/cover.jpg", data)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Image Processing
//
// The ImageService handles embedded artwork:
//
//	svc := ioutils.NewImageService()
//
//	// Resize image to fit within 1000x1000
//	resized, _ := svc.ResizeImage(ctx, artwork, 1000, 1000)
//
//	// Convert to JPEG
//	jpg, _ := svc.ConvertToJPEG(ctx, pngData)
package ioutils
