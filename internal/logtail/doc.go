// Package logtail reads the end of the operator log for display in the TUI.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines and scans the file once, so memory
// stays at O(maxLines) regardless of file size. Lines come back oldest first.
//
//	lines, err := logtail.Read(cfg.LogPath(), 200)
//
// ReadEntries additionally decodes each line as a slog JSON record (time,
// level, msg, plus any attributes). Lines that are not JSON, such as output
// from the standard library logger, are kept as raw text.
//
// # Error Handling
//
// Read returns nil, nil for non-existent files. Lander may not have written
// anything yet. Other errors (permission denied, I/O errors) are returned
// wrapped.
package logtail
