// Package editor provides a Bubble Tea Markdown editor component backed by
// the buffer package.
//
// Typing, movement, and selection are handled here; every formatting key
// binding dispatches a markdown.Action against the underlying buffer, so the
// component and headless callers share one code path.
package editor
