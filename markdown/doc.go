// Package markdown inserts Markdown markup into an editable text buffer at
// the current caret or selection.
//
// Offsets are 0-based rune offsets. A selection is an (anchor, extent) pair
// that may be inverted; every operation normalizes it to [min, max) first.
// Block constructs (header, list, quote, divider, fenced code) are separated
// from surrounding text by exactly one blank line and leave the caret at the
// start of the line following the block. Inline constructs (bold, italic,
// strike-through, link, image, inline code) are inserted in place.
//
// Operations are synchronous and not reentrant. They either fail validation
// before touching the buffer or complete fully.
package markdown
