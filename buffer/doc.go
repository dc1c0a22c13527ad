// Package buffer implements the rune-accurate document model behind the
// markedit editor.
//
// Coordinates are 0-based (Row, Col) in runes. Ranges are half-open
// selections in document coordinates: [Start, End).
//
// A Buffer also exposes flat rune offsets (Len, RuneAt, Slice, Replace,
// SelectionOffsets, SetSelectionOffsets) so the markdown package can format
// it directly. Newlines count as one rune in offset space.
package buffer
