// Package fix provides text edits and the logic to apply them to a buffer.
// The converter uses it to repair spans that were opened but never closed.
package fix

// TextEdit replaces the bytes [StartOffset, EndOffset) of a buffer with NewText.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Len returns the number of bytes the edit replaces.
func (e TextEdit) Len() int {
	return e.EndOffset - e.StartOffset
}

// Delta returns how much the edit grows (or shrinks) the buffer.
func (e TextEdit) Delta() int {
	return len(e.NewText) - e.Len()
}

// EditBuilder accumulates text edits for one buffer. The zero value is
// ready to use.
type EditBuilder struct {
	Edits []TextEdit
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
}

// Reset drops all pending edits, keeping the allocated capacity.
func (b *EditBuilder) Reset() {
	b.Edits = b.Edits[:0]
}
