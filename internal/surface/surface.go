// Package surface defines where presenters draw phrase text.
package surface

// Surface receives the visible phrase text and its decorations.
type Surface interface {
	SetText(s string)
	SetCursorVisible(visible bool)
	SetContainerVisible(visible bool)
}

// Buffer is a Surface that keeps the latest state for a view to render.
type Buffer struct {
	text      string
	cursor    bool
	container bool
	writes    int
}

// NewBuffer returns an empty, visible Buffer without a cursor.
func NewBuffer() *Buffer {
	return &Buffer{container: true}
}

// SetText implements Surface.
func (b *Buffer) SetText(s string) {
	b.text = s
	b.writes++
}

// SetCursorVisible implements Surface.
func (b *Buffer) SetCursorVisible(visible bool) {
	b.cursor = visible
}

// SetContainerVisible implements Surface.
func (b *Buffer) SetContainerVisible(visible bool) {
	b.container = visible
}

// Text returns the current text.
func (b *Buffer) Text() string {
	return b.text
}

// CursorVisible reports whether the cursor should be drawn.
func (b *Buffer) CursorVisible() bool {
	return b.cursor
}

// ContainerVisible reports whether the text container is faded in.
func (b *Buffer) ContainerVisible() bool {
	return b.container
}

// Writes returns the number of SetText calls so far.
func (b *Buffer) Writes() int {
	return b.writes
}
