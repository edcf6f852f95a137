package script

import (
	"fmt"

	"github.com/dshills/snipstorm/internal/editor"
)

// Cursor is the handle an action script uses to declare a new cursor
// position. It starts unset with coordinates seeded from the real cursor;
// any explicit write marks it set. Preserve refreshes the coordinates from
// the real cursor without marking it set, so "preserved" and "explicitly
// set" stay distinguishable — the guard relies on that distinction.
type Cursor struct {
	line int
	col  int
	set  bool
}

// NewCursor creates an unset cursor seeded from a position.
func NewCursor(p editor.Position) *Cursor {
	return &Cursor{line: p.Line, col: p.Col}
}

// Set moves the handle to a zero-based (line, column) pair and marks it set.
func (c *Cursor) Set(line, col int) {
	c.line = line
	c.col = col
	c.set = true
}

// SetLine updates only the line and marks the handle set.
func (c *Cursor) SetLine(line int) {
	c.line = line
	c.set = true
}

// SetCol updates only the column and marks the handle set.
func (c *Cursor) SetCol(col int) {
	c.col = col
	c.set = true
}

// Preserve snapshots the host's current real cursor into the handle. The
// set flag is left alone.
func (c *Cursor) Preserve(host editor.Host) {
	p := host.Cursor()
	c.line = p.Line
	c.col = p.Col
}

// IsSet reports whether the script explicitly positioned the cursor.
func (c *Cursor) IsSet() bool { return c.set }

// Position returns the handle's coordinates.
func (c *Cursor) Position() editor.Position {
	return editor.Position{Line: c.line, Col: c.col}
}

// String returns the coordinates for debugging.
func (c *Cursor) String() string {
	return fmt.Sprintf("(%d, %d)", c.line, c.col)
}
