package editor

// Host is the surface the snippet engine requires from the embedding editor.
// All calls are synchronous and side-effecting; the engine runs on the
// editor's single event-processing thread and Host implementations are not
// required to be safe for concurrent use.
type Host interface {
	// Lines returns the buffer contents as an ordered slice of line strings.
	// The returned slice must not be mutated by the caller.
	Lines() []string

	// LineCount returns the number of lines in the buffer.
	LineCount() int

	// Line returns the text of the given zero-based line, without newline.
	Line(n int) string

	// SetLine replaces the text of the given zero-based line.
	SetLine(n int, text string)

	// InsertLine inserts a line so that it becomes line n.
	InsertLine(n int, text string)

	// DeleteLine removes line n. Marks placed on the line are invalidated;
	// marks below it shift up.
	DeleteLine(n int)

	// ReplaceRange replaces the half-open region [start, end) with text,
	// which may span multiple lines. It returns the position just past the
	// inserted text.
	ReplaceRange(start, end Position, text string) Position

	// Cursor returns the current cursor position.
	Cursor() Position

	// SetCursor moves the cursor, clamping to the buffer.
	SetCursor(p Position)

	// LineTillCursor returns the text of the cursor's line up to the cursor
	// column.
	LineTillCursor() string

	// SetMark places a named single-character mark at a position.
	SetMark(name byte, p Position)

	// Mark reports the surviving position of a named mark. A mark whose line
	// was deleted reports ok == false.
	Mark(name byte) (p Position, ok bool)

	// ClearMark removes a named mark.
	ClearMark(name byte)

	// IsWordBoundary reports whether the gap between the two characters of
	// pair is a word boundary under the host's word semantics. pair is
	// exactly two runes: the character before the gap and the one after.
	IsWordBoundary(pair string) bool
}
