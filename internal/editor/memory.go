package editor

import "strings"

// Memory is an in-process Host backed by a line slice. It implements the
// mark survival rules the cursor guard depends on: deleting a mark's line
// invalidates the mark, edits above a mark shift it.
type Memory struct {
	lines    []string
	cursor   Position
	marks    map[byte]Position
	boundary func(pair string) bool
}

// MemoryOption configures a Memory host.
type MemoryOption func(*Memory)

// WithBoundaryFunc overrides the word-boundary test.
func WithBoundaryFunc(fn func(pair string) bool) MemoryOption {
	return func(m *Memory) {
		m.boundary = fn
	}
}

// NewMemory creates an in-memory host with the given initial lines.
// With no lines it starts as a single empty line, the way editors present an
// empty buffer.
func NewMemory(lines []string, opts ...MemoryOption) *Memory {
	m := &Memory{
		lines:    append([]string(nil), lines...),
		marks:    make(map[byte]Position),
		boundary: IsWordBoundary,
	}
	if len(m.lines) == 0 {
		m.lines = []string{""}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Lines returns the buffer contents.
func (m *Memory) Lines() []string { return m.lines }

// LineCount returns the number of lines.
func (m *Memory) LineCount() int { return len(m.lines) }

// Line returns the text of line n, or "" when n is out of range.
func (m *Memory) Line(n int) string {
	if n < 0 || n >= len(m.lines) {
		return ""
	}
	return m.lines[n]
}

// SetLine replaces the text of line n.
func (m *Memory) SetLine(n int, text string) {
	if n < 0 || n >= len(m.lines) {
		return
	}
	m.lines[n] = text
}

// InsertLine inserts text so that it becomes line n. Marks at or below n
// shift down.
func (m *Memory) InsertLine(n int, text string) {
	if n < 0 {
		n = 0
	}
	if n > len(m.lines) {
		n = len(m.lines)
	}
	m.lines = append(m.lines[:n], append([]string{text}, m.lines[n:]...)...)
	for name, p := range m.marks {
		if p.Line >= n {
			p.Line++
			m.marks[name] = p
		}
	}
	if m.cursor.Line >= n {
		m.cursor.Line++
	}
}

// DeleteLine removes line n. Marks on the line are invalidated; marks below
// shift up.
func (m *Memory) DeleteLine(n int) {
	if n < 0 || n >= len(m.lines) {
		return
	}
	m.lines = append(m.lines[:n], m.lines[n+1:]...)
	if len(m.lines) == 0 {
		m.lines = []string{""}
	}
	for name, p := range m.marks {
		switch {
		case p.Line == n:
			delete(m.marks, name)
		case p.Line > n:
			p.Line--
			m.marks[name] = p
		}
	}
	if m.cursor.Line > n {
		m.cursor.Line--
	}
	m.clampCursor()
}

// ReplaceRange replaces [start, end) with text and returns the position just
// past the inserted text. Marks inside the replaced region are invalidated;
// marks on later lines shift by the line delta.
func (m *Memory) ReplaceRange(start, end Position, text string) Position {
	start = m.clamp(start)
	end = m.clamp(end)
	if end.Before(start) {
		start, end = end, start
	}

	prefix := m.lines[start.Line][:start.Col]
	suffix := m.lines[end.Line][end.Col:]

	newLines := strings.Split(prefix+text+suffix, "\n")
	replaced := end.Line - start.Line + 1
	lineDelta := len(newLines) - replaced

	tail := append([]string(nil), m.lines[end.Line+1:]...)
	m.lines = append(append(m.lines[:start.Line], newLines...), tail...)

	for name, p := range m.marks {
		switch {
		case p.Before(start):
			// untouched
		case p.Line > end.Line:
			p.Line += lineDelta
			m.marks[name] = p
		default:
			delete(m.marks, name)
		}
	}

	insLines := strings.Split(text, "\n")
	var after Position
	if len(insLines) == 1 {
		after = Position{Line: start.Line, Col: start.Col + len(text)}
	} else {
		after = Position{
			Line: start.Line + len(insLines) - 1,
			Col:  len(insLines[len(insLines)-1]),
		}
	}
	m.clampCursor()
	return after
}

// Cursor returns the cursor position.
func (m *Memory) Cursor() Position { return m.cursor }

// SetCursor moves the cursor, clamping to the buffer.
func (m *Memory) SetCursor(p Position) {
	m.cursor = m.clamp(p)
}

// LineTillCursor returns the cursor's line up to the cursor column.
func (m *Memory) LineTillCursor() string {
	line := m.Line(m.cursor.Line)
	if m.cursor.Col >= len(line) {
		return line
	}
	return line[:m.cursor.Col]
}

// SetMark places a named mark.
func (m *Memory) SetMark(name byte, p Position) {
	m.marks[name] = m.clamp(p)
}

// Mark reports the surviving position of a named mark.
func (m *Memory) Mark(name byte) (Position, bool) {
	p, ok := m.marks[name]
	return p, ok
}

// ClearMark removes a named mark.
func (m *Memory) ClearMark(name byte) {
	delete(m.marks, name)
}

// IsWordBoundary applies the configured boundary test.
func (m *Memory) IsWordBoundary(pair string) bool {
	return m.boundary(pair)
}

func (m *Memory) clamp(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(m.lines) {
		p.Line = len(m.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Col > len(m.lines[p.Line]) {
		p.Col = len(m.lines[p.Line])
	}
	return p
}

func (m *Memory) clampCursor() {
	m.cursor = m.clamp(m.cursor)
}
