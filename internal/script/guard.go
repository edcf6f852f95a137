package script

import "github.com/dshills/snipstorm/internal/editor"

// guardMark is the transient mark the guard parks at the cursor while an
// action script runs.
const guardMark = '`'

// Guard wraps action hook execution with the cursor-validity protocol.
// Before the script runs it marks the real cursor and snapshots the text of
// the cursor's line up to the cursor. Afterwards, a script that set the
// cursor handle wins; otherwise the mark must have survived and the
// pre-cursor line text must be unchanged, or the run fails with UsageError.
type Guard struct {
	Host editor.Host
}

// NewGuard creates a guard for the host.
func NewGuard(host editor.Host) *Guard {
	return &Guard{Host: host}
}

// Execute runs one action script under the protocol. The prior occupant of
// the mark is saved and restored around the run.
func (g *Guard) Execute(run func() (*Result, error)) (*Result, error) {
	host := g.Host

	saved, hadSaved := host.Mark(guardMark)
	defer func() {
		if hadSaved {
			host.SetMark(guardMark, saved)
		} else {
			host.ClearMark(guardMark)
		}
	}()

	host.SetMark(guardMark, host.Cursor())
	lineBefore := host.LineTillCursor()

	res, err := run()
	if err != nil {
		return nil, err
	}

	if res.Cursor.IsSet() {
		host.SetCursor(res.Cursor.Position())
		return res, nil
	}

	markPos, ok := host.Mark(guardMark)
	if !ok {
		return nil, &UsageError{Reason: "line under the cursor was deleted, but \"snip.cursor\" variable is not set"}
	}

	host.SetCursor(markPos)
	if host.LineTillCursor() != lineBefore {
		return nil, &UsageError{Reason: "line under the cursor was modified, but \"snip.cursor\" variable is not set"}
	}
	return res, nil
}
