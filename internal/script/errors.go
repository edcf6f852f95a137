package script

import (
	"errors"
	"fmt"
)

// Errors for script engine operations.
var (
	// ErrEngineClosed is returned when executing on a closed engine.
	ErrEngineClosed = errors.New("script engine is closed")
)

// Diagnostics describes where a failing script came from. It is attached to
// every compile or execution failure so the host can print full context.
type Diagnostics struct {
	// Location is where the snippet was defined (file:line).
	Location string

	// Trigger is the snippet's trigger text.
	Trigger string

	// Description is the snippet's descriptive text.
	Description string

	// ContextSource is the context predicate source, or "<none>".
	ContextSource string

	// PreExpandSource is the pre-expand action source, or "<none>".
	PreExpandSource string

	// PostExpandSource is the post-expand action source, or "<none>".
	PostExpandSource string

	// Script is the fully reconstructed text that ran, preamble included.
	Script string
}

// String renders the diagnostic block the way the host is expected to print
// it.
func (d Diagnostics) String() string {
	return fmt.Sprintf(
		"\nDefined in: %s\nTrigger: %s\nDescription: %s\nContext: %s\nPre-expand: %s\nPost-expand: %s\nScript:\n%s\n",
		d.Location, d.Trigger, d.Description,
		orNone(d.ContextSource), orNone(d.PreExpandSource), orNone(d.PostExpandSource),
		d.Script,
	)
}

func orNone(s string) string {
	if s == "" {
		return "<none>"
	}
	return s
}

// ScriptError wraps a failure raised while compiling or executing snippet
// script source. The engine never swallows these; they propagate to the host
// enriched with Diagnostics.
type ScriptError struct {
	Diagnostics
	Err error
}

// Error returns the underlying failure followed by the diagnostic block.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("snippet script failed: %v%s", e.Err, e.Diagnostics)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error { return e.Err }

// UsageError reports that an action script left the cursor in an
// inconsistent state. It is a script-authoring mistake, not an engine bug,
// and its message tells the author how to fix it.
type UsageError struct {
	Reason string
}

// Error returns the fix-it instruction for the script author.
func (e *UsageError) Error() string {
	return e.Reason +
		`; either set "snip.cursor" to the new cursor position, or do not modify the cursor line`
}
