package snippet

import (
	"fmt"

	"github.com/dshills/snipstorm/internal/script"
)

// MatchError wraps a failure raised while a regex-mode trigger was compiled
// or scanned. It is never downgraded to a plain no-match; it propagates with
// the same diagnostic context as a script failure.
type MatchError struct {
	script.Diagnostics
	Err error
}

// Error returns the underlying failure followed by the diagnostic block.
func (e *MatchError) Error() string {
	return fmt.Sprintf("trigger match failed: %v%s", e.Err, e.Diagnostics)
}

// Unwrap returns the underlying error.
func (e *MatchError) Unwrap() error { return e.Err }
