package snippet

import (
	"github.com/dshills/snipstorm/internal/editor"
	"github.com/dshills/snipstorm/internal/indent"
	"github.com/dshills/snipstorm/internal/script"
)

// Env bundles the external collaborators a definition needs to match and
// launch: the host editor, the script engine and the indent utility.
type Env struct {
	Host   editor.Host
	Script *script.Engine
	Indent *indent.Util
}

// isWordBoundary routes through the host's word semantics, falling back to
// the default test when no host is attached (definition self-checks at
// construction time run without one).
func (e *Env) isWordBoundary(pair string) bool {
	if e != nil && e.Host != nil {
		return e.Host.IsWordBoundary(pair)
	}
	return editor.IsWordBoundary(pair)
}

// VisualContent is the visual-selection context threaded into context
// predicates and pre-expand hooks.
type VisualContent struct {
	// Mode is the host's visual mode identifier.
	Mode string

	// Text is the selected text.
	Text string

	// Placeholder carries the last placeholder content, if any.
	Placeholder any
}
