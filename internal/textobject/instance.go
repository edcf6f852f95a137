package textobject

import (
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/snipstorm/internal/editor"
)

// Owner is the definition an instance was launched from. Only diagnostic
// metadata is needed here.
type Owner interface {
	Trigger() string
	Description() string
	Location() string
}

// Capture is the regex match that selected the owning definition, threaded
// through to scripts that run against the instance.
type Capture interface {
	// Text is the full matched substring.
	Text() string

	// Group returns the i-th capture group, 0 being the whole match.
	Group(i int) string

	// Groups returns all capture groups including the whole match.
	Groups() []string
}

// Instance is a live snippet expansion. Instances form a parent/child stack
// for nested launches; the parent link is non-owning and exists for
// diagnostics and context threading only.
type Instance struct {
	owner   Owner
	parent  *Instance
	start   editor.Position
	end     editor.Position
	context lua.LValue
	capture Capture
	globals map[string][]string

	text     string
	tabstops []Tabstop
}

// NewInstance builds an instance handle for the given replacement text.
// Tabstop markers are parsed out of initialText immediately; the text the
// instance writes to the buffer is the cleaned form.
func NewInstance(owner Owner, parent *Instance, initialText string, start, end editor.Position, capture Capture, globals map[string][]string, context lua.LValue) *Instance {
	cleaned, stops := parseTabstops(initialText, start)
	if context == nil {
		context = lua.LNil
	}
	return &Instance{
		owner:    owner,
		parent:   parent,
		start:    start,
		end:      end,
		context:  context,
		capture:  capture,
		globals:  globals,
		text:     cleaned,
		tabstops: stops,
	}
}

// Owner returns the owning definition.
func (i *Instance) Owner() Owner { return i.owner }

// Parent returns the enclosing instance for nested launches, or nil.
func (i *Instance) Parent() *Instance { return i.parent }

// Start returns the start of the instance's buffer range.
func (i *Instance) Start() editor.Position { return i.start }

// End returns the end of the instance's buffer range.
func (i *Instance) End() editor.Position { return i.end }

// Text returns the cleaned initial text the instance writes to the buffer.
func (i *Instance) Text() string { return i.text }

// Context returns the instance's resolved context value.
func (i *Instance) Context() lua.LValue { return i.context }

// SetContext updates the context value. Lifecycle hooks use this to thread
// state between each other.
func (i *Instance) SetContext(v lua.LValue) {
	if v == nil {
		v = lua.LNil
	}
	i.context = v
}

// LastCapture returns the regex match that selected the definition, or nil.
func (i *Instance) LastCapture() Capture { return i.capture }

// Globals returns the definition's global script lines by scope key.
func (i *Instance) Globals() map[string][]string { return i.globals }

// ReplaceInitialText overwrites the instance's buffer range with its cleaned
// initial text and records the new end position.
func (i *Instance) ReplaceInitialText(host editor.Host) {
	i.end = host.ReplaceRange(i.start, i.end, i.text)
}

// UpdateTextObjects re-validates the tabstops against the instance range,
// clamping any that drifted outside it.
func (i *Instance) UpdateTextObjects(host editor.Host) {
	for n := range i.tabstops {
		ts := &i.tabstops[n]
		if ts.Start.Before(i.start) {
			ts.Start = i.start
		}
		if ts.End.After(i.end) {
			ts.End = i.end
		}
	}
}

// Tabstops returns the instance's tabstops ordered by jump sequence: 1..n,
// then the final stop 0.
func (i *Instance) Tabstops() []Tabstop {
	out := append([]Tabstop(nil), i.tabstops...)
	sort.SliceStable(out, func(a, b int) bool {
		return jumpOrder(out[a].Number) < jumpOrder(out[b].Number)
	})
	return out
}

func jumpOrder(n int) int {
	if n == 0 {
		return int(^uint(0) >> 1)
	}
	return n
}
