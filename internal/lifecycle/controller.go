package lifecycle

import (
	"github.com/dshills/snipstorm/internal/editor"
	"github.com/dshills/snipstorm/internal/snippet"
	"github.com/dshills/snipstorm/internal/textobject"
)

// State is the lifecycle state of an active snippet instance.
type State int

// Lifecycle states. Unmatched and ContextEvaluated precede instance
// creation and are reported for definitions, not stack frames.
const (
	StateUnmatched State = iota
	StateContextEvaluated
	StateLaunched
	StateJumping
	StateJumped
	StateFinalized
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnmatched:
		return "unmatched"
	case StateContextEvaluated:
		return "context-evaluated"
	case StateLaunched:
		return "launched"
	case StateJumping:
		return "jumping"
	case StateJumped:
		return "jumped"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Jump directions for post-jump hooks.
const (
	JumpForward  = 1
	JumpBackward = -1
)

// frame pairs an active instance with its definition and state.
type frame struct {
	def   *snippet.Definition
	inst  *textobject.Instance
	state State
}

// Controller drives the hook points of active snippets. The stack grows on
// launch and shrinks on finalization; the top frame is always the current
// snippet.
type Controller struct {
	frames []*frame
}

// NewController creates an empty controller.
func NewController() *Controller {
	return &Controller{}
}

// Depth returns the number of active instances.
func (c *Controller) Depth() int { return len(c.frames) }

// Current returns the instance on top of the stack, or nil.
func (c *Controller) Current() *textobject.Instance {
	if len(c.frames) == 0 {
		return nil
	}
	return c.frames[len(c.frames)-1].inst
}

// Instances returns the active instances, bottom first.
func (c *Controller) Instances() []*textobject.Instance {
	out := make([]*textobject.Instance, len(c.frames))
	for i, f := range c.frames {
		out[i] = f.inst
	}
	return out
}

// StateOf reports the lifecycle state of an active instance.
func (c *Controller) StateOf(inst *textobject.Instance) State {
	for _, f := range c.frames {
		if f.inst == inst {
			return f.state
		}
	}
	return StateFinalized
}

// Expand drives a matched definition through launch: pre-expand hook,
// instantiation, push, post-expand hook. before is the text preceding the
// cursor on the launch line; [start, end) is the buffer range the expansion
// replaces. A pre-expand script that repositions the cursor re-anchors the
// launch there and skips indentation anchoring.
func (c *Controller) Expand(env *snippet.Env, def *snippet.Definition, before string, visual *snippet.VisualContent, start, end editor.Position) (*textobject.Instance, error) {
	moved, err := def.DoPreExpand(env, visual, c.Instances())
	if err != nil {
		return nil, err
	}

	textBefore := before
	if moved {
		pos := env.Host.Cursor()
		start, end = pos, pos
		textBefore = ""
	}

	inst, err := def.Launch(env, textBefore, visual, c.Current(), start, end)
	if err != nil {
		return nil, err
	}
	c.frames = append(c.frames, &frame{def: def, inst: inst, state: StateLaunched})

	if _, err := def.DoPostExpand(env, inst.Start(), inst.End(), c.Instances()); err != nil {
		return nil, err
	}
	return inst, nil
}

// Jump runs the post-jump hook of the current snippet for a tabstop
// movement. It reports whether the script explicitly positioned the cursor.
func (c *Controller) Jump(env *snippet.Env, tabstop, direction int) (bool, error) {
	if len(c.frames) == 0 {
		return false, nil
	}
	f := c.frames[len(c.frames)-1]

	f.state = StateJumping
	moved, err := f.def.DoPostJump(env, tabstop, direction, c.Instances(), f.inst)
	if err != nil {
		return false, err
	}
	f.state = StateJumped
	return moved, nil
}

// Finalize pops the current snippet off the stack. The controller drops its
// references so a removed instance never dangles here.
func (c *Controller) Finalize() *textobject.Instance {
	if len(c.frames) == 0 {
		return nil
	}
	f := c.frames[len(c.frames)-1]
	c.frames[len(c.frames)-1] = nil
	c.frames = c.frames[:len(c.frames)-1]
	f.state = StateFinalized
	return f.inst
}
