package snippet

import (
	"github.com/dshills/snipstorm/internal/editor"
	"github.com/dshills/snipstorm/internal/textobject"
)

// DoPreExpand runs the pre_expand hook, if present, under the cursor guard.
// It reports whether the script explicitly positioned the cursor, which
// signals that indentation anchoring should be skipped at launch.
func (d *Definition) DoPreExpand(env *Env, visual *VisualContent, stack []*textobject.Instance) (bool, error) {
	if !d.HasAction(ActionPreExpand) {
		return false, nil
	}

	locals := map[string]any{
		"visual_mode": "",
		"visual_text": "",
	}
	if visual != nil {
		locals["visual_mode"] = visual.Mode
		locals["visual_text"] = visual.Text
	}

	res, err := d.executeAction(env, ActionPreExpand, d.lastContext, locals)
	if err != nil {
		return false, err
	}
	d.lastContext = res.Context
	return res.Cursor.IsSet(), nil
}

// DoPostExpand runs the post_expand hook, if present, under the cursor
// guard. It executes with the context of the instance on top of the stack —
// the snippet that just became active — and writes the possibly updated
// context back to it.
func (d *Definition) DoPostExpand(env *Env, start, end editor.Position, stack []*textobject.Instance) (bool, error) {
	if !d.HasAction(ActionPostExpand) {
		return false, nil
	}
	if len(stack) == 0 {
		return false, nil
	}
	top := stack[len(stack)-1]

	locals := map[string]any{
		"snippet_start": start,
		"snippet_end":   end,
	}

	res, err := d.executeAction(env, ActionPostExpand, top.Context(), locals)
	if err != nil {
		return false, err
	}
	top.SetContext(res.Context)
	return res.Cursor.IsSet(), nil
}

// DoPostJump runs the post_jump hook, if present, under the cursor guard.
// It executes with the jumped-to instance's own context and receives the
// instance's tabstop list and buffer range.
func (d *Definition) DoPostJump(env *Env, tabstop, direction int, stack []*textobject.Instance, current *textobject.Instance) (bool, error) {
	if !d.HasAction(ActionPostJump) {
		return false, nil
	}

	locals := map[string]any{
		"tabstop":        tabstop,
		"jump_direction": direction,
		"tabstops":       tabstopLocals(current.Tabstops()),
		"snippet_start":  current.Start(),
		"snippet_end":    current.End(),
	}

	res, err := d.executeAction(env, ActionPostJump, current.Context(), locals)
	if err != nil {
		return false, err
	}
	current.SetContext(res.Context)
	return res.Cursor.IsSet(), nil
}

func tabstopLocals(stops []textobject.Tabstop) []any {
	out := make([]any, len(stops))
	for i, ts := range stops {
		out[i] = map[string]any{
			"number":  ts.Number,
			"start":   ts.Start,
			"stop":    ts.End,
			"default": ts.Default,
		}
	}
	return out
}
