package snippet

import (
	"regexp"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/snipstorm/internal/script"
)

// GlobalScope is the globals map key holding the Lua preamble lines shared
// by every script of a definition.
const GlobalScope = "!lua"

// Action hook names recognized on a definition.
const (
	ActionPreExpand  = "pre_expand"
	ActionPostExpand = "post_expand"
	ActionPostJump   = "post_jump"
)

// Definition is a snippet as parsed from a file, immutable after
// construction. The only mutable state is match scratch (last matched
// substring, last capture, last context), valid immediately after a
// successful Matches or CouldMatch call.
type Definition struct {
	priority    int
	trigger     string
	body        string
	description string
	location    string
	opts        Options
	globals     map[string][]string

	contextSource   string
	compiledContext *script.Compiled

	actions         map[string]string
	compiledActions map[string]*script.Compiled

	// Lazily built, memoized per distinct source string.
	compiledGlobals *script.Compiled
	globalsBuilt    bool

	regex    *regexp.Regexp
	regexErr error
	regexSet bool

	lastMatched string
	lastCapture *Capture
	lastContext lua.LValue
}

// MatchResult is the outcome of one Matches or CouldMatch call, threaded
// explicitly into context evaluation and Launch.
type MatchResult struct {
	// Matched reports whether the trigger fired.
	Matched bool

	// Text is the matched substring: for regex triggers the matched span,
	// otherwise the trigger text (full matches) or the typed window
	// (partial matches).
	Text string

	// Capture is the regex capture for mode 'r', nil otherwise.
	Capture *Capture
}

// New constructs a definition. Context and action sources are compiled
// eagerly (memoized process-wide); a regex trigger that cannot compile, or
// an action that cannot parse, fails construction.
func New(priority int, trigger, body, description, options string, globals map[string][]string, location, context string, actions map[string]string) (*Definition, error) {
	d := &Definition{
		priority:    priority,
		trigger:     trigger,
		body:        body,
		description: description,
		location:    location,
		opts:        ParseOptions(options),
		globals:     globals,
		actions:     map[string]string{},
		lastContext: lua.LNil,
	}

	// A definition must match its own trigger when expanded directly.
	// Context code is not attached yet, so this exercises only the trigger
	// machinery and surfaces regex compile errors at load time.
	if _, err := d.Matches(&Env{}, trigger, nil); err != nil {
		return nil, err
	}

	d.contextSource = context
	if context != "" {
		compiled, err := script.Compile("snip.context = "+context, "<context-code>")
		if err != nil {
			return nil, d.scriptError(err, "snip.context = "+context)
		}
		d.compiledContext = compiled
	}

	d.compiledActions = make(map[string]*script.Compiled, len(actions))
	for name, source := range actions {
		d.actions[name] = source
		compiled, err := script.Compile(source, "<action-code>")
		if err != nil {
			return nil, d.scriptError(err, source)
		}
		d.compiledActions[name] = compiled
	}

	return d, nil
}

// Priority disambiguates competing matches; higher wins.
func (d *Definition) Priority() int { return d.priority }

// Trigger returns the trigger text.
func (d *Definition) Trigger() string { return d.trigger }

// Body returns the template text.
func (d *Definition) Body() string { return d.body }

// Matched returns the text that matched in the last Matches or CouldMatch
// call.
func (d *Definition) Matched() string { return d.lastMatched }

// Description returns "(trigger) description", trimmed.
func (d *Definition) Description() string {
	return strings.TrimSpace("(" + d.trigger + ") " + d.description)
}

// Location returns where the snippet was defined.
func (d *Definition) Location() string { return d.location }

// Context returns the context value resolved by the last successful match.
func (d *Definition) Context() lua.LValue { return d.lastContext }

// HasOption reports whether a flag is set on the definition.
func (d *Definition) HasOption(flag rune) bool { return d.opts.Has(flag) }

// Options returns the definition's option set.
func (d *Definition) Options() Options { return d.opts }

// HasAction reports whether the named lifecycle hook is present.
func (d *Definition) HasAction(name string) bool {
	_, ok := d.actions[name]
	return ok
}

// Matches decides whether the definition fires against the text before the
// cursor. On success the matched substring (and regex capture, for mode
// 'r') is recorded and returned; if a context predicate is attached it is
// evaluated and must be truthy.
func (d *Definition) Matches(env *Env, before string, visual *VisualContent) (MatchResult, error) {
	d.lastMatched = ""
	d.lastCapture = nil

	var res MatchResult
	words := wordsForLine(d.trigger, before, 0)

	var matched bool
	switch {
	case d.opts.Has(OptRegex):
		capture, err := d.reMatch(before)
		if err != nil {
			return res, err
		}
		if capture != nil {
			matched = true
			d.lastMatched = capture.Text()
			d.lastCapture = capture
			res.Capture = capture
		}

	case d.opts.Has(OptWord):
		// The suffix is sized to the trigger's own character length, not
		// the window's tokenization. Documented quirk; keep as is.
		window := []rune(words)
		triggerLen := len([]rune(d.trigger))
		var prefix, suffix string
		if triggerLen >= len(window) {
			suffix = words
		} else {
			prefix = string(window[:len(window)-triggerLen])
			suffix = string(window[len(window)-triggerLen:])
		}
		matched = suffix == d.trigger
		if matched && prefix != "" {
			pr := []rune(prefix)
			sr := []rune(suffix)
			matched = env.isWordBoundary(string(pr[len(pr)-1]) + string(sr[0]))
		}

	case d.opts.Has(OptInWord):
		matched = strings.HasSuffix(words, d.trigger)

	default:
		matched = words == d.trigger
	}

	// By default the whole trigger is what matched.
	if matched && d.lastMatched == "" {
		d.lastMatched = d.trigger
	}

	if d.opts.Has(OptBeginningOfLine) && matched {
		if !isBlank(textBeforeMatch(before, d.lastMatched)) {
			d.lastMatched = ""
			return res, nil
		}
	}

	d.lastContext = lua.LNil
	if matched && d.contextSource != "" {
		ctx, err := d.contextMatch(env, visual, before)
		if err != nil {
			return res, err
		}
		d.lastContext = ctx
		if !script.Truthy(ctx) {
			matched = false
		}
	}

	res.Matched = matched
	res.Text = d.lastMatched
	return res, nil
}

// CouldMatch approximates whether some completion of before could still
// match, for incremental trigger listing.
func (d *Definition) CouldMatch(env *Env, before string) (MatchResult, error) {
	d.lastMatched = ""
	d.lastCapture = nil

	var res MatchResult

	// Trailing blanks end the current word: list everything on whitespace,
	// reject other trailing whitespace outright.
	if before != "" && (before[len(before)-1] == ' ' || before[len(before)-1] == '\t') {
		before = ""
	}
	if before != "" && strings.TrimRightFunc(before, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
	}) != before {
		return res, nil
	}

	// The empty prefix is always completable.
	if before == "" {
		res.Matched = true
		return res, nil
	}

	words := wordsForLine(d.trigger, before, 0)

	var matched bool
	switch {
	case d.opts.Has(OptRegex):
		// Partial regex matching is not attempted; test for a full match.
		capture, err := d.reMatch(before)
		if err != nil {
			return res, err
		}
		if capture != nil {
			matched = true
			d.lastMatched = capture.Text()
			d.lastCapture = capture
			res.Capture = capture
		}

	case d.opts.Has(OptWord):
		suffix := trimToLastWordStart(words, env.isWordBoundary)
		matched = strings.HasPrefix(d.trigger, suffix)
		d.lastMatched = suffix
		// Partial matches behind a word boundary cannot be listed yet, so a
		// trimmed prefix rejects the match.
		if suffix != words {
			matched = false
		}

	case d.opts.Has(OptInWord):
		// Sub-word partials are undecidable here; check whole words only.
		matched = strings.HasPrefix(d.trigger, words)

	default:
		matched = strings.HasPrefix(d.trigger, words)
	}

	if matched && d.lastMatched == "" {
		d.lastMatched = words
	}

	if d.opts.Has(OptBeginningOfLine) && matched {
		if !isBlank(textBeforeMatch(before, d.lastMatched)) {
			d.lastMatched = ""
			return res, nil
		}
	}

	res.Matched = matched
	res.Text = d.lastMatched
	return res, nil
}

// reMatch scans before for the regex trigger match anchored at the cursor:
// the match whose end coincides with the end of before.
func (d *Definition) reMatch(before string) (*Capture, error) {
	re, err := d.ensureRegex()
	if err != nil {
		return nil, d.matchError(err)
	}
	for _, idx := range re.FindAllStringSubmatchIndex(before, -1) {
		if idx[1] != len(before) {
			continue
		}
		return newCapture(before, idx), nil
	}
	return nil, nil
}

func (d *Definition) ensureRegex() (*regexp.Regexp, error) {
	if !d.regexSet {
		d.regex, d.regexErr = regexp.Compile(d.trigger)
		d.regexSet = true
	}
	return d.regex, d.regexErr
}

// contextMatch evaluates the context predicate. On a bootstrap buffer (one
// empty line) the script is not run and the context stays nil, which gates
// the match off.
func (d *Definition) contextMatch(env *Env, visual *VisualContent, before string) (lua.LValue, error) {
	host := env.Host
	if host == nil || (host.LineCount() == 1 && host.Line(0) == "") {
		return lua.LNil, nil
	}

	locals := map[string]any{
		"visual_mode":      "",
		"visual_text":      "",
		"last_placeholder": nil,
		"before":           before,
	}
	if visual != nil {
		locals["visual_mode"] = visual.Mode
		locals["visual_text"] = visual.Text
		locals["last_placeholder"] = visual.Placeholder
	}

	res, err := d.evalCode(env, d.compiledContext, nil, locals)
	if err != nil {
		return lua.LNil, err
	}
	return res.Context, nil
}

// evalCode runs a compiled fragment behind the definition's preamble, with
// the last capture exposed as the match variable. Failures come back as
// ScriptError with full diagnostics.
func (d *Definition) evalCode(env *Env, code *script.Compiled, ctx lua.LValue, locals map[string]any) (*script.Result, error) {
	preamble, err := d.ensureGlobals()
	if err != nil {
		return nil, d.scriptError(err, d.globalsSource())
	}

	if locals == nil {
		locals = map[string]any{}
	}
	if _, ok := locals["match"]; !ok {
		locals["match"] = d.matchLocal()
	}

	res, err := env.Script.Exec(&script.Call{
		Host:     env.Host,
		Preamble: preamble,
		Code:     code,
		Context:  ctx,
		Locals:   locals,
	})
	if err != nil {
		return nil, d.scriptError(err, d.reconstruct(code))
	}
	return res, nil
}

// executeAction runs a lifecycle hook under the cursor guard.
func (d *Definition) executeAction(env *Env, name string, ctx lua.LValue, locals map[string]any) (*script.Result, error) {
	code := d.compiledActions[name]
	guard := script.NewGuard(env.Host)
	return guard.Execute(func() (*script.Result, error) {
		return d.evalCode(env, code, ctx, locals)
	})
}

// ensureGlobals lazily compiles the definition's global preamble.
func (d *Definition) ensureGlobals() (*script.Compiled, error) {
	if d.globalsBuilt {
		return d.compiledGlobals, nil
	}
	source := d.globalsSource()
	if source == "" {
		d.globalsBuilt = true
		return nil, nil
	}
	compiled, err := script.Compile(source, "<global-snippets>")
	if err != nil {
		return nil, err
	}
	d.compiledGlobals = compiled
	d.globalsBuilt = true
	return compiled, nil
}

func (d *Definition) globalsSource() string {
	lines := d.globals[GlobalScope]
	if len(lines) == 0 {
		return ""
	}
	return strings.ReplaceAll(strings.Join(lines, "\n"), "\r\n", "\n")
}

// reconstruct rebuilds the full script text that ran, preamble included,
// for diagnostics.
func (d *Definition) reconstruct(code *script.Compiled) string {
	parts := []string{}
	if src := d.globalsSource(); src != "" {
		parts = append(parts, src)
	}
	if code != nil {
		parts = append(parts, code.Source)
	}
	return strings.Join(parts, "\n")
}

func (d *Definition) matchLocal() any {
	if d.lastCapture == nil {
		return nil
	}
	return d.lastCapture.local()
}

// diagnostics assembles the metadata attached to every raised error.
func (d *Definition) diagnostics(scriptText string) script.Diagnostics {
	return script.Diagnostics{
		Location:         d.location,
		Trigger:          d.trigger,
		Description:      d.description,
		ContextSource:    d.contextSource,
		PreExpandSource:  d.actions[ActionPreExpand],
		PostExpandSource: d.actions[ActionPostExpand],
		Script:           scriptText,
	}
}

func (d *Definition) scriptError(err error, scriptText string) error {
	return &script.ScriptError{Diagnostics: d.diagnostics(scriptText), Err: err}
}

func (d *Definition) matchError(err error) error {
	return &MatchError{Diagnostics: d.diagnostics(""), Err: err}
}
