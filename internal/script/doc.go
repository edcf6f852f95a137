// Package script compiles and executes the Lua fragments attached to snippet
// definitions: the shared global preamble, the context predicate, and the
// pre-expand, post-expand and post-jump action hooks.
//
// Compilation is memoized process-wide per distinct source text, so identical
// fragments across definitions share one compiled artifact. Execution injects
// an enumerated variable namespace (window, buffer, line, column, cursor,
// snip, match, plus role-specific extras) into a sandboxed Lua state and
// scrubs it afterwards; nothing a script defines survives into the next run
// except through the values the engine reads back.
//
// Scripts observe and mutate the editing buffer through the injected buffer
// handle. The Guard type enforces the cursor protocol around action hooks:
// a script must either set snip.cursor explicitly or leave the text of the
// cursor's line untouched.
package script
