package snippet

import (
	"errors"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/snipstorm/internal/config"
	"github.com/dshills/snipstorm/internal/editor"
	"github.com/dshills/snipstorm/internal/script"
)

func scriptEnv(t *testing.T, lines []string) *Env {
	t.Helper()
	eng, err := script.NewEngine(config.SandboxConfig{})
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	t.Cleanup(eng.Close)
	return &Env{Host: editor.NewMemory(lines), Script: eng}
}

func TestContextPredicateGatesMatch(t *testing.T) {
	tests := []struct {
		name    string
		context string
		want    bool
	}{
		{"truthy expression", `1 == 1`, true},
		{"falsy expression", `false`, false},
		{"nil result", `nil`, false},
		{"empty string result", `""`, false},
		{"before is visible", `before == "xx foo"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := New(0, "foo", "body", "", "", nil, "test:1", tt.context, nil)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			env := scriptEnv(t, []string{"xx foo"})
			res, err := def.Matches(env, "xx foo", nil)
			if err != nil {
				t.Fatalf("Matches() error = %v", err)
			}
			if res.Matched != tt.want {
				t.Errorf("Matches() = %v, want %v", res.Matched, tt.want)
			}
		})
	}
}

func TestContextResultCached(t *testing.T) {
	def, err := New(0, "foo", "body", "", "", nil, "test:1", `"resolved"`, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	env := scriptEnv(t, []string{"foo"})
	res, err := def.Matches(env, "foo", nil)
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if !res.Matched {
		t.Fatal("Matches() = false, want true")
	}
	if got := lua.LVAsString(def.Context()); got != "resolved" {
		t.Errorf("Context() = %q, want %q", got, "resolved")
	}
}

func TestContextSkippedOnBootstrapBuffer(t *testing.T) {
	def, err := New(0, "foo", "body", "", "", nil, "test:1", `error("must not run")`, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// A single empty line is the bootstrap state: the predicate is skipped
	// and the nil context gates the match off without an error.
	env := scriptEnv(t, nil)
	res, err := def.Matches(env, "foo", nil)
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if res.Matched {
		t.Error("Matches() = true, want false on bootstrap buffer")
	}
}

func TestContextSeesVisualSelection(t *testing.T) {
	def, err := New(0, "foo", "body", "", "", nil, "test:1", `visual_mode == "v" and visual_text == "sel"`, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	env := scriptEnv(t, []string{"foo"})
	visual := &VisualContent{Mode: "v", Text: "sel"}
	res, err := def.Matches(env, "foo", visual)
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if !res.Matched {
		t.Error("Matches() = false, want true with matching visual selection")
	}
}

func TestContextSeesRegexCapture(t *testing.T) {
	def, err := New(0, `item(\d+)`, "body", "", "r", nil, "test:1", `match.groups[2] == "42"`, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	env := scriptEnv(t, []string{"item42"})
	res, err := def.Matches(env, "item42", nil)
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if !res.Matched {
		t.Fatal("Matches() = false, want true")
	}

	res, err = def.Matches(env, "item43", nil)
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if res.Matched {
		t.Error("Matches(item43) = true, want false")
	}
}

func TestContextUsesGlobalPreamble(t *testing.T) {
	globals := map[string][]string{
		GlobalScope: {`function shout(s) return string.upper(s) end`},
	}
	def, err := New(0, "foo", "body", "", "", globals, "test:1", `shout(before) == "XX FOO"`, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	env := scriptEnv(t, []string{"xx foo"})
	res, err := def.Matches(env, "xx foo", nil)
	if err != nil {
		t.Fatalf("Matches() error = %v", err)
	}
	if !res.Matched {
		t.Error("Matches() = false, want true via global helper")
	}
}

func TestContextFailureCarriesDiagnostics(t *testing.T) {
	def, err := New(0, "foo", "body", "desc", "", nil, "snippets/go.snippets:12", `error("boom")`, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	env := scriptEnv(t, []string{"foo"})
	_, err = def.Matches(env, "foo", nil)
	if err == nil {
		t.Fatal("Matches() with failing predicate succeeded, want error")
	}

	var scriptErr *script.ScriptError
	if !errors.As(err, &scriptErr) {
		t.Fatalf("error = %T, want *script.ScriptError", err)
	}
	if scriptErr.Location != "snippets/go.snippets:12" {
		t.Errorf("Location = %q, want %q", scriptErr.Location, "snippets/go.snippets:12")
	}
	if scriptErr.Trigger != "foo" {
		t.Errorf("Trigger = %q, want %q", scriptErr.Trigger, "foo")
	}
}

func TestInvalidContextSourceFailsConstruction(t *testing.T) {
	_, err := New(0, "foo", "body", "", "", nil, "test:1", `this is not lua`, nil)
	if err == nil {
		t.Fatal("New() with invalid context source succeeded, want error")
	}
}

func TestInvalidActionSourceFailsConstruction(t *testing.T) {
	actions := map[string]string{ActionPostExpand: `this is not lua`}
	_, err := New(0, "foo", "body", "", "", nil, "test:1", "", actions)
	if err == nil {
		t.Fatal("New() with invalid action source succeeded, want error")
	}
}
