package snippet

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/snipstorm/internal/config"
	"github.com/dshills/snipstorm/internal/editor"
	"github.com/dshills/snipstorm/internal/indent"
)

func launchEnv(lines []string, expandTab bool, tabStop int) *Env {
	return &Env{
		Host: editor.NewMemory(lines),
		Indent: indent.NewUtil(config.IndentConfig{
			ExpandTab:  expandTab,
			TabStop:    tabStop,
			ShiftWidth: tabStop,
		}),
	}
}

func TestLaunchIndentNormalization(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		options    string
		textBefore string
		expandTab  bool
		tabStop    int
		wantLines  []string
	}{
		{
			name:       "tabs become spaces with expandtab",
			body:       "\tbar",
			textBefore: "",
			expandTab:  true,
			tabStop:    4,
			wantLines:  []string{"    bar"},
		},
		{
			name:       "tabs stay tabs without expandtab",
			body:       "\tbar",
			textBefore: "",
			expandTab:  false,
			tabStop:    8,
			wantLines:  []string{"\tbar"},
		},
		{
			name:       "launch indent prefixes later lines only",
			body:       "if:\n\tbody",
			textBefore: "  ",
			expandTab:  true,
			tabStop:    4,
			wantLines:  []string{"  if:", "      body"},
		},
		{
			name:       "keep-tabs skips conversion",
			body:       "\tbar",
			options:    "t",
			textBefore: "",
			expandTab:  true,
			tabStop:    4,
			wantLines:  []string{"\tbar"},
		},
		{
			name:       "trim flag strips trailing blanks per line",
			body:       "bar  \nbaz\t",
			options:    "m",
			textBefore: "",
			expandTab:  true,
			tabStop:    4,
			wantLines:  []string{"bar", "baz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := New(0, "tr", tt.body, "", tt.options, nil, "test:1", "", nil)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			env := launchEnv([]string{tt.textBefore}, tt.expandTab, tt.tabStop)
			start := editor.Position{Line: 0, Col: len(tt.textBefore)}
			inst, err := def.Launch(env, tt.textBefore, nil, nil, start, start)
			if err != nil {
				t.Fatalf("Launch() error = %v", err)
			}

			if diff := cmp.Diff(tt.wantLines, env.Host.Lines()); diff != "" {
				t.Errorf("buffer mismatch (-want +got):\n%s", diff)
			}
			if inst.Start() != start {
				t.Errorf("instance start = %v, want %v", inst.Start(), start)
			}
		})
	}
}

func TestLaunchLiteralTabsSurviveOnlyWithKeepTabs(t *testing.T) {
	for _, tt := range []struct {
		options  string
		wantTabs bool
	}{
		{"t", true},
		{"", false},
	} {
		def, err := New(0, "tr", "\tx", "", tt.options, nil, "test:1", "", nil)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		env := launchEnv([]string{""}, true, 4)
		_, err = def.Launch(env, "", nil, nil, editor.Position{}, editor.Position{})
		if err != nil {
			t.Fatalf("Launch() error = %v", err)
		}
		gotTabs := strings.Contains(env.Host.Line(0), "\t")
		if gotTabs != tt.wantTabs {
			t.Errorf("options %q: buffer %q tab presence = %v, want %v",
				tt.options, env.Host.Line(0), gotTabs, tt.wantTabs)
		}
	}
}

func TestLaunchReplacesMatchedRange(t *testing.T) {
	def, err := New(0, "foo", "expanded", "", "", nil, "test:1", "", nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	env := launchEnv([]string{"xx foo"}, true, 4)
	env.Host.SetCursor(editor.Position{Line: 0, Col: 6})

	res, err := def.Matches(env, "xx foo", nil)
	if err != nil || !res.Matched {
		t.Fatalf("Matches = %v, %v; want match", res.Matched, err)
	}

	start := editor.Position{Line: 0, Col: 3}
	end := editor.Position{Line: 0, Col: 6}
	inst, err := def.Launch(env, "xx ", nil, nil, start, end)
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	if got, want := env.Host.Line(0), "xx expanded"; got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
	if got, want := inst.End(), (editor.Position{Line: 0, Col: 11}); got != want {
		t.Errorf("instance end = %v, want %v", got, want)
	}
}

func TestLaunchParsesTabstops(t *testing.T) {
	def, err := New(0, "fn", "func $1($2)\n\t${3:body}$0", "", "", nil, "test:1", "", nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	env := launchEnv([]string{"fn"}, false, 8)
	start := editor.Position{Line: 0, Col: 0}
	end := editor.Position{Line: 0, Col: 2}
	inst, err := def.Launch(env, "", nil, nil, start, end)
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	stops := inst.Tabstops()
	if len(stops) != 4 {
		t.Fatalf("Tabstops() count = %d, want 4", len(stops))
	}
	wantOrder := []int{1, 2, 3, 0}
	for i, ts := range stops {
		if ts.Number != wantOrder[i] {
			t.Errorf("tabstop[%d].Number = %d, want %d", i, ts.Number, wantOrder[i])
		}
	}
	if stops[2].Default != "body" {
		t.Errorf("tabstop 3 default = %q, want %q", stops[2].Default, "body")
	}
	if got, want := env.Host.Line(0), "func ()"; got != want {
		t.Errorf("line 0 = %q, want %q", got, want)
	}
	if got, want := env.Host.Line(1), "\tbody"; got != want {
		t.Errorf("line 1 = %q, want %q", got, want)
	}
}
