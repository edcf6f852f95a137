package indent

import (
	"testing"

	"github.com/dshills/snipstorm/internal/config"
)

func TestTabsToIndent(t *testing.T) {
	tests := []struct {
		name      string
		expandTab bool
		tabStop   int
		n         int
		want      string
	}{
		{"spaces with expandtab", true, 4, 1, "    "},
		{"two levels of spaces", true, 2, 2, "    "},
		{"tabs without expandtab", false, 8, 2, "\t\t"},
		{"zero levels", true, 4, 0, ""},
		{"negative levels", false, 8, -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUtil(config.IndentConfig{ExpandTab: tt.expandTab, TabStop: tt.tabStop})
			if got := u.TabsToIndent(tt.n); got != tt.want {
				t.Errorf("TabsToIndent(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestIndentOf(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"  x", "  "},
		{"\t x", "\t "},
		{"x", ""},
		{"   ", "   "},
		{"", ""},
	}

	for _, tt := range tests {
		if got := IndentOf(tt.line); got != tt.want {
			t.Errorf("IndentOf(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLeadingTabs(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"\t\tx", 2},
		{"\t x\t", 1},
		{"  \tx", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := LeadingTabs(tt.line); got != tt.want {
			t.Errorf("LeadingTabs(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}
