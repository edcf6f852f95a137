// Package indent converts the literal tab depth of snippet body lines into
// the host's configured indentation unit.
package indent

import (
	"strings"

	"github.com/dshills/snipstorm/internal/config"
)

// Util renders indentation according to an IndentConfig.
type Util struct {
	expandTab bool
	tabStop   int
}

// NewUtil creates a Util from the indent configuration.
func NewUtil(cfg config.IndentConfig) *Util {
	return &Util{
		expandTab: cfg.ExpandTab,
		tabStop:   cfg.TabStop,
	}
}

// TabsToIndent renders n levels of indentation. Each level is one tab stop
// wide; with expandtab the result is all spaces, otherwise tabs with a space
// remainder.
func (u *Util) TabsToIndent(n int) string {
	if n <= 0 {
		return ""
	}
	width := n * u.tabStop
	if u.expandTab {
		return strings.Repeat(" ", width)
	}
	return strings.Repeat("\t", width/u.tabStop) + strings.Repeat(" ", width%u.tabStop)
}

// IndentOf returns the leading whitespace of line.
func IndentOf(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}

// LeadingTabs counts the literal leading tab characters of line.
func LeadingTabs(line string) int {
	n := 0
	for n < len(line) && line[n] == '\t' {
		n++
	}
	return n
}
