package textobject

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dshills/snipstorm/internal/editor"
)

// Tabstop is one jump target inside an instance.
type Tabstop struct {
	// Number is the tabstop index; 0 is the final stop.
	Number int

	// Start and End delimit the tabstop's text in the buffer.
	Start editor.Position
	End   editor.Position

	// Default is the placeholder text the tabstop starts with.
	Default string
}

var tabstopPattern = regexp.MustCompile(`\$(\d+)|\$\{(\d+)(?::([^}]*))?\}`)

// parseTabstops strips $N and ${N:default} markers out of text, returning
// the cleaned text together with the tabstop positions. Positions are
// absolute, offset by the launch start.
func parseTabstops(text string, start editor.Position) (string, []Tabstop) {
	var (
		stops   []Tabstop
		cleaned strings.Builder
	)

	line := start.Line
	col := start.Col
	advance := func(s string) {
		cleaned.WriteString(s)
		for _, r := range s {
			if r == '\n' {
				line++
				col = 0
			} else {
				col += len(string(r))
			}
		}
	}

	rest := text
	for {
		loc := tabstopPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			advance(rest)
			break
		}
		advance(rest[:loc[0]])

		var number int
		var def string
		if loc[2] >= 0 {
			number, _ = strconv.Atoi(rest[loc[2]:loc[3]])
		} else {
			number, _ = strconv.Atoi(rest[loc[4]:loc[5]])
			if loc[6] >= 0 {
				def = rest[loc[6]:loc[7]]
			}
		}

		tsStart := editor.Position{Line: line, Col: col}
		advance(def)
		tsEnd := editor.Position{Line: line, Col: col}
		stops = append(stops, Tabstop{
			Number:  number,
			Start:   tsStart,
			End:     tsEnd,
			Default: def,
		})

		rest = rest[loc[1]:]
	}

	return cleaned.String(), stops
}
