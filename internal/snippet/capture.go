package snippet

// Capture records a successful regex-mode trigger match: the matched span
// and its capture groups. It is only valid immediately after the Matches or
// CouldMatch call that produced it.
type Capture struct {
	text   string
	groups []string
	start  int
	end    int
}

func newCapture(before string, idx []int) *Capture {
	groups := make([]string, 0, len(idx)/2)
	for i := 0; i < len(idx); i += 2 {
		if idx[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, before[idx[i]:idx[i+1]])
	}
	return &Capture{
		text:   before[idx[0]:idx[1]],
		groups: groups,
		start:  idx[0],
		end:    idx[1],
	}
}

// Text returns the full matched substring.
func (c *Capture) Text() string { return c.text }

// Group returns the i-th capture group, 0 being the whole match. Groups
// that did not participate return "".
func (c *Capture) Group(i int) string {
	if i < 0 || i >= len(c.groups) {
		return ""
	}
	return c.groups[i]
}

// Groups returns all capture groups including the whole match.
func (c *Capture) Groups() []string {
	return append([]string(nil), c.groups...)
}

// Start returns the byte offset where the match began.
func (c *Capture) Start() int { return c.start }

// End returns the byte offset just past the match.
func (c *Capture) End() int { return c.end }

// local renders the capture for the match script variable.
func (c *Capture) local() map[string]any {
	groups := make([]any, len(c.groups))
	for i, g := range c.groups {
		groups[i] = g
	}
	return map[string]any{
		"text":   c.text,
		"start":  c.start,
		"stop":   c.end,
		"groups": groups,
	}
}
