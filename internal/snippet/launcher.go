package snippet

import (
	"strings"

	"github.com/dshills/snipstorm/internal/editor"
	"github.com/dshills/snipstorm/internal/indent"
	"github.com/dshills/snipstorm/internal/textobject"
)

// Launch expands the definition over the buffer range [start, end): the
// body is indentation-normalized against textBefore, an instance is built
// carrying the last capture and resolved context, and the text-object
// system replaces the range and materializes the tabstops.
func (d *Definition) Launch(env *Env, textBefore string, visual *VisualContent, parent *textobject.Instance, start, end editor.Position) (*textobject.Instance, error) {
	launchIndent := indent.IndentOf(textBefore)
	lines := bodyLines(d.body)

	initial := make([]string, 0, len(lines))
	for n, line := range lines {
		tabs := 0
		if !d.opts.Has(OptKeepTabs) {
			tabs = indent.LeadingTabs(line)
		}
		lineIndent := env.Indent.TabsToIndent(tabs)
		if n != 0 {
			lineIndent = launchIndent + lineIndent
		}
		result := lineIndent + line[tabs:]
		if d.opts.Has(OptTrimWhitespace) {
			result = strings.TrimRight(result, " \t")
		}
		initial = append(initial, result)
	}
	initialText := strings.Join(initial, "\n")

	if _, err := d.ensureGlobals(); err != nil {
		return nil, d.scriptError(err, d.globalsSource())
	}

	var capture textobject.Capture
	if d.lastCapture != nil {
		capture = d.lastCapture
	}

	inst := textobject.NewInstance(d, parent, initialText, start, end, capture, d.globals, d.lastContext)
	inst.ReplaceInitialText(env.Host)
	inst.UpdateTextObjects(env.Host)
	return inst, nil
}

// bodyLines splits the body into lines, keeping a final empty line when the
// body ends with a newline.
func bodyLines(body string) []string {
	lines := strings.Split(body+"\n", "\n")
	return lines[:len(lines)-1]
}
