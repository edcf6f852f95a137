package snippet

// Option flags recognized on a definition. Flags outside this set are
// ignored.
const (
	// OptRegex treats the trigger as a regular expression.
	OptRegex = 'r'

	// OptWord matches the trigger at a word boundary.
	OptWord = 'w'

	// OptInWord matches the trigger as a suffix inside a word.
	OptInWord = 'i'

	// OptBeginningOfLine restricts matches to lines that are blank before
	// the trigger.
	OptBeginningOfLine = 'b'

	// OptKeepTabs keeps literal tabs in the body, skipping indent
	// conversion.
	OptKeepTabs = 't'

	// OptTrimWhitespace right-trims each body line at launch.
	OptTrimWhitespace = 'm'
)

// Options is the set of single-character flags attached to a definition.
type Options struct {
	flags map[rune]bool
	raw   string
}

// ParseOptions builds an option set from its flag string.
func ParseOptions(s string) Options {
	flags := make(map[rune]bool, len(s))
	for _, r := range s {
		flags[r] = true
	}
	return Options{flags: flags, raw: s}
}

// Has reports whether a flag is set.
func (o Options) Has(flag rune) bool { return o.flags[flag] }

// String returns the original flag string.
func (o Options) String() string { return o.raw }
