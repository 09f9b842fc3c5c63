package formatter

import "github.com/muesli/termenv"

// Style identifies one of the text styles used in rendered output
type Style uint8

const (
	// StylePlain leaves text untouched
	StylePlain Style = iota
	StyleReverse
	StyleRed
	StyleYellow
	StyleGreen
	StyleBlue
	StyleGray
	StyleCyan
	StyleBold
)

// styles are built against the TrueColor profile so that the emitted
// sequences do not depend on the terminal the process runs in.
var styles = [...]termenv.Style{
	StylePlain:   termenv.TrueColor.String(),
	StyleReverse: termenv.TrueColor.String().Reverse(),
	StyleRed:     termenv.TrueColor.String().Foreground(termenv.ANSIRed),
	StyleYellow:  termenv.TrueColor.String().Foreground(termenv.ANSIYellow),
	StyleGreen:   termenv.TrueColor.String().Foreground(termenv.ANSIGreen),
	StyleBlue:    termenv.TrueColor.String().Foreground(termenv.ANSIBlue),
	StyleGray:    termenv.TrueColor.String().Foreground(termenv.TrueColor.Color("#808080")),
	StyleCyan:    termenv.TrueColor.String().Foreground(termenv.ANSICyan),
	StyleBold:    termenv.TrueColor.String().Bold(),
}

// Paint applies style s to text when enabled is true and returns text
// unchanged otherwise.
func Paint(text string, s Style, enabled bool) string {
	if !enabled || s == StylePlain || int(s) >= len(styles) {
		return text
	}
	return styles[s].Styled(text)
}
