package formatter

import (
	"strconv"

	"github.com/philipp01105/prettylog/core"
)

type levelToken struct {
	label string
	style Style
}

// Every label is five characters wide so that messages line up.
var levelTokens = map[core.Level]levelToken{
	core.FatalLevel: {"FATAL", StyleReverse},
	core.ErrorLevel: {"ERROR", StyleRed},
	core.WarnLevel:  {" WARN", StyleYellow},
	core.InfoLevel:  {" INFO", StyleGreen},
	core.DebugLevel: {"DEBUG", StyleBlue},
	core.TraceLevel: {"TRACE", StyleGray},
}

// FormatLevel returns the display token of a level. Unknown levels render
// as "LVL<n>" and are never colored.
func FormatLevel(level core.Level, color bool) string {
	tok, ok := levelTokens[level]
	if !ok {
		return "LVL" + strconv.Itoa(int(level))
	}
	return Paint(tok.label, tok.style, color)
}
