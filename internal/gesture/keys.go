package gesture

import "strings"

// KeyEvent is a key press as reported by the host. Hosts may fill in the
// numeric code, the symbolic name or both; either identifies the key.
type KeyEvent struct {
	Code int
	Name string
}

// Command is the viewer action bound to a key
type Command int

const (
	CommandNone Command = iota
	CommandClose
	CommandPrev
	CommandNext
	CommandZoomIn
	CommandZoomOut
)

func (c Command) String() string {
	switch c {
	case CommandClose:
		return "close"
	case CommandPrev:
		return "prev"
	case CommandNext:
		return "next"
	case CommandZoomIn:
		return "zoom-in"
	case CommandZoomOut:
		return "zoom-out"
	default:
		return "none"
	}
}

var keyCodes = map[int]Command{
	27:  CommandClose,
	37:  CommandPrev,
	39:  CommandNext,
	187: CommandZoomIn,
	61:  CommandZoomIn,
	107: CommandZoomIn,
	189: CommandZoomOut,
	109: CommandZoomOut,
}

// names are matched case-insensitively
var keyNames = map[string]Command{
	"escape":     CommandClose,
	"esc":        CommandClose,
	"arrowleft":  CommandPrev,
	"left":       CommandPrev,
	"arrowright": CommandNext,
	"right":      CommandNext,
	"+":          CommandZoomIn,
	"=":          CommandZoomIn,
	"equal":      CommandZoomIn,
	"-":          CommandZoomOut,
	"_":          CommandZoomOut,
	"minus":      CommandZoomOut,
}

// Classify maps a key event to a viewer command
func Classify(ev KeyEvent) Command {
	if cmd, ok := keyCodes[ev.Code]; ok {
		return cmd
	}
	if cmd, ok := keyNames[strings.ToLower(ev.Name)]; ok {
		return cmd
	}
	return CommandNone
}

// ClassifyRune maps a printable character to a zoom command
func ClassifyRune(r rune) Command {
	switch r {
	case '+':
		return CommandZoomIn
	case '-':
		return CommandZoomOut
	}
	return CommandNone
}
