package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit // Ctrl+Q

	// Navigation
	IntentMotion // arrows, Home/End, PgUp/PgDn
)

// MotionOp identifies motion algorithm
type MotionOp uint8

const (
	MotionNone      MotionOp = iota
	MotionLeft               // Left arrow
	MotionRight              // Right arrow
	MotionUp                 // Up arrow
	MotionDown               // Down arrow
	MotionLineStart          // Home
	MotionLineEnd            // End
	MotionPageUp             // PgUp, one screen of single-row steps
	MotionPageDown           // PgDn, one screen of single-row steps
)

// Intent is the semantic action a key event resolves to
type Intent struct {
	Type   IntentType
	Motion MotionOp
}

var motionNames = [...]string{
	MotionNone:      "none",
	MotionLeft:      "left",
	MotionRight:     "right",
	MotionUp:        "up",
	MotionDown:      "down",
	MotionLineStart: "line-start",
	MotionLineEnd:   "line-end",
	MotionPageUp:    "page-up",
	MotionPageDown:  "page-down",
}

func (m MotionOp) String() string {
	if int(m) < len(motionNames) {
		return motionNames[m]
	}
	return "unknown"
}

func (i Intent) String() string {
	switch i.Type {
	case IntentQuit:
		return "quit"
	case IntentMotion:
		return "motion:" + i.Motion.String()
	default:
		return "none"
	}
}
