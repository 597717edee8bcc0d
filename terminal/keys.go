package terminal

// Key represents a parsed input key
type Key uint8

// Key constants: KeyChar carries a literal byte, the rest form a closed set
const (
	KeyChar Key = iota // Literal byte (check KeyEvent.Char)

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Editing / control
	KeyDelete
	KeyEscape
)

// KeyEvent is one decoded key press
type KeyEvent struct {
	Key  Key
	Char byte // Valid only when Key == KeyChar
}

// Char returns the literal event for b
func Char(b byte) KeyEvent {
	return KeyEvent{Key: KeyChar, Char: b}
}

// Ctrl returns the byte a terminal sends for Ctrl+c, e.g. Ctrl('q') == 0x11
func Ctrl(c byte) byte {
	return c & 0x1f
}

// IsCtrl reports whether the event is the control chord for letter c
func (e KeyEvent) IsCtrl(c byte) bool {
	return e.Key == KeyChar && e.Char == Ctrl(c)
}

const keyESC = 0x1b

// CSI sequences with a single final byte: ESC [ X
var csiFinalKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// CSI sequences with one digit parameter: ESC [ N ~
// 1/7 and 4/8 are the vt220 and rxvt spellings of Home/End
var csiTildeKeys = map[byte]Key{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}

// SS3 sequences: ESC O X
var ss3Keys = map[byte]Key{
	'H': KeyHome,
	'F': KeyEnd,
}
