package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// tcellKeys mirrors Key onto tcell.Key so events can be named and handed to tcell-based code
var tcellKeys = map[Key]tcell.Key{
	KeyChar:     tcell.KeyRune,
	KeyUp:       tcell.KeyUp,
	KeyDown:     tcell.KeyDown,
	KeyLeft:     tcell.KeyLeft,
	KeyRight:    tcell.KeyRight,
	KeyHome:     tcell.KeyHome,
	KeyEnd:      tcell.KeyEnd,
	KeyPageUp:   tcell.KeyPgUp,
	KeyPageDown: tcell.KeyPgDn,
	KeyDelete:   tcell.KeyDelete,
	KeyEscape:   tcell.KeyEscape,
}

// Tcell converts a Key to its tcell equivalent
func (k Key) Tcell() tcell.Key {
	if tk, ok := tcellKeys[k]; ok {
		return tk
	}
	return tcell.KeyRune
}

// TcellKey converts the event to tcell's key/rune pair.
// Control bytes map onto tcell's control keys, which share their values.
func (e KeyEvent) TcellKey() (tcell.Key, rune) {
	if e.Key != KeyChar {
		return e.Key.Tcell(), 0
	}
	if e.Char < 0x20 || e.Char == 0x7f {
		return tcell.Key(e.Char), 0
	}
	return tcell.KeyRune, rune(e.Char)
}

// String names the event using tcell's key names, for logs
func (e KeyEvent) String() string {
	k, r := e.TcellKey()
	if k == tcell.KeyRune {
		return fmt.Sprintf("Rune[%c]", r)
	}
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key[%d]", k)
}
