package input

import "github.com/salad-chan/TextEditor/terminal"

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Motion     MotionOp
}

// KeyTable maps decoded keys to intents
type KeyTable struct {
	// Special keys (arrows, navigation block, escape)
	SpecialKeys map[terminal.Key]KeyEntry

	// Literal bytes, including control chords (Ctrl+Q = 0x11)
	Chars map[byte]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]KeyEntry{
			terminal.KeyUp:       {IntentMotion, MotionUp},
			terminal.KeyDown:     {IntentMotion, MotionDown},
			terminal.KeyLeft:     {IntentMotion, MotionLeft},
			terminal.KeyRight:    {IntentMotion, MotionRight},
			terminal.KeyHome:     {IntentMotion, MotionLineStart},
			terminal.KeyEnd:      {IntentMotion, MotionLineEnd},
			terminal.KeyPageUp:   {IntentMotion, MotionPageUp},
			terminal.KeyPageDown: {IntentMotion, MotionPageDown},
		},

		Chars: map[byte]KeyEntry{
			terminal.Ctrl('q'): {IntentQuit, MotionNone},
		},
	}
}

// Resolve returns the intent bound to ev, or IntentNone when the key is unbound
func (t *KeyTable) Resolve(ev terminal.KeyEvent) Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key == terminal.KeyChar {
		entry, ok = t.Chars[ev.Char]
	} else {
		entry, ok = t.SpecialKeys[ev.Key]
	}
	if !ok {
		return Intent{}
	}
	return Intent{Type: entry.IntentType, Motion: entry.Motion}
}
