package terminal

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLiteralBytes(t *testing.T) {
	for b := 0; b < 256; b++ {
		if b == keyESC {
			continue
		}
		r := script()
		d := NewDecoder(r, nil)

		ev := d.Decode(byte(b))
		assert.Equal(t, Char(byte(b)), ev, "byte 0x%02x", b)
		assert.Zero(t, r.pos, "literal byte 0x%02x must not read ahead", b)
	}
}

func TestDecodeEscapeSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{"csi up", "\x1b[A", KeyUp},
		{"csi down", "\x1b[B", KeyDown},
		{"csi right", "\x1b[C", KeyRight},
		{"csi left", "\x1b[D", KeyLeft},
		{"csi home", "\x1b[H", KeyHome},
		{"csi end", "\x1b[F", KeyEnd},
		{"ss3 home", "\x1bOH", KeyHome},
		{"ss3 end", "\x1bOF", KeyEnd},
		{"vt220 home", "\x1b[1~", KeyHome},
		{"delete", "\x1b[3~", KeyDelete},
		{"vt220 end", "\x1b[4~", KeyEnd},
		{"page up", "\x1b[5~", KeyPageUp},
		{"page down", "\x1b[6~", KeyPageDown},
		{"rxvt home", "\x1b[7~", KeyHome},
		{"rxvt end", "\x1b[8~", KeyEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytesScript(tt.input)
			d := NewDecoder(r, nil)

			ev, err := d.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, KeyEvent{Key: tt.want}, ev)
			assert.Zero(t, r.remaining(), "sequence must be fully consumed")
		})
	}
}

func TestDecodeCollapsesToEscape(t *testing.T) {
	tests := []struct {
		name  string
		steps []int
	}{
		{"bare escape", []int{keyESC, timeout}},
		{"escape then eof", []int{keyESC}},
		{"bracket timeout", []int{keyESC, '[', timeout}},
		{"digit timeout", []int{keyESC, '[', '5', timeout}},
		{"digit without tilde", []int{keyESC, '[', '5', 'x'}},
		{"unmapped digit", []int{keyESC, '[', '2', '~'}},
		{"unknown csi final", []int{keyESC, '[', 'Z'}},
		{"ss3 timeout", []int{keyESC, 'O', timeout}},
		{"unknown ss3", []int{keyESC, 'O', 'P'}},
		{"alt chord", []int{keyESC, 'x'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := script(tt.steps...)
			d := NewDecoder(r, nil)

			ev, err := d.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, KeyEvent{Key: KeyEscape}, ev)
			assert.Zero(t, r.remaining(), "collapsed sequence must consume what it read")
		})
	}
}

func TestBareEscapeLeavesNoState(t *testing.T) {
	r := script(keyESC, timeout, '[', 'A')
	d := NewDecoder(r, nil)

	ev, err := d.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, KeyEvent{Key: KeyEscape}, ev)

	// The '[' that follows must be a plain character, not a continuation
	ev, err = d.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Char('['), ev)

	ev, err = d.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Char('A'), ev)
}

func TestReadKeyRetriesIdleTimeouts(t *testing.T) {
	r := script(timeout, timeout, timeout, 'q')
	d := NewDecoder(r, nil)

	ev, err := d.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Char('q'), ev)

	_, err = d.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecodeSequenceStream(t *testing.T) {
	r := bytesScript("a\x1b[Cb\x1b[6~\x11")
	d := NewDecoder(r, nil)

	want := []KeyEvent{
		Char('a'),
		{Key: KeyRight},
		Char('b'),
		{Key: KeyPageDown},
		Char(Ctrl('q')),
	}
	for i, w := range want {
		ev, err := d.ReadKey()
		require.NoError(t, err, "event %d", i)
		assert.Equal(t, w, ev, "event %d", i)
	}
}

func TestCtrlChord(t *testing.T) {
	assert.Equal(t, byte(0x11), Ctrl('q'))
	assert.True(t, Char(0x11).IsCtrl('q'))
	assert.False(t, Char('q').IsCtrl('q'))
	assert.False(t, KeyEvent{Key: KeyEscape}.IsCtrl('q'))
}

func TestKeyEventString(t *testing.T) {
	assert.Equal(t, "Up", KeyEvent{Key: KeyUp}.String())
	assert.Equal(t, "Rune[x]", Char('x').String())
	assert.NotEmpty(t, KeyEvent{Key: KeyPageDown}.String())
	assert.NotEmpty(t, Char(Ctrl('q')).String())
}
