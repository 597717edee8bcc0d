package terminal

// Backend abstracts platform-specific terminal operations.
// The unix implementation drives a tty file descriptor; tests substitute scripted ones.
type Backend interface {
	// Lifecycle
	Init() error
	Fini() error

	// Capabilities
	// WindowSize asks the OS for the window size in character cells
	WindowSize() (Geometry, error)

	// I/O
	// ReadByte returns the next input byte, or ErrReadTimeout when none arrived in time
	ReadByte() (byte, error)
	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)
}
