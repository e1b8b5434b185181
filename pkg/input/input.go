package input

// Command is the per-frame instruction decoded from the display window's
// key poll.
type Command int

const (
	// None means no key, or a key with no binding, arrived this frame.
	None Command = iota
	// Clear wipes all accumulated strokes.
	Clear
	// Quit stops the draw loop after the current frame.
	Quit
)

// Interpret maps one raw key code to a command. A negative code means no
// key arrived within the poll window. Only the low byte of the code is
// compared, window implementations on some platforms set higher bits.
func Interpret(key int) Command {
	if key < 0 {
		return None
	}
	switch byte(key & 0xff) {
	case 'c':
		return Clear
	case 'q':
		return Quit
	default:
		return None
	}
}
