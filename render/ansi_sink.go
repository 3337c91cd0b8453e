package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/vi-invaders/core"
)

// Pre-allocated ANSI sequence fragments
var (
	csiClear     = []byte("\x1b[2J")
	csiBgBlue    = []byte("\x1b[44m")
	csiBgBlack   = []byte("\x1b[40m")
	csiFg256     = []byte("\x1b[38;5;")
	csiCursorPos = []byte("\x1b[")
)

// ANSISink writes cells as raw escape sequences, for terminals driven without tcell
type ANSISink struct {
	w *bufio.Writer

	lastColor core.Color
	lastValid bool
}

// NewANSISink buffers writes to w until Flush
func NewANSISink(w io.Writer) *ANSISink {
	return &ANSISink{w: bufio.NewWriterSize(w, 32768)}
}

// Clear paints the blue background, then restores black for cells
func (s *ANSISink) Clear() {
	s.w.Write(csiBgBlue)
	s.w.Write(csiClear)
	s.w.Write(csiBgBlack)
	s.lastValid = false
}

// SetCell positions the cursor and writes the rune, emitting color only on change
func (s *ANSISink) SetCell(x, y int, c core.Cell) {
	writeCursorPos(s.w, x, y)
	if !s.lastValid || c.Color != s.lastColor {
		s.w.Write(csiFg256)
		writeInt(s.w, index256(c.Color))
		s.w.WriteByte('m')
		s.lastColor = c.Color
		s.lastValid = true
	}
	r := c.Rune
	if r == 0 {
		r = ' '
	}
	if r < 0x80 {
		s.w.WriteByte(byte(r))
	} else {
		s.w.WriteRune(r)
	}
}

// Flush writes buffered sequences to the terminal
func (s *ANSISink) Flush() error {
	return s.w.Flush()
}

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes a cursor position sequence from 0-indexed input
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}
