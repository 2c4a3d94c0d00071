package scanner

import (
	"fmt"
	"io"
	"unicode/utf8"
)

const (
	defaultBufSize           = 4096
	minBufSize               = 16
	maxConsecutiveEmptyReads = 100
)

// Pos is a position in the input.  Line and Col start at 0.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Col+1)
}

// Scanner reads bytes or runes from an io.Reader through a buffer, keeping
// track of the line and column it is at.  Unlike bufio.Reader it never goes
// back: whatever has been read is gone.
type Scanner struct {
	reader io.Reader
	buf    []byte

	// The first unfilled position in buf
	// 0 <= fillIndex <= len(buf)
	fillIndex int

	// Current position in buf
	// 0 <= currentIndex <= fillIndex
	currentIndex int

	// Records lineno and colno of current position (from when the scanning
	// started)
	currentPos Pos

	err error
}

func NewScanner(reader io.Reader) *Scanner {
	return NewScannerSize(reader, defaultBufSize)
}

func NewScannerSize(reader io.Reader, size int) *Scanner {
	if size < minBufSize {
		size = minBufSize
	}
	return &Scanner{
		reader: reader,
		buf:    make([]byte, size),
	}
}

// fillBuf moves the unread bytes to the start of buf and reads more after
// them.  It records the reader's error, if any.
func (s *Scanner) fillBuf() {
	if s.currentIndex > 0 {
		copy(s.buf, s.buf[s.currentIndex:s.fillIndex])
		s.fillIndex -= s.currentIndex
		s.currentIndex = 0
	}
	for i := maxConsecutiveEmptyReads; i > 0; i-- {
		n, err := s.reader.Read(s.buf[s.fillIndex:])
		s.fillIndex += n
		if err != nil {
			s.err = err
			return
		}
		if n > 0 {
			return
		}
	}
	s.err = io.ErrNoProgress
}

// ReadByte returns the next byte.  At the end of the input it returns io.EOF,
// otherwise any error is the reader's.
func (s *Scanner) ReadByte() (byte, error) {
	if s.currentIndex >= s.fillIndex && s.err == nil {
		s.fillBuf()
	}
	if s.currentIndex < s.fillIndex {
		b := s.buf[s.currentIndex]
		switch {
		case b == '\n':
			s.currentPos.Line++
			s.currentPos.Col = 0
		case b < 0xC0:
			// This is the last byte in an utf8-encoded codepoint
			s.currentPos.Col++
		}
		s.currentIndex++
		return b, nil
	}
	return 0, s.err
}

// ReadRune decodes the next UTF-8 encoded rune.  Invalid encodings are
// returned as utf8.RuneError one byte at a time.
func (s *Scanner) ReadRune() (rune, int, error) {
	for !utf8.FullRune(s.buf[s.currentIndex:s.fillIndex]) && s.err == nil {
		s.fillBuf()
	}
	if s.currentIndex >= s.fillIndex {
		return 0, 0, s.err
	}
	r, size := utf8.DecodeRune(s.buf[s.currentIndex:s.fillIndex])
	s.currentIndex += size
	if r == '\n' {
		s.currentPos.Line++
		s.currentPos.Col = 0
	} else {
		s.currentPos.Col++
	}
	return r, size, nil
}

// CurrentPos is the position of the next byte or rune to be read.
func (s *Scanner) CurrentPos() Pos {
	return s.currentPos
}
