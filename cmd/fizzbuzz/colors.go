package main

import "io"

type colorizer struct {
	resultColorCodes [4][]byte
	resetCode        []byte
}

func (c *colorizer) write(w io.Writer, r result, text string) error {
	if c == nil {
		_, err := io.WriteString(w, text)
		return err
	}
	line := make([]byte, 0, len(text)+16)
	line = append(line, c.resultColorCodes[r]...)
	line = append(line, text...)
	line = append(line, c.resetCode...)
	_, err := w.Write(line)
	return err
}

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Yellow  = []byte("\033[33m")
	Blue    = []byte("\033[34m")

	DimWhite = []byte("\033[37;2m")

	BrightMagenta = []byte("\033[35;1m")
)

var defaultColorizer = colorizer{
	resultColorCodes: [4][]byte{DimWhite, Yellow, Blue, BrightMagenta},
	resetCode:        Reset,
}
