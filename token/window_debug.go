//go:build debug

package token

import "github.com/arnodel/streamtokens/internal/debug"

type windowDebugData struct {
	maxWindowSize int
}

func (w *Window[T]) checkWindowSize() {
	current := len(w.toks)
	if current > w.maxWindowSize {
		w.maxWindowSize = current
		debug.Printf("max window size = %d, pos = %d", current, w.start)
	}
}
