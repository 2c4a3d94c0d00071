package token

import (
	"fmt"

	"github.com/arnodel/streamtokens/internal/debug"
	"github.com/pkg/errors"
)

// windowCapacityThreshold is the capacity threshold for window memory management.
// Windows with capacity <= this threshold always reuse their underlying array
// when shrinking. Windows with larger capacity may allocate a new smaller array
// if utilization is poor (newLen*2 <= capacity).
const windowCapacityThreshold = 1024

// A Window holds a contiguous run of tokens indexed by logical position.  It
// covers positions [Start(), End()).  Tokens are appended at End() and
// discarded from Start(), never in the middle, so there is never a gap.
//
// The zero value is an empty window starting at position 0.
type Window[T any] struct {
	toks  []T
	start int

	windowDebugData
}

// NewWindowFromData returns a window containing data, starting at position 0.
// The window takes ownership of data.
func NewWindowFromData[T any](data []T) *Window[T] {
	return &Window[T]{toks: data}
}

// Start is the lowest position still retained.
func (w *Window[T]) Start() int {
	return w.start
}

// End is the position the next appended token will get.
func (w *Window[T]) End() int {
	return w.start + len(w.toks)
}

// Len is the number of retained tokens.
func (w *Window[T]) Len() int {
	return len(w.toks)
}

// Append adds tok at the end of the window and returns its position.
func (w *Window[T]) Append(tok T) int {
	w.toks = append(w.toks, tok)
	w.checkWindowSize()
	return w.End() - 1
}

// Get returns the token at position pos.  It is a logic error to ask for a
// position that has not been appended yet.
func (w *Window[T]) Get(pos int) (T, error) {
	if pos < w.start {
		var zero T
		return zero, errors.Wrapf(ErrPositionDiscarded, "get position %d (window starts at %d)", pos, w.start)
	}
	i := pos - w.start
	if i >= len(w.toks) {
		panic(fmt.Sprintf("logic error: position %d is beyond window end %d", pos, w.End()))
	}
	return w.toks[i], nil
}

// Slice returns the tokens in positions [from, to).  The returned slice aliases
// the window storage: it must not be modified and is only valid until the
// next call to DiscardBefore.
func (w *Window[T]) Slice(from, to int) ([]T, error) {
	if from < w.start {
		return nil, errors.Wrapf(ErrPositionDiscarded, "slice from position %d (window starts at %d)", from, w.start)
	}
	if from > to || to > w.End() {
		panic(fmt.Sprintf("logic error: invalid slice [%d, %d) of window [%d, %d)", from, to, w.start, w.End()))
	}
	return w.toks[from-w.start : to-w.start : to-w.start], nil
}

// DiscardBefore drops all tokens at positions strictly below pos.  Positions
// below Start() are already gone so this never moves the window backwards.
//
// If the reduced window is big enough, the same underlying array is reused,
// otherwise a new smaller array is allocated so the current big one can be
// GCed.
func (w *Window[T]) DiscardBefore(pos int) {
	if pos > w.End() {
		panic(fmt.Sprintf("logic error: discard before %d beyond window end %d", pos, w.End()))
	}
	shift := pos - w.start
	if shift <= 0 {
		return
	}
	newLen := len(w.toks) - shift
	w.start = pos
	if cap(w.toks) <= windowCapacityThreshold || newLen*2 > cap(w.toks) {
		copy(w.toks, w.toks[shift:])
		clear(w.toks[newLen:])
		w.toks = w.toks[:newLen]
	} else {
		debug.Printf("reducing window capacity %d to %d", cap(w.toks), newLen)
		newToks := make([]T, newLen)
		copy(newToks, w.toks[shift:])
		w.toks = newToks
	}
}
