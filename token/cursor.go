package token

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("streamtokens.token")

// Exhaustion describes what a cursor knows about the token at its current
// position.
type Exhaustion uint8

const (
	Unknown   Exhaustion = iota // the source has not been asked yet
	HasMore                     // a token is buffered at the current position
	Exhausted                   // the source has no token at the current position
)

func (e Exhaustion) String() string {
	switch e {
	case Unknown:
		return "Unknown"
	case HasMore:
		return "HasMore"
	case Exhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("Exhaustion(%d)", e)
	}
}

// A Cursor reads tokens from a Source and lets its user take checkpoints and
// rewind to them.
//
// Tokens pulled from the source are kept in a window which starts at the
// oldest live checkpoint (or at the cursor position if there is none).  Going
// back to a checkpoint replays tokens from the window, so the source is asked
// for each token exactly once, and once more to find out it has ended.
//
// A Cursor must not be used concurrently.
type Cursor[T any] struct {
	source      Source[T]
	window      Window[T]
	position    int
	checkpoints checkpointSet

	// The source has signalled its end at window.End()
	done bool

	// All tokens were provided up front, nothing is ever discarded.
	resident bool

	peakRetained int
}

// NewCursor returns a cursor reading from source, positioned at 0.
func NewCursor[T any](source Source[T]) *Cursor[T] {
	return &Cursor[T]{source: source}
}

// NewCursorFromSlice returns a cursor over data which is already in memory.
// It behaves exactly like a cursor over NewSliceSource(data) but never copies
// or discards anything.  The cursor does not modify data.
func NewCursorFromSlice[T any](data []T) *Cursor[T] {
	return &Cursor[T]{
		source:       emptySource[T]{},
		window:       Window[T]{toks: data},
		done:         true,
		resident:     true,
		peakRetained: len(data),
	}
}

// Advance returns the token at the current position and moves the cursor
// forward.  If the token was pulled before (because a checkpoint kept it) it
// is returned from the window, otherwise it is pulled from the source.  It
// returns false when the source has no more tokens, in which case the
// position does not change.
func (c *Cursor[T]) Advance() (tok T, ok bool) {
	if c.position == c.window.End() && !c.pull() {
		return tok, false
	}
	tok, err := c.window.Get(c.position)
	if err != nil {
		panic(fmt.Sprintf("logic error: cursor at %d: %s", c.position, err))
	}
	c.position++
	if c.checkpoints.len() == 0 {
		c.discard()
	}
	return tok, true
}

// IsExhausted reports whether the next call to Advance will return false.
// If that is not known yet, it pulls the token Advance would pull and keeps
// it for Advance, so the source is never asked twice.
func (c *Cursor[T]) IsExhausted() bool {
	if c.position < c.window.End() {
		return false
	}
	return !c.pull()
}

// Exhaustion returns what the cursor knows about the current position without
// pulling from the source.
func (c *Cursor[T]) Exhaustion() Exhaustion {
	switch {
	case c.position < c.window.End():
		return HasMore
	case c.done:
		return Exhausted
	default:
		return Unknown
	}
}

// Position is the logical position of the next token Advance will return,
// i.e. the number of tokens before it.
func (c *Cursor[T]) Position() int {
	return c.position
}

// Checkpoint records the current position.  Tokens from that position onward
// are retained until the checkpoint is released.
func (c *Cursor[T]) Checkpoint() Checkpoint {
	return c.checkpoints.add(c.position)
}

// Rewind moves the cursor to the position of cp.  It fails with
// ErrStaleCheckpoint if cp was not taken on this cursor or has been released.
// cp remains live so it can be rewound to again.
func (c *Cursor[T]) Rewind(cp Checkpoint) error {
	if !c.checkpoints.isLive(cp) {
		return errors.Wrapf(ErrStaleCheckpoint, "rewind to %s", cp)
	}
	if cp.pos < c.window.Start() {
		return errors.Wrapf(ErrStaleCheckpoint, "rewind to %s: window starts at %d", cp, c.window.Start())
	}
	if log.AllowLevel(commonlog.Debug) {
		log.Debugf("rewind from %d to %d", c.position, cp.pos)
	}
	c.position = cp.pos
	return nil
}

// Release marks cp as no longer needed and frees the tokens no remaining
// checkpoint can reach.  Releasing a checkpoint twice fails with
// ErrStaleCheckpoint.
func (c *Cursor[T]) Release(cp Checkpoint) error {
	if !c.checkpoints.remove(cp) {
		return errors.Wrapf(ErrStaleCheckpoint, "release %s", cp)
	}
	c.discard()
	return nil
}

// Since returns the tokens between cp and the current position.  The returned
// slice is a view of the cursor's window: it must not be modified and is only
// valid until the next call to Advance or Release.
func (c *Cursor[T]) Since(cp Checkpoint) ([]T, error) {
	if !c.checkpoints.isLive(cp) {
		return nil, errors.Wrapf(ErrStaleCheckpoint, "slice since %s", cp)
	}
	if cp.pos > c.position {
		return nil, errors.Errorf("slice since %s: cursor is behind at %d", cp, c.position)
	}
	return c.window.Slice(cp.pos, c.position)
}

// Slice returns the tokens between two live checkpoints, with the same
// validity rules as Since.
func (c *Cursor[T]) Slice(from, to Checkpoint) ([]T, error) {
	if !c.checkpoints.isLive(from) {
		return nil, errors.Wrapf(ErrStaleCheckpoint, "slice from %s", from)
	}
	if !c.checkpoints.isLive(to) {
		return nil, errors.Wrapf(ErrStaleCheckpoint, "slice to %s", to)
	}
	if from.pos > to.pos {
		return nil, errors.Errorf("slice from %s to %s: checkpoints out of order", from, to)
	}
	return c.window.Slice(from.pos, to.pos)
}

// Live is the number of live checkpoints.
func (c *Cursor[T]) Live() int {
	return c.checkpoints.len()
}

// Retained is the number of tokens currently held in the window.  This
// includes a token pulled by IsExhausted but not yet consumed.
func (c *Cursor[T]) Retained() int {
	return c.window.Len()
}

// PeakRetained is the largest number of tokens the window has held so far.
func (c *Cursor[T]) PeakRetained() int {
	return c.peakRetained
}

// pull asks the source for the token at window.End().  After the source has
// ended it is not asked again.
func (c *Cursor[T]) pull() bool {
	if c.done {
		return false
	}
	tok, ok := c.source.Next()
	if !ok {
		c.done = true
		log.Debugf("source ended at position %d", c.window.End())
		return false
	}
	c.window.Append(tok)
	if n := c.window.Len(); n > c.peakRetained {
		c.peakRetained = n
	}
	return true
}

// discard drops the tokens that neither the cursor nor a live checkpoint can
// reach.
func (c *Cursor[T]) discard() {
	if c.resident {
		return
	}
	cutoff := c.position
	if oldest, ok := c.checkpoints.oldest(); ok && oldest < cutoff {
		cutoff = oldest
	}
	c.window.DiscardBefore(cutoff)
}
