package token

import "github.com/pkg/errors"

var (
	// ErrPositionDiscarded is returned by Window.Get and Window.Slice when a
	// position is below the retained window.
	ErrPositionDiscarded = errors.New("position discarded")

	// ErrStaleCheckpoint is returned by Cursor.Rewind and Cursor.Release when
	// the checkpoint is no longer live: it was released already, it belongs
	// to another cursor, or its tokens are no longer retained.
	ErrStaleCheckpoint = errors.New("stale checkpoint")
)
