package token

// Tokens is what a parser needs from a token cursor.  Cursor implements it
// whether its tokens come from a stream or from memory, so a parser written
// against Tokens does not need to know which.
type Tokens[T any] interface {
	// Advance returns the next token and moves past it.  It returns false
	// when there are no more tokens.
	Advance() (T, bool)

	// Checkpoint records the current position so it can be rewound to.
	Checkpoint() Checkpoint

	// Rewind moves back (or forward) to a live checkpoint.  The checkpoint
	// stays live.
	Rewind(Checkpoint) error

	// Release tells the cursor the checkpoint will not be rewound to again.
	Release(Checkpoint) error

	// IsExhausted reports whether Advance would return false.
	IsExhausted() bool

	// Position is the logical position of the next token.
	Position() int
}

var _ Tokens[byte] = (*Cursor[byte])(nil)
