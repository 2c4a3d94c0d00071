// Package streamtokens lets one parser read tokens the same way whether they
// are all in memory or arrive one at a time from a reader, a channel or a
// generator.
//
// The package is organized into several sub-packages:
//
// - token: the Cursor, its checkpoints and the Source interface
// - source: sources reading bytes, runes or positioned characters from an
//   io.Reader, and sources fed by channels or producer goroutines
// - parse: a few parsing helpers written against token.Tokens
//
// A parser moves through its input with a token.Tokens:
//
//	cp := ts.Checkpoint()   // remember where we are
//	tok, ok := ts.Advance() // read a token (ok is false at the end)
//	ts.Rewind(cp)           // go back, e.g. if tok was not what we wanted
//	ts.Release(cp)          // we won't go back there again
//
// When the tokens come from a stream, the cursor keeps the tokens pulled since
// the oldest checkpoint that has not been released, and nothing else.  Going
// back replays them, so the source is never asked for the same token twice
// and does not need to support seeking.  Once a checkpoint is released, the
// tokens before the next oldest one can be freed, so a parser that releases
// its checkpoints runs in constant memory over an unbounded input.
//
// The demo CLI is in the directory cmd/fizzbuzz.  You can install it with:
//
//	go install github.com/arnodel/streamtokens/cmd/fizzbuzz
package streamtokens
