// Package source adapts readers, channels and producer goroutines to the
// token.Source interface.
//
// A token.Source only says "here is the next token" or "there are no more".
// The sources in this package turn read errors and context cancellation into
// the end of the token sequence and keep the cause, which is available from
// their Err method once they have ended.
package source
