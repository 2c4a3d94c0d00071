//go:build !debug

package token

type windowDebugData struct{}

func (w *Window[T]) checkWindowSize() {}
