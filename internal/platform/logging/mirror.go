package logging

import (
	"context"
	"sync/atomic"
)

// MirrorFunc receives every record that passed the level check. args holds
// the logger's bound attributes followed by the call's own.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

var currentMirror atomic.Pointer[MirrorFunc]

// SetMirror installs fn as the process-wide mirror. nil removes it.
func SetMirror(fn MirrorFunc) {
	if fn == nil {
		currentMirror.Store(nil)
		return
	}
	currentMirror.Store(&fn)
}

func mirror(ctx context.Context, level Level, msg string, bound, args []any) {
	fn := currentMirror.Load()
	if fn == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if len(bound) == 0 {
		(*fn)(ctx, level, msg, args...)
		return
	}
	all := make([]any, 0, len(bound)+len(args))
	all = append(all, bound...)
	all = append(all, args...)
	(*fn)(ctx, level, msg, all...)
}
