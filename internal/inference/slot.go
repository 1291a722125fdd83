package inference

import "fmt"

// SlotState tags whether a model role has a usable handle.
type SlotState int

const (
	SlotUnavailable SlotState = iota
	SlotLoaded
)

// Slot is one model role: either Loaded(handle) or Unavailable.
type Slot[T any] struct {
	state  SlotState
	handle T
}

func Loaded[T any](handle T) Slot[T] {
	return Slot[T]{state: SlotLoaded, handle: handle}
}

func Unavailable[T any]() Slot[T] {
	return Slot[T]{state: SlotUnavailable}
}

func (s Slot[T]) State() SlotState {
	return s.state
}

func (s Slot[T]) IsLoaded() bool {
	return s.state == SlotLoaded
}

// Dispatch runs the loaded handle, or the fallback when the role is
// unavailable or the handle fails. The fallback receives the handle error,
// nil when the role was never loaded.
func Dispatch[T, R any](s Slot[T], run func(T) (R, error), fallback func(error) R) R {
	switch s.state {
	case SlotLoaded:
		out, err := run(s.handle)
		if err != nil {
			return fallback(err)
		}
		return out
	case SlotUnavailable:
		return fallback(nil)
	}
	panic(fmt.Sprintf("inference: unknown slot state %d", s.state))
}
