package domain

import "context"

// ReloadEvent describes the state after a successful reload.
type ReloadEvent struct {
	Pointer    int
	LeftCount  int
	RightCount int
}

// SaveEvent describes the outcome of a save at the current pointer.
// A side is Changed when its text differed and Written once the backend accepted it.
type SaveEvent struct {
	Index        int
	LeftChanged  bool
	RightChanged bool
	LeftWritten  bool
	RightWritten bool
	Err          error
}

// Changed reports whether at least one side was modified.
func (e SaveEvent) Changed() bool {
	return e.LeftChanged || e.RightChanged
}

// PointerEvent describes a pointer update.
type PointerEvent struct {
	From int
	To   int
	Err  error
}

// Hooks are optional observers invoked by the store while it holds its lock.
// They must not call back into the store.
type Hooks struct {
	OnReload     func(ctx context.Context, e ReloadEvent)
	OnSave       func(ctx context.Context, e SaveEvent)
	OnPointerSet func(ctx context.Context, e PointerEvent)
}
