package spindle

import "fmt"

// AsyncPhase is the discriminant of AsyncState.
type AsyncPhase uint8

const (
	StateIdle AsyncPhase = iota
	StateLoading
	StateReady
	StateError
)

func (p AsyncPhase) String() string {
	switch p {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("AsyncPhase(%d)", uint8(p))
}

// AsyncState is the result of background work held inside a cell. The zero
// value is the idle state.
type AsyncState[T any] struct {
	Phase AsyncPhase
	Value T
	Err   string
}

// IdleState returns the idle state.
func IdleState[T any]() AsyncState[T] {
	return AsyncState[T]{Phase: StateIdle}
}

// LoadingState returns the in-flight state.
func LoadingState[T any]() AsyncState[T] {
	return AsyncState[T]{Phase: StateLoading}
}

// ReadyState returns a completed state carrying v.
func ReadyState[T any](v T) AsyncState[T] {
	return AsyncState[T]{Phase: StateReady, Value: v}
}

// ErrorState returns a failed state carrying msg.
func ErrorState[T any](msg string) AsyncState[T] {
	return AsyncState[T]{Phase: StateError, Err: msg}
}

// IsLoading reports whether work is in flight.
func (s AsyncState[T]) IsLoading() bool { return s.Phase == StateLoading }

// IsReady reports whether Value is populated.
func (s AsyncState[T]) IsReady() bool { return s.Phase == StateReady }

// IsError reports whether Err is populated.
func (s AsyncState[T]) IsError() bool { return s.Phase == StateError }

func runWork[T any](work func() (T, error)) (st AsyncState[T]) {
	defer func() {
		if r := recover(); r != nil {
			st = ErrorState[T](fmt.Sprintf("panic: %v", r))
		}
	}()
	v, err := work()
	if err != nil {
		return ErrorState[T](err.Error())
	}
	return ReadyState(v)
}

// AsyncTask is the direct-push async bridge: Trigger marks the backing cell
// loading, runs the work on a new goroutine, and the worker writes the
// result into the cell itself. Change callbacks therefore run on the worker
// goroutine; when that is not acceptable use PolledTask instead.
//
// Triggering again while loading restarts the cycle. The previous worker is
// not cancelled and its result may still land later, racing with the new
// one. Last writer wins.
type AsyncTask[T any] struct {
	cell *Cell[AsyncState[T]]
	work func() (T, error)
}

// NewAsyncTask creates a direct-push task over work. The backing cell starts
// idle. A panic inside work becomes an error state, never a crash.
func NewAsyncTask[T any](tc *TrackingContext, work func() (T, error)) *AsyncTask[T] {
	return &AsyncTask[T]{
		cell: NewCell(tc, IdleState[T]()),
		work: work,
	}
}

// Cell returns the backing cell holding the task's state.
func (t *AsyncTask[T]) Cell() *Cell[AsyncState[T]] {
	return t.cell
}

// Trigger starts one round of work. It returns as soon as the cell reads
// loading; the worker goroutine pushes the terminal state when done.
func (t *AsyncTask[T]) Trigger() {
	t.cell.SetValue(LoadingState[T]())
	go func() {
		t.cell.SetValue(runWork(t.work))
	}()
}

// PolledTask is the poll-based async bridge: the worker posts its result
// into an inbox instead of writing the cell, and an external tick loop calls
// Poll to apply it on the caller's goroutine.
type PolledTask[T any] struct {
	cell  *Cell[AsyncState[T]]
	work  func() (T, error)
	inbox chan AsyncState[T]
}

// NewPolledTask creates a poll-based task over work.
func NewPolledTask[T any](tc *TrackingContext, work func() (T, error)) *PolledTask[T] {
	return &PolledTask[T]{
		cell:  NewCell(tc, IdleState[T]()),
		work:  work,
		inbox: make(chan AsyncState[T], 1),
	}
}

// Cell returns the backing cell holding the task's state.
func (t *PolledTask[T]) Cell() *Cell[AsyncState[T]] {
	return t.cell
}

// Trigger starts one round of work. The result is delivered on the next
// Poll after the worker finishes.
func (t *PolledTask[T]) Trigger() {
	t.cell.SetValue(LoadingState[T]())
	go func() {
		st := runWork(t.work)
		for {
			select {
			case t.inbox <- st:
				return
			default:
			}
			// Inbox full from an overlapping trigger: drop the stale
			// result and retry.
			select {
			case <-t.inbox:
			default:
			}
		}
	}()
}

// Poll checks the inbox without blocking. If a result is present it is
// written into the cell on the calling goroutine and Poll reports true.
func (t *PolledTask[T]) Poll() bool {
	select {
	case st := <-t.inbox:
		t.cell.SetValue(st)
		return true
	default:
		return false
	}
}
