package viewstate

import "sync"

// Log is an event-sourced store: the state is always the fold of its recorded actions.
// It is safe for concurrent use.
type Log[S, A any] struct {
	mu      sync.RWMutex
	initial S
	state   S
	actions []A
	reduce  func(S, A) S
}

// NewLog starts a log at initial.
func NewLog[S, A any](initial S, reduce func(S, A) S) *Log[S, A] {
	return &Log[S, A]{initial: initial, state: initial, reduce: reduce}
}

// NewHomeLog starts a home screen log at InitialHomeState.
func NewHomeLog() *Log[HomeState, HomeAction] {
	return NewLog(InitialHomeState(), ReduceHome)
}

// NewReviewWriteLog starts an empty review-write log.
func NewReviewWriteLog() *Log[ReviewWriteState, ReviewWriteAction] {
	return NewLog(ReviewWriteState{}, ReduceReviewWrite)
}

// Dispatch records actions in order and returns the resulting state.
func (l *Log[S, A]) Dispatch(actions ...A) S {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, action := range actions {
		l.state = l.reduce(l.state, action)
		l.actions = append(l.actions, action)
	}
	return l.state
}

func (l *Log[S, A]) State() S {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Actions returns a copy of the recorded actions.
func (l *Log[S, A]) Actions() []A {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]A(nil), l.actions...)
}

// Replay folds the first n recorded actions over the initial state. n outside [0, len] is clamped.
func (l *Log[S, A]) Replay(n int) S {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n < 0 {
		n = 0
	}
	if n > len(l.actions) {
		n = len(l.actions)
	}
	return Replay(l.initial, l.reduce, l.actions[:n])
}

// Replay folds actions over initial.
func Replay[S, A any](initial S, reduce func(S, A) S, actions []A) S {
	state := initial
	for _, action := range actions {
		state = reduce(state, action)
	}
	return state
}
