// Package input hands the most recent player input from the keyboard reader
// to the tick loop.
package input

import (
	"sync"

	"github.com/battlesnakeio/termsnake/game"
)

// Latest is a single-slot, last-write-wins cell. Publishing never blocks and
// inputs published between two reads are lost except for the last one.
type Latest struct {
	sync.RWMutex
	dir     game.Direction
	version uint64
	changed chan struct{}
}

// NewLatest returns a cell holding initial.
func NewLatest(initial game.Direction) *Latest {
	return &Latest{
		dir:     initial,
		changed: make(chan struct{}),
	}
}

// Publish replaces the current value and wakes everyone waiting on Changed.
func (l *Latest) Publish(dir game.Direction) {
	l.Lock()
	defer l.Unlock()

	l.dir = dir
	l.version++
	close(l.changed)
	l.changed = make(chan struct{})
}

// Load returns the current value.
func (l *Latest) Load() game.Direction {
	l.RLock()
	defer l.RUnlock()

	return l.dir
}

// Version counts the publishes so far.
func (l *Latest) Version() uint64 {
	l.RLock()
	defer l.RUnlock()

	return l.version
}

// Changed returns a channel that is closed on the next Publish.
func (l *Latest) Changed() <-chan struct{} {
	l.RLock()
	defer l.RUnlock()

	return l.changed
}
