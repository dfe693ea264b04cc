// Package watch bridges filesystem notifications onto a typebus: every
// change under a watched path is published as a typed FileEvent, making the
// watcher an ordinary event producer that knows nothing about its
// consumers.
package watch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/dshills/typebus"
)

// FileEvent is published for every filesystem change seen by a Bridge.
// Handlers receive it mutably like any other event and may annotate it
// before lower-priority handlers run.
type FileEvent struct {
	// ChangeID uniquely identifies this change.
	ChangeID string

	// Path is the affected file or directory.
	Path string

	// Op names the operation(s), e.g. "WRITE" or "CREATE|WRITE".
	Op string

	// Timestamp is when the bridge saw the change.
	Timestamp time.Time
}

// WatchError is published when the underlying watcher reports an error.
type WatchError struct {
	Err error
}

// Bridge pumps fsnotify events onto a bus as typed events. It publishes
// from its own goroutine, so the bus must use a real locking policy.
type Bridge struct {
	bus     *typebus.Bus
	watcher *fsnotify.Watcher

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// New starts a bridge watching path and publishing FileEvent and
// WatchError values on b.
func New(b *typebus.Bus, path string) (*Bridge, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	br := &Bridge{
		bus:     b,
		watcher: fsw,
		done:    make(chan struct{}),
	}
	br.wg.Add(1)
	go func() {
		defer br.wg.Done()
		br.run(fsw.Events, fsw.Errors)
	}()
	return br, nil
}

// Close stops the bridge and releases the watcher.
func (br *Bridge) Close() error {
	var err error
	br.closeOnce.Do(func() {
		close(br.done)
		err = br.watcher.Close()
		br.wg.Wait()
	})
	return err
}

// run pumps the watcher channels until the bridge is closed or the
// channels close.
func (br *Bridge) run(events <-chan fsnotify.Event, errs <-chan error) {
	for {
		select {
		case <-br.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			fe := toFileEvent(ev)
			typebus.Publish(br.bus, &fe)
		case err, ok := <-errs:
			if !ok {
				return
			}
			we := WatchError{Err: err}
			typebus.Publish(br.bus, &we)
		}
	}
}

// toFileEvent converts an fsnotify event, stamping a fresh change ID.
func toFileEvent(ev fsnotify.Event) FileEvent {
	return FileEvent{
		ChangeID:  uuid.NewString(),
		Path:      ev.Name,
		Op:        ev.Op.String(),
		Timestamp: time.Now(),
	}
}
