// Package file pairs file contents with a path-scoped invalidation signal.
//
// A Watcher produces point-in-time snapshots of one file: each Read returns
// the current contents together with a signal that fires on the next change
// to the path. Read satisfies watchable.Producer, so continuous re-reading is
// a Watch away:
//
//	w := file.New("/etc/myapp/config.json")
//	defer w.Close()
//
//	sub, err := watchable.Watch(w.Read, func(v watchable.Value[[]byte]) {
//	    apply(v.V)
//	})
package file

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"

	watchable "github.com/uecasm/Mirality.WatchableValue"
)

// Watcher produces snapshots of a single file.
type Watcher struct {
	path string

	mu     sync.Mutex
	done   chan struct{}
	closed bool
}

// New creates a Watcher for the given file path. The path must exist by the
// time Read is called.
func New(path string) *Watcher {
	return &Watcher{
		path: path,
		done: make(chan struct{}),
	}
}

// Path returns the watched path.
func (w *Watcher) Path() string { return w.path }

// Read returns the file's current contents paired with a signal that fires
// on the next write, create, remove, or rename affecting the path. The
// signal is armed before the contents are read, so a change racing the read
// yields a pairing that is already stale rather than one that misses the
// change. The signal is labeled with the path.
//
// Each Read arms an independent one-shot signal; the goroutine behind it
// exits when the signal fires or the Watcher is closed.
func (w *Watcher) Read() (watchable.Value[[]byte], error) {
	var zero watchable.Value[[]byte]

	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return zero, fmt.Errorf("file: watcher for %s is closed", w.path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zero, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(w.path); err != nil {
		fsw.Close()
		return zero, fmt.Errorf("failed to watch file %s: %w", w.path, err)
	}

	trigger := watchable.NewTrigger()
	stop := make(chan struct{})

	go func() {
		defer fsw.Close()
		for {
			select {
			case <-w.done:
				return

			case <-stop:
				return

			case event, ok := <-fsw.Events:
				if !ok {
					trigger.Fire()
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				trigger.Fire()
				return

			case <-fsw.Errors:
				// A watch that can no longer be trusted is treated as stale.
				trigger.Fire()
				return
			}
		}
	}()

	data, err := os.ReadFile(w.path)
	if err != nil {
		close(stop)
		return zero, fmt.Errorf("failed to read %s: %w", w.path, err)
	}

	return watchable.NewValue(data, watchable.Named(trigger, w.path)), nil
}

// Close releases every signal still armed by previous Reads without firing
// them, and makes further Reads fail. Idempotent.
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	close(w.done)
}
