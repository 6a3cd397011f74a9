// Package watcher re-runs discovery when provider files change.
package watcher

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/seanodell/vscode-terminal-menu/internal/event"
	"github.com/seanodell/vscode-terminal-menu/internal/logging"
	"github.com/seanodell/vscode-terminal-menu/internal/provider"
)

// DefaultDebounce coalesces editor save bursts into one re-scan.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches project folders for changes to the files the enabled
// providers read and publishes event.MenuUpdated with fresh results.
type Watcher struct {
	watcher  *fsnotify.Watcher
	registry *provider.Registry
	bus      *event.Bus
	enabled  []string
	debounce time.Duration
	names    map[string]bool

	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	mu      sync.Mutex
}

// New creates a watcher for folders. Directories are watched rather than the
// files themselves so that files created later are noticed.
func New(registry *provider.Registry, bus *event.Bus, folders, enabled []string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	names := make(map[string]bool)
	for _, p := range registry.Enabled(enabled) {
		for _, name := range p.Files() {
			names[name] = true
		}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, folder := range folders {
		if err := fw.Add(folder); err != nil {
			fw.Close()
			return nil, err
		}
	}

	logging.Info().Strs("folders", folders).Int("files", len(names)).Msg("watcher initialized")

	return &Watcher{
		watcher:  fw,
		registry: registry,
		bus:      bus,
		enabled:  enabled,
		debounce: debounce,
		names:    names,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()
	go w.run()
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	pending := make(map[string]map[string]bool) // folder -> changed file names
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			name := filepath.Base(ev.Name)
			if !w.names[name] || ev.Op == fsnotify.Chmod {
				continue
			}
			folder := filepath.Dir(ev.Name)
			if pending[folder] == nil {
				pending[folder] = make(map[string]bool)
			}
			pending[folder][name] = true

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.rescan(pending)
			pending = make(map[string]map[string]bool)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Error().Err(err).Msg("watcher error")
			w.bus.Publish(event.Event{
				Type: event.WatchError,
				Data: event.WatchErrorData{Message: err.Error()},
			})
		}
	}
}

func (w *Watcher) rescan(pending map[string]map[string]bool) {
	folders := make([]string, 0, len(pending))
	for folder := range pending {
		folders = append(folders, folder)
	}
	sort.Strings(folders)

	for _, folder := range folders {
		files := make([]string, 0, len(pending[folder]))
		for name := range pending[folder] {
			files = append(files, name)
		}
		sort.Strings(files)

		items := w.registry.GetMenuItems(context.Background(), folder, w.enabled)
		logging.Debug().Str("folder", folder).Strs("files", files).Int("items", len(items)).Msg("menu updated")

		w.bus.PublishSync(event.Event{
			Type: event.MenuUpdated,
			Data: event.MenuUpdatedData{Folder: folder, Files: files, Items: items},
		})
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()

	select {
	case <-w.stopCh:
	default:
		close(w.stopCh)
	}

	if started {
		<-w.doneCh
	}

	return w.watcher.Close()
}
