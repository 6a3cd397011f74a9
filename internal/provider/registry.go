package provider

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/seanodell/vscode-terminal-menu/internal/logging"
	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// ErrProviderPanic marks a provider that panicked during discovery.
var ErrProviderPanic = errors.New("provider panicked")

// Diagnostic records a provider that failed for one folder.
type Diagnostic struct {
	ProviderID string `json:"providerID"`
	Folder     string `json:"folder"`
	Err        error  `json:"-"`
}

// Error returns the failure message.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("provider %s: %v", d.ProviderID, d.Err)
}

// Discovery is the outcome of running the enabled providers on one folder.
type Discovery struct {
	Folder      string              `json:"folder"`
	Items       []types.MenuCommand `json:"items"`
	Diagnostics []Diagnostic        `json:"-"`
}

// Registry manages all available providers in registration order.
type Registry struct {
	mu        sync.RWMutex
	providers []Provider
	index     map[string]int
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// DefaultRegistry creates a registry with all built-in providers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewTerminalMenuProvider())
	r.Register(NewMiseProvider())
	r.Register(NewJustfileProvider())
	r.Register(NewPackageJSONProvider())
	r.Register(NewMakefileProvider())
	return r
}

// Register adds a provider. A provider with an already registered ID
// replaces the previous one and keeps its position.
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[p.ID()]; ok {
		r.providers[i] = p
		return
	}
	r.index[p.ID()] = len(r.providers)
	r.providers = append(r.providers, p)
}

// Get retrieves a provider by ID.
func (r *Registry) Get(id string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.providers[i], true
}

// List returns all providers in registration order.
func (r *Registry) List() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]Provider, len(r.providers))
	copy(providers, r.providers)
	return providers
}

// IDs returns all provider IDs in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.providers))
	for i, p := range r.providers {
		ids[i] = p.ID()
	}
	return ids
}

// Enabled returns the providers selected by enabled, in registration order.
// A nil or empty set selects every provider.
func (r *Registry) Enabled(enabled []string) []Provider {
	all := r.List()
	if len(enabled) == 0 {
		return all
	}

	want := make(map[string]bool, len(enabled))
	for _, id := range enabled {
		want[id] = true
	}

	selected := make([]Provider, 0, len(all))
	for _, p := range all {
		if want[p.ID()] {
			selected = append(selected, p)
		}
	}
	return selected
}

// GetMenuItems returns the commands found in folder by the enabled providers.
func (r *Registry) GetMenuItems(ctx context.Context, folder string, enabled []string) []types.MenuCommand {
	return r.Discover(ctx, folder, enabled).Items
}

// Discover runs the enabled providers on folder one after another. A failing
// provider is logged and recorded as a Diagnostic; the others still run.
func (r *Registry) Discover(ctx context.Context, folder string, enabled []string) *Discovery {
	d := &Discovery{Folder: folder, Items: []types.MenuCommand{}}

	for _, p := range r.Enabled(enabled) {
		if ctx.Err() != nil {
			d.Diagnostics = append(d.Diagnostics, Diagnostic{ProviderID: p.ID(), Folder: folder, Err: ctx.Err()})
			continue
		}

		items, err := invoke(ctx, p, folder)
		if err != nil {
			logging.Warn().
				Err(err).
				Str("provider", p.ID()).
				Str("folder", folder).
				Msg("provider failed, skipping its items")
			d.Diagnostics = append(d.Diagnostics, Diagnostic{ProviderID: p.ID(), Folder: folder, Err: err})
			continue
		}

		logging.Debug().
			Str("provider", p.ID()).
			Str("folder", folder).
			Int("items", len(items)).
			Msg("provider finished")
		d.Items = append(d.Items, items...)
	}

	return d
}

// DiscoverFolders runs Discover for each folder. Folders are processed
// concurrently; results keep the order of folders.
func (r *Registry) DiscoverFolders(ctx context.Context, folders []string, enabled []string) []*Discovery {
	results := make([]*Discovery, len(folders))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, folder := range folders {
		i, folder := i, folder
		g.Go(func() error {
			results[i] = r.Discover(ctx, folder, enabled)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// invoke calls a provider and turns a panic into an error.
func invoke(ctx context.Context, p Provider, folder string) (items []types.MenuCommand, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			items = nil
			err = fmt.Errorf("%w: %v", ErrProviderPanic, rec)
		}
	}()
	return p.ProvideMenuItems(ctx, folder)
}
