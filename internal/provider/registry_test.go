package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// stubProvider returns fixed items or a fixed error.
type stubProvider struct {
	descriptor
	items []types.MenuCommand
	err   error
	panic bool
	calls int
}

func newStubProvider(id string, labels ...string) *stubProvider {
	p := &stubProvider{descriptor: descriptor{id: id, name: id, description: "stub " + id}}
	for _, label := range labels {
		p.items = append(p.items, p.item(label, label))
	}
	return p
}

func (p *stubProvider) ProvideMenuItems(ctx context.Context, folder string) ([]types.MenuCommand, error) {
	p.calls++
	if p.panic {
		panic("boom")
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.items, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(newStubProvider("a"))

	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID())

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_ListKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"zeta", "alpha", "mid"} {
		r.Register(newStubProvider(id))
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.IDs())
}

func TestRegistry_DuplicateReplacesInPlace(t *testing.T) {
	r := NewRegistry()
	r.Register(newStubProvider("a", "old"))
	r.Register(newStubProvider("b", "b"))
	r.Register(newStubProvider("a", "new"))

	assert.Equal(t, []string{"a", "b"}, r.IDs())
	items := r.GetMenuItems(context.Background(), t.TempDir(), nil)
	assert.Equal(t, []string{"new", "b"}, labels(items))
}

func TestRegistry_DefaultOrder(t *testing.T) {
	assert.Equal(t,
		[]string{TerminalMenuID, MiseID, JustfileID, PackageJSONID, MakefileID},
		DefaultRegistry().IDs())
}

func TestRegistry_Enabled(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"a", "b", "c"} {
		r.Register(newStubProvider(id))
	}

	ids := func(ps []Provider) []string {
		out := []string{}
		for _, p := range ps {
			out = append(out, p.ID())
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(r.Enabled(nil)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(r.Enabled([]string{})))
	assert.Equal(t, []string{"a", "c"}, ids(r.Enabled([]string{"c", "a"})))
	assert.Equal(t, []string{}, ids(r.Enabled([]string{"unknown"})))
}

func TestRegistry_AggregatesAllProviders(t *testing.T) {
	dir := sampleProject(t)

	items := DefaultRegistry().GetMenuItems(context.Background(), dir, nil)

	assert.Equal(t, []string{
		"test command", "labeled command", "another command",
		"mise: test", "mise: build", "mise: clean",
		"just: build", "just: test", "just: lint",
		"npm: start", "npm: test", "npm: build", "npm: lint",
		"make: build", "make: test", "make: clean",
	}, labels(items))
}

func TestRegistry_FilterRestrictsSources(t *testing.T) {
	dir := sampleProject(t)

	items := DefaultRegistry().GetMenuItems(context.Background(), dir, []string{TerminalMenuID, PackageJSONID})

	sources := map[string]bool{}
	for _, item := range items {
		sources[item.Source] = true
	}
	assert.Equal(t, map[string]bool{TerminalMenuID: true, PackageJSONID: true}, sources)
	assert.Len(t, items, 7)
}

func TestRegistry_FailureIsolation(t *testing.T) {
	failing := newStubProvider("failing")
	failing.err = errors.New("read failed")
	panicking := newStubProvider("panicking")
	panicking.panic = true

	r := NewRegistry()
	r.Register(newStubProvider("first", "one"))
	r.Register(failing)
	r.Register(panicking)
	r.Register(newStubProvider("last", "two"))

	d := r.Discover(context.Background(), t.TempDir(), nil)

	assert.Equal(t, []string{"one", "two"}, labels(d.Items))
	require.Len(t, d.Diagnostics, 2)
	assert.Equal(t, "failing", d.Diagnostics[0].ProviderID)
	assert.EqualError(t, d.Diagnostics[0].Err, "read failed")
	assert.Equal(t, "panicking", d.Diagnostics[1].ProviderID)
	assert.ErrorIs(t, d.Diagnostics[1].Err, ErrProviderPanic)
	assert.Contains(t, d.Diagnostics[1].Error(), "provider panicking")
}

func TestRegistry_ParseFailureKeepsOthers(t *testing.T) {
	dir := sampleProject(t)
	writeFiles(t, dir, map[string]string{"package.json": "{not json"})

	d := DefaultRegistry().Discover(context.Background(), dir, nil)

	require.Len(t, d.Diagnostics, 1)
	assert.Equal(t, PackageJSONID, d.Diagnostics[0].ProviderID)
	for _, item := range d.Items {
		assert.NotEqual(t, PackageJSONID, item.Source)
	}
	assert.Len(t, d.Items, 12)
}

func TestRegistry_Idempotent(t *testing.T) {
	dir := sampleProject(t)
	r := DefaultRegistry()

	first := r.GetMenuItems(context.Background(), dir, nil)
	second := r.GetMenuItems(context.Background(), dir, nil)
	assert.Equal(t, first, second)
}

func TestRegistry_EmptyFolderReturnsEmptySlice(t *testing.T) {
	items := DefaultRegistry().GetMenuItems(context.Background(), t.TempDir(), nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRegistry_CanceledContextSkipsProviders(t *testing.T) {
	stub := newStubProvider("a", "one")
	r := NewRegistry()
	r.Register(stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := r.Discover(ctx, t.TempDir(), nil)
	assert.Empty(t, d.Items)
	assert.Equal(t, 0, stub.calls)
	require.Len(t, d.Diagnostics, 1)
	assert.ErrorIs(t, d.Diagnostics[0].Err, context.Canceled)
}

func TestRegistry_DiscoverFoldersKeepsFolderOrder(t *testing.T) {
	folders := make([]string, 6)
	for i := range folders {
		folders[i] = t.TempDir()
		writeFiles(t, folders[i], map[string]string{".terminal-menu": "entry " + string(rune('a'+i)) + "\n"})
	}

	results := DefaultRegistry().DiscoverFolders(context.Background(), folders, nil)

	require.Len(t, results, len(folders))
	for i, d := range results {
		assert.Equal(t, folders[i], d.Folder)
		require.Len(t, d.Items, 1)
		assert.Equal(t, "entry "+string(rune('a'+i)), d.Items[0].Label)
	}
}
