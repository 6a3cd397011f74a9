package commands

import (
	"context"
	"path/filepath"

	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// menu is the result of discovering every folder of a session, both grouped
// by folder and flattened for selection.
type menu struct {
	groups  []types.FolderMenu
	items   []types.MenuCommand
	folders []string // folder of items[i]
}

// collect discovers all session folders. With more than one folder, each
// flattened record's source is prefixed with its folder name.
func (s *session) collect(ctx context.Context, enabled []string) *menu {
	results := s.registry.DiscoverFolders(ctx, s.folders, enabled)
	tag := len(results) > 1

	m := &menu{}
	for _, d := range results {
		m.groups = append(m.groups, types.FolderMenu{Folder: d.Folder, Items: d.Items})

		base := filepath.Base(d.Folder)
		for _, item := range d.Items {
			if tag && item.Source != "" {
				item.Source = base + "/" + item.Source
			}
			m.items = append(m.items, item)
			m.folders = append(m.folders, d.Folder)
		}
	}
	return m
}

// enabledTypes resolves the enabled set from a flag, falling back to settings.
func (s *session) enabledTypes(flag []string) []string {
	if len(flag) > 0 {
		return flag
	}
	return s.config.EnabledConfigTypes
}
