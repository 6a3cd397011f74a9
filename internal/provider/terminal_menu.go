package provider

import (
	"context"
	"strings"

	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// TerminalMenuID is the id of the .terminal-menu provider.
const TerminalMenuID = ".terminal-menu"

// TerminalMenuProvider reads hand-written entries from a .terminal-menu file.
type TerminalMenuProvider struct {
	descriptor
}

// NewTerminalMenuProvider creates the .terminal-menu provider.
func NewTerminalMenuProvider() *TerminalMenuProvider {
	return &TerminalMenuProvider{descriptor{
		id:          TerminalMenuID,
		name:        ".terminal-menu files",
		description: "Parse commands from .terminal-menu files",
		files:       []string{".terminal-menu"},
	}}
}

// ProvideMenuItems implements Provider.
func (p *TerminalMenuProvider) ProvideMenuItems(ctx context.Context, folder string) ([]types.MenuCommand, error) {
	content, found, err := loadFirst(ctx, folder, p.files...)
	if err != nil || !found {
		return nil, err
	}
	return p.parse(content), nil
}

// parse treats each line as "label: command", or as a bare command that is
// also its own label. The first colon always splits; there is no escaping.
func (p *TerminalMenuProvider) parse(content string) []types.MenuCommand {
	var items []types.MenuCommand
	for _, raw := range splitLines(content) {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if idx := strings.Index(line, ":"); idx > 0 {
			label := strings.TrimSpace(line[:idx])
			command := strings.TrimSpace(line[idx+1:])
			items = append(items, p.item(label, command))
			continue
		}
		items = append(items, p.item(line, line))
	}
	return items
}
