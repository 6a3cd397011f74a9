package provider

import (
	"context"
	"strings"

	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// JustfileID is the id of the justfile provider.
const JustfileID = "justfile"

// JustfileProvider lists the public recipes of a justfile.
type JustfileProvider struct {
	descriptor
}

// NewJustfileProvider creates the justfile provider.
func NewJustfileProvider() *JustfileProvider {
	return &JustfileProvider{descriptor{
		id:          JustfileID,
		name:        "justfile recipes",
		description: "Parse recipes from justfile",
		files:       []string{"justfile", "Justfile"},
	}}
}

// ProvideMenuItems implements Provider. Only the first justfile variant found
// is parsed.
func (p *JustfileProvider) ProvideMenuItems(ctx context.Context, folder string) ([]types.MenuCommand, error) {
	content, found, err := loadFirst(ctx, folder, p.files...)
	if err != nil || !found {
		return nil, err
	}
	return p.parse(content), nil
}

func (p *JustfileProvider) parse(content string) []types.MenuCommand {
	var items []types.MenuCommand
	for _, raw := range splitLines(content) {
		// Indented lines are recipe bodies.
		if strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t") {
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, ok := recipeName(line)
		if !ok || strings.HasPrefix(name, "@") {
			continue
		}
		items = append(items, p.item("just: "+name, "just "+name))
	}
	return items
}

// recipeName returns the first word before the first colon. Settings lines
// such as "set shell := [...]" match too and are listed like recipes.
func recipeName(line string) (string, bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", false
	}
	fields := strings.Fields(line[:idx])
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
