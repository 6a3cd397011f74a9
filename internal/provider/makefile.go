package provider

import (
	"context"
	"regexp"
	"strings"

	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// MakefileID is the id of the Makefile provider.
const MakefileID = "Makefile"

// targetPattern matches "name:" but not "name :=" or "name:=".
var targetPattern = regexp.MustCompile(`^([a-zA-Z0-9_-]+)[ \t]*:(?:[^=]|$)`)

// MakefileProvider lists explicit targets of a Makefile.
type MakefileProvider struct {
	descriptor
}

// NewMakefileProvider creates the Makefile provider.
func NewMakefileProvider() *MakefileProvider {
	return &MakefileProvider{descriptor{
		id:          MakefileID,
		name:        "Makefile targets",
		description: "Parse targets from Makefiles",
		files:       []string{"Makefile", "makefile", "GNUmakefile"},
	}}
}

// ProvideMenuItems implements Provider. The first variant found wins; the
// others are not read.
func (p *MakefileProvider) ProvideMenuItems(ctx context.Context, folder string) ([]types.MenuCommand, error) {
	content, found, err := loadFirst(ctx, folder, p.files...)
	if err != nil || !found {
		return nil, err
	}
	return p.parse(content), nil
}

func (p *MakefileProvider) parse(content string) []types.MenuCommand {
	var items []types.MenuCommand
	for _, raw := range splitLines(content) {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "include ") {
			continue
		}

		match := targetPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		target := match[1]
		if strings.HasPrefix(target, ".") {
			continue
		}
		items = append(items, p.item("make: "+target, "make "+target))
	}
	return items
}
