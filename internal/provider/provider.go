package provider

import (
	"context"

	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// Provider extracts menu commands from one configuration file format.
type Provider interface {
	// ID returns the stable provider identifier, also used as the enabled-set key.
	ID() string

	// Name returns the human-readable provider name.
	Name() string

	// Description describes what the provider parses.
	Description() string

	// Files returns the file names the provider checks, in priority order.
	Files() []string

	// ProvideMenuItems parses the provider's file in folder.
	// A missing file yields no items and no error. Read and parse failures
	// return an error and no items.
	ProvideMenuItems(ctx context.Context, folder string) ([]types.MenuCommand, error)
}

// descriptor holds the static identity shared by the built-in providers.
type descriptor struct {
	id          string
	name        string
	description string
	files       []string
}

func (d descriptor) ID() string          { return d.id }
func (d descriptor) Name() string        { return d.name }
func (d descriptor) Description() string { return d.description }

func (d descriptor) Files() []string {
	files := make([]string, len(d.files))
	copy(files, d.files)
	return files
}

// item builds a command attributed to this provider.
func (d descriptor) item(label, command string) types.MenuCommand {
	return types.MenuCommand{
		Label:   label,
		Command: command,
		Source:  d.id,
	}
}
