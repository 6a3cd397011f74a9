package event

import "github.com/seanodell/vscode-terminal-menu/pkg/types"

const (
	// MenuUpdated is published after a folder was re-scanned.
	MenuUpdated EventType = "menu.updated"
	// WatchError is published when the file watcher reports an error.
	WatchError EventType = "watch.error"
)

// MenuUpdatedData is the payload of MenuUpdated.
type MenuUpdatedData struct {
	Folder string              `json:"folder"`
	Files  []string            `json:"files"`
	Items  []types.MenuCommand `json:"items"`
}

// WatchErrorData is the payload of WatchError.
type WatchErrorData struct {
	Message string `json:"message"`
}
