package types

// MenuCommand is a single runnable entry discovered in a project folder.
type MenuCommand struct {
	// Label is the text shown in the menu.
	Label string `json:"label"`
	// Command is the exact shell line to execute.
	Command string `json:"command"`
	// Source identifies the provider that produced the entry (e.g. "Makefile").
	Source string `json:"source,omitempty"`
}

// Description returns the short "from <source>" text shown next to the label.
func (c MenuCommand) Description() string {
	if c.Source == "" {
		return ""
	}
	return "from " + c.Source
}

// FolderMenu groups the entries discovered in one project folder.
type FolderMenu struct {
	Folder string        `json:"folder"`
	Items  []MenuCommand `json:"items"`
}
