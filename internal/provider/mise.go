package provider

import (
	"context"
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// MiseID is the id of the mise.toml provider.
const MiseID = "mise.toml"

// MiseProvider lists mise tasks that define a run command.
type MiseProvider struct {
	descriptor
}

// NewMiseProvider creates the mise.toml provider.
func NewMiseProvider() *MiseProvider {
	return &MiseProvider{descriptor{
		id:          MiseID,
		name:        "mise.toml tasks",
		description: "Parse tasks from mise.toml files",
		files:       []string{"mise.toml"},
	}}
}

// ProvideMenuItems implements Provider.
func (p *MiseProvider) ProvideMenuItems(ctx context.Context, folder string) ([]types.MenuCommand, error) {
	content, found, err := loadFirst(ctx, folder, p.files...)
	if err != nil || !found {
		return nil, err
	}
	return p.parse([]byte(content))
}

func (p *MiseProvider) parse(data []byte) ([]types.MenuCommand, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse mise.toml: %w", err)
	}

	tasks, ok := doc["tasks"].(map[string]any)
	if !ok {
		return nil, nil
	}

	order, err := taskOrder(data)
	if err != nil {
		return nil, fmt.Errorf("parse mise.toml: %w", err)
	}

	var items []types.MenuCommand
	for _, name := range completeOrder(order, tasks) {
		task, ok := tasks[name].(map[string]any)
		if !ok {
			continue
		}
		if _, hasRun := task["run"]; !hasRun {
			continue
		}
		items = append(items, p.item("mise: "+name, "mise run "+name))
	}
	return items, nil
}

// taskOrder returns task names in the order they first appear in the
// document. Decoding into a map loses that order.
func taskOrder(data []byte) ([]string, error) {
	var (
		parser unstable.Parser
		order  []string
		seen   = make(map[string]bool)
		table  []string
	)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	parser.Reset(data)
	for parser.NextExpression() {
		expr := parser.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = keyParts(expr.Key())
			if len(table) >= 2 && table[0] == "tasks" {
				add(table[1])
			}
		case unstable.KeyValue:
			path := append(append([]string{}, table...), keyParts(expr.Key())...)
			switch {
			case len(path) >= 2 && path[0] == "tasks":
				add(path[1])
			case len(path) == 1 && path[0] == "tasks" && expr.Value().Kind == unstable.InlineTable:
				children := expr.Value().Children()
				for children.Next() {
					if keys := keyParts(children.Node().Key()); len(keys) > 0 {
						add(keys[0])
					}
				}
			}
		}
	}
	if err := parser.Error(); err != nil {
		return nil, err
	}
	return order, nil
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// completeOrder appends any task missing from order, sorted, so that every
// decoded task is considered exactly once.
func completeOrder(order []string, tasks map[string]any) []string {
	listed := make(map[string]bool, len(order))
	for _, name := range order {
		listed[name] = true
	}
	var rest []string
	for name := range tasks {
		if !listed[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
