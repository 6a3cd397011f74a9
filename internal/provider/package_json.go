package provider

import (
	"context"
	"errors"

	"github.com/tidwall/gjson"

	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// PackageJSONID is the id of the package.json provider.
const PackageJSONID = "package.json"

// errInvalidJSON is returned for a package.json that does not parse.
var errInvalidJSON = errors.New("package.json: invalid JSON")

// PackageJSONProvider lists npm scripts.
type PackageJSONProvider struct {
	descriptor
}

// NewPackageJSONProvider creates the package.json provider.
func NewPackageJSONProvider() *PackageJSONProvider {
	return &PackageJSONProvider{descriptor{
		id:          PackageJSONID,
		name:        "package.json scripts",
		description: "Parse npm scripts from package.json",
		files:       []string{"package.json"},
	}}
}

// ProvideMenuItems implements Provider.
func (p *PackageJSONProvider) ProvideMenuItems(ctx context.Context, folder string) ([]types.MenuCommand, error) {
	content, found, err := loadFirst(ctx, folder, p.files...)
	if err != nil || !found {
		return nil, err
	}
	return p.parse(content)
}

// parse walks "scripts" in document order. A repeated key keeps its first
// position and its last value. Non-string values are skipped.
func (p *PackageJSONProvider) parse(content string) ([]types.MenuCommand, error) {
	if !gjson.Valid(content) {
		return nil, errInvalidJSON
	}

	scripts := gjson.Get(content, "scripts")
	if !scripts.IsObject() {
		return nil, nil
	}

	var names []string
	isString := make(map[string]bool)
	scripts.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if _, seen := isString[name]; !seen {
			names = append(names, name)
		}
		isString[name] = value.Type == gjson.String
		return true
	})

	var items []types.MenuCommand
	for _, name := range names {
		if isString[name] {
			items = append(items, p.item("npm: "+name, "npm run "+name))
		}
	}
	return items, nil
}
