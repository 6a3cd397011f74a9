package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleTerminalMenu = `# Project commands
test command
labeled command: echo This is a test

another command
`

const sampleMiseToml = `[env]
GOFLAGS = "-mod=mod"

[tasks.test]
run = "go test ./..."

[tasks.build]
description = "Build the binary"
run = "go build ./..."

[tasks.clean]
run = "rm -rf dist"

[tasks.docs]
description = "No run command"
`

const sampleJustfile = `# Build everything
build:
    go build ./...

test: build
    echo "running: tests"
    go test ./...

lint target="all":
    golangci-lint run

@clean:
    rm -rf dist
`

const samplePackageJSON = `{
  "name": "demo",
  "scripts": {
    "start": "node index.js",
    "test": "jest",
    "build": "tsc",
    "lint": "eslint .",
    "nested": { "cmd": "ignored" },
    "count": 3
  }
}`

const sampleMakefile = `VAR := value
OTHER = x
include common.mk

.PHONY: build test clean

build:
	go build ./...

test: build
	go test ./...

clean :
	rm -rf dist

.internal:
	echo hidden
`

// writeFiles creates each name => content pair inside dir.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// sampleProject writes one sample file per built-in provider.
func sampleProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		".terminal-menu": sampleTerminalMenu,
		"mise.toml":      sampleMiseToml,
		"justfile":       sampleJustfile,
		"package.json":   samplePackageJSON,
		"Makefile":       sampleMakefile,
	})
	return dir
}
