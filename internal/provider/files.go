package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fileExists reports whether something exists at path.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readText reads a UTF-8 file.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// joinPath joins a folder and a file name.
func joinPath(folder, name string) string {
	return filepath.Join(folder, name)
}

// firstExisting returns the path of the first name that exists in folder.
func firstExisting(folder string, names ...string) (string, bool) {
	for _, name := range names {
		path := joinPath(folder, name)
		if fileExists(path) {
			return path, true
		}
	}
	return "", false
}

// splitLines splits on "\n". Callers trim each line, which also drops "\r".
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// loadFirst reads the first existing file among names.
// found is false when none of them exist.
func loadFirst(ctx context.Context, folder string, names ...string) (content string, found bool, err error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	path, ok := firstExisting(folder, names...)
	if !ok {
		return "", false, nil
	}
	content, err = readText(path)
	if err != nil {
		return "", true, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return content, true, nil
}
