// Package provider discovers runnable commands in a project folder.
//
// Each Provider understands one configuration format and turns the file it
// finds in a folder into an ordered list of types.MenuCommand values. The
// built-in providers are:
//
//   - .terminal-menu: one "label: command" (or bare command) per line
//   - mise.toml: [tasks.<name>] tables that define run
//   - justfile: recipe headers, skipping @hidden recipes
//   - package.json: string entries of the "scripts" object
//   - Makefile: target headers, skipping .internal targets
//
// # Registry
//
// The Registry keeps providers in registration order. Discovery runs the
// enabled providers one after another and concatenates their results in that
// order, so the output for an unchanged folder is always the same.
//
// A provider that fails to read or parse its file contributes nothing and is
// reported as a Diagnostic; it never stops the remaining providers:
//
//	reg := provider.DefaultRegistry()
//	items := reg.GetMenuItems(ctx, "/path/to/project", nil)
//
// An empty enabled set means every registered provider runs. Unknown ids in
// the enabled set are ignored.
//
// # File Variants
//
// Providers that accept several file names (justfile/Justfile,
// Makefile/makefile/GNUmakefile) parse only the first one found. The others
// are ignored, not merged.
package provider
