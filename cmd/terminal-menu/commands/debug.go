package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seanodell/vscode-terminal-menu/internal/config"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Debug utilities",
	Long:  `Debug utilities for troubleshooting terminal-menu settings and providers.`,
}

var debugConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show merged settings",
	RunE:  runDebugConfig,
}

var debugPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show system paths",
	RunE:  runDebugPaths,
}

var debugDiscoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Run every provider and report failures",
	RunE:  runDebugDiscover,
}

func init() {
	debugCmd.AddCommand(debugConfigCmd)
	debugCmd.AddCommand(debugPathsCmd)
	debugCmd.AddCommand(debugDiscoverCmd)
}

func runDebugConfig(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runDebugPaths(cmd *cobra.Command, args []string) error {
	dir, err := GetWorkDir(workDir)
	if err != nil {
		return err
	}
	paths := config.GetPaths()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "terminal-menu paths:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Config:   %s\n", paths.Config)
	fmt.Fprintf(out, "  Global:   %s\n", paths.GlobalConfigPath())
	fmt.Fprintf(out, "  Project:  %s\n", config.ProjectConfigPath(dir))
	fmt.Fprintf(out, "  State:    %s\n", paths.State)
	fmt.Fprintf(out, "  Cache:    %s\n", paths.Cache)
	fmt.Fprintf(out, "  Log:      %s\n", paths.LogPath())
	return nil
}

func runDebugDiscover(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	enabled := s.registry.Enabled(s.config.EnabledConfigTypes)
	for _, d := range s.registry.DiscoverFolders(cmd.Context(), s.folders, s.config.EnabledConfigTypes) {
		fmt.Fprintf(out, "%s\n", d.Folder)

		counts := make(map[string]int)
		for _, item := range d.Items {
			counts[item.Source]++
		}
		failed := make(map[string]error)
		for _, diag := range d.Diagnostics {
			failed[diag.ProviderID] = diag.Err
		}

		for _, p := range enabled {
			if err, ok := failed[p.ID()]; ok {
				fmt.Fprintf(out, "  %-14s error: %v\n", p.ID(), err)
				continue
			}
			fmt.Fprintf(out, "  %-14s %d item(s)\n", p.ID(), counts[p.ID()])
		}
	}
	return nil
}
