// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Operate on the local library as a whole",
}

var libraryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your favorites, watchlists, and reviews to a file",
	RunE:  runLibraryExport,
}

func init() {
	libraryExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	libraryCmd.AddCommand(libraryExportCmd)
	rootCmd.AddCommand(libraryCmd)
}

func runLibraryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch format {
	case "yaml":
		path, err = store.ExportYAML(cmd.Context(), currentUser(cmd))
	case "json":
		path, err = store.ExportJSON(cmd.Context(), currentUser(cmd))
	default:
		return fmt.Errorf("unknown export format %q (want yaml or json)", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported library to %s\n", path)
	return nil
}
