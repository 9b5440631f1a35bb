package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jcdickinson/quarry/internal/config"
	"github.com/jcdickinson/quarry/internal/db"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the mined registry to a DuckDB database",
	Long:  `Build the struct registry and write every struct and field to a DuckDB database for ad-hoc SQL analysis.`,
	Example: `  quarry export
  quarry export --out /tmp/std-structs.db`,
	Args: cobra.NoArgs,
	Run:  runExport,
}

var exportOut string

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "database file path (default: the registry cache directory)")
}

func runExport(cmd *cobra.Command, args []string) {
	cache, _, err := newCache()
	if err != nil {
		slog.Error("failed to set up registry", "error", err)
		os.Exit(1)
	}

	paths, err := cache.ListAll()
	if err != nil {
		slog.Error("building registry failed", "error", err)
		os.Exit(1)
	}

	dbPath := exportOut
	if dbPath == "" {
		dbPath = config.DBPath()
	}
	database, err := db.New(dbPath)
	if err != nil {
		slog.Error("opening database", "path", dbPath, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	for _, path := range paths {
		s, err := cache.Lookup(path)
		if err != nil {
			slog.Error("lookup during export", "path", path, "error", err)
			os.Exit(1)
		}
		if err := database.InsertStruct(s); err != nil {
			slog.Error("storing struct", "path", path, "error", err)
			os.Exit(1)
		}
	}

	structs, err := database.CountStructs()
	if err != nil {
		slog.Error("counting exported structs", "error", err)
		os.Exit(1)
	}
	fields, err := database.CountFields()
	if err != nil {
		slog.Error("counting exported fields", "error", err)
		os.Exit(1)
	}
	fmt.Printf("exported %d structs (%d fields) to %s\n", structs, fields, dbPath)
}
