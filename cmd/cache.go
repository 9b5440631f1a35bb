package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jcdickinson/quarry/internal/config"
	"github.com/jcdickinson/quarry/internal/rustdoc"
	"github.com/spf13/cobra"
)

var clearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Remove cached rustdoc JSON so the next run regenerates it",
	Run:   runClearCache,
}

func runClearCache(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	cleared := 0
	for _, crate := range cfg.Crates {
		if err := rustdoc.ClearCrateCache(crate); err != nil {
			slog.Error("failed to clear cached JSON", "crate", crate, "error", err)
			os.Exit(1)
		}
		cleared++
	}
	fmt.Printf("cleared cached rustdoc JSON for %d crates\n", cleared)
}
