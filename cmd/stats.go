package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var existsCmd = &cobra.Command{
	Use:   "exists <path>",
	Short: "Check whether a struct path is in the registry",
	Args:  cobra.ExactArgs(1),
	Run:   runExists,
}

func runExists(cmd *cobra.Command, args []string) {
	cache, _, err := newCache()
	if err != nil {
		slog.Error("failed to set up registry", "error", err)
		os.Exit(1)
	}

	if !cache.Exists(args[0]) {
		fmt.Println("not found")
		os.Exit(1)
	}
	fmt.Println("found")
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show registry size without building it",
	Run:   runStats,
}

var statsJSON bool

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
}

func runStats(cmd *cobra.Command, args []string) {
	cache, _, err := newCache()
	if err != nil {
		slog.Error("failed to set up registry", "error", err)
		os.Exit(1)
	}

	count, ready := cache.Stats()
	if statsJSON {
		out, _ := json.MarshalIndent(map[string]any{
			"struct_count": count,
			"ready":        ready,
		}, "", "  ")
		fmt.Println(string(out))
		return
	}

	if !ready {
		fmt.Println("registry not built (run `quarry warm` or any lookup)")
		return
	}
	fmt.Printf("%d structs\n", count)
}

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Build the registry now, generating rustdoc JSON if needed",
	Run:   runWarm,
}

func runWarm(cmd *cobra.Command, args []string) {
	cache, cfg, err := newCache()
	if err != nil {
		slog.Error("failed to set up registry", "error", err)
		os.Exit(1)
	}

	fmt.Printf("mining %v with toolchain %s...\n", cfg.Crates, cfg.Generator.Toolchain)
	if err := cache.EnsureReady(); err != nil {
		slog.Error("registry build failed", "error", err)
		os.Exit(1)
	}

	count, _ := cache.Stats()
	fmt.Printf("%d structs mined\n", count)
}
