package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every struct path in the registry",
	Example: `  quarry list
  quarry list --prefix std::collections`,
	Args: cobra.NoArgs,
	Run:  runList,
}

var listPrefix string

func init() {
	listCmd.Flags().StringVar(&listPrefix, "prefix", "", "only show paths under this prefix")
}

func runList(cmd *cobra.Command, args []string) {
	cache, _, err := newCache()
	if err != nil {
		slog.Error("failed to set up registry", "error", err)
		os.Exit(1)
	}

	paths, err := cache.ListAll()
	if err != nil {
		slog.Error("listing structs failed", "error", err)
		os.Exit(1)
	}

	shown := 0
	for _, p := range paths {
		if listPrefix != "" && !strings.HasPrefix(p, listPrefix) {
			continue
		}
		fmt.Println(p)
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(os.Stderr, "no structs matched")
	}
}
