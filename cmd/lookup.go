package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jcdickinson/quarry/internal/registry"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <path>",
	Short: "Look up a struct's field layout by full module path",
	Example: `  quarry lookup alloc::string::String
  quarry lookup std::vec::Vec
  quarry lookup --json std::collections::HashMap`,
	Args: cobra.ExactArgs(1),
	Run:  runLookup,
}

var lookupJSON bool

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output as JSON")
}

func runLookup(cmd *cobra.Command, args []string) {
	cache, _, err := newCache()
	if err != nil {
		slog.Error("failed to set up registry", "error", err)
		os.Exit(1)
	}

	s, err := cache.Lookup(args[0])
	if err != nil {
		if registry.IsNotFound(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		slog.Error("lookup failed", "error", err)
		os.Exit(1)
	}

	if lookupJSON {
		out, _ := json.MarshalIndent(s, "", "  ")
		fmt.Println(string(out))
		return
	}

	fmt.Printf("%s (%s struct)\n", s.Path, s.Shape)
	if len(s.Fields) == 0 {
		fmt.Println("  no fields")
		return
	}
	for _, f := range s.Fields {
		vis := "private"
		if f.IsPublic {
			vis = "public"
		}
		fmt.Printf("  %-20s %-30s %s\n", f.Name, f.TypeName, vis)
	}
}
