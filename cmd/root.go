package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jcdickinson/quarry/internal/config"
	"github.com/jcdickinson/quarry/internal/mcp"
	"github.com/jcdickinson/quarry/internal/registry"
	"github.com/jcdickinson/quarry/internal/rustdoc"
	"github.com/spf13/cobra"
)

var toolchain string

var rootCmd = &cobra.Command{
	Use:   "quarry",
	Short: "Rust standard library struct layout miner and MCP server",
	Run:   runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&toolchain, "toolchain", "", "rust toolchain for rustdoc JSON generation (default from config)")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(existsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(warmCmd)
	rootCmd.AddCommand(clearCacheCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio (same as running quarry with no arguments)",
	Run:   runServe,
}

// newCache loads the configuration and assembles a cold registry cache over
// a rustdoc generator. Nothing is read or generated until first access.
func newCache() (*registry.Cache, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if toolchain != "" {
		cfg.Generator.Toolchain = toolchain
	}

	gen := rustdoc.NewGenerator(rustdoc.GenerateOptions{
		Toolchain:       cfg.Generator.Toolchain,
		TargetDir:       config.DocTargetDir(),
		DocPrivateItems: cfg.Generator.DocPrivateItems,
	})
	return registry.New(gen, cfg.Crates), cfg, nil
}

func runServe(cmd *cobra.Command, args []string) {
	cache, _, err := newCache()
	if err != nil {
		log.Fatalf("failed to set up registry: %v", err)
	}

	server := mcp.NewServer(cache)

	errCh := make(chan error)
	go func() { errCh <- server.Run() }()

	if err := waitForSignal(errCh); err != nil {
		log.Fatalf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

func waitForSignal(errCh chan error) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		log.Printf("received signal: %s", sig)
		return nil
	case err := <-errCh:
		return err
	}
}
