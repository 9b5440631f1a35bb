package rustdoc

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// findStdlibSource locates the standard library source tree through the
// nightly toolchain's sysroot. Requires the rust-src component.
func findStdlibSource(toolchain string) (string, error) {
	out, err := exec.Command("rustc", "+"+toolchain, "--print", "sysroot").Output()
	if err != nil {
		return "", fmt.Errorf("could not find Rust %s sysroot (install with: rustup toolchain install %s): %w", toolchain, toolchain, err)
	}

	sysroot := strings.TrimSpace(string(out))
	srcPath := filepath.Join(sysroot, "lib", "rustlib", "src", "rust", "library", "std", "src")

	if _, err := os.Stat(srcPath); err != nil {
		return "", fmt.Errorf("standard library source not found at %s (install with: rustup component add rust-src --toolchain %s)", srcPath, toolchain)
	}
	return srcPath, nil
}

// GenerateOptions control how rustdoc JSON is produced.
type GenerateOptions struct {
	Toolchain       string // e.g. "nightly"
	TargetDir       string // cargo target directory for the JSON output
	DocPrivateItems bool   // include private items so private fields are visible
}

// Generate runs cargo doc with JSON output over the installed standard
// library workspace and returns the directory containing the generated
// <crate>.json files.
func Generate(opts GenerateOptions) (string, error) {
	if opts.Toolchain == "" {
		opts.Toolchain = "nightly"
	}

	stdSrc, err := findStdlibSource(opts.Toolchain)
	if err != nil {
		return "", err
	}

	// The library workspace root is one level above std/src.
	libraryRoot := filepath.Dir(filepath.Dir(stdSrc))
	if _, err := os.Stat(filepath.Join(libraryRoot, "Cargo.toml")); err != nil {
		return "", fmt.Errorf("standard library Cargo.toml not found at %s (the rust-src component may be incomplete)", libraryRoot)
	}

	if err := os.MkdirAll(opts.TargetDir, 0755); err != nil {
		return "", fmt.Errorf("creating doc target dir: %w", err)
	}

	args := []string{
		"+" + opts.Toolchain,
		"doc",
		"--package", "std",
		"--package", "alloc",
		"--package", "core",
		"--lib",
		"--no-deps",
		"--target-dir", opts.TargetDir,
	}
	if opts.DocPrivateItems {
		args = append(args, "--document-private-items")
	}

	log.Printf("rustdoc: generating stdlib JSON via cargo %s doc (this can take a while)", opts.Toolchain)

	cmd := exec.Command("cargo", args...)
	cmd.Dir = libraryRoot
	cmd.Env = append(os.Environ(),
		"RUSTDOCFLAGS=-Z unstable-options --output-format json",
		"RUSTC_BOOTSTRAP=1",
		"__CARGO_DEFAULT_LIB_METADATA=stable",
	)

	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("cargo doc failed: %w: %s", err, tail(string(out), 2000))
	}

	return filepath.Join(opts.TargetDir, "doc"), nil
}

// tail keeps the last n bytes of cargo's output; errors are at the end.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "…" + s[len(s)-n:]
}
