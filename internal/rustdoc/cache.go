package rustdoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jcdickinson/quarry/internal/config"
	"github.com/klauspost/compress/zstd"
)

func crateCachePath(crate string) string {
	return filepath.Join(config.JSONCacheDir(), crate+".json.zst")
}

// SaveCrateCache compresses and saves rustdoc JSON bytes to disk.
func SaveCrateCache(data []byte, crate string) error {
	dir := config.JSONCacheDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating json cache dir: %w", err)
	}

	f, err := os.Create(crateCachePath(crate))
	if err != nil {
		return fmt.Errorf("creating cache file: %w", err)
	}
	defer f.Close()

	w, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("writing compressed data: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing zstd writer: %w", err)
	}
	return nil
}

// LoadCrateCache loads and decompresses cached rustdoc JSON from disk.
func LoadCrateCache(crate string) ([]byte, error) {
	f, err := os.Open(crateCachePath(crate))
	if err != nil {
		return nil, fmt.Errorf("opening cache file: %w", err)
	}
	defer f.Close()

	r, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("creating zstd reader: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing cached rustdoc JSON: %w", err)
	}
	return data, nil
}

// HasCrateCache checks whether a cached rustdoc JSON file exists on disk.
func HasCrateCache(crate string) bool {
	_, err := os.Stat(crateCachePath(crate))
	return err == nil
}

// ClearCrateCache removes any cached rustdoc JSON for the crate.
func ClearCrateCache(crate string) error {
	err := os.Remove(crateCachePath(crate))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
