package rustdoc

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Reader supplies raw rustdoc JSON for a crate. The registry treats it as
// an opaque capability: any failure surfaces as a generation failure.
type Reader interface {
	ReadIndex(crate string) ([]byte, error)
}

// Generator reads rustdoc JSON for stdlib crates, generating it with the
// nightly toolchain on first use. Generated JSON is cached to disk
// compressed so later runs (or processes) skip the cargo invocation.
type Generator struct {
	opts GenerateOptions

	mu     sync.Mutex
	docDir string // set after the first successful generation
}

func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// ReadIndex returns the rustdoc JSON for one crate, preferring the disk
// cache over regeneration.
func (g *Generator) ReadIndex(crate string) ([]byte, error) {
	if HasCrateCache(crate) {
		data, err := LoadCrateCache(crate)
		if err == nil {
			return data, nil
		}
		log.Printf("rustdoc: ignoring unreadable cache for %s: %v", crate, err)
	}

	docDir, err := g.ensureGenerated()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(docDir, crate+".json"))
	if err != nil {
		return nil, fmt.Errorf("reading generated rustdoc JSON for %s: %w", crate, err)
	}

	if err := SaveCrateCache(data, crate); err != nil {
		log.Printf("rustdoc: failed to cache JSON for %s: %v", crate, err)
	}
	return data, nil
}

// ensureGenerated runs cargo doc at most once per Generator.
func (g *Generator) ensureGenerated() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.docDir != "" {
		return g.docDir, nil
	}
	docDir, err := Generate(g.opts)
	if err != nil {
		return "", err
	}
	g.docDir = docDir
	return docDir, nil
}
