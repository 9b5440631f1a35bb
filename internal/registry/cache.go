package registry

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/jcdickinson/quarry/internal/mine"
	"github.com/jcdickinson/quarry/internal/rustdoc"
	"golang.org/x/sync/singleflight"
)

// Cache lazily builds and holds the struct registry. The registry is built
// at most once per cold start (concurrent callers share one build) and is
// read-only once published; Invalidate discards it wholesale.
type Cache struct {
	reader rustdoc.Reader
	crates []string

	mu      sync.RWMutex
	structs map[string]*mine.Struct // nil while uninitialized
	group   singleflight.Group
}

// New creates a cold cache over the given reader. crates are read and
// merged in order on the first access; later crates overwrite earlier
// entries for the same path.
func New(reader rustdoc.Reader, crates []string) *Cache {
	return &Cache{reader: reader, crates: crates}
}

// EnsureReady builds the registry if it has not been built yet. The build
// runs the reader for every crate, which can take seconds when rustdoc
// JSON has to be generated; concurrent callers block on the same build and
// share its outcome. A failed build publishes nothing: the cache stays
// cold and the error is returned to every waiting caller.
func (c *Cache) EnsureReady() error {
	c.mu.RLock()
	ready := c.structs != nil
	c.mu.RUnlock()
	if ready {
		return nil
	}

	_, err, _ := c.group.Do("build", func() (interface{}, error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.structs != nil {
			return nil, nil
		}
		structs, err := c.build()
		if err != nil {
			return nil, err
		}
		c.structs = structs
		return nil, nil
	})
	return err
}

func (c *Cache) build() (map[string]*mine.Struct, error) {
	structs := make(map[string]*mine.Struct)
	for _, crateName := range c.crates {
		data, err := c.reader.ReadIndex(crateName)
		if err != nil {
			return nil, fmt.Errorf("reading rustdoc index for %s: %w", crateName, err)
		}

		var crate rustdoc.Crate
		if err := json.Unmarshal(data, &crate); err != nil {
			return nil, fmt.Errorf("parsing rustdoc JSON for %s: %w", crateName, err)
		}
		if crate.Index == nil {
			return nil, fmt.Errorf("rustdoc JSON for %s: %w", crateName, ErrMissingIndex)
		}

		mined := mine.ExtractAll(&crate)
		for path, s := range mined {
			structs[path] = s
		}
		log.Printf("registry: mined %d structs from %s (%d index items)", len(mined), crateName, len(crate.Index))
	}
	return structs, nil
}

// snapshot returns the published registry, building it first if the cache
// is cold. The registry map is never mutated after publication (Invalidate
// swaps the cell, a rebuild publishes a fresh map), so the returned
// reference stays consistent even if another caller invalidates
// concurrently. The loop retries when an invalidation lands between the
// build and the read.
func (c *Cache) snapshot() (map[string]*mine.Struct, error) {
	for {
		c.mu.RLock()
		structs := c.structs
		c.mu.RUnlock()
		if structs != nil {
			return structs, nil
		}
		if err := c.EnsureReady(); err != nil {
			return nil, err
		}
	}
}

// Lookup returns the struct stored under path. Exact matches win; on a
// miss the path is resolved through the std alias table and retried, and a
// hit through an alias is returned re-keyed under the requested path.
// Either way the caller gets its own copy, never the registry's entry.
func (c *Cache) Lookup(path string) (*mine.Struct, error) {
	structs, err := c.snapshot()
	if err != nil {
		return nil, err
	}

	if s, ok := structs[path]; ok {
		return s.Renamed(path), nil
	}
	if canonical, ok := ResolveAlias(path); ok {
		if s, ok := structs[canonical]; ok {
			return s.Renamed(path), nil
		}
	}
	return nil, &NotFoundError{Path: path}
}

// ListAll returns every registered full path, sorted ascending. The slice
// is freshly allocated on each call.
func (c *Cache) ListAll() ([]string, error) {
	structs, err := c.snapshot()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(structs))
	for path := range structs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// Exists reports whether path resolves to a registered struct. Like
// Lookup, a cold cache triggers a build first; build failures report
// false.
func (c *Cache) Exists(path string) bool {
	_, err := c.Lookup(path)
	return err == nil
}

// Invalidate discards the registry unconditionally. Idempotent; the next
// accessor rebuilds from scratch.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.structs = nil
	c.mu.Unlock()
}

// Stats returns the registry size and readiness as one consistent
// snapshot. It never triggers a build: a cold cache reports (0, false).
func (c *Cache) Stats() (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.structs == nil {
		return 0, false
	}
	return len(c.structs), true
}
