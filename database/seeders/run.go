// Package seeders provides a registry of data seed functions.
//
// Usage (define a seeder in any file in this package):
//
//	func init() {
//	    seeders.Register("products", SeedProducts)
//	}
//
// Then run via CLI: bakery seed
package seeders

import (
	"fmt"
	"sync"
)

// SeederFunc is the signature for a seed function.
type SeederFunc func() error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
// Call this from init() in your seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// RunAll executes every registered seeder in registration order.
// It stops on the first error.
func RunAll() error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		fmt.Printf("Seeding %s...\n", e.name)
		if err := e.fn(); err != nil {
			return fmt.Errorf("seeders: %s: %w", e.name, err)
		}
	}
	fmt.Printf("Seeding complete (%d seeders ran)\n", len(current))
	return nil
}
