package parm

import "sync"

// ValueCache memoizes decoded integer and float section values for the
// lifetime of one loaded file. It is owned by the model snapshot and
// discarded wholesale on the next load; there is no incremental
// eviction. Safe for concurrent readers.
type ValueCache struct {
	file *File

	mu     sync.Mutex
	ints   map[string][]int
	floats map[string][]float64
}

// NewValueCache creates a cache over the given tokenized file.
func NewValueCache(file *File) *ValueCache {
	return &ValueCache{
		file:   file,
		ints:   make(map[string][]int),
		floats: make(map[string][]float64),
	}
}

// Ints returns the memoized integer values of the named section, or
// nil when the section is absent or empty.
func (c *ValueCache) Ints(name string) []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.ints[name]; ok {
		return cached
	}
	section := c.file.Section(name)
	if section == nil || len(section.Tokens) == 0 {
		return nil
	}
	values := ParseInts(section.Tokens)
	c.ints[name] = values
	return values
}

// Floats returns the memoized float values of the named section, or
// nil when the section is absent or empty.
func (c *ValueCache) Floats(name string) []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.floats[name]; ok {
		return cached
	}
	section := c.file.Section(name)
	if section == nil || len(section.Tokens) == 0 {
		return nil
	}
	values := ParseFloats(section.Tokens)
	c.floats[name] = values
	return values
}

// File returns the underlying tokenized file.
func (c *ValueCache) File() *File {
	return c.file
}
