package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultCapacity is the slot count a catalog starts with when the caller
// does not supply one.
const DefaultCapacity = 10

// Catalog holds movie records in a slot sequence whose occupied region
// [0, count) stays contiguous between operations. Capacity (allocated
// slots) is decoupled from the occupied count and doubles on demand.
type Catalog struct {
	slots []*Record
	count int
}

// NewCatalog constructs an empty catalog with the given initial capacity.
// Non-positive capacities fall back to DefaultCapacity.
func NewCatalog(initialCapacity int) *Catalog {
	if initialCapacity <= 0 {
		initialCapacity = DefaultCapacity
	}
	return &Catalog{slots: make([]*Record, initialCapacity)}
}

// Count returns the number of occupied slots.
func (c *Catalog) Count() int { return c.count }

// Capacity returns the allocated slot count.
func (c *Catalog) Capacity() int { return len(c.slots) }

// Add places the record in the lowest-indexed empty slot below the
// occupied count, reusing a gap left by an external nulling without
// changing the count. With no gap available it appends at the count,
// growing the slot sequence first when full. Returns the index used.
func (c *Catalog) Add(rec *Record) (int, error) {
	if rec == nil {
		return 0, fmt.Errorf("%w: record is required", ErrInvalidInput)
	}
	for i := 0; i < c.count; i++ {
		if c.slots[i] == nil {
			c.slots[i] = rec
			return i, nil
		}
	}
	if c.count == len(c.slots) {
		if err := c.grow(); err != nil {
			return 0, err
		}
	}
	index := c.count
	c.slots[index] = rec
	c.count++
	return index, nil
}

// grow doubles the allocated slot count, preserving slot contents and
// order. The catalog is untouched when growth fails.
func (c *Catalog) grow() error {
	capacity := len(c.slots)
	doubled := capacity * 2
	if doubled <= capacity {
		return fmt.Errorf("%w: cannot double capacity %d", ErrAllocation, capacity)
	}
	grown := make([]*Record, doubled)
	copy(grown, c.slots)
	c.slots = grown
	return nil
}

// Remove releases the record at index and closes the gap by shifting every
// later occupied slot left by one. The trailing slot is cleared and the
// count drops by one; no gap is ever left behind.
func (c *Catalog) Remove(index int) error {
	if index < 0 || index >= c.count {
		return fmt.Errorf("%w: index %d outside occupied region [0, %d)", ErrOutOfRange, index, c.count)
	}
	if c.slots[index] == nil {
		return fmt.Errorf("%w: index %d", ErrAlreadyEmpty, index)
	}
	copy(c.slots[index:c.count-1], c.slots[index+1:c.count])
	c.slots[c.count-1] = nil
	c.count--
	return nil
}

// Search scans the occupied region for the first record whose title
// matches exactly (case-sensitive) and returns its index. Titles are not
// unique; later duplicates are never reported.
func (c *Catalog) Search(title string) (int, error) {
	for i := 0; i < c.count; i++ {
		if c.slots[i] != nil && c.slots[i].title == title {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNotFound, title)
}

// Sort reorders the occupied region lexicographically by title.
func (c *Catalog) Sort() {
	c.SortFunc(func(a, b *Record) int {
		return strings.Compare(a.title, b.title)
	})
}

// SortFunc reorders the occupied region with the supplied comparison.
// Empty slots inside the region (possible only through external nulling)
// are pushed behind every record rather than handed to cmp.
func (c *Catalog) SortFunc(cmp func(a, b *Record) int) {
	slices.SortStableFunc(c.slots[:c.count], func(a, b *Record) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		case b == nil:
			return -1
		}
		return cmp(a, b)
	})
}

// At returns the record stored at index within the occupied region.
func (c *Catalog) At(index int) (*Record, error) {
	if index < 0 || index >= c.count {
		return nil, fmt.Errorf("%w: index %d outside occupied region [0, %d)", ErrOutOfRange, index, c.count)
	}
	if c.slots[index] == nil {
		return nil, fmt.Errorf("%w: index %d", ErrAlreadyEmpty, index)
	}
	return c.slots[index], nil
}

// Records returns the occupied region in slot order as a snapshot for
// rendering. Callers must not hold the returned records across structural
// operations.
func (c *Catalog) Records() []*Record {
	out := make([]*Record, 0, c.count)
	for i := 0; i < c.count; i++ {
		if c.slots[i] != nil {
			out = append(out, c.slots[i])
		}
	}
	return out
}
