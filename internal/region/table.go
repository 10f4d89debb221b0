package region

import "golang.org/x/text/unicode/norm"

// Table holds the live set of regions, keyed by name.
//
// Table is a plain data structure with no locking of its own. The engine
// coordinator serializes access; see internal/engine.
type Table struct {
	byName map[string]Region
	order  []string // insertion order for stable listing
}

// NewTable creates an empty region table.
func NewTable() *Table {
	return &Table{byName: make(map[string]Region)}
}

// Put inserts a region. Returns false without mutating if a region with the
// same name already exists (case-sensitive exact match).
func (t *Table) Put(r Region) bool {
	if _, exists := t.byName[r.Name]; exists {
		return false
	}
	t.byName[r.Name] = r
	t.order = append(t.order, r.Name)
	return true
}

// Delete removes the named region. Returns false if no such region exists.
func (t *Table) Delete(name string) bool {
	name = norm.NFC.String(name)
	if _, exists := t.byName[name]; !exists {
		return false
	}
	delete(t.byName, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Get looks up a region by name.
func (t *Table) Get(name string) (Region, bool) {
	r, ok := t.byName[norm.NFC.String(name)]
	return r, ok
}

// All returns every region in insertion order. The returned slice is a
// snapshot safe for the caller to hold across later mutations.
func (t *Table) All() []Region {
	out := make([]Region, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.byName[name])
	}
	return out
}

// ForWorld returns every region whose world matches exactly, in insertion
// order.
func (t *Table) ForWorld(world string) []Region {
	world = norm.NFC.String(world)
	var out []Region
	for _, name := range t.order {
		if r := t.byName[name]; r.World == world {
			out = append(out, r)
		}
	}
	return out
}

// Contains reports whether the named region exists and contains the point.
// A missing region or a world mismatch is simply "not contained", never an
// error.
func (t *Table) Contains(name, world string, p Point) bool {
	r, ok := t.Get(name)
	if !ok {
		return false
	}
	return r.Contains(world, p)
}

// Len returns the number of regions.
func (t *Table) Len() int {
	return len(t.byName)
}
