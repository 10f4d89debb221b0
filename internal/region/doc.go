// Package region provides named axis-aligned volumes and point containment.
//
// A Region is a closed box in one world: containment is boundary-inclusive
// on all three axes and requires an exact world match. The Table is a plain
// name-keyed map with linear scans - the catalog is operator-sized (dozens
// of regions), so no spatial indexing is warranted.
//
// Table performs no locking; internal/engine owns the readers-writer
// discipline for all live state.
package region
