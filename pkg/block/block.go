// Package block implements a reader for the sorted, prefix-compressed,
// immutable block format used by an LSM-tree table file. It consumes a raw
// byte buffer and a caller-supplied comparator; it never writes, compresses,
// checksums, or caches a block — those are outer-layer concerns.
package block

import (
	"encoding/binary"

	"github.com/kevoblock/sstblock/pkg/common/iterator"
)

// Cursor implements the storage engine's common Iterator contract, so a
// block.Cursor can be used anywhere a merging or hierarchical iterator over
// the engine's layers expects one.
var _ iterator.Iterator = (*Cursor)(nil)

// trailerSize is the width of the fixed trailer: a little-endian uint32
// holding the restart-point count R.
const trailerSize = 4

// Handle owns or borrows a contiguous block buffer and is the factory for
// Cursors over it. Construction never fails: a buffer that violates the
// block's structural invariants produces an empty/corrupt Handle instead,
// and every Cursor created from it surfaces that as a sticky Corruption
// status rather than an error return.
type Handle struct {
	data          []byte
	restartPoints []uint32
	restartOffset uint32
	owned         bool
	corrupt       bool
}

// NewHandle validates data's trailer and restart array and returns a Handle
// over it. When owned is true the Handle is considered to hold the only
// reference to data; Release drops that reference. When owned is false the
// caller guarantees data outlives every Cursor created from the Handle.
func NewHandle(data []byte, owned bool) *Handle {
	h := &Handle{data: data, owned: owned}

	if len(data) < trailerSize {
		h.corrupt = true
		return h
	}

	n := uint32(len(data))
	numRestarts := binary.LittleEndian.Uint32(data[n-trailerSize:])

	maxRestarts := (n - trailerSize) / 4
	if numRestarts > maxRestarts {
		h.corrupt = true
		return h
	}

	restartOffset := n - trailerSize - 4*numRestarts
	restartPoints := make([]uint32, numRestarts)
	for i := uint32(0); i < numRestarts; i++ {
		restartPoints[i] = binary.LittleEndian.Uint32(data[restartOffset+4*i:])
	}

	h.restartPoints = restartPoints
	h.restartOffset = restartOffset
	return h
}

// Len reports the number of restart points in the block (0 for an
// empty or corrupt block).
func (h *Handle) Len() int {
	if h.corrupt {
		return 0
	}
	return len(h.restartPoints)
}

// Release drops the Handle's reference to an owned buffer. It is a no-op
// for a borrowed buffer. Cursors created from the Handle must not be used
// afterward.
func (h *Handle) Release() {
	if h.owned {
		h.data = nil
	}
}

// NewCursor returns a fresh Cursor over the block, using cmp to order keys.
// cmp must impose the same total order the block's writer used; a
// comparator inconsistent with the writer's order produces unspecified Seek
// results, so callers must ensure cmp matches the block's producer.
//
// Three shapes come back, matching the original Block::NewIterator split:
// a not-valid, status-OK cursor for a zero-restart (valid-but-empty) block;
// a not-valid, sticky-Corruption cursor for a malformed block; or a fresh
// not-yet-positioned cursor otherwise.
func (h *Handle) NewCursor(cmp Comparator) *Cursor {
	if h.corrupt {
		return &Cursor{status: newCorruption("bad block contents")}
	}
	if len(h.restartPoints) == 0 {
		return &Cursor{handle: h, cmp: cmp, current: h.restartOffset}
	}
	return &Cursor{handle: h, cmp: cmp, current: h.restartOffset, restartIdx: len(h.restartPoints)}
}
