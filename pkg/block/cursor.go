package block

// Cursor is a stateful, single-owner iterator over the entries of a Handle.
// It is not safe for concurrent use; the underlying block buffer may be
// shared read-only across any number of Cursors on any number of goroutines.
//
// Every navigation method is total: a malformed block never panics and
// never reads outside the buffer. Instead the cursor becomes not-valid and
// Status starts returning a Corruption error, which is sticky for the
// remaining lifetime of the cursor.
type Cursor struct {
	handle *Handle
	cmp    Comparator

	current    uint32 // offset of the current entry; == restartOffset iff !Valid
	restartIdx int    // index of the restart range containing current; == R iff !Valid
	valueEnd   uint32 // offset just past the current value, i.e. the next entry's offset

	key    []byte
	value  []byte
	status error
}

// Valid reports whether the cursor is positioned on an entry.
func (c *Cursor) Valid() bool {
	return c.status == nil && c.handle != nil && c.current < c.handle.restartOffset
}

// Key returns the full reconstructed key of the current entry. Its
// contents remain stable until the next navigation call.
func (c *Cursor) Key() []byte {
	if !c.Valid() {
		return nil
	}
	return c.key
}

// Value returns a view into the block buffer covering the current entry's
// value. Its contents remain stable until the next navigation call.
func (c *Cursor) Value() []byte {
	if !c.Valid() {
		return nil
	}
	return c.value
}

// Status returns the cursor's sticky error state. It is nil except after a
// decode failure or a violated structural invariant, at which point it
// remains a non-nil Corruption error for the cursor's remaining lifetime.
func (c *Cursor) Status() error {
	return c.status
}

// SeekToFirst positions the cursor on the block's first entry, or leaves it
// not-valid if the block has no entries.
func (c *Cursor) SeekToFirst() {
	if c.status != nil || c.handle == nil || len(c.handle.restartPoints) == 0 {
		return
	}
	c.seekToRestart(0)
	c.parseNext()
}

// SeekToLast positions the cursor on the block's last entry, or leaves it
// not-valid if the block has no entries.
func (c *Cursor) SeekToLast() {
	if c.status != nil || c.handle == nil || len(c.handle.restartPoints) == 0 {
		return
	}
	c.seekToRestart(len(c.handle.restartPoints) - 1)
	for c.parseNext() && c.valueEnd < c.handle.restartOffset {
	}
}

// Seek positions the cursor on the first entry whose key is >= target
// according to the cursor's comparator, or leaves it not-valid if no such
// entry exists. It runs a binary search over the restart array (restart
// keys are always stored in full) followed by a linear scan within the
// selected restart range.
func (c *Cursor) Seek(target []byte) {
	if c.status != nil || c.handle == nil || len(c.handle.restartPoints) == 0 {
		return
	}

	restarts := c.handle.restartPoints
	left, right := 0, len(restarts)-1
	for left < right {
		mid := (left + right + 1) / 2
		if restarts[mid] > c.handle.restartOffset {
			c.setCorruption()
			return
		}
		shared, nonShared, _, rest, ok := decodeEntry(c.handle.data[restarts[mid]:c.handle.restartOffset])
		if !ok || shared != 0 || uint32(len(rest)) < nonShared {
			c.setCorruption()
			return
		}
		midKey := rest[:nonShared]
		if c.cmp(midKey, target) < 0 {
			left = mid
		} else {
			right = mid - 1
		}
	}

	c.seekToRestart(left)
	for c.parseNext() {
		if c.cmp(c.key, target) >= 0 {
			return
		}
	}
}

// Next advances the cursor by one entry. It is a no-op unless the cursor is
// currently valid; it becomes not-valid when called from the last entry.
func (c *Cursor) Next() {
	if !c.Valid() {
		return
	}
	c.parseNext()
}

// Prev retreats the cursor by one entry. The block format is not natively
// reversible, so this walks back to the start of the current restart range
// (or the previous one) and replays parseNext forward until it lands on the
// entry immediately preceding where the cursor started — O(range length),
// not O(1).
func (c *Cursor) Prev() {
	if !c.Valid() {
		return
	}
	original := c.current

	for c.handle.restartPoints[c.restartIdx] >= original {
		if c.restartIdx == 0 {
			c.current = c.handle.restartOffset
			c.restartIdx = len(c.handle.restartPoints)
			return
		}
		c.restartIdx--
	}

	c.seekToRestart(c.restartIdx)
	for {
		if !c.parseNext() || c.valueEnd >= original {
			return
		}
	}
}

// seekToRestart clears the reconstructed key and anchors the cursor at
// restart point i, ready for parseNext to land on the entry stored there.
func (c *Cursor) seekToRestart(i int) {
	c.key = c.key[:0]
	c.restartIdx = i
	c.valueEnd = c.handle.restartPoints[i]
}

// parseNext decodes the entry immediately following the current value (or,
// after seekToRestart, the entry at the anchored restart point) and
// advances the cursor onto it. It returns false both on a clean end of
// block and on corruption; callers distinguish the two via Status.
func (c *Cursor) parseNext() bool {
	current := c.valueEnd
	if current >= c.handle.restartOffset {
		c.current = c.handle.restartOffset
		c.restartIdx = len(c.handle.restartPoints)
		return false
	}

	data := c.handle.data[current:c.handle.restartOffset]
	shared, nonShared, valueLen, rest, ok := decodeEntry(data)
	if !ok || shared > uint32(len(c.key)) {
		c.setCorruption()
		return false
	}

	keyDeltaOffset := current + uint32(len(data)-len(rest))
	c.key = append(c.key[:shared], rest[:nonShared]...)
	c.value = rest[nonShared : nonShared+valueLen]
	c.current = current
	c.valueEnd = keyDeltaOffset + nonShared + valueLen

	restarts := c.handle.restartPoints
	for c.restartIdx+1 < len(restarts) && restarts[c.restartIdx+1] < c.current {
		c.restartIdx++
	}
	return true
}

func (c *Cursor) setCorruption() {
	c.current = c.handle.restartOffset
	c.restartIdx = len(c.handle.restartPoints)
	c.status = newCorruption("bad entry in block")
	c.key = nil
	c.value = nil
}
