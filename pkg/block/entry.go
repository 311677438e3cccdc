package block

// decodeEntry reads the shared/non_shared/value_len triple at the start of
// data and returns the three decoded lengths along with the remainder of
// data starting at the key delta (the byte just past the triple). It never reads past len(data)
// and never dereferences past the logical limit the caller already encoded
// into the slice it hands in.
//
// Fast path: when the first three bytes all have their high bit clear, each
// is a length in [0,128) and the triple is exactly 3 bytes. Otherwise all
// three are LEB128 varints (high bit = continuation, up to 5 bytes each).
func decodeEntry(data []byte) (shared, nonShared, valueLen uint32, rest []byte, ok bool) {
	if len(data) < 3 {
		return 0, 0, 0, nil, false
	}

	if data[0] < 128 && data[1] < 128 && data[2] < 128 {
		shared = uint32(data[0])
		nonShared = uint32(data[1])
		valueLen = uint32(data[2])
		rest = data[3:]
	} else {
		var n int
		shared, n, ok = getVarint32(data)
		if !ok {
			return 0, 0, 0, nil, false
		}
		data = data[n:]

		nonShared, n, ok = getVarint32(data)
		if !ok {
			return 0, 0, 0, nil, false
		}
		data = data[n:]

		valueLen, n, ok = getVarint32(data)
		if !ok {
			return 0, 0, 0, nil, false
		}
		rest = data[n:]
	}

	need := uint64(nonShared) + uint64(valueLen)
	if uint64(len(rest)) < need {
		return 0, 0, 0, nil, false
	}
	return shared, nonShared, valueLen, rest, true
}

// getVarint32 decodes a single LEB128-encoded uint32 from the start of data,
// reading at most 5 bytes and never past len(data). It returns the decoded
// value, the number of bytes consumed, and whether decoding succeeded.
func getVarint32(data []byte) (value uint32, n int, ok bool) {
	var shift uint
	for i := 0; i < len(data) && i < 5; i++ {
		b := data[i]
		if b < 128 {
			value |= uint32(b) << shift
			return value, i + 1, true
		}
		value |= uint32(b&0x7f) << shift
		shift += 7
	}
	return 0, 0, false
}
