package types

// bufferState distinguishes the three representations spec §3 requires for
// String/ByteString: null (no value), empty-but-present (a zero-length
// value that still exists), and a real allocation. The original C engine
// gets this for free from a sentinel pointer; the strict-ownership
// rendition spec §9 asks for models it as a dedicated variant instead of
// preserving the pointer-tagging trick.
type bufferState int

const (
	bufferNull bufferState = iota
	bufferEmpty
	bufferOwned
)

// buffer is the shared length-prefixed byte sequence underlying String,
// ByteString and XmlElement. It is not exported: each leaf type wraps it so
// the descriptor engine can still dispatch on a distinct Kind per type.
type buffer struct {
	state bufferState
	data  []byte
}

func newBufferFromBytes(b []byte) buffer {
	if b == nil {
		return buffer{state: bufferNull}
	}
	if len(b) == 0 {
		return buffer{state: bufferEmpty}
	}
	owned := make([]byte, len(b))
	copy(owned, b)
	return buffer{state: bufferOwned, data: owned}
}

// isNull reports the "no value" representation.
func (b buffer) isNull() bool { return b.state == bufferNull }

// length is len(data) for all three states (0 for null and empty-but-present).
func (b buffer) length() int { return len(b.data) }

// bytes returns the underlying bytes, nil for both null and empty-but-present.
func (b buffer) bytes() []byte { return b.data }

// Copy deep-copies b, preserving which of the three states it is in —
// the round-trip invariant spec §8 (invariant 3) requires.
func (b buffer) Copy() buffer {
	switch b.state {
	case bufferNull:
		return buffer{state: bufferNull}
	case bufferEmpty:
		return buffer{state: bufferEmpty}
	default:
		owned := make([]byte, len(b.data))
		copy(owned, b.data)
		return buffer{state: bufferOwned, data: owned}
	}
}

// equal compares two buffers by length-prefixed content only, the same
// memcmp semantics the original String_equal provides (it never inspects
// the pointer, only length and bytes). The representation is not
// compared, so a null buffer and an empty-but-present one (both length 0)
// are equal.
func (b buffer) equal(o buffer) bool {
	if b.length() != o.length() {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// DeleteMembers resets b to the null representation; Go's GC reclaims the
// backing array. It gives the traversal engine's delete dispatch something
// to call, matching the shape of the original's String_deleteMembers, which frees
// unless the pointer is null or the sentinel.
func (b *buffer) DeleteMembers() { *b = buffer{state: bufferNull} }
