package types

import "github.com/opcuacore/core/pkg/rng"

// Guid is the standard (u32, u16, u16, 8×u8) GUID layout, trivially
// copyable per spec §3.
type Guid struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Equal is a plain memcmp-equivalent field comparison.
func (g Guid) Equal(o Guid) bool { return g == o }

// RandomGuid draws 128 bits from g, reproducing the exact bit-shuffling
// pattern of the original UA_Guid_random so scenario tests can assert
// against it given a seeded generator: Data2/Data3 split one 32-bit draw,
// and Data4's eight bytes come from two more draws, each nibble-shifted.
func RandomGuid(g *rng.Generator) Guid {
	var result Guid
	result.Data1 = g.Uint32()

	r := g.Uint32()
	result.Data2 = uint16(r)
	result.Data3 = uint16(r >> 16)

	r = g.Uint32()
	result.Data4[0] = byte(r)
	result.Data4[1] = byte(r >> 4)
	result.Data4[2] = byte(r >> 8)
	result.Data4[3] = byte(r >> 12)

	r = g.Uint32()
	result.Data4[4] = byte(r)
	result.Data4[5] = byte(r >> 4)
	result.Data4[6] = byte(r >> 8)
	result.Data4[7] = byte(r >> 12)

	return result
}
