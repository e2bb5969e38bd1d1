// buslink/codec.go
package buslink

// packBits packs coil values LSB-first, the layout FC 15 expects.
func packBits(bits []bool) []byte {
	n := (len(bits) + 7) / 8
	out := make([]byte, n)
	for i, v := range bits {
		if v {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// unpackBits unpacks count bits from a read-bits payload. A payload too
// short for count is rejected rather than padded with false, so a
// truncated or empty response can never masquerade as a real reading.
func unpackBits(data []byte, count int) ([]bool, error) {
	if len(data)*8 < count {
		return nil, ErrShortResponse
	}
	out := make([]bool, count)
	for i := 0; i < count; i++ {
		out[i] = data[i/8]&(1<<uint(i%8)) != 0
	}
	return out, nil
}

// packRegisters packs register values big-endian, two bytes each.
func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}

// unpackRegisters unpacks count big-endian registers from a
// read-registers payload.
func unpackRegisters(data []byte, count int) ([]uint16, error) {
	if len(data) < count*2 {
		return nil, ErrShortResponse
	}
	out := make([]uint16, count)
	for i := range out {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out, nil
}
