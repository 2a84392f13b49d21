// internal/decode/helpers_test.go
package decode

// packASCII packs s into n registers, two characters per register, high byte first.
// Unused bytes are NUL.
func packASCII(s string, n int) []uint16 {
	out := make([]uint16, n)
	b := []byte(s)

	for i := 0; i < 2*n; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}

// packDateTime is the inverse of DateTime.
func packDateTime(year, month, day, hour, minute, second int) []uint16 {
	return []uint16{
		uint16(year),
		uint16(month)<<8 | uint16(day),
		uint16(hour)<<8 | uint16(minute),
		uint16(second) << 8,
	}
}
