// internal/decode/primitives.go
package decode

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Uint16 returns regs[i] unchanged.
func Uint16(regs []uint16, i int) uint16 {
	return regs[i]
}

// Int16 interprets regs[i] as two's complement.
func Int16(regs []uint16, i int) int16 {
	return int16(regs[i])
}

// Uint32 combines regs[i] (high word) and regs[i+1] (low word).
func Uint32(regs []uint16, i int) uint32 {
	return uint32(regs[i])<<16 | uint32(regs[i+1])
}

// ASCII decodes count registers, two characters per register, high byte first.
// Each byte is taken as an 8-bit character code. Trailing NULs are trimmed.
func ASCII(regs []uint16, i, count int) string {
	var sb strings.Builder
	sb.Grow(2 * count)

	for _, r := range regs[i : i+count] {
		sb.WriteRune(rune(r >> 8))
		sb.WriteRune(rune(r & 0xFF))
	}

	return strings.TrimRight(sb.String(), "\x00")
}

// DateTime decodes a packed date-time from 4 registers:
//
//	[i]   year
//	[i+1] month<<8 | day
//	[i+2] hour<<8  | minute
//	[i+3] second<<8 (low byte reserved)
func DateTime(regs []uint16, i int) (Timestamp, error) {
	year := int(regs[i])
	month := int(regs[i+1] >> 8)
	day := int(regs[i+1] & 0xFF)
	hour := int(regs[i+2] >> 8)
	minute := int(regs[i+2] & 0xFF)
	second := int(regs[i+3] >> 8)

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)

	// time.Date normalizes out-of-range values; a round trip exposes them.
	if year < 1 || year > 9999 ||
		t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return Timestamp{}, &InvalidTimestampError{
			Year: year, Month: month, Day: day,
			Hour: hour, Minute: minute, Second: second,
		}
	}

	return Timestamp(t), nil
}

// Scale returns raw*scale rounded to decimals fractional digits.
func Scale(raw, scale float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(raw*scale*p) / p
}

// DecimalsFor returns the number of fractional digits in scale (0.01 -> 2).
func DecimalsFor(scale float64) int {
	s := strconv.FormatFloat(scale, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
