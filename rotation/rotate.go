package rotation

// Rotate returns data rotated by one bit in the given direction. It is a pure
// function: the result is freshly allocated, data is never mutated, and the
// output length always equals the input length. An empty input yields an
// empty output, and a single byte rotates into itself (its own MSB and LSB
// are adjacent at the wrap-around).
//
// The whole input is indexed freely, so no lookahead state is needed; see
// StreamLeft and StreamRight for the constant-memory streaming forms.
func Rotate(data []byte, dir Direction) []byte {
	out := make([]byte, len(data))
	if len(data) == 0 {
		return out
	}

	switch dir {
	case Left:
		// Each output byte takes the low 7 bits of its own input byte,
		// followed by the top bit of the next one. The first byte's top
		// bit wraps around to close the cycle.
		wrap := data[0] >> 7
		for i := range data {
			next := wrap
			if i+1 < len(data) {
				next = data[i+1] >> 7
			}
			out[i] = data[i]<<1 | next
		}
	case Right:
		// Each output byte takes the bottom bit of the previous input
		// byte, followed by the high 7 bits of its own. The carry into
		// the first byte is the last byte's bottom bit.
		carry := data[len(data)-1] & 0x01
		for i := range data {
			out[i] = carry<<7 | data[i]>>1
			carry = data[i] & 0x01
		}
	}

	return out
}
