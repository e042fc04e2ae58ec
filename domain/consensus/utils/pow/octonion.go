package pow

// octonion is an element of the integer octonion algebra over uint64, with
// wrapping arithmetic. Component 0 is the real part.
type octonion [8]uint64

// multiplyOctonions returns a*b according to the fixed (non-commutative,
// non-associative) multiplication table of the octonion units.
func multiplyOctonions(a, b *octonion) octonion {
	var result octonion

	result[0] = a[0]*b[0] - a[1]*b[1] - a[2]*b[2] - a[3]*b[3] -
		a[4]*b[4] - a[5]*b[5] - a[6]*b[6] - a[7]*b[7]

	result[1] = a[0]*b[1] + a[1]*b[0] + a[2]*b[3] - a[3]*b[2] +
		a[4]*b[5] - a[5]*b[4] - a[6]*b[7] + a[7]*b[6]

	result[2] = a[0]*b[2] - a[1]*b[3] + a[2]*b[0] + a[3]*b[1] +
		a[4]*b[6] - a[5]*b[7] + a[6]*b[4] - a[7]*b[5]

	result[3] = a[0]*b[3] + a[1]*b[2] - a[2]*b[1] + a[3]*b[0] +
		a[4]*b[7] + a[5]*b[6] - a[6]*b[5] + a[7]*b[4]

	result[4] = a[0]*b[4] - a[1]*b[5] - a[2]*b[6] - a[3]*b[7] +
		a[4]*b[0] + a[5]*b[1] + a[6]*b[2] + a[7]*b[3]

	result[5] = a[0]*b[5] + a[1]*b[4] - a[2]*b[7] + a[3]*b[6] -
		a[4]*b[1] + a[5]*b[0] + a[6]*b[3] + a[7]*b[2]

	result[6] = a[0]*b[6] + a[1]*b[7] + a[2]*b[4] - a[3]*b[5] -
		a[4]*b[2] + a[5]*b[3] + a[6]*b[0] + a[7]*b[1]

	result[7] = a[0]*b[7] - a[1]*b[6] + a[2]*b[5] + a[3]*b[4] -
		a[4]*b[3] + a[5]*b[2] + a[6]*b[1] + a[7]*b[0]

	return result
}

// octonionHash seeds an octonion with the first 8 bytes of input and then
// right-multiplies it by every 8 byte window of input starting at 8..31,
// wrapping around the end of the buffer.
func octonionHash(input *[32]byte) octonion {
	var oct octonion
	for i := range oct {
		oct[i] = uint64(input[i])
	}

	for i := 8; i < len(input); i++ {
		var rotation octonion
		for k := range rotation {
			rotation[k] = uint64(input[(i+k)%len(input)])
		}
		oct = multiplyOctonions(&oct, &rotation)
	}

	return oct
}

// foldOctonion XORs byte i%8 of component i/8 into buffer[i].
func foldOctonion(buffer *[32]byte, oct *octonion) {
	for i := range buffer {
		buffer[i] ^= byte(oct[i/8] >> (8 * (i % 8)))
	}
}
