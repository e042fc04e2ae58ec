package pow

import (
	"math/bits"
)

const (
	antiShortcutRounds         = 16
	antiShortcutMinDepth       = 4
	antiShortcutDepthRange     = 13
	antiShortcutAccumulator    = 0xCBF29CE484222325
	antiShortcutMultiplier     = 0x100000001B3
	antiShortcutIndexIncrement = 0x3B
)

// antiShortcutMix transforms a copy of input byte by byte. Every byte goes
// through a chaotic multiplicative step, a fixed number of accumulator
// rounds and a depth bounded Fibonacci recurrence. The accumulator carries
// over from one byte to the next, so the bytes can only be computed in order.
func antiShortcutMix(input *[32]byte) [32]byte {
	var output [32]byte
	accumulator := uint64(antiShortcutAccumulator)

	for i := range input {
		x := uint64(input[i])
		x = (x*(255-x) + uint64(i)*antiShortcutIndexIncrement) & 0xFF

		for round := uint64(0); round < antiShortcutRounds; round++ {
			accumulator ^= x + round
			accumulator = bits.RotateLeft64(accumulator, 13) * antiShortcutMultiplier
		}

		depth := antiShortcutMinDepth + int(x%antiShortcutDepthRange)
		output[i] = byte(x) ^ byte(accumulator) ^ boundedFibonacci(accumulator, depth)
	}

	return output
}

// boundedFibonacci runs depth steps of a Fibonacci-like recurrence with a
// rotation on every step and returns the low byte of the last term.
func boundedFibonacci(seed uint64, depth int) byte {
	a, b := seed, bits.RotateLeft64(seed, 7)
	for step := 0; step < depth; step++ {
		a, b = b, bits.RotateLeft64(a+b, 7)
	}
	return byte(b)
}
