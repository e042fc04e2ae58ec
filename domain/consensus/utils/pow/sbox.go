package pow

import (
	"math/bits"
)

const sboxSize = 256

// nonLinearSBoxByte multiplies input by key, rotates the result right by 3
// and masks it with 0x5A.
func nonLinearSBoxByte(input, key byte) byte {
	result := input * key
	result = bits.RotateLeft8(result, -3)
	return result ^ 0x5A
}

// buildSBoxV1 builds the substitution table of CryptixHashV1: the digest
// repeated over the table, then mixed for 3 to 6 rounds keyed by the
// digest and the product.
func buildSBoxV1(digest, product *[32]byte) [sboxSize]byte {
	var sbox [sboxSize]byte
	for i := range sbox {
		sbox[i] = digest[i%len(digest)]
	}

	iterations := 3 + int(product[0]%4)
	for round := 0; round < iterations; round++ {
		for i := range sbox {
			value := nonLinearSBoxByte(sbox[i], digest[i%len(digest)]^product[i%len(product)])
			value ^= bits.RotateLeft8(value, 4) | bits.RotateLeft8(value, -2)
			sbox[i] = value
		}
	}
	return sbox
}

// sboxBuffer selects one of the buffers an S-box rule reads from.
type sboxBuffer int

const (
	sboxBufferProduct sboxBuffer = iota
	sboxBufferDigest
	sboxBufferNibbleProduct
	sboxBufferProductBeforeOct
)

// sboxRule describes how one range of 32 S-box entries is derived.
type sboxRule struct {
	source     sboxBuffer
	leftXor    byte
	leftMul    uint32
	rightXor   byte
	rightMul   uint32
	valueMul   byte
	valueAdd   byte
	leftIndex  int
	rightIndex int
}

// sboxRules holds one rule per range of 32 entries, in table order.
var sboxRules = [sboxSize / 32]sboxRule{
	{source: sboxBufferProduct, leftXor: 0xA5, leftMul: 3, rightXor: 0x5A, rightMul: 5, valueMul: 0x1F, valueAdd: 0x07, leftIndex: 1, rightIndex: 3},
	{source: sboxBufferDigest, leftXor: 0x3C, leftMul: 7, rightXor: 0xC3, rightMul: 11, valueMul: 0x2D, valueAdd: 0x13, leftIndex: 5, rightIndex: 7},
	{source: sboxBufferNibbleProduct, leftXor: 0x96, leftMul: 13, rightXor: 0x69, rightMul: 17, valueMul: 0x3B, valueAdd: 0x1D, leftIndex: 9, rightIndex: 11},
	{source: sboxBufferProductBeforeOct, leftXor: 0x0F, leftMul: 19, rightXor: 0xF0, rightMul: 23, valueMul: 0x47, valueAdd: 0x29, leftIndex: 13, rightIndex: 15},
	{source: sboxBufferProduct, leftXor: 0x55, leftMul: 29, rightXor: 0xAA, rightMul: 31, valueMul: 0x5B, valueAdd: 0x35, leftIndex: 17, rightIndex: 19},
	{source: sboxBufferDigest, leftXor: 0x33, leftMul: 37, rightXor: 0xCC, rightMul: 41, valueMul: 0x6D, valueAdd: 0x3F, leftIndex: 21, rightIndex: 23},
	{source: sboxBufferNibbleProduct, leftXor: 0x99, leftMul: 43, rightXor: 0x66, rightMul: 47, valueMul: 0x7F, valueAdd: 0x4B, leftIndex: 25, rightIndex: 27},
	{source: sboxBufferProductBeforeOct, leftXor: 0x1E, leftMul: 53, rightXor: 0xE1, rightMul: 59, valueMul: 0x8B, valueAdd: 0x57, leftIndex: 29, rightIndex: 31},
}

// cryptixBuffers are the byte buffers the CryptixHashV2 S-box and the table
// application read from.
type cryptixBuffers struct {
	product          *[32]byte
	digest           *[32]byte
	nibbleProduct    *[32]byte
	productBeforeOct *[32]byte
}

func (b *cryptixBuffers) get(buffer sboxBuffer) *[32]byte {
	switch buffer {
	case sboxBufferProduct:
		return b.product
	case sboxBufferDigest:
		return b.digest
	case sboxBufferNibbleProduct:
		return b.nibbleProduct
	default:
		return b.productBeforeOct
	}
}

// buildSBoxV2 builds the substitution table of CryptixHashV2 from the rule
// table and refines it 1 or 2 times, depending on product[sboxIterationsIndex].
func buildSBoxV2(buffers *cryptixBuffers) [sboxSize]byte {
	var sbox [sboxSize]byte
	for i := range sbox {
		rule := &sboxRules[i/32]
		source := buffers.get(rule.source)

		rotateLeft := uint32(buffers.product[(i+rule.leftIndex)%32]^rule.leftXor) * rule.leftMul
		rotateRight := uint32(buffers.nibbleProduct[(i+rule.rightIndex)%32]^rule.rightXor) * rule.rightMul
		index := (uint32(i) + rotateLeft + rotateRight) % 32

		value := (buffers.digest[i%32]^buffers.productBeforeOct[(i*7)%32])*rule.valueMul + rule.valueAdd
		sbox[i] = bits.RotateLeft8(source[index], int(rotateLeft%8)) ^ value
	}

	iterations := 1 + int(buffers.product[sboxIterationsIndex]%2)
	for round := 0; round < iterations; round++ {
		for i := range sbox {
			x := sbox[i]
			sbox[i] = x ^ bits.RotateLeft8(x, (i%7)+1) ^ bits.RotateLeft8(x, -(((i+3)%5)+1))
		}
	}
	return sbox
}

// applySBoxV2 XORs every byte of chained with an S-box entry whose index
// mixes the auxiliary buffers with the byte position.
func applySBoxV2(chained *[32]byte, sbox *[sboxSize]byte, buffers *cryptixBuffers) {
	references := [4]*[32]byte{buffers.nibbleProduct, buffers.digest, buffers.product, buffers.productBeforeOct}
	for i := range chained {
		reference := references[(i*31)%len(references)]
		index := (int(reference[(i*13)%32]) + int(buffers.product[(i*31)%32]) +
			int(buffers.digest[(i*19)%32]) + i*41) % sboxSize
		chained[i] ^= sbox[index]
	}
}
