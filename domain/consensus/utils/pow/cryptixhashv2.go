package pow

import (
	"math/bits"

	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/hashes"
)

const (
	// sboxIterationsIndex is the product byte that selects the number of
	// S-box refinement rounds.
	sboxIterationsIndex = 7

	// blake3IterationsIndex is the product byte that selects the length of
	// the BLAKE3 chain.
	blake3IterationsIndex = 5
)

// CryptixHashV2 is the matrix hash function used by blocks of version
// constants.CryptixHashV2BlockVersion and above.
func (mat *Matrix) CryptixHashV2(hash *externalapi.DomainHash) *externalapi.DomainHash {
	digest := hash.ByteArray()
	nibbles := expandNibbles(digest)

	var product, nibbleProduct [32]byte
	for i := range product {
		var sum1, sum2, sum3, sum4 uint32
		for j := 0; j < matrixSize; j++ {
			elem := uint32(nibbles[j])
			sum1 += uint32(mat[2*i][j]) * elem
			sum2 += uint32(mat[2*i+1][j]) * elem
			sum3 += uint32(mat[i+2][j]) * elem
			sum4 += uint32(mat[i+3][j]) * elem
		}

		aNibble, bNibble, cNibble, dNibble := combineSums(sum1, sum2, sum3, sum4)
		product[i] = byte((bNibble << 4) | aNibble)
		nibbleProduct[i] = byte((dNibble << 4) | cNibble)
	}

	for i := range product {
		product[i] ^= digest[i]
		nibbleProduct[i] ^= digest[i]
	}

	productBeforeOct := product
	oct := octonionHash(&product)
	foldOctonion(&product, &oct)

	buffers := &cryptixBuffers{
		product:          &product,
		digest:           digest,
		nibbleProduct:    &nibbleProduct,
		productBeforeOct: &productBeforeOct,
	}
	sbox := buildSBoxV2(buffers)

	antiShortcut := antiShortcutMix(&product)

	chained := product
	blake3Iterations := 1 + int(product[blake3IterationsIndex]%3)
	for i := 0; i < blake3Iterations; i++ {
		chained = hashes.Blake3(chained[:])
	}

	applySBoxV2(&chained, &sbox, buffers)

	for i := range chained {
		chained[i] ^= antiShortcut[i]
	}

	writer := hashes.NewCryptixHashWriter()
	writer.InfallibleWrite(chained[:])
	return writer.Finalize()
}

// combineSums folds the four row sums of one output byte into four nibbles.
func combineSums(sum1, sum2, sum3, sum4 uint32) (aNibble, bNibble, cNibble, dNibble uint32) {
	aNibble = (sum1 & 0xF) ^
		((sum2 >> 4) & 0xF) ^
		((sum3 >> 8) & 0xF) ^
		((sum1 * 0xABCD >> 12) & 0xF) ^
		((sum1 * 0x1234 >> 8) & 0xF) ^
		((sum2 * 0x5678 >> 16) & 0xF) ^
		((sum3 * 0x9ABC >> 4) & 0xF) ^
		(bits.RotateLeft32(sum1, 3) & 0xF) ^
		(bits.RotateLeft32(sum3, -5) & 0xF)

	bNibble = (sum2 & 0xF) ^
		((sum1 >> 4) & 0xF) ^
		((sum4 >> 8) & 0xF) ^
		((sum2 * 0xDCBA >> 14) & 0xF) ^
		((sum2 * 0x8765 >> 10) & 0xF) ^
		((sum1 * 0x4321 >> 6) & 0xF) ^
		(bits.RotateLeft32(sum4, 7) & 0xF) ^
		(bits.RotateLeft32(sum2, -1) & 0xF)

	cNibble = (sum3 & 0xF) ^
		((sum2 >> 4) & 0xF) ^
		((sum2 >> 8) & 0xF) ^
		((sum3 * 0xF135 >> 10) & 0xF) ^
		((sum3 * 0x2468 >> 12) & 0xF) ^
		((sum4 * 0xACEF >> 8) & 0xF) ^
		((sum2 * 0x1357 >> 4) & 0xF) ^
		(bits.RotateLeft32(sum3, 5) & 0xF) ^
		(bits.RotateLeft32(sum1, -7) & 0xF)

	dNibble = (sum1 & 0xF) ^
		((sum4 >> 4) & 0xF) ^
		((sum4 >> 8) & 0xF) ^
		((sum4 * 0x57A3 >> 6) & 0xF) ^
		((sum3 * 0xD4E3 >> 12) & 0xF) ^
		((sum1 * 0x9F8B >> 10) & 0xF) ^
		(bits.RotateLeft32(sum4, -3) & 0xF) ^
		(bits.RotateLeft32(sum2, 9) & 0xF)

	return aNibble, bNibble, cNibble, dNibble
}
