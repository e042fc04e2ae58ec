package pow

import (
	"math/bits"

	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/hashes"
	"golang.org/x/crypto/sha3"
)

// preTransformRuleV1 rotates a single byte of the hash when the selector
// byte is divisible by modulus. The byte at repeatIndex decides how many
// times (1 to 3) the rule is applied.
type preTransformRuleV1 struct {
	selector    int
	modulus     byte
	repeatIndex int
	target      int
	xor         byte
	rotateLeft  int
}

// The first rule whose selector matches is applied, the rest are skipped.
var preTransformRulesV1 = [...]preTransformRuleV1{
	{selector: 3, modulus: 3, repeatIndex: 4, target: 20, xor: 0x55},
	{selector: 7, modulus: 5, repeatIndex: 8, target: 25, rotateLeft: 7},
	{selector: 5, modulus: 2, repeatIndex: 6, target: 10, xor: 0xAA},
	{selector: 6, modulus: 4, repeatIndex: 7, target: 15, rotateLeft: 3},
	{selector: 8, modulus: 7, repeatIndex: 9, target: 30, xor: 0xFF},
	{selector: 9, modulus: 11, repeatIndex: 10, target: 5, rotateLeft: -4},
	{selector: 12, modulus: 13, repeatIndex: 13, target: 18, rotateLeft: 2},
}

// preTransformV1 prepares the proof of work hash of a CryptixHashV1 block
// before it enters the matrix: one or two rounds (hash[0] % 2 + 1) of
// SHA3-256, each followed by the first matching rotation rule.
func preTransformV1(hash *externalapi.DomainHash) *externalapi.DomainHash {
	current := hash.ByteArray()
	rounds := int(current[0]%2) + 1

	for round := 0; round < rounds; round++ {
		*current = sha3.Sum256(current[:])

		for _, rule := range preTransformRulesV1 {
			if current[rule.selector]%rule.modulus != 0 {
				continue
			}
			repeat := int(current[rule.repeatIndex]%3) + 1
			for i := 0; i < repeat; i++ {
				value := bits.RotateLeft8(current[rule.target]^rule.xor, rule.rotateLeft)

				// Direction and amount come from the first byte, which no rule touches.
				amount := int(current[0]%4) + 1
				if current[0]%2 != 0 {
					amount = -amount
				}
				current[rule.target] = bits.RotateLeft8(value, amount)
			}
			break
		}
	}

	return externalapi.NewDomainHashFromByteArray(current)
}

// CryptixHashV1 is the matrix hash function used by blocks of version
// constants.CryptixHashV1BlockVersion: a nibble matrix product, a keyed
// S-box, per byte branching, octonion diffusion and the CryptixHashV2
// finalizer. State runs the proof of work hash through preTransformV1 before
// calling it.
func (mat *Matrix) CryptixHashV1(hash *externalapi.DomainHash) *externalapi.DomainHash {
	digest := hash.ByteArray()
	nibbles := expandNibbles(digest)

	var product [32]byte
	for i := range product {
		var sum1, sum2 uint16
		for j := 0; j < matrixSize; j++ {
			sum1 += mat[2*i][j] * nibbles[j]
			sum2 += mat[2*i+1][j] * nibbles[j]
		}

		aNibble := (sum1 & 0xF) ^ ((sum2 >> 4) & 0xF) ^ ((sum1 >> 8) & 0xF)
		bNibble := (sum2 & 0xF) ^ ((sum1 >> 4) & 0xF) ^ ((sum2 >> 8) & 0xF)
		product[i] = byte((aNibble << 4) | bNibble)
	}

	for i := range product {
		product[i] ^= digest[i]
	}

	sbox := buildSBoxV1(digest, &product)
	for i := range product {
		product[i] ^= sbox[product[i]]
	}

	for i := range product {
		product[i] = branchByteV1(product[i], digest[i])
	}

	oct := octonionHash(&product)
	foldOctonion(&product, &oct)

	writer := hashes.NewCryptixHashWriter()
	writer.InfallibleWrite(product[:])
	return writer.Finalize()
}

// branchByteV1 applies one of nine fixed byte manipulations to value. The
// branch is selected by digestByte % 9.
func branchByteV1(value, digestByte byte) byte {
	original := value

	switch digestByte % 9 {
	case 0:
		value = bits.RotateLeft8(value+13, 3)
		if value > 100 {
			value += 0x20
		} else {
			value -= 0x10
		}
	case 1:
		value = bits.RotateLeft8(value-7, 5)
		if value%2 == 0 {
			value += 0x11
		} else {
			value -= 0x05
		}
	case 2:
		value ^= 0x5A
		value += 0xAC
		if value > 0x50 {
			value *= 2
		} else {
			value /= 3
		}
	case 3:
		value *= 17
		value ^= 0xAA
		if value%4 == 0 {
			value = bits.RotateLeft8(value, 4)
		} else {
			value = bits.RotateLeft8(value, -2)
		}
	case 4:
		value = bits.RotateLeft8(value-29, 1)
		if value < 50 {
			value += 0x55
		} else {
			value -= 0x22
		}
	case 5:
		value += 0xAA ^ original
		value ^= 0x45
		if value&0x0F == 0 {
			value = bits.RotateLeft8(value, 6)
		} else {
			value = bits.RotateLeft8(value, -3)
		}
	case 6:
		value = bits.RotateLeft8(value+0x33, -4)
		if value < 0x80 {
			value -= 0x22
		} else {
			value += 0x44
		}
	case 7:
		value = bits.RotateLeft8(value*3, 2)
		if value > 0x50 {
			value += 0x11
		} else {
			value -= 0x11
		}
	case 8:
		value = bits.RotateLeft8(value-0x10, -3)
		if value%3 == 0 {
			value += 0x55
		} else {
			value -= 0x33
		}
	}

	return value
}
