package pow

import (
	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/hashes"
)

// expandNibbles splits every byte of the hash into its high and low nibbles,
// in that order.
func expandNibbles(hashBytes *[externalapi.DomainHashSize]byte) [matrixSize]uint16 {
	var vector [matrixSize]uint16
	for i := 0; i < externalapi.DomainHashSize; i++ {
		vector[2*i] = uint16(hashBytes[i] >> 4)
		vector[2*i+1] = uint16(hashBytes[i] & 0x0F)
	}
	return vector
}

// HeavyHash is the legacy matrix hash function used by blocks of version
// constants.HeavyHashBlockVersion.
func (mat *Matrix) HeavyHash(hash *externalapi.DomainHash) *externalapi.DomainHash {
	hashBytes := hash.ByteArray()
	vector := expandNibbles(hashBytes)
	var product [matrixSize]uint16

	// Matrix-vector multiplication, and convert to 4 bits.
	for i := 0; i < matrixSize; i++ {
		var sum uint16
		for j := 0; j < matrixSize; j++ {
			sum += mat[i][j] * vector[j]
		}
		product[i] = sum >> 10
	}

	// Concatenate 4 LSBs back to 8 bit xor with sum1
	var res [externalapi.DomainHashSize]byte
	for i := range res {
		res[i] = hashBytes[i] ^ (byte(product[2*i]<<4) | byte(product[2*i+1]))
	}

	writer := hashes.NewHeavyHashWriter()
	writer.InfallibleWrite(res[:])
	return writer.Finalize()
}
