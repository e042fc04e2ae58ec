package pow

import (
	"math"

	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

const eps float64 = 1e-9

// matrixSize is the number of rows and columns of a Matrix.
const matrixSize = 64

// maxMatrixGenerationAttempts bounds the number of matrices drawn from a
// single seed. A random nibble matrix is singular with a probability far
// below 1/2, so reaching it means the generator is broken.
const maxMatrixGenerationAttempts = 1 << 16

// Matrix is a 64x64 matrix of 4-bit values. Matrices returned by
// GenerateMatrix always have full rank and are never modified afterwards,
// so a single Matrix can be shared between goroutines.
type Matrix [matrixSize][matrixSize]uint16

type floatMatrix [matrixSize][matrixSize]float64

// GenerateMatrix deterministically derives a full rank Matrix from the given hash.
// Candidate matrices are drawn from a single xoShiRo256PlusPlus stream seeded by
// the hash until one of them has rank 64.
func GenerateMatrix(hash *externalapi.DomainHash) *Matrix {
	var mat Matrix
	generator := newxoShiRo256PlusPlus(hash)

	for attempt := 1; attempt <= maxMatrixGenerationAttempts; attempt++ {
		mat.fill(generator)
		rank := mat.ComputeRank()
		if rank == matrixSize {
			return &mat
		}
		log.Tracef("Matrix candidate %d for %s has rank %d", attempt, hash, rank)
	}

	panic(errors.Errorf("failed to generate a full rank matrix for %s after %d attempts",
		hash, maxMatrixGenerationAttempts))
}

// fill overwrites the matrix with the next 1024 words of the generator,
// every word sliced into 16 nibbles starting at the least significant one.
func (mat *Matrix) fill(generator *xoShiRo256PlusPlus) {
	for i := range mat {
		for j := 0; j < matrixSize; j += 16 {
			val := generator.Uint64()
			for shift := 0; shift < 16; shift++ {
				mat[i][j+shift] = uint16((val >> (4 * shift)) & 0x0F)
			}
		}
	}
}

func (mat *Matrix) toFloat() *floatMatrix {
	var B floatMatrix
	for i := range B {
		for j := range B[0] {
			B[i][j] = float64(mat[i][j])
		}
	}
	return &B
}

// ComputeRank returns the rank of the matrix, computed with a floating point
// Gaussian elimination. The elimination order and epsilon are part of the
// consensus rules, since they decide which generated matrices are accepted.
// The matrix itself is not modified.
func (mat *Matrix) ComputeRank() int {
	B := mat.toFloat()
	var rank int
	var rowSelected [matrixSize]bool
	for i := 0; i < matrixSize; i++ {
		var j int
		for j = 0; j < matrixSize; j++ {
			if !rowSelected[j] && math.Abs(B[j][i]) > eps {
				break
			}
		}
		if j != matrixSize {
			rank++
			rowSelected[j] = true
			for p := i + 1; p < matrixSize; p++ {
				B[j][p] /= B[j][i]
			}
			for k := 0; k < matrixSize; k++ {
				if k != j && math.Abs(B[k][i]) > eps {
					for p := i + 1; p < matrixSize; p++ {
						B[k][p] -= B[j][p] * B[k][i]
					}
				}
			}
		}
	}
	return rank
}
