package consensushashing

import (
	"encoding/binary"
	"io"

	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/hashes"
	"github.com/pkg/errors"
)

// HeaderHash returns the given header's hash
func HeaderHash(header externalapi.BaseBlockHeader) *externalapi.DomainHash {
	return HeaderHashOverrideNonceTime(header, header.Nonce(), header.TimeInMilliseconds())
}

// PrePowHash returns the hash of the given header with its nonce and
// timestamp set to zero. This is the seed of the proof of work function.
func PrePowHash(header externalapi.BaseBlockHeader) *externalapi.DomainHash {
	return HeaderHashOverrideNonceTime(header, 0, 0)
}

// HeaderHashOverrideNonceTime returns the hash of the given header as if its
// nonce and timestamp were the given ones. The header itself is not modified.
func HeaderHashOverrideNonceTime(header externalapi.BaseBlockHeader, nonce uint64,
	timeInMilliseconds int64) *externalapi.DomainHash {

	// Encode the header and hash everything prior to the number of
	// transactions.
	writer := hashes.NewBlockHashWriter()
	err := serializeHeader(writer, header, nonce, timeInMilliseconds)
	if err != nil {
		// It seems like this could only happen if the writer returned an error.
		// and this writer should never return an error (no allocations or possible failures)
		// the only non-writer error path here is unknown types in `WriteElement`
		panic(errors.Wrap(err, "this should never happen. Hash digest should never return an error"))
	}

	return writer.Finalize()
}

func serializeHeader(w io.Writer, header externalapi.BaseBlockHeader, nonce uint64, timeInMilliseconds int64) error {
	blueWork := header.BlueWork().Bytes()

	numParents := len(header.Parents())
	err := writeElements(w, header.Version(), uint64(numParents))
	if err != nil {
		return err
	}
	for _, blockLevelParents := range header.Parents() {
		numBlockLevelParents := len(blockLevelParents)
		err = writeElement(w, uint64(numBlockLevelParents))
		if err != nil {
			return err
		}
		for _, hash := range blockLevelParents {
			err = writeElement(w, hash)
			if err != nil {
				return err
			}
		}
	}
	return writeElements(w, header.HashMerkleRoot(), header.AcceptedIDMerkleRoot(), header.UTXOCommitment(),
		timeInMilliseconds, header.Bits(), nonce, header.DAAScore(), header.BlueScore(), blueWork,
		header.PruningPoint())
}

func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := writeElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeElement writes the little endian representation of element to w.
func writeElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case uint16:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], e)
		_, err := w.Write(buf[:])
		return errors.WithStack(err)
	case uint32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], e)
		_, err := w.Write(buf[:])
		return errors.WithStack(err)
	case uint64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], e)
		_, err := w.Write(buf[:])
		return errors.WithStack(err)
	case int64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(e))
		_, err := w.Write(buf[:])
		return errors.WithStack(err)
	case []byte:
		err := writeElement(w, uint64(len(e)))
		if err != nil {
			return err
		}
		_, err = w.Write(e)
		return errors.WithStack(err)
	case *externalapi.DomainHash:
		_, err := w.Write(e.ByteSlice())
		return errors.WithStack(err)
	}

	return errors.Errorf("writeElement: unknown type %T", element)
}
