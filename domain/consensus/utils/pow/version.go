package pow

import (
	"fmt"

	"github.com/cryptix-network/cryptixd/domain/consensus/model/externalapi"
	"github.com/cryptix-network/cryptixd/domain/consensus/utils/constants"
	"github.com/pkg/errors"
)

// Version selects the matrix hash function applied to the proof of work hash.
type Version uint8

const (
	// VersionHeavyHash is the legacy HeavyHash function.
	VersionHeavyHash Version = iota + 1

	// VersionCryptixHashV1 is the octonion and S-box CryptixHash function.
	VersionCryptixHashV1

	// VersionCryptixHashV2 is the CryptixHash function with the anti-shortcut
	// mix and the BLAKE3 chain. Its tables and finalizer domain are
	// provisional and have not been checked against a reference node.
	VersionCryptixHashV2
)

var versionNames = map[Version]string{
	VersionHeavyHash:     "heavyhash",
	VersionCryptixHashV1: "cryptixhashv1",
	VersionCryptixHashV2: "cryptixhashv2",
}

// String returns the name of the version
func (v Version) String() string {
	name, ok := versionNames[v]
	if !ok {
		return fmt.Sprintf("unknown(%d)", uint8(v))
	}
	return name
}

// IsValid returns whether v is one of the known versions
func (v Version) IsValid() bool {
	_, ok := versionNames[v]
	return ok
}

// ParseVersion returns the Version with the given name
func ParseVersion(name string) (Version, error) {
	for version, versionName := range versionNames {
		if versionName == name {
			return version, nil
		}
	}
	return 0, errors.Errorf("unknown proof of work version %q", name)
}

// VersionFromBlockVersion returns the Version used by blocks of the given
// block version.
func VersionFromBlockVersion(blockVersion uint16) Version {
	switch {
	case blockVersion >= constants.CryptixHashV2BlockVersion:
		return VersionCryptixHashV2
	case blockVersion >= constants.CryptixHashV1BlockVersion:
		return VersionCryptixHashV1
	default:
		return VersionHeavyHash
	}
}

// Transform applies the matrix hash function of the given version to hash.
func (mat *Matrix) Transform(version Version, hash *externalapi.DomainHash) *externalapi.DomainHash {
	switch version {
	case VersionHeavyHash:
		return mat.HeavyHash(hash)
	case VersionCryptixHashV1:
		return mat.CryptixHashV1(hash)
	case VersionCryptixHashV2:
		return mat.CryptixHashV2(hash)
	}
	panic(errors.Errorf("unknown proof of work version %d", uint8(version)))
}
