package constants

const (
	// BlockVersion is the version given to headers built by this module and
	// the default of operator tools. It selects the provisional CryptixHashV2
	// function, see CryptixHashV2BlockVersion.
	BlockVersion uint16 = 3

	// HeavyHashBlockVersion is the first block version. Blocks of this version
	// are mined with the legacy HeavyHash matrix function.
	HeavyHashBlockVersion uint16 = 1

	// CryptixHashV1BlockVersion is the first block version whose proof of work
	// is computed with the octonion and S-box CryptixHash function.
	CryptixHashV1BlockVersion uint16 = 2

	// CryptixHashV2BlockVersion is the first block version whose proof of work
	// is computed with the CryptixHash pipeline including the anti-shortcut
	// mix and the BLAKE3 chain. The constants of that pipeline are provisional.
	CryptixHashV2BlockVersion uint16 = 3

	// MaxBlockLevel is the maximum possible block level.
	// This is technically 255, but we clamp it at 256 - block level of mainnet genesis
	// This means that any block that has a level lower or equal to genesis will be level 0.
	// The analysis behind this decision is available in https://github.com/kaspanet/kaspad/issues/1849
	MaxBlockLevel = 225
)
