package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY = "https://gateway.lighthouse.storage"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
	NATIVE_DECIMALS       = 18
	DEFAULT_NATIVE_SYMBOL = "XFI"

	// Burnable scan bound used by the fixed-range enumeration
	DEFAULT_BURN_SCAN_BOUND = 10
)
