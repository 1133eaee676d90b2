package types

import (
	"regexp"

	"github.com/ethereum/go-ethereum/common"
)

// treat ids are uint256 and start at 0; leading zeros are not canonical
var treatIDRegex = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)

// IsNumericID reports whether s is a canonical decimal treat id
func IsNumericID(s string) bool {
	return treatIDRegex.MatchString(s)
}

// IsEthereumAddress reports whether s is a 20-byte hex address, with or without 0x
func IsEthereumAddress(s string) bool {
	return common.IsHexAddress(s)
}
