package utils

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NormalizeWallet validates an EVM wallet address and returns its checksummed form.
// An empty input stays empty (no active wallet).
func NormalizeWallet(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", nil
	}
	if !common.IsHexAddress(addr) {
		return "", fmt.Errorf("invalid wallet address %q", addr)
	}
	return common.HexToAddress(addr).Hex(), nil
}
