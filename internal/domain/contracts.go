package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Contract is a protocol contract whose interactions are scored.
type Contract struct {
	Name    string
	Address common.Address
}

// CompoundContracts are the Compound V2 contracts (Comptroller plus main cTokens)
// that transfers are restricted to.
var CompoundContracts = []Contract{
	{Name: "Comptroller", Address: common.HexToAddress("0x3d9819210a31b4961b30ef54be2aed79b9c9cd3b")},
	{Name: "cUSDC", Address: common.HexToAddress("0x39aa39c021dfbae8fac545936693ac917d5e7563")},
	{Name: "cETH", Address: common.HexToAddress("0x4ddc2d193948926d02f9b1fe9e1daa0718270ed5")},
	{Name: "cDAI", Address: common.HexToAddress("0x5d3a536e4d6dbd6114cc1ead35777bab948e3643")},
	{Name: "cUSDT", Address: common.HexToAddress("0xf650c3d88d12db855b8bf7d11be6c55a4e07dcc9")},
}

// ContractAddresses returns lowercased hex addresses of contracts, in order.
func ContractAddresses(contracts []Contract) []string {
	addrs := make([]string, len(contracts))
	for i, c := range contracts {
		addrs[i] = strings.ToLower(c.Address.Hex())
	}
	return addrs
}
