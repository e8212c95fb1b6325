package inittest

import (
	"github.com/rhonix/rboot/genesis"
	"github.com/rhonix/rboot/keys"
	"github.com/rhonix/rboot/revaddr"
	"github.com/rhonix/rboot/util/testutil"
)

// GenesisWalletsWithBalances makes a ledger entry for each balance with deterministic testing keys
func GenesisWalletsWithBalances(initBalance ...int64) ([]genesis.LedgerEntry, []*keys.PrivateKey, []revaddr.Address) {
	privateKeys := testutil.GetTestingPrivateKeys(len(initBalance))
	addresses := make([]revaddr.Address, len(privateKeys))
	entries := make([]genesis.LedgerEntry, len(privateKeys))
	for i := range privateKeys {
		addresses[i] = revaddr.FromPrivateKey(privateKeys[i])
		entries[i] = genesis.LedgerEntry{
			Key:     privateKeys[i],
			Balance: initBalance[i],
		}
	}
	return entries, privateKeys, addresses
}

// GenesisBondsWithStakes makes a bond for each stake with deterministic validator keys,
// disjoint from the wallet keys
func GenesisBondsWithStakes(stakes ...int64) ([]genesis.BondEntry, []*keys.PrivateKey) {
	privateKeys := testutil.GetTestingPrivateKeys(len(stakes), 1000)
	bonds := make([]genesis.BondEntry, len(privateKeys))
	for i := range privateKeys {
		bonds[i] = genesis.BondEntry{
			PublicKey: privateKeys[i].PublicKey(),
			Stake:     stakes[i],
		}
	}
	return bonds, privateKeys
}
