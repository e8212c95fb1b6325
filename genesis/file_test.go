package genesis_test

import (
	"testing"

	"github.com/rhonix/rboot/genesis"
	"github.com/rhonix/rboot/util/testutil/inittest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestWriteReadWalletsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	entries, _, addresses := inittest.GenesisWalletsWithBalances(1_000_000, 5, 0, 77)

	lines, err := genesis.WalletsFileLines(entries)
	require.NoError(t, err)
	require.NoError(t, genesis.WriteLines(fs, "wallets.txt", lines, false))

	data, err := afero.ReadFile(fs, "wallets.txt")
	require.NoError(t, err)
	require.EqualValues(t, lines[0]+"\n"+lines[1]+"\n"+lines[2]+"\n"+lines[3]+"\n", string(data))

	wallets, err := genesis.ReadWalletsFile(fs, "wallets.txt")
	require.NoError(t, err)
	require.EqualValues(t, len(entries), len(wallets))
	for i := range wallets {
		require.EqualValues(t, addresses[i], wallets[i].Address)
		require.EqualValues(t, entries[i].Balance, wallets[i].Balance)
	}

	err = genesis.WriteLines(fs, "wallets.txt", lines[:1], false)
	require.Error(t, err)
	require.NoError(t, genesis.WriteLines(fs, "wallets.txt", lines[:1], true))
	wallets, err = genesis.ReadWalletsFile(fs, "wallets.txt")
	require.NoError(t, err)
	require.EqualValues(t, 1, len(wallets))

	require.NoError(t, afero.WriteFile(fs, "broken.txt", []byte(lines[0]+"\n\nnot a line\n"), 0644))
	_, err = genesis.ReadWalletsFile(fs, "broken.txt")
	require.ErrorIs(t, err, genesis.ErrWrongFormat)
	require.Contains(t, err.Error(), "line 2")

	_, err = genesis.ReadWalletsFile(fs, "absent.txt")
	require.Error(t, err)
}

func TestWriteReadBondsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	bonds, validators := inittest.GenesisBondsWithStakes(100, 200, 300)

	lines, err := genesis.BondsFileLines(bonds)
	require.NoError(t, err)
	require.NoError(t, genesis.WriteLines(fs, "bonds.txt", lines, false))

	back, err := genesis.ReadBondsFile(fs, "bonds.txt")
	require.NoError(t, err)
	require.EqualValues(t, 3, len(back))
	for i := range back {
		require.True(t, back[i].PublicKey.Equal(validators[i].PublicKey()))
		require.EqualValues(t, bonds[i].Stake, back[i].Stake)
	}
}

func TestReadDistributionFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := genesis.ReadDistributionFile(fs, "rboot.genesis.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")

	entries, _, _ := inittest.GenesisWalletsWithBalances(10, 20)
	yamlData := "wallets:\n" +
		"  \"" + entries[0].Key.Hex() + "\": 10\n" +
		"  \"" + entries[1].Key.Hex() + "\": 20\n"
	require.NoError(t, afero.WriteFile(fs, "rboot.genesis.yaml", []byte(yamlData), 0644))

	d, err := genesis.ReadDistributionFile(fs, "rboot.genesis.yaml")
	require.NoError(t, err)
	fromYAML, err := d.WalletsFileLines()
	require.NoError(t, err)
	direct, err := genesis.WalletsFileLines(entries)
	require.NoError(t, err)
	require.EqualValues(t, direct, fromYAML)
}
