package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTestingKeys(t *testing.T) {
	origin := GetTestingPrivateKey()
	require.EqualValues(t, TestingDeterministicOriginPrivateKey, origin.Hex())

	k1 := GetTestingPrivateKeys(5)
	k2 := GetTestingPrivateKeys(5)
	require.EqualValues(t, 5, len(k1))
	for i := range k1 {
		require.True(t, k1[i].Equal(k2[i]))
		require.False(t, k1[i].Equal(origin))
		if i > 0 {
			require.False(t, k1[i].Equal(k1[i-1]))
		}
	}
	shifted := GetTestingPrivateKeys(2, 31416)
	require.True(t, shifted[0].Equal(k1[1]))

	log := NewNamedLogger("test")
	log.Infof("testing keys: %d", len(k1))
}
